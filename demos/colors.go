package demos

import (
	"time"

	"github.com/reusee/termtape/tapes"
)

// Colors demonstrates ANSI color rendering: colored ls and grep
// output, success and error messages in the standard palette, a
// progress animation, and a file listing. Useful for inspecting how a
// custom terminal theme looks.
func Colors() *tapes.Tape {
	return tapes.NewBuilder("colors").
		Note("Sending commands to demonstrate terminal styling...").
		Sleep(time.Second).

		// start from a clean screen
		SendKeys("clear", "Enter").
		Sleep(500*time.Millisecond).

		Note("1. Listing files with colors...").
		SendKeys("ls --color=auto", "Enter").
		Sleep(time.Second).

		Note("2. Showing PATH with grep colors...").
		SendKeys(`echo $PATH | tr ':' '\n' | grep --color=auto bin`, "Enter").
		Sleep(time.Second).

		Note("3. Git status (with colors)...").
		SendKeys("git status", "Enter").
		Sleep(time.Second).

		Note("4. Testing command colors...").
		SendKeys(`echo -e '\033[32mGREEN SUCCESS\033[0m'`, "Enter").
		Sleep(500*time.Millisecond).
		SendKeys(`echo -e '\033[31mRED ERROR\033[0m'`, "Enter").
		Sleep(500*time.Millisecond).
		SendKeys(`echo -e '\033[33mYELLOW WARNING\033[0m'`, "Enter").
		Sleep(500*time.Millisecond).
		SendKeys(`echo -e '\033[34mBLUE INFO\033[0m'`, "Enter").
		Sleep(500*time.Millisecond).
		SendKeys(`echo -e '\033[35mMAGENTA\033[0m'`, "Enter").
		Sleep(500*time.Millisecond).
		SendKeys(`echo -e '\033[36mCYAN\033[0m'`, "Enter").
		Sleep(time.Second).

		Note("5. Showing progress animation...").
		SendKeys("for i in {1..10}; do echo -n '█'; sleep 0.1; done; echo", "Enter").
		Sleep(2*time.Second).

		Note("6. Showing package.json or cargo.toml...").
		SendKeys("cat Cargo.toml 2>/dev/null || cat package.json 2>/dev/null || echo 'No config file found'", "Enter").
		Sleep(time.Second).

		Note("Done! Terminal should now have colorful output to inspect.").
		Note("Keeping terminal open for inspection...").
		Build()
}
