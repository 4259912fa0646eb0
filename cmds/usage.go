package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	fmt.Printf("usage: %s [command | flag] ...\n", os.Args[0])
	printCommands(os.Stdout, p.commands, "    ")
}

func printCommands(w io.Writer, commands map[string]*Command, indent string) {
	// aliases share one entry
	names := make(map[*Command][]string)
	for name, command := range commands {
		if command == nil {
			continue
		}
		names[command] = append(names[command], name)
	}
	var list []*Command
	for command, commandNames := range names {
		slices.Sort(commandNames)
		list = append(list, command)
	}
	slices.SortFunc(list, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	for _, command := range list {
		fmt.Fprintf(w, "%s%s", indent, strings.Join(names[command], " | "))
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)
		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, indent+"    ")
		}
	}
}
