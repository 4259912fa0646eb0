package tapes

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/termtape/logs"
	"github.com/reusee/termtape/modes"
)

func testLogger() logs.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestPlay(t *testing.T) {
	ctx := context.Background()

	t.Run("order preserved", func(t *testing.T) {
		out := new(bytes.Buffer)
		player := &Player{
			Output: out,
			Logger: testLogger(),
		}
		tape := NewBuilder("t").
			SendKeys("a").StepDelay(0).
			SendKeys("b").StepDelay(0).
			SendKeys("c").StepDelay(0).
			Build()
		if err := player.Play(ctx, tape); err != nil {
			t.Fatal(err)
		}
		want := `{"type":"sendKeys","keys":["a"]}` + "\n" +
			`{"type":"sendKeys","keys":["b"]}` + "\n" +
			`{"type":"sendKeys","keys":["c"]}` + "\n"
		if out.String() != want {
			t.Fatalf("got %q", out.String())
		}
	})

	t.Run("empty tape", func(t *testing.T) {
		out := new(bytes.Buffer)
		player := &Player{
			Output: out,
			Logger: testLogger(),
		}
		if err := player.Play(ctx, NewBuilder("t").Build()); err != nil {
			t.Fatal(err)
		}
		if out.Len() != 0 {
			t.Fatalf("got %q", out.String())
		}
	})

	t.Run("pauses emit nothing", func(t *testing.T) {
		out := new(bytes.Buffer)
		player := &Player{
			Output: out,
			Logger: testLogger(),
		}
		tape := NewBuilder("t").
			Note("lead-in").
			Sleep(time.Millisecond).
			SendKeys("Enter").StepDelay(0).
			Build()
		if err := player.Play(ctx, tape); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		if len(lines) != 1 {
			t.Fatalf("got %q", out.String())
		}
	})

	t.Run("pacing lower bound", func(t *testing.T) {
		player := &Player{
			Output: new(bytes.Buffer),
			Logger: testLogger(),
		}
		tape := NewBuilder("t").
			SendKeys("a").StepDelay(30 * time.Millisecond).
			SendKeys("b").StepDelay(30 * time.Millisecond).
			Build()
		t0 := time.Now()
		if err := player.Play(ctx, tape); err != nil {
			t.Fatal(err)
		}
		if elapsed := time.Since(t0); elapsed < 60*time.Millisecond {
			t.Fatalf("finished too early: %v", elapsed)
		}
	})

	t.Run("cancel during delay", func(t *testing.T) {
		out := new(bytes.Buffer)
		player := &Player{
			Output: out,
			Logger: testLogger(),
		}
		tape := NewBuilder("t").
			SendKeys("a").StepDelay(10 * time.Second).
			SendKeys("b").
			Build()
		ctx, cancel := context.WithCancel(ctx)
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()
		t0 := time.Now()
		err := player.Play(ctx, tape)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("got %v", err)
		}
		if elapsed := time.Since(t0); elapsed > 5*time.Second {
			t.Fatalf("cancel not honored: %v", elapsed)
		}
		// the second command must not have been sent
		if strings.Count(out.String(), "\n") != 1 {
			t.Fatalf("got %q", out.String())
		}
	})

	t.Run("write failure carries stage", func(t *testing.T) {
		player := &Player{
			Output: failingWriter{},
			Logger: testLogger(),
		}
		tape := NewBuilder("t").
			Note("listing files").
			SendKeys("ls", "Enter").
			Build()
		err := player.Play(ctx, tape)
		if err == nil {
			t.Fatal("should error")
		}
		if !strings.Contains(err.Error(), "broken pipe") {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "listing files") {
			t.Fatalf("got %v", err)
		}
	})

}

func TestPlayTwoSteps(t *testing.T) {
	// the canonical two-step demonstration: clear the screen, wait
	// half a second, then list files
	out := new(stampingWriter)
	player := &Player{
		Output: out,
		Logger: testLogger(),
	}
	tape := NewBuilder("t").
		SendKeys("clear", "Enter").
		SendKeys("ls --color=auto", "Enter").StepDelay(time.Second).
		Build()

	t0 := time.Now()
	if err := player.Play(context.Background(), tape); err != nil {
		t.Fatal(err)
	}
	elapsed := time.Since(t0)

	if len(out.lines) != 2 {
		t.Fatalf("got %d lines", len(out.lines))
	}
	if out.lines[0] != `{"type":"sendKeys","keys":["clear","Enter"]}` {
		t.Fatalf("got %s", out.lines[0])
	}
	if out.lines[1] != `{"type":"sendKeys","keys":["ls --color=auto","Enter"]}` {
		t.Fatalf("got %s", out.lines[1])
	}
	if gap := out.times[1].Sub(out.times[0]); gap < 500*time.Millisecond {
		t.Fatalf("commands too close: %v", gap)
	}
	if elapsed < 1500*time.Millisecond {
		t.Fatalf("finished too early: %v", elapsed)
	}
}

func TestPlayerModule(t *testing.T) {
	out := new(bytes.Buffer)
	logBuf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Output {
			return out
		},
		func() logs.Writer {
			return logBuf
		},
	).Call(func(
		player *Player,
	) {
		tape := NewBuilder("wired").
			Note("wiring check").
			SendKeys("Enter").StepDelay(0).
			Build()
		if err := player.Play(context.Background(), tape); err != nil {
			t.Fatal(err)
		}
		if out.String() != `{"type":"sendKeys","keys":["Enter"]}`+"\n" {
			t.Fatalf("got %q", out.String())
		}
		if !strings.Contains(logBuf.String(), "wiring check") {
			t.Fatal("note not logged")
		}
	})
}

type stampingWriter struct {
	lines []string
	times []time.Time
}

func (s *stampingWriter) Write(data []byte) (int, error) {
	s.lines = append(s.lines, strings.TrimSuffix(string(data), "\n"))
	s.times = append(s.times, time.Now())
	return len(data), nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}
