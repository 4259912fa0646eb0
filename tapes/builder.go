package tapes

import (
	"time"

	"github.com/reusee/termtape/commands"
)

// DefaultStepDelay is the pause after every emitted command unless the
// tape says otherwise. Hosts need a moment to process each command
// before the next one arrives.
const DefaultStepDelay = 500 * time.Millisecond

type Builder struct {
	name  string
	steps []*Step
	note  string
}

func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
	}
}

func (b *Builder) add(step *Step) *Builder {
	step.Note = b.note
	b.note = ""
	b.steps = append(b.steps, step)
	return b
}

// Note annotates the next step. Consecutive notes each get a step of
// their own.
func (b *Builder) Note(text string) *Builder {
	if b.note != "" {
		b.add(&Step{})
	}
	b.note = text
	return b
}

func (b *Builder) SendKeys(keys ...string) *Builder {
	return b.add(&Step{
		Command: commands.SendKeys(keys...),
		Delay:   DefaultStepDelay,
	})
}

func (b *Builder) Input(payload string) *Builder {
	return b.add(&Step{
		Command: commands.Input(payload),
		Delay:   DefaultStepDelay,
	})
}

func (b *Builder) Resize(cols int, rows int) *Builder {
	return b.add(&Step{
		Command: commands.Resize(cols, rows),
		Delay:   DefaultStepDelay,
	})
}

func (b *Builder) Snapshot() *Builder {
	return b.add(&Step{
		Command: commands.TakeSnapshot(),
		Delay:   DefaultStepDelay,
	})
}

// Sleep extends the pause after the last step. With no step yet, or
// with a note pending, it appends a step that emits nothing.
func (b *Builder) Sleep(d time.Duration) *Builder {
	if len(b.steps) == 0 || b.note != "" {
		return b.add(&Step{
			Delay: d,
		})
	}
	b.steps[len(b.steps)-1].Delay += d
	return b
}

// StepDelay replaces the delay of the last step.
func (b *Builder) StepDelay(d time.Duration) *Builder {
	if len(b.steps) == 0 {
		return b
	}
	b.steps[len(b.steps)-1].Delay = d
	return b
}

func (b *Builder) Build() *Tape {
	if b.note != "" {
		b.add(&Step{})
	}
	return &Tape{
		Name:  b.name,
		Steps: b.steps,
	}
}
