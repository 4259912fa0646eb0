package tapes

import "strings"

// Concat joins tapes into one, steps in order. The name joins the part
// names with "+".
func Concat(ts ...*Tape) *Tape {
	if len(ts) == 1 {
		return ts[0]
	}
	var names []string
	ret := new(Tape)
	for _, t := range ts {
		names = append(names, t.Name)
		ret.Steps = append(ret.Steps, t.Steps...)
	}
	ret.Name = strings.Join(names, "+")
	return ret
}
