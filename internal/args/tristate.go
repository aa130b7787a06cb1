package args

import (
	"strconv"

	"github.com/spf13/pflag"
)

// TriState is a boolean flag that remembers whether it was given.
type TriState int

const (
	Unset TriState = iota
	True
	False
)

// IsSet reports whether the flag was given in either form.
func (t TriState) IsSet() bool { return t != Unset }

// Bool returns the explicit value; Unset reports false.
func (t TriState) Bool() bool { return t == True }

// Or returns the explicit value, or def when unset.
func (t TriState) Or(def bool) bool {
	if t == Unset {
		return def
	}
	return t == True
}

func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

// FromBool converts an explicit boolean.
func FromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}

// triStateValue adapts a *TriState to pflag. The negated variant stores the
// opposite of what it parses, so "--no-x" and "--x" write the same target and
// the last one on the command line wins.
type triStateValue struct {
	target *TriState
	negate bool
}

var _ pflag.Value = (*triStateValue)(nil)

func (v *triStateValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v.target = FromBool(b != v.negate)
	return nil
}

// String reports "false" while unset so GetBool works on the flag.
func (v *triStateValue) String() string {
	if v.target == nil || *v.target == Unset {
		return "false"
	}
	b := v.target.Bool()
	if v.negate {
		b = !b
	}
	return strconv.FormatBool(b)
}

func (v *triStateValue) Type() string { return "bool" }

// addTriState registers --name (with optional shorthand) and --no-name.
func addTriState(fs *pflag.FlagSet, target *TriState, name, shorthand, usage, negUsage string) {
	f := fs.VarPF(&triStateValue{target: target}, name, shorthand, usage)
	f.NoOptDefVal = "true"

	nf := fs.VarPF(&triStateValue{target: target, negate: true}, "no-"+name, "", negUsage)
	nf.NoOptDefVal = "true"
}
