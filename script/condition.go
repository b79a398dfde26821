// Package script evaluates small tengo expressions that level authors use
// to gate entities on session flags, for example `flag("showGem")`.
package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
)

// Lookup resolves a flag by name.
type Lookup func(name string) bool

// Condition is a compiled boolean expression. It is not safe for concurrent
// use.
type Condition struct {
	src      string
	compiled *tengo.Compiled
	lookup   Lookup
}

// Compile parses src. An empty source compiles to a condition that is
// always true.
func Compile(src string) (*Condition, error) {
	src = strings.TrimSpace(src)
	c := &Condition{src: src}
	if src == "" {
		return c, nil
	}

	script := tengo.NewScript([]byte("__result := (" + src + ")"))
	flagFn := &tengo.UserFunction{Name: "flag", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, ok := args[0].(*tengo.String)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "name", Expected: "string", Found: args[0].TypeName()}
		}
		if c.lookup != nil && c.lookup(name.Value) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}
	if err := script.Add("flag", flagFn); err != nil {
		return nil, fmt.Errorf("script: %q: %w", src, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %q: %w", src, err)
	}
	c.compiled = compiled
	return c, nil
}

// MustCompile is Compile for sources known at build time.
func MustCompile(src string) *Condition {
	c, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return c
}

// Source returns the expression text.
func (c *Condition) Source() string {
	if c == nil {
		return ""
	}
	return c.src
}

// Eval runs the expression against the flags visible through lookup.
func (c *Condition) Eval(lookup Lookup) (bool, error) {
	if c == nil || c.compiled == nil {
		return true, nil
	}
	c.lookup = lookup
	defer func() { c.lookup = nil }()

	if err := c.compiled.Run(); err != nil {
		return false, fmt.Errorf("script: run %q: %w", c.src, err)
	}
	return c.compiled.Get("__result").Bool(), nil
}
