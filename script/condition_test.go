package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionEval(t *testing.T) {
	flags := map[string]bool{"showGem": true, "KnowsHowToCollect": false}
	lookup := func(name string) bool { return flags[name] }

	cases := []struct {
		src  string
		want bool
	}{
		{``, true},
		{`flag("showGem")`, true},
		{`flag("KnowsHowToCollect")`, false},
		{`flag("missing")`, false},
		{`!flag("missing")`, true},
		{`flag("showGem") && !flag("KnowsHowToCollect")`, true},
		{`flag("missing") || 1 > 2`, false},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			c, err := Compile(tc.src)
			require.NoError(t, err)
			got, err := c.Eval(lookup)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConditionSeesFlagChanges(t *testing.T) {
	flags := map[string]bool{}
	lookup := func(name string) bool { return flags[name] }
	c := MustCompile(`flag("portal")`)

	got, err := c.Eval(lookup)
	require.NoError(t, err)
	assert.False(t, got)

	flags["portal"] = true
	got, err = c.Eval(lookup)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCompileErrors(t *testing.T) {
	_, err := Compile(`flag(`)
	require.Error(t, err)
	_, err = Compile(`undefinedThing`)
	require.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	c := MustCompile(`flag(1)`)
	_, err := c.Eval(nil)
	require.Error(t, err)
}

func TestNilCondition(t *testing.T) {
	var c *Condition
	got, err := c.Eval(nil)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Empty(t, c.Source())
}
