package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPositional(t *testing.T) {
	got := format("Hello, {}! You are {} years old.", "Ada", "36")
	assert.Equal(t, "Hello, Ada! You are 36 years old.", got)
}

func TestFormatIndexed(t *testing.T) {
	got := format("{1} before {0}", "second", "first")
	assert.Equal(t, "first before second", got)
}

func TestFormatIndexedResetsCounter(t *testing.T) {
	// "{N}" reads args[N] and moves the "{}" counter to N+1.
	got := format("{0}-{}-{}", "a", "b", "c")
	assert.Equal(t, "a-b-c", got)
}

func TestFormatPanicsOnMissingArg(t *testing.T) {
	assert.Panics(t, func() {
		format("{} {}", "only-one")
	})
}
