package mnemonic

import (
	"math/rand/v2"
	"slices"
)

// DefaultSeparator joins the two words when Generate is used.
const DefaultSeparator = "_"

// Generator produces two-word mnemonics from a left (adjective) and a right
// (name) word bank. It is immutable after construction, so a single instance
// may be shared across goroutines.
type Generator struct {
	left  []string
	right []string

	// intn returns a uniform random int in [0, n). Swappable in tests for
	// deterministic draws; defaults to the shared math/rand/v2 source,
	// which is safe for concurrent use.
	intn func(n int) int
}

// New returns a Generator backed by the built-in word banks.
func New() *Generator {
	return &Generator{
		left:  defaultLeft,
		right: defaultRight,
		intn:  rand.IntN,
	}
}

// NewMinimal returns a Generator backed by the tiny preset bank. Mostly
// useful for demos and tests where a handful of predictable words is enough.
func NewMinimal() *Generator {
	return &Generator{
		left:  minimalLeft,
		right: minimalRight,
		intn:  rand.IntN,
	}
}

// NewWithWords returns a Generator that draws from the caller's word lists.
// The lists are copied verbatim: no validation, deduplication, or trimming is
// applied, and empty lists are accepted. Emptiness only surfaces as
// ErrEmptyWordList when generation is attempted.
func NewWithWords(left, right []string) *Generator {
	return &Generator{
		left:  slices.Clone(left),
		right: slices.Clone(right),
		intn:  rand.IntN,
	}
}

// Generate returns a mnemonic joined with DefaultSeparator, e.g.
// "focused_turing".
func (g *Generator) Generate() (string, error) {
	return g.GenerateWithSeparator(DefaultSeparator)
}

// GenerateWithSeparator draws one word from each bank, independently and
// uniformly, and returns left + sep + right. Any separator is accepted,
// including the empty string. If either bank is empty it returns
// ErrEmptyWordList.
func (g *Generator) GenerateWithSeparator(sep string) (string, error) {
	if len(g.left) == 0 || len(g.right) == 0 {
		return "", ErrEmptyWordList
	}
	return g.left[g.intn(len(g.left))] + sep + g.right[g.intn(len(g.right))], nil
}
