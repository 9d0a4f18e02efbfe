// Package mnemonic generates human-memorable two-word labels such as
// "focused_turing" by pairing a random adjective with the surname of a
// notable scientist or engineer. The labels are handy wherever a readable
// identifier beats a hex blob: container instances, sessions, test runs,
// scratch workspaces.
//
// A mnemonic is produced by one synchronous call: pick a word from the left
// bank, pick a word from the right bank, join them with a separator. There is
// no memory between calls and no uniqueness guarantee; with the default banks
// the space is roughly 25k combinations, so callers that need collision-free
// names should add their own suffix or bookkeeping.
//
// # Usage
//
// Generate with the built-in banks and the default "_" separator:
//
//	g := mnemonic.New()
//	name, err := g.Generate() // e.g. "eager_lovelace"
//
// Custom separators and custom word banks are supported:
//
//	name, err = g.GenerateWithSeparator("-") // e.g. "eager-lovelace"
//
//	g = mnemonic.NewWithWords([]string{"amazing", "legend"}, []string{"jordan", "bird"})
//	name, err = g.Generate() // e.g. "legend_jordan"
//
// Custom lists are stored as given, so an empty list is only reported when
// generation is attempted: both Generate and GenerateWithSeparator return
// ErrEmptyWordList if either bank is empty. That is the package's only error.
//
// Randomness comes from math/rand/v2 and is not cryptographically secure.
// Generators are immutable after construction and safe for concurrent use.
package mnemonic
