package mnemonic_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mnemonic "github.com/akoken/mnemonic-generator"
)

func TestDefaultBanksProduceKnownWords(t *testing.T) {
	g := mnemonic.New()

	// Collect the words the default banks actually emit. The banks are
	// unexported, so membership is observed through generated output.
	leftSeen := make(map[string]bool)
	rightSeen := make(map[string]bool)
	for i := 0; i < 5000; i++ {
		name, err := g.Generate()
		require.NoError(t, err)

		parts := strings.SplitN(name, "_", 2)
		require.Len(t, parts, 2, "mnemonic %q is not two words", name)
		assert.NotEmpty(t, parts[0])
		assert.NotEmpty(t, parts[1])
		leftSeen[parts[0]] = true
		rightSeen[parts[1]] = true
	}

	for _, adj := range []string{"focused", "eager", "zealous"} {
		assert.True(t, leftSeen[adj], "expected adjective %q in output", adj)
	}
	for _, surname := range []string{"turing", "lovelace", "einstein"} {
		assert.True(t, rightSeen[surname], "expected surname %q in output", surname)
	}

	// With ~100 adjectives and ~230 surnames, 5000 draws should cover a
	// large share of both banks.
	assert.Greater(t, len(leftSeen), 50, "suspiciously low adjective variety")
	assert.Greater(t, len(rightSeen), 100, "suspiciously low surname variety")
}

func TestMinimalPreset(t *testing.T) {
	g := mnemonic.NewMinimal()

	left := map[string]bool{"crazy": false, "amazing": false}
	right := map[string]bool{"steve": false, "alan": false, "einstein": false}

	for i := 0; i < 500; i++ {
		name, err := g.Generate()
		require.NoError(t, err)

		parts := strings.SplitN(name, "_", 2)
		require.Len(t, parts, 2)

		_, okLeft := left[parts[0]]
		_, okRight := right[parts[1]]
		require.True(t, okLeft, "adjective %q not in minimal bank", parts[0])
		require.True(t, okRight, "name %q not in minimal bank", parts[1])
		left[parts[0]] = true
		right[parts[1]] = true
	}

	// Weak uniformity smoke test: 500 draws over a 2x3 bank should hit
	// every word with overwhelming probability.
	for word, seen := range left {
		assert.True(t, seen, "adjective %q never drawn", word)
	}
	for word, seen := range right {
		assert.True(t, seen, "name %q never drawn", word)
	}
}

func TestCustomBankCoverage(t *testing.T) {
	left := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	right := []string{"one", "two", "three", "four"}
	g := mnemonic.NewWithWords(left, right)

	leftSeen := make(map[string]bool)
	rightSeen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		name, err := g.Generate()
		require.NoError(t, err)

		parts := strings.SplitN(name, "_", 2)
		require.Len(t, parts, 2)
		leftSeen[parts[0]] = true
		rightSeen[parts[1]] = true
	}

	assert.Len(t, leftSeen, len(left), "not every left word was drawn")
	assert.Len(t, rightSeen, len(right), "not every right word was drawn")
}
