package mnemonic

import "errors"

// ErrEmptyWordList is returned when generation is attempted on a Generator
// whose left or right word bank has no entries.
var ErrEmptyWordList = errors.New("mnemonic: word list is empty")
