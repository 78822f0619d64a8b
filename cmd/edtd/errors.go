/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"
)

var errUnknownGrammar = errors.New("unknown grammar")

var errUnknownOutput = errors.New("unknown output format")

var errUnparsedInput = errors.New("input is not parsed completely")

func errUnparsed(rest string) error {
	const maxShown = 32
	if len(rest) > maxShown {
		rest = rest[:maxShown] + "..."
	}
	return fmt.Errorf("%w: %q", errUnparsedInput, rest)
}
