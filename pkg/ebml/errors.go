/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package ebml

import (
	"errors"
	"fmt"
)

var ErrInvalidIDError = errors.New("invalid element ID")

func ErrInvalidID(msg string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidIDError, fmt.Sprintf(msg, args...))
}
