/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package edtd

import (
	"github.com/voedger/edtd/pkg/ebml"
	"github.com/voedger/edtd/pkg/parsec"
)

// elementID is a hex encoded ID, marker bit included
var elementID = parsec.Named(GrammarElementID, parsec.TryMap(parsec.TakeWhile(isHexDigit), func(s string) (ebml.ID, error) {
	v, err := parseUnsigned[uint32](s, 16, 32)
	if err != nil {
		return ebml.ID{}, err
	}
	return ebml.IDFromEncoded(v)
}))
