/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

type edtdParams struct {
	File    string
	Name    string
	Grammar string
	Output  string
	Strict  bool
}

// parseResult is what parse command prints
type parseResult struct {
	Grammar string
	Value   any
	Rest    string `json:",omitempty"`
}
