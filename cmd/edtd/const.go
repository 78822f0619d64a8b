/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "github.com/voedger/edtd/pkg/edtd"

const (
	outputJSON = "json"
	outputText = "text"

	defaultGrammar = edtd.GrammarTypeDeclaration
	stdinName      = "<stdin>"
)
