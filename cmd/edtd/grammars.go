/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/voedger/edtd/pkg/edtd"
)

func newGrammarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "list grammars accepted by parse command",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printGrammars(cmd.OutOrStdout())
		},
	}
}

func printGrammars(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, g := range edtd.Grammars() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", g.Name, g.Description); err != nil {
			return err
		}
	}
	return w.Flush()
}
