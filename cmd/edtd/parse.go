/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/edtd/pkg/edtd"
)

func newParseCmd() *cobra.Command {
	params := edtdParams{}
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "parse one construct and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(params, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return parse(params, src, cmd.OutOrStdout())
		},
	}
	initParseFlags(cmd, &params)
	return cmd
}

func initParseFlags(cmd *cobra.Command, params *edtdParams) {
	cmd.SilenceErrors = true
	cmd.Flags().StringVarP(&params.File, "file", "f", "", "File to parse, standard input if empty")
	cmd.Flags().StringVarP(&params.Name, "name", "n", "", "File name to use in error positions")
	cmd.Flags().StringVarP(&params.Grammar, "grammar", "g", defaultGrammar, "Grammar to apply, see grammars command")
	cmd.Flags().StringVarP(&params.Output, "output", "o", outputJSON, "Output format: json or text")
	cmd.Flags().BoolVar(&params.Strict, "strict", false, "Fail if anything but whitespace and comments follows the parsed construct")
}

func readSource(params edtdParams, stdin io.Reader) (string, error) {
	if params.File == "" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(params.File)
	return string(b), err
}

func fileName(params edtdParams) string {
	switch {
	case params.Name != "":
		return params.Name
	case params.File != "":
		return params.File
	}
	return stdinName
}

func parse(params edtdParams, src string, out io.Writer) error {
	g, ok := edtd.GrammarByName(params.Grammar)
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownGrammar, params.Grammar)
	}
	if params.Output != outputJSON && params.Output != outputText {
		return fmt.Errorf("%w: %s", errUnknownOutput, params.Output)
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("applying %s to %s, %d byte(s)", g.Name, fileName(params), len(src)))
	}

	v, rest, err := g.Parse(src)
	if err != nil {
		var pe *edtd.ParseError
		if errors.As(err, &pe) {
			pe.Pos.Filename = fileName(params)
		}
		return err
	}
	if params.Strict {
		if tail := edtd.SkipSeparator(rest); tail != "" {
			return errUnparsed(tail)
		}
	}

	res := parseResult{Grammar: g.Name, Value: v, Rest: rest}
	if params.Output == outputText {
		_, err = fmt.Fprintf(out, "%s: %+v\n", res.Grammar, res.Value)
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
