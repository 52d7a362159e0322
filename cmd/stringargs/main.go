// Copyright (C) 2026 Lukas Jankowski. All Rights Reserved.

// Program stringargs decodes typed string tokens and prints the decoded
// values, one per line, as JSON or YAML.
//
// Example:
//
//	stringargs 'a:[key=s:value,i:42]'
//	{"0":42,"key":"value"}
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/LukasJankowski/stringargs"
	"github.com/LukasJankowski/stringargs/ast"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		msg := fmt.Sprintf("Error: %v", err)
		if isatty.IsTerminal(os.Stderr.Fd()) {
			msg = color.RedString("%s", msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	syn := stringargs.DefaultSyntax
	var output string

	cmd := &cobra.Command{
		Use:   "stringargs [flags] token...",
		Short: "Decode typed string tokens",
		Long: `Decode typed string tokens into values.

Each argument is a token of the form <tag>:<value>, where the tag is one
of s, i, f, b, n, a, o. An argument without a type separator is a plain
string. Compound values use bracketed literals, e.g. a:[s:x,key=i:42].`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ast.NewDecoder(syn)
			if err != nil {
				return err
			}
			for _, token := range args {
				v, err := d.Decode(token)
				if err != nil {
					return fmt.Errorf("decode %q: %w", token, err)
				}
				text, err := render(ast.ToGo(v), output)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&syn.Separator, "sep", syn.Separator, "Compound element separator")
	cmd.Flags().StringVar(&syn.Assign, "assign", syn.Assign, "Key assignment token")
	cmd.Flags().StringVar(&syn.TypeSep, "tsep", syn.TypeSep, "Type separator")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json or yaml)")
	return cmd
}

func render(v any, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}
