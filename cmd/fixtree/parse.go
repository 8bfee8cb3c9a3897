/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * parse subcommand
 */

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixorch/fixtree"
	"github.com/fixorch/fixtree/internal/dump"
	"github.com/fixorch/fixtree/schema"
)

func newParseCmd() *cobra.Command {
	var (
		schemaPath string
		format     string
		arrays     bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse FIX tag-value messages and print each as JSON or text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if schemaPath == "" {
				schemaPath = cfg.Schema.Path
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.Output.Format
			}
			if !cmd.Flags().Changed("arrays") {
				arrays = cfg.Output.Arrays
			}
			if schemaPath == "" {
				return fmt.Errorf("parse: no schema file given (use --schema or schema.path in config)")
			}

			repo, err := loadRepository(schemaPath)
			if err != nil {
				return err
			}

			return parseMessages(cmd.OutOrStdout(), args[0], repo, format, arrays)
		},
	}

	cmd.Flags().StringVar(&schemaPath, "schema", "", "FIX Orchestra schema file")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or text")
	cmd.Flags().BoolVar(&arrays, "arrays", false, "collapse duplicate scalar tags into JSON arrays (see ToJSONArrays)")

	return cmd
}

func loadRepository(path string) (*schema.Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse: opening schema %s: %w", path, err)
	}
	defer f.Close()

	repo, err := schema.Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse: loading schema %s: %w", path, err)
	}
	return repo, nil
}

// parseMessages reads inputPath line by line, treating each non-empty
// line as one SOH-delimited FIX message, and renders each in turn.
func parseMessages(out io.Writer, inputPath string, repo *schema.Repository, format string, arrays bool) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("parse: opening input %s: %w", inputPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		msg := fixtree.Parse(line, repo)
		if msg == nil {
			fmt.Fprintln(os.Stderr, "parse: no MsgType field found, skipping line")
			continue
		}

		if err := renderMessage(out, msg, repo, format, arrays); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func renderMessage(out io.Writer, msg *fixtree.Message, repo *schema.Repository, format string, arrays bool) error {
	switch format {
	case "text":
		text, err := dump.Render(msg, repo)
		if err != nil {
			return fmt.Errorf("parse: rendering text dump: %w", err)
		}
		fmt.Fprint(out, text)
	default:
		var doc []byte
		var err error
		if arrays {
			doc, err = msg.ToJSONArrays()
		} else {
			doc, err = msg.ToJSON()
		}
		if err != nil {
			return fmt.Errorf("parse: rendering JSON: %w", err)
		}
		fmt.Fprintln(out, string(doc))
	}
	return nil
}
