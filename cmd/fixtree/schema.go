/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * schema subcommand
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSchemaCmd() *cobra.Command {
	var schemaPath string
	var verbose bool

	// A standalone pflag.FlagSet merged into the cobra command's flags
	// via AddFlagSet, rather than declared on cmd.Flags() directly.
	fs := pflag.NewFlagSet("schema", pflag.ContinueOnError)
	fs.StringVar(&schemaPath, "schema", "", "override the schema file positional argument")
	fs.BoolVarP(&verbose, "verbose", "v", false, "also list every message name and msgType")

	cmd := &cobra.Command{
		Use:   "schema <file>",
		Short: "Load a FIX Orchestra schema and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if schemaPath != "" {
				path = schemaPath
			}

			repo, err := loadRepository(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if v := repo.Version(); v != "" {
				fmt.Fprintf(out, "version:    %s\n", v)
			}
			fmt.Fprintf(out, "messages:   %d\n", repo.MessageCount())
			fmt.Fprintf(out, "groups:     %d\n", repo.GroupCount())
			fmt.Fprintf(out, "fields:     %d\n", repo.FieldCount())
			fmt.Fprintf(out, "components: %d\n", repo.ComponentCount())

			if verbose {
				for _, spec := range repo.MessageSpecs() {
					fmt.Fprintf(out, "  %-4s %s (%s)\n", spec.MsgType, spec.Name, spec.Category)
				}
			}
			return nil
		},
	}

	cmd.Flags().AddFlagSet(fs)

	return cmd
}
