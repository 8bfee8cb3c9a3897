/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Command fixtree loads a FIX Orchestra schema and decodes tag-value
 * FIX messages against it.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fixorch/fixtree/internal/config"
)

var cfgFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fixtree",
		Short:         "Decode FIX tag-value messages against a FIX Orchestra schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to fixtree.toml (default: search FIXTREE_CONFIG, then ./fixtree.toml)")

	root.AddCommand(newParseCmd())
	root.AddCommand(newSchemaCmd())

	return root
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}
