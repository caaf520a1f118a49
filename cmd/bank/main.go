// The bank command builds the sample bank database (branch, customer,
// deposit and loan relations), issues the reference relational algebra
// queries against it and renders every result table. A YAML catalog can
// be supplied instead of the built-in dataset.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"minirel/internal/relation"
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var fixtures string

	cmd := &cobra.Command{
		Use:           "bank",
		Short:         "Build and query the sample bank database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if fixtures != "" {
				tables, err := loadCatalog(fixtures)
				if err != nil {
					return err
				}
				for _, t := range tables {
					relation.Render(cmd.OutOrStdout(), t)
				}
				return nil
			}
			return runDemo(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&fixtures, "fixtures", "",
		"YAML catalog of tables to build and show instead of the built-in dataset")
	return cmd
}
