package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the effective scoring tables",
	Long:  "Prints the scoring tables as YAML. With --file, the file is validated and printed instead of the built-in tables.",
	RunE:  runTables,
}

var tablesFile string

func init() {
	tablesCmd.Flags().StringVarP(&tablesFile, "file", "f", "", "Path to a scoring tables YAML file to validate and print")
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, _ []string) error {
	tables, err := resolveTables(tablesFile)
	if err != nil {
		return err
	}

	data, err := tables.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode scoring tables: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
