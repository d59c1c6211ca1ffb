package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"order-mapper/internal/diagnostic"
	"order-mapper/internal/mapping"
	"order-mapper/internal/match"
	"order-mapper/internal/schema"
)

func newDetailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "detail <file>",
		Short: "Assemble an order detail from a JSON or YAML record",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := readRecord(args[0])
			if err != nil {
				return err
			}

			detail, err := a.assembler().OrderDetail(raw)
			if err != nil {
				return err
			}

			return render(a.stdout, a.cfg.Output, detail)
		},
	}
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file>",
		Short: "Assemble an order-history summary from a JSON or YAML record",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := readRecord(args[0])
			if err != nil {
				return err
			}

			summary, err := a.assembler().OrderSummary(raw)
			if err != nil {
				return err
			}

			return render(a.stdout, a.cfg.Output, summary)
		},
	}
}

func newSchemaCmd(a *app) *cobra.Command {
	var writePath string

	cmd := &cobra.Command{
		Use:   "schema [table...]",
		Short: "Print schema tables as YAML",
		RunE: func(_ *cobra.Command, args []string) error {
			tables, err := selectTables(args)
			if err != nil {
				return err
			}

			if writePath != "" {
				if err := mapping.WriteTables(writePath, tables...); err != nil {
					return err
				}

				a.logger.Info("schema tables written", "path", writePath, "tables", len(tables))

				return nil
			}

			data, err := mapping.MarshalTables(tables...)
			if err != nil {
				return err
			}

			_, err = a.stdout.Write(data)

			return err
		},
	}

	cmd.Flags().StringVar(&writePath, "write", "", "write the tables to this file instead of stdout")

	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var tablePath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check schema tables for structural mistakes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			tables := schema.All()

			if tablePath != "" {
				tf, err := mapping.LoadTables(tablePath)
				if err != nil {
					return err
				}

				tables = tf.Tables
			}

			diags := mapping.ValidateAll(tables)
			printDiagnostics(a, diags)

			if err := diags.Error(); err != nil {
				return fmt.Errorf("schema validation failed: %w", err)
			}

			fmt.Fprintf(a.stdout, "%d tables ok\n", len(tables))

			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "file", "", "validate a YAML table file instead of the built-in tables")

	return cmd
}

func selectTables(names []string) ([]mapping.Table, error) {
	if len(names) == 0 {
		return schema.All(), nil
	}

	tables := make([]mapping.Table, 0, len(names))

	for _, name := range names {
		t, ok := schema.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown schema table %q%s", name, match.Hint(name, tableNames()))
		}

		tables = append(tables, t)
	}

	return tables, nil
}

func tableNames() []string {
	var names []string
	for _, t := range schema.All() {
		names = append(names, t.Name)
	}

	return names
}

func printDiagnostics(a *app, diags *diagnostic.Diagnostics) {
	for _, table := range diags.Tables() {
		label := table
		if label == "" {
			label = "(unnamed table)"
		}

		fmt.Fprintf(a.stdout, "%s:\n", label)

		for _, d := range diags.ForTable(table) {
			fmt.Fprintf(a.stdout, "  %-7s %s\n", d.Severity, d.Detail())
		}
	}

	fmt.Fprintln(a.stdout, diags.Summary())
}

// readRecord decodes a raw order record. JSON input is read through the
// YAML decoder, which accepts it as a subset.
func readRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse record file %s: %w", path, err)
	}

	return raw, nil
}
