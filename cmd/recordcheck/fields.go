package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordkit/pkg/logger"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

func newFieldsCmd(a *app) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields of a schema and their checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := schema.LoadYAMLFile(schemaPath)
			if err != nil {
				return err
			}
			a.log.Debug("schema loaded", logSchema(s))

			out := a.output(cmd)
			width := 0
			for _, f := range s.Fields() {
				width = max(width, len(f))
			}
			for _, b := range s.Bindings() {
				name := out.String(fmt.Sprintf("%-*s", width, b.Field)).Bold()
				fmt.Fprintf(out, "%s  %s\n", name, b.Chain.String())
			}
			if s.AllowsExtensions() {
				fmt.Fprintln(out, out.String("extension fields allowed").Faint())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema YAML file")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}

func logSchema(s *schema.Schema) slog.Attr {
	return logger.Group("schema",
		slog.String("name", s.Name()),
		slog.Int("fields", s.Len()),
	)
}
