package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/recordkit/pkg/export"
	"github.com/dmitrymomot/recordkit/pkg/schema"
)

func newExportCmd(a *app) *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the JSON Schema of a schema file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := schema.LoadYAMLFile(schemaPath)
			if err != nil {
				return err
			}
			data, err := export.Marshal(s)
			if err != nil {
				return err
			}
			a.log.Debug("schema exported", logSchema(s))
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema YAML file")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
