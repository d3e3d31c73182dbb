package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/metarecord/internal/cli"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the fields declared by a schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaPath, _ := cmd.Flags().GetString("schema")
		return cli.RunFields(cmd.OutOrStdout(), schemaPath)
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)

	fieldsCmd.Flags().StringP("schema", "s", "schema.yaml", "Schema file (YAML or JSON)")
}
