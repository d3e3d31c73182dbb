package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/metarecord/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check [data files...]",
	Short: "Build records from data files and print them as JSON lines",
	Long: `Each data file holds one mapping or a list of mappings. Every mapping becomes a
record; declared fields missing from the input get their default value, and
fields the schema does not define are dropped with a warning (or rejected with --strict).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}
		schemaPath, _ := cmd.Flags().GetString("schema")
		strict, _ := cmd.Flags().GetBool("strict")
		stats, _ := cmd.Flags().GetBool("stats")

		return cli.RunCheck(cmd.OutOrStdout(), cli.CheckOptions{
			SchemaPath: schemaPath,
			DataPaths:  args,
			Strict:     strict,
			Stats:      stats,
			Logger:     logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("schema", "s", "schema.yaml", "Schema file (YAML or JSON)")
	checkCmd.Flags().Bool("strict", false, "Fail on fields the schema does not define")
	checkCmd.Flags().Bool("stats", false, "Print record counters after processing")
}
