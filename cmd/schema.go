package cmd

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/osakanaya/beginningee6-chapter03/internal/database"
	"github.com/osakanaya/beginningee6-chapter03/schema"
)

func newSchemaCommand() *cobra.Command {
	flags := newDatabaseFlags()

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the DDL of the examples for the configured dialect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			names := examples(flags)
			if names == nil {
				names = schema.Examples()
			}
			for _, ex := range names {
				ddl, err := schema.DDL(cfg.Dialect, ex)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "-- %s\n%s\n", ex, ddl)
			}
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	cmd.AddCommand(newSchemaApplyCommand())
	return cmd
}

func newSchemaApplyCommand() *cobra.Command {
	flags := newDatabaseFlags()

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Drop and recreate the tables of the examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			db, err := database.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := schema.Create(ctx, db, examples(flags)...); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chapter03: schema applied on %s\n", cfg.Dialect)
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
