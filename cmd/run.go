package cmd

import (
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/osakanaya/beginningee6-chapter03/catalogue"
	"github.com/osakanaya/beginningee6-chapter03/internal/database"
	"github.com/osakanaya/beginningee6-chapter03/internal/logging"
	"github.com/osakanaya/beginningee6-chapter03/internal/telemetry"
	"github.com/osakanaya/beginningee6-chapter03/orm"
	"github.com/osakanaya/beginningee6-chapter03/schema"
)

func newRunCommand() *cobra.Command {
	flags := newDatabaseFlags()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Recreate the schema and run the example scenarios",
		Long: `Recreate the tables of the selected examples, run each scenario and print
the number of statements executed per SQL verb. Statements are logged at
debug level.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			var selected []catalogue.Example
			if name := flags[exampleFlag].GetString(); name != "" {
				e, err := catalogue.Lookup(name)
				if err != nil {
					return err
				}
				selected = []catalogue.Example{e}
			} else {
				selected = catalogue.All()
			}

			ctx := cmd.Context()
			raw, err := database.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer raw.Close()

			reg := prometheus.NewRegistry()
			stmts, err := telemetry.NewStatements(reg)
			if err != nil {
				return err
			}
			db := raw.Debug(orm.Loggers(logging.QueryLogger{L: log}, stmts))

			if err := schema.Create(ctx, db, examples(flags)...); err != nil {
				return err
			}
			for _, e := range selected {
				log.Info("running example", zap.String("example", e.Name), zap.String("pattern", e.Pattern))
				if err := e.Run(ctx, db, log.Named(e.Name)); err != nil {
					return fmt.Errorf("%s: %w", e.Name, err)
				}
			}
			return telemetry.Report(cmd.OutOrStdout(), reg)
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
