// Package cmd holds the chapter03 command tree.
package cmd

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/osakanaya/beginningee6-chapter03/internal/config"
)

var version = "dev"

// Database flags shared by the schema and run commands.
const (
	configFlag   = "config"
	dialectFlag  = "dialect"
	driverFlag   = "driver"
	dsnFlag      = "dsn"
	logLevelFlag = "log-level"
	exampleFlag  = "example"
)

// NewRootCommand builds the chapter03 command with its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "chapter03",
		Short: "Object-relational mapping pattern catalogue",
		Long: `chapter03 maps fourteen example entity models onto SQLite, PostgreSQL
or MySQL and runs a scenario for each mapping pattern.

Examples:
  chapter03 gen --source model.go                 # write model_gen.go
  chapter03 schema --dialect postgres             # print the DDL
  chapter03 schema apply --dsn file:demo.db       # create the tables
  chapter03 run --example ex07                    # run one scenario`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenCommand())
	root.AddCommand(newSchemaCommand())
	root.AddCommand(newRunCommand())
	return root
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func newDatabaseFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		configFlag: &cobraflags.StringFlag{
			Name:  configFlag,
			Value: "",
			Usage: "Config file (default ./chapter03.yaml when present)",
		},
		dialectFlag: &cobraflags.StringFlag{
			Name:  dialectFlag,
			Value: "",
			Usage: "Database dialect (sqlite, postgres, mysql)",
		},
		driverFlag: &cobraflags.StringFlag{
			Name:  driverFlag,
			Value: "",
			Usage: "PostgreSQL driver (pgx, pq)",
		},
		dsnFlag: &cobraflags.StringFlag{
			Name:  dsnFlag,
			Value: "",
			Usage: "Data source name; empty selects the dialect default",
		},
		logLevelFlag: &cobraflags.StringFlag{
			Name:  logLevelFlag,
			Value: "",
			Usage: "Log level (debug, info, warn, error)",
		},
		exampleFlag: &cobraflags.StringFlag{
			Name:  exampleFlag,
			Value: "",
			Usage: "Limit to one example, e.g. ex07. Empty means all",
		},
	}
}

// viperKeys maps flag names to configuration keys.
var viperKeys = map[string]string{
	dialectFlag:  "dialect",
	driverFlag:   "driver",
	dsnFlag:      "dsn",
	logLevelFlag: "log_level",
}

// loadConfig resolves defaults, the config file, CHAPTER03_* variables and
// the flags set on cmd, in increasing precedence.
func loadConfig(cmd *cobra.Command, flags map[string]cobraflags.Flag) (config.Config, error) {
	v := config.New()
	if path := flags[configFlag].GetString(); path != "" {
		v.SetConfigFile(path)
	}
	for name, key := range viperKeys {
		if cmd.Flags().Changed(name) {
			v.Set(key, flags[name].GetString())
		}
	}
	return config.Load(v)
}

func examples(flags map[string]cobraflags.Flag) []string {
	if ex := flags[exampleFlag].GetString(); ex != "" {
		return []string{ex}
	}
	return nil
}
