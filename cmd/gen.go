package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/osakanaya/beginningee6-chapter03/internal/gen"
)

const (
	sourceFlag = "source"
	ddlFlag    = "ddl"
	outPkgFlag = "out-pkg"
)

func newGenCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		sourceFlag: &cobraflags.StringFlag{
			Name:  sourceFlag,
			Value: os.Getenv("GOFILE"),
			Usage: "Go file holding the mapped structs (default $GOFILE)",
		},
		ddlFlag: &cobraflags.StringFlag{
			Name:  ddlFlag,
			Value: "",
			Usage: "Print the CREATE TABLE statements of the file, join tables included, for this dialect instead of writing code",
		},
		outPkgFlag: &cobraflags.StringFlag{
			Name:  outPkgFlag,
			Value: "",
			Usage: "Package name of the generated file (default: source package)",
		},
	}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate query code for the mapped structs of a Go file",
		Long: `Generate the query factory, scanner and column extractor of every struct
with a primary key in the source file. The output is written next to the
source as <name>_gen.go. Meant to run from go:generate:

  //go:generate go run github.com/osakanaya/beginningee6-chapter03 gen --source=$GOFILE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd.OutOrStdout(),
				flags[sourceFlag].GetString(),
				flags[ddlFlag].GetString(),
				flags[outPkgFlag].GetString(),
			)
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func generate(w io.Writer, source, ddl, outPkg string) error {
	if source == "" {
		return errors.New("--source is required when GOFILE is not set")
	}

	infos, err := gen.Parse(source)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(infos) == 0 {
		return fmt.Errorf("no struct with a primary key in %s", source)
	}

	if ddl != "" {
		stmts, err := gen.RenderSchema(infos, ddl)
		if err != nil {
			return fmt.Errorf("ddl: %w", err)
		}
		fmt.Fprint(w, stmts)
		return nil
	}

	src, err := gen.RenderFile(infos, gen.RenderOption{DestPkg: outPkg})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	outFile := strings.TrimSuffix(filepath.Base(source), ".go") + "_gen.go"
	outPath := filepath.Join(filepath.Dir(source), outFile)
	if err := os.WriteFile(outPath, src, 0o644); err != nil { //nolint:gosec // generated code should be world-readable
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Fprintf(w, "chapter03: wrote %s\n", outPath)
	return nil
}
