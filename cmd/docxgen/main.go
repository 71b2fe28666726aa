// Command docxgen builds Word documents from YAML or TOML blueprints.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen"
)

var (
	// Version is set via -ldflags
	Version = "dev"
	// Commit is set via -ldflags
	Commit = "unknown"
)

type rootFlags struct {
	configPath string
	outputDir  string
	logLevel   string
	store      bool
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "docxgen",
		Short: "Build .docx documents from blueprints",
		Long: `docxgen turns YAML or TOML blueprints into WordprocessingML packages.

Configuration comes from --config, then DOCXGEN_* environment variables,
then flags.

Examples:
  docxgen build claims.yaml
  docxgen build --out dist 'reports/**/*.toml'
  docxgen watch reports
  docxgen inspect dist/claims.docx`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return flags.apply(cmd)
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().StringVarP(&flags.outputDir, "out", "o", "", "output directory")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	root.PersistentFlags().BoolVar(&flags.store, "store", false, "write package entries uncompressed")

	root.AddCommand(newBuildCommand())
	root.AddCommand(newWatchCommand())
	root.AddCommand(newInspectCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "docxgen", versionString())
		},
	})
	return root
}

// apply resolves the configuration and installs it with a logger on stderr
func (f *rootFlags) apply(cmd *cobra.Command) error {
	var (
		config *docxgen.Config
		err    error
	)
	if f.configPath != "" {
		if config, err = docxgen.LoadConfig(f.configPath); err != nil {
			return err
		}
	} else {
		config = docxgen.ConfigFromEnvironment()
	}

	if f.outputDir != "" {
		config.OutputDir = f.outputDir
	}
	if f.logLevel != "" {
		config.LogLevel = strings.ToLower(f.logLevel)
	}
	if f.store {
		config.Compression = docxgen.CompressionStore
	}
	if err := config.Validate(); err != nil {
		return err
	}

	docxgen.SetLogger(docxgen.NewLogger(cmd.ErrOrStderr(), config.LogLevel))
	docxgen.SetGlobalConfig(config)
	return nil
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
