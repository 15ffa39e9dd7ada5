package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/py2toml/cli/internal/config"
	"github.com/py2toml/cli/internal/convert"
	"github.com/py2toml/cli/internal/manifest"
	"github.com/py2toml/cli/internal/output"
)

// usageLine is printed on argument-count mismatch, then the process exits 1.
const usageLine = "usage: py2toml <path_to_setup_py> <path_to_pyproject_toml>"

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Root-command flags
	readmeFlag string
	pythonFlag string

	// Resolved configuration (loaded during PersistentPreRunE)
	cfg *config.Config
)

// NewRootCmd creates the root command. The root command itself performs the
// conversion; inspect and version are subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "py2toml <setup.py> <pyproject.toml>",
		Short: "Convert a setup.py file to a pyproject.toml file",
		Long: `py2toml converts legacy setup.py packaging metadata into a declarative
pyproject.toml manifest (Poetry layout).

It reads the first setup(...) call in the source file, normalizes its keyword
arguments, and writes the rendered manifest to the destination path,
overwriting any existing content. Unrecognized or computed argument values are
skipped with a diagnostic rather than failing the conversion.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &ExitError{
					Code: ExitGeneralError,
					Err:  errors.New(usageLine),
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], args[1])
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: PY2TOML_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Conversion flags
	rootCmd.Flags().StringVar(&readmeFlag, "readme", "", "Readme filename for the manifest (default from config)")
	rootCmd.Flags().StringVar(&pythonFlag, "python", "", "Python constraint when the source has no python_requires (default from config)")

	// Add subcommands
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		if configFlag != "" {
			return fmt.Errorf("loading config: %w", err)
		}
		// a broken default config should not block conversion
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}
	cfg = loaded

	timestamps := cfg.Timestamps()
	if cmd.Flags().Changed("timestamps") {
		timestamps = timestampsFlag
	}
	output.SetupLogging(verboseFlag, timestamps)

	return nil
}

// manifestOptions resolves renderer options from flags and config.
func manifestOptions() manifest.Options {
	opts := manifest.Options{
		Readme:           cfg.Readme,
		PythonConstraint: cfg.PythonConstraint,
	}
	if readmeFlag != "" {
		opts.Readme = readmeFlag
	}
	if pythonFlag != "" {
		opts.PythonConstraint = pythonFlag
	}
	return opts
}

// runConvert executes the conversion pipeline and reports the outcome.
func runConvert(sourcePath, destPath string) error {
	result, err := convert.Run(convert.Options{
		SourcePath: sourcePath,
		DestPath:   destPath,
		Manifest:   manifestOptions(),
	})
	if err != nil {
		return err
	}

	// individual warnings were already logged during extraction
	if len(result.Warnings) > 0 {
		output.Info("conversion finished with warnings", "count", len(result.Warnings))
	}

	output.Println(output.Summary(destPath))
	return nil
}
