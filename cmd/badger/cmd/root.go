// Package cmd implements the badger CLI commands.
//
// The root command resolves badger.yaml and configures logging before
// dispatching to a subcommand (render, ops, demo, version).
package cmd

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-drift/badger/cmd/badger/internal/config"
	"github.com/go-drift/badger/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	projectDir string
	verbose    bool
	logJSON    bool

	resolved *config.Resolved
	log      = logrus.WithField("component", "cli")
)

var rootCmd = &cobra.Command{
	Use:   "badger",
	Short: "Render and inspect badge overlays",
	Long: `Badger draws notification badges over view trees.

Styles are read from badger.yaml in the project directory. BADGER_CONFIG
names a different file and BADGER_DENSITY overrides the pixel density.
Both may be set in a .env file next to badger.yaml.

Use "badger <command> --help" for more information about a command.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		if cmd.Name() == "version" {
			return nil
		}
		loadEnv(projectDir)
		var err error
		resolved, err = config.Resolve(projectDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		log.WithFields(logrus.Fields{
			"project": resolved.ProjectName,
			"config":  resolved.Path,
			"density": resolved.Density.Density,
			"styles":  len(resolved.Styles),
		}).Debug("config resolved")
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "project directory containing badger.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")
}

// RegisterCommand adds a subcommand to the CLI.
func RegisterCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func setupLogging() {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)
	if logJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	h := errors.NewLogHandler(logger)
	h.Verbose = verbose
	errors.SetHandler(h)
}

// loadEnv reads dir/.env into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnv(dir string) {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return
		}
		log.WithError(err).WithField("path", path).Warn("ignoring unreadable .env file")
		return
	}
	log.WithField("path", path).Debug("loaded .env")
}
