package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/devkit/internal/config"
	"github.com/zoobzio/devkit/internal/logging"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:    config.Default(),
		logger: logging.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:   "devkit",
		Short: "Developer text and data transformation tools",
		Long: `devkit converts Base64, colors, identifier cases, URI components and
JSON documents, evaluates regular expressions, computes digests and
generates tokens and UUIDs.

Input is taken from the arguments, or from stdin when none are given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to devkit.toml (default $DEVKIT_CONFIG or ./devkit.toml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newBase64Cmd(a),
		newColorCmd(a),
		newCaseCmd(a),
		newRegexCmd(a),
		newHashCmd(a),
		newTokenCmd(a),
		newUUIDCmd(a),
		newURLCmd(a),
		newJSONCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads the config and builds the logger. Flags override file values.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	levelName := cfg.Log.Level
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	a.logger = logging.New(cmd.ErrOrStderr(), level)
	a.logger.Debug("config loaded", "path", a.configPath, "command", cmd.CommandPath())
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// readInput joins args with spaces, or reads stdin when there are none.
// A single trailing newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// readBytes reads path, or stdin when path is "-".
func readBytes(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// done logs a finished operation at debug level.
func (a *app) done(op string, in, out int) {
	a.logger.Debug("operation finished", "op", op, "input_size", in, "output_size", out)
}
