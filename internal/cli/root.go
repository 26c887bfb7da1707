package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cybergodev/jsonutils"
)

// app carries what every subcommand needs once the root flags are parsed
type app struct {
	configPath string
	debug      bool

	logger   *zap.Logger
	renderer *jsonutils.Renderer
	config   *jsonutils.Config
}

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "jsonutils",
		Short:        "Classify values and render them as JSON text",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(
		classifyCmd(a),
		renderCmd(a),
		quoteCmd(a),
		numberCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	config := zap.NewProductionConfig()
	level := slog.LevelInfo
	if a.debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		level = slog.LevelDebug
	}
	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg := jsonutils.DefaultConfig()
	if a.configPath != "" {
		cfg, err = jsonutils.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.logger.Debug("Configuration loaded", zap.String("path", a.configPath))
	}
	cfg.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	r, err := jsonutils.NewRenderer(cfg)
	if err != nil {
		return err
	}
	a.config = cfg
	a.renderer = r
	return nil
}
