package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todolist/internal/config"
	"github.com/sandeepkv93/todolist/internal/console"
	"github.com/sandeepkv93/todolist/internal/logging"
	"github.com/sandeepkv93/todolist/internal/session"
	"github.com/sandeepkv93/todolist/internal/storage"
	"github.com/sandeepkv93/todolist/internal/store"
	"github.com/sandeepkv93/todolist/internal/update"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "todo failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flags      config.RuntimeConfig
	)
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Menu-driven to-do list backed by a plain text file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, flags)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&flags.TasksFile, "file", "", "tasks file (default "+config.DefaultTasksFile+")")
	cmd.Flags().StringVar(&flags.UI, "ui", "", "front end: console or tui")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "", "diagnostic log level")
	cmd.Flags().StringVar(&flags.LogFile, "log-file", "", "write diagnostic logs to this file")
	return cmd
}

// resolveConfig layers defaults, the config file, TODO_* variables and flags,
// later sources winning.
func resolveConfig(configPath string, flags config.RuntimeConfig) (config.RuntimeConfig, error) {
	cfg := config.DefaultRuntimeConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath, cfg); err != nil {
			return cfg, err
		}
	}
	cfg = config.RuntimeConfigFromEnv(cfg)
	cfg = config.Merge(cfg, flags)
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, cfg config.RuntimeConfig) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	repo, err := storage.NewFileRepository(cfg.TasksFile)
	if err != nil {
		return err
	}
	logger.Info("starting", zap.String("ui", cfg.UI), zap.String("tasks_file", repo.Path()))

	ctx := cmd.Context()
	sess := session.New(repo, store.New(), logger)
	if cfg.UI == config.UITUI {
		program := tea.NewProgram(update.NewModel(ctx, sess), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := program.Run()
		return err
	}
	return console.Run(ctx, sess, cmd.InOrStdin(), cmd.OutOrStdout())
}
