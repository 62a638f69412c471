package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fireworks-show/internal/config"
	"fireworks-show/internal/logging"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-10-19"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	ConfigDir string
	Logger    zerolog.Logger
}

// NewRootCmd creates the root command for the CLI. Configuration and the
// logger are loaded before any subcommand runs.
func NewRootCmd() *cobra.Command {
	app := &App{
		Config: config.Default(),
		Logger: zerolog.Nop(),
	}

	rootCmd := &cobra.Command{
		Use:   "fireworks",
		Short: "Replay fireworks show scenarios",
		Long: `fireworks replays scenario files against a town of fireworks shows.

It reports how many fireworks are up, capacity warnings and the billed cost
of every show.

Use 'fireworks init show.toml' to write an example scenario.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/fireworks)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newInitCmd(app))
	rootCmd.AddCommand(newRunCmd(app))
	rootCmd.AddCommand(newStatusCmd(app))

	return rootCmd
}

func (app *App) load(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString("config")
	if dir == "" {
		dir = config.DefaultConfigDir()
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	app.Config = cfg
	app.ConfigDir = dir

	logCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
	}
	app.Logger = logging.NewLoggerWithConfig(logCfg)

	if cfg.TemplateCreated != "" {
		app.Logger.Info().Str("path", cfg.TemplateCreated).Msg("Created config template")
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			}
			output.Printf("fireworks v%s\n", Version)
			output.Dim("Build date: %s", BuildDate)
			return nil
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			NewOutput(cmd).Println(app.ConfigDir)
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Logging")
	output.Printf("  level:            %s\n", cfg.Logging.Level)
	output.Printf("  console:          %t\n", cfg.Logging.Console)
	output.Printf("  file:             %t (%s)\n", cfg.Logging.File, cfg.Logging.FilePath)
	output.Bold("Launch defaults")
	output.Printf("  duration:         %d\n", cfg.Launch.DefaultDuration)
	output.Printf("  cost:             %.2f\n", cfg.Launch.DefaultCost)
	vendor := cfg.Launch.DefaultVendor
	if vendor == "" {
		vendor = "(unknown)"
	}
	output.Printf("  vendor:           %s\n", vendor)
	output.Bold("Show defaults")
	output.Printf("  capacity:         %d\n", cfg.Show.DefaultCapacity)
}
