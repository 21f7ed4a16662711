package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/growmate/internal/app"
	"github.com/zhubert/growmate/internal/auth"
	"github.com/zhubert/growmate/internal/config"
	"github.com/zhubert/growmate/internal/logger"
	"github.com/zhubert/growmate/internal/plant"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	version, commit, date string

	loader = config.NewLoader()
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "growmate",
	Short: "Keep track of your houseplants from the terminal",
	Long: `GrowMate is a TUI for looking after houseplants. Log in, browse your
plants, record growth and watering, and read care notes for each plant type.

Plants live in memory for the session. Start from the built-in examples or
from a YAML seed file with --seed.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	flags.BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	flags.StringVar(&configPath, "config", "", "Config file (default ~/.growmate/config.yaml)")
	flags.String("seed", "", "YAML file with the plants to start with")
	flags.String("theme", "", "Color theme (garden, nord, desert, orchid, light)")

	v := loader.Viper()
	_ = v.BindPFlag(config.KeySeedFile, flags.Lookup("seed"))
	_ = v.BindPFlag(config.KeyTheme, flags.Lookup("theme"))
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("growmate %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("growmate %s\n", version)
}

// loadSeed returns the plants from the configured seed file, or the
// built-in examples when none is set.
func loadSeed(cfg *config.Config, now time.Time) ([]plant.Plant, error) {
	path := cfg.GetSeedFile()
	if path == "" {
		return plant.DefaultSeed(now), nil
	}
	return plant.LoadSeed(path)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loader.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	seed, err := loadSeed(cfg, time.Now())
	if err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	logger.WithComponent("cmd").Info("starting", "version", version, "config", cfg.Path(), "plants", len(seed), "auth", cfg.GetAuthMode())

	m := app.New(cfg, version, seed, auth.New(cfg.GetAuthMode()))
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
