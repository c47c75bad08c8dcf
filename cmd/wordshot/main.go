// Package main provides the CLI entrypoint for wordshot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordshot/internal/audio"
	"github.com/verte-zerg/wordshot/internal/config"
	"github.com/verte-zerg/wordshot/internal/game"
	"github.com/verte-zerg/wordshot/internal/generator"
	"github.com/verte-zerg/wordshot/internal/model"
	"github.com/verte-zerg/wordshot/internal/stats"
	"github.com/verte-zerg/wordshot/internal/statsui"
	"github.com/verte-zerg/wordshot/internal/store"
	"github.com/verte-zerg/wordshot/internal/tui"
	"github.com/verte-zerg/wordshot/internal/wordbank"
)

const (
	defaultWidth         = 900.0
	defaultHeight        = 600.0
	defaultMaxEnemies    = 8
	defaultSpawnInterval = 130
	defaultBaseSpeed     = 0.35
	defaultSurvivalBonus = 0.02
	defaultTickRate      = 60
	defaultVolume        = 1.0
	defaultCurveWindow   = 10
)

var (
	playWidth         float64
	playHeight        float64
	playMaxEnemies    int
	playSpawnInterval int
	playBaseSpeed     float64
	playSurvivalBonus float64
	playTickRate      int
	playSeed          int64
	playSFX           bool
	playMusic         bool
	playVolume        float64
	playMute          bool

	statsSince       string
	statsLast        int
	statsCurveWindow int
	statsPlain       bool

	bestReset bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordshot",
		Short:         "Terminal typing arcade: shoot the words before they reach your ship",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().Float64Var(&playWidth, "width", defaultWidth, "logical field width")
	rootCmd.Flags().Float64Var(&playHeight, "height", defaultHeight, "logical field height")
	rootCmd.Flags().IntVar(&playMaxEnemies, "max-enemies", defaultMaxEnemies, "maximum words on screen")
	rootCmd.Flags().IntVar(&playSpawnInterval, "spawn-interval", defaultSpawnInterval, "ticks between spawns at score 0")
	rootCmd.Flags().Float64Var(&playBaseSpeed, "base-speed", defaultBaseSpeed, "base descent speed per tick")
	rootCmd.Flags().Float64Var(&playSurvivalBonus, "survival-bonus", defaultSurvivalBonus, "score added per tick survived")
	rootCmd.Flags().IntVar(&playTickRate, "tick-rate", defaultTickRate, "simulation ticks per second")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 = time based)")
	rootCmd.Flags().BoolVar(&playSFX, "sfx", true, "enable sound effects")
	rootCmd.Flags().BoolVar(&playMusic, "music", true, "enable ambience")
	rootCmd.Flags().Float64Var(&playVolume, "volume", defaultVolume, "master volume (0-1)")
	rootCmd.Flags().BoolVar(&playMute, "mute", false, "do not open the audio device")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newBestCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "width", &playWidth, fileCfg.Game.Width)
	applyConfig(cmd, "height", &playHeight, fileCfg.Game.Height)
	applyConfig(cmd, "max-enemies", &playMaxEnemies, fileCfg.Game.MaxEnemies)
	applyConfig(cmd, "spawn-interval", &playSpawnInterval, fileCfg.Game.SpawnInterval)
	applyConfig(cmd, "base-speed", &playBaseSpeed, fileCfg.Game.BaseSpeed)
	applyConfig(cmd, "survival-bonus", &playSurvivalBonus, fileCfg.Game.SurvivalBonus)
	applyConfig(cmd, "tick-rate", &playTickRate, fileCfg.Game.TickRate)
	applyConfig(cmd, "seed", &playSeed, fileCfg.Game.Seed)
	applyConfig(cmd, "sfx", &playSFX, fileCfg.Audio.SFX)
	applyConfig(cmd, "music", &playMusic, fileCfg.Audio.Music)
	applyConfig(cmd, "volume", &playVolume, fileCfg.Audio.Volume)

	cfg := model.Config{
		Width:         playWidth,
		Height:        playHeight,
		MaxEnemies:    playMaxEnemies,
		SpawnInterval: playSpawnInterval,
		BaseSpeed:     playBaseSpeed,
		SurvivalBonus: playSurvivalBonus,
		TickRate:      playTickRate,
		Seed:          playSeed,
		SFX:           playSFX,
		Music:         playMusic,
		Volume:        playVolume,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	bank, err := wordbank.Load(deref(fileCfg.Words.Easy), deref(fileCfg.Words.Mid), deref(fileCfg.Words.Hard))
	if err != nil {
		return err
	}

	opts := game.Options{Config: cfg, Generator: generator.New(bank, cfg.Seed)}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("best score will not be saved: %v\n", err)
	} else {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		opts.Store = st
		opts.Recorder = st
	}

	var sink game.Audio = audio.Nop{}
	if !playMute {
		manager := audio.NewManager(cfg.Volume)
		if err := manager.Initialize(); err != nil {
			logErrf("audio disabled: %v\n", err)
		} else {
			defer manager.Close()
			sink = manager
		}
	}

	opts.Audio = sink
	session := game.NewSession(opts)
	program := tea.NewProgram(tui.NewModel(session, cfg.TickRate), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show run history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N runs")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print to stdout instead of opening the viewer")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	cfg := model.StatsConfig{
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsPlain {
		return printStats(cmd, st, cfg)
	}

	program := tea.NewProgram(statsui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func printStats(cmd *cobra.Command, st *store.Store, cfg model.StatsConfig) error {
	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, report.Runs, report.Best); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderScoreCurve(out, report.Runs, cfg.CurveWindow, stats.TerminalWidth()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderRunTable(out, report.Runs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newBestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "best",
		Short: "Print or reset the best score",
		Args:  cobra.NoArgs,
		RunE:  runBestCmd,
	}
	cmd.Flags().BoolVar(&bestReset, "reset", false, "forget the stored best score")
	return cmd
}

func runBestCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	if bestReset {
		if err := st.ResetBest(ctx); err != nil {
			return fmt.Errorf("failed to reset best score: %w", err)
		}
		logErrln("Best score reset.")
		return nil
	}
	best, err := st.LoadBest(ctx)
	if err != nil {
		return fmt.Errorf("failed to load best score: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), best); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordshot configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# width = %.0f             # Logical field width
# height = %.0f            # Logical field height
# max-enemies = %d          # Maximum words on screen
# spawn-interval = %d     # Ticks between spawns at score 0
# base-speed = %.2f       # Base descent speed per tick
# survival-bonus = %.2f   # Score added per tick survived
# tick-rate = %d           # Simulation ticks per second
# seed = 0                # Random seed (0 = time based)

[audio]
# sfx = true              # Sound effects
# music = true            # Ambience
# volume = %.1f            # Master volume (0-1)

[words]
# easy = "/path/to/easy.txt"   # One word per line, letters a-z only
# mid = "/path/to/mid.txt"
# hard = "/path/to/hard.txt"
`,
		defaultWidth,
		defaultHeight,
		defaultMaxEnemies,
		defaultSpawnInterval,
		defaultBaseSpeed,
		defaultSurvivalBonus,
		defaultTickRate,
		defaultVolume,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("--width and --height must be > 0")
	}
	if cfg.MaxEnemies <= 0 {
		return fmt.Errorf("--max-enemies must be > 0")
	}
	if cfg.SpawnInterval <= 0 {
		return fmt.Errorf("--spawn-interval must be > 0")
	}
	if cfg.BaseSpeed <= 0 {
		return fmt.Errorf("--base-speed must be > 0")
	}
	if cfg.SurvivalBonus < 0 {
		return fmt.Errorf("--survival-bonus must be >= 0")
	}
	if cfg.TickRate <= 0 || cfg.TickRate > 1000 {
		return fmt.Errorf("--tick-rate must be between 1 and 1000")
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
