// Cookmode — full-screen guided cooking for the terminal.
//
// Usage:
//
//	cookmode [-verbose] [-quiet] [-config path] [-recipes dir]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/mkhoury/cookmode/internal/app"
	"github.com/mkhoury/cookmode/internal/chime"
	"github.com/mkhoury/cookmode/internal/config"
	"github.com/mkhoury/cookmode/internal/domain"
	"github.com/mkhoury/cookmode/internal/logger"
	"github.com/mkhoury/cookmode/internal/motion"
	"github.com/mkhoury/cookmode/internal/recipe"
	"github.com/mkhoury/cookmode/internal/wakelock"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".cookmode/cookmode.log", "file to write logs to (use \"stderr\" to log to console)")
	configPath := flag.String("config", "", "path to the config file (default: ./config.yaml or ~/.config/cookmode/config.yaml)")
	recipesDir := flag.String("recipes", "", "directory of recipe YAML files (overrides config)")
	noChime := flag.Bool("no-chime", false, "disable audio cues")
	noWakelock := flag.Bool("no-wakelock", false, "do not inhibit system sleep while cooking")
	flag.Parse()

	// Direct logs to a file by default; the TUI owns the terminal.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Redirect Go's default log package (used by third-party libs) to
	// the same output so it doesn't garble the screen.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logger.LevelNormal, logOut)

	cfg, err := config.Load(*configPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Flags beat the config file for the log level.
	level := logger.ParseLevel(cfg.LogLevel())
	if *verbose {
		level = logger.LevelVerbose
	}
	if *quiet {
		level = logger.LevelOff
	}
	log.SetLevel(level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	pref := motion.New(cfg.ReducedMotion(), log)
	cfg.OnChange(func() {
		pref.Set(cfg.ReducedMotion())
		if !*verbose && !*quiet {
			log.SetLevel(logger.ParseLevel(cfg.LogLevel()))
		}
	})
	cfg.Watch()

	var locker domain.WakeLocker = wakelock.NewNoOp(log)
	if !*noWakelock {
		if sys := wakelock.NewSystemLocker(log); sys.Available() {
			locker = sys
			log.Info("wake lock enabled via systemd-inhibit")
		} else {
			log.Info("wake lock unavailable, screen may sleep mid-recipe")
		}
	}

	var sound domain.SoundPlayer = chime.NewNoOp(log)
	if !*noChime && cfg.ChimeEnabled() {
		player, err := chime.NewPlayer(log)
		if err != nil {
			log.Error("audio init failed, cues disabled: %v", err)
		} else {
			sound = player
		}
	}

	recipes := recipe.NewMemorySource(log)
	dir := cfg.RecipesDir()
	if *recipesDir != "" {
		dir = *recipesDir
	}
	if dir != "" {
		loaded, err := recipe.LoadDir(dir, log)
		if err != nil {
			log.Warn("recipes: %v", err)
		}
		for _, r := range loaded {
			recipes.Add(r)
		}
		log.Info("recipes: loaded %d from %s", len(loaded), dir)
	}

	fmt.Println(app.RenderBanner())

	root := app.New(ctx, recipes, locker, sound, pref, log)
	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("ui: %v", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	cancel()
}
