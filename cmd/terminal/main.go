package main

import (
	"ctchen222/ox-game/internal/config"
	"ctchen222/ox-game/internal/logger"
	"ctchen222/ox-game/internal/tui"
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The screen belongs to the program, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	if err := logger.Init(logOut, cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	if _, err := tea.NewProgram(tui.New()).Run(); err != nil {
		log.Fatalf("terminal host failed: %v", err)
	}
}
