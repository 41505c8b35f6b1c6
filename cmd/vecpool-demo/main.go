package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vecpool/config"
	"github.com/lixenwraith/vecpool/loop"
)

const (
	logDir      = "logs"
	logFileName = "vecpool.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config file")
	poolFlag    = flag.Int("pool", -1, "Initial vector pool size (overrides config)")
	fpsFlag     = flag.Int("fps", 0, "Frame rate (overrides config)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/vecpool.log")
	noSoundFlag = flag.Bool("nosound", false, "Disable audio")
)

// setupLogging routes log output to a file when debug is set, otherwise discards it
// Files over maxLogSize are rotated aside. Returns the open log file or nil
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vecpool-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// resolveConfig layers flags over file over defaults
func resolveConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if *poolFlag >= 0 {
		cfg.InitialPoolSize = *poolFlag
	}
	if *fpsFlag > 0 {
		cfg.FrameRate = *fpsFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *noSoundFlag {
		cfg.Sound = false
	}
	return cfg, cfg.Validate()
}

func main() {
	flag.Parse()

	cfg, err := resolveConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	game := NewGame(screen, cfg, loop.SystemClock{})

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVECPOOL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if cfg.Sound {
		if err := game.initAudio(); err != nil {
			// Non-fatal, demo runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	defer game.cleanup()

	log.Printf("start: pool %d fps %d", cfg.InitialPoolSize, cfg.FrameRate)
	game.run()
}
