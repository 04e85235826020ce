package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"ropeswing/internal/app"
	"ropeswing/internal/feed"
	"ropeswing/internal/store"
	"ropeswing/internal/swing"
	"ropeswing/internal/tui"
	"ropeswing/internal/ui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		log.Printf("ropeswing: %v", err)
	}
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The terminal owns stdout and stderr while the screen is up.
	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(filepath.Clean(*logPath), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("ropeswing: open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	board := &ui.Board{}
	notifiers := swing.Notifiers{board}

	if cfg.Sound {
		sound := tui.NewSound(logger)
		defer sound.Close()
		notifiers = append(notifiers, sound)
	}

	var publisher tui.Publisher
	if cfg.FeedAddr != "" {
		hub := feed.NewHub(logger)
		notifiers = append(notifiers, hub)
		publisher = hub
		go func() {
			if err := feed.Serve(ctx, cfg.FeedAddr, hub); err != nil {
				logger.Printf("ropeswing: feed: %v", err)
			}
		}()
	}

	sc := cfg.Swing()
	sc.Store = openStore(cfg.StorePath, logger)
	sc.Notifier = notifiers
	sc.Logger = logger
	session := swing.New(sc)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("ropeswing: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("ropeswing: %v", err)
	}
	screen.EnableMouse(tcell.MouseButtonEvents)

	term := tui.New(screen, session, board, tui.Options{TPS: cfg.TPS, Feed: publisher, Logger: logger})
	err = term.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func openStore(path string, logger *log.Logger) swing.ScoreStore {
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			logger.Printf("ropeswing: high score kept in memory: %v", err)
			return store.NewMemory()
		}
		path = p
	}
	return store.NewFile(path)
}
