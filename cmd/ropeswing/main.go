//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"ropeswing/internal/app"
	"ropeswing/internal/feed"
	"ropeswing/internal/store"
	"ropeswing/internal/swing"
	"ropeswing/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		log.Printf("ropeswing: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	board := &ui.Board{}
	notifiers := swing.Notifiers{board}

	var hub *feed.Hub
	if cfg.FeedAddr != "" {
		hub = feed.NewHub(nil)
		notifiers = append(notifiers, hub)
		go func() {
			if err := feed.Serve(ctx, cfg.FeedAddr, hub); err != nil {
				log.Printf("ropeswing: feed: %v", err)
			}
		}()
		log.Printf("ropeswing: spectator feed on ws://%s/ws", cfg.FeedAddr)
	}

	sc := cfg.Swing()
	sc.Store = openStore(cfg.StorePath)
	sc.Notifier = notifiers
	session := swing.New(sc)

	var publisher app.Publisher
	if hub != nil {
		publisher = hub
	}
	game := app.New(session, board, publisher, nil)

	ebiten.SetWindowTitle("Rope Swing")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func openStore(path string) swing.ScoreStore {
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			log.Printf("ropeswing: high score kept in memory: %v", err)
			return store.NewMemory()
		}
		path = p
	}
	return store.NewFile(path)
}
