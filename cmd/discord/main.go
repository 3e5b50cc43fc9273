package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/felosidev/avatar-bot/internal/config"
	"github.com/felosidev/avatar-bot/internal/discord"
	v "github.com/felosidev/avatar-bot/internal/version"
)

func main() {
	buildDate := v.BuildDate
	if buildDate == "" {
		buildDate = "unknown"
	}
	log.Printf("[INFO] Starting %v bot (built %s, %s)...", v.AppName, buildDate, v.GoVersion)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	bot, err := discord.NewBot(cfg)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Fatal("[ERR] Discord bot error: ", err)
		}
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
