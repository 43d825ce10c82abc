package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sniperdeck/sniperdeck/internal/botsim"
)

// Build variables - set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/sniperdeck/sim.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Sniperdeck Sim - Simulated Trading Bot\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		return
	}

	cfg, err := loadSimConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runSim(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSim(cfg simConfig) error {
	universe := botsim.DefaultUniverse()
	if cfg.TokensFile != "" {
		loaded, err := botsim.LoadUniverse(cfg.TokensFile)
		if err != nil {
			return fmt.Errorf("loading token universe: %w", err)
		}
		universe = loaded
	}

	bot := botsim.NewBot(botsim.Config{
		Network:       cfg.Network,
		WalletBalance: cfg.WalletBalance,
		ScanInterval:  cfg.ScanInterval,
		Universe:      universe,
		Seed:          cfg.Seed,
	})

	server := botsim.NewServer(cfg.ListenAddr, bot)
	if err := server.Start(); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}
	defer func() {
		if err := server.Stop(); err != nil {
			log.Printf("sim: server shutdown: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		cancel()
	}()

	log.Printf("sim: listening on %s (network=%s, %d seed tokens)",
		cfg.ListenAddr, cfg.Network, len(universe))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return bot.Run(gctx)
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
