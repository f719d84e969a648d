package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/server"
)

var (
	servePort   int
	serveWatch  bool
	serveSource sourceFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for recommendations, combination checks, and wardrobe status.

A wardrobe file is reloaded whenever it changes on disk. With a database, recommendation sets are kept
and can be fetched again by query ID.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080, or OUTFIT_PORT)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "Reload the wardrobe file when it changes")
	serveSource.register(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	serveSource.apply(cmd, &cfg)
	if cfg, err = finishConfig(cfg); err != nil {
		return err
	}

	wardrobe, database, err := openWardrobe(ctx, cfg)
	if err != nil {
		return err
	}
	source := inventory.NewSource(wardrobe)

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		Port:       cfg.Port,
		Engine:     engine,
		Source:     source,
		MaxResults: cfg.MaxResults,
	}
	if database != nil {
		defer func() { _ = database.Close() }()
		srvCfg.Store = database
	} else {
		srvCfg.WardrobePath = cfg.Wardrobe
	}

	if cfg.Wardrobe != "" && serveWatch {
		watcher, err := inventory.NewWatcher(cfg.Wardrobe, source, slog.Default())
		if err != nil {
			return fmt.Errorf("failed to watch wardrobe file: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("wardrobe watcher stopped", "error", err)
			}
		}()
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
