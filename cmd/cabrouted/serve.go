package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/devu90197/CabDriverAgent/internal/server"
	"github.com/devu90197/CabDriverAgent/internal/store"
	"github.com/devu90197/CabDriverAgent/internal/worker"
)

var serveOpts struct {
	addr          string
	dbPath        string
	syncThreshold int
	workers       int
	queueDepth    int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the routing HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveOpts.addr, "addr", defaultAddr(), "listen address")
	serveCmd.Flags().StringVar(&serveOpts.dbPath, "db", "data/cabrouted.db", "SQLite database path")
	serveCmd.Flags().IntVar(&serveOpts.syncThreshold, "sync-threshold", server.DefaultSyncThreshold,
		"max intermediate stops solved inline; larger requests are queued")
	serveCmd.Flags().IntVar(&serveOpts.workers, "workers", 4, "background worker count")
	serveCmd.Flags().IntVar(&serveOpts.queueDepth, "queue-depth", 64, "pending job queue capacity")

	rootCmd.AddCommand(serveCmd)
}

func defaultAddr() string {
	if addr := os.Getenv("CABROUTED_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}

func runServe(cmd *cobra.Command, args []string) error {
	st, err := store.New(serveOpts.dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool := worker.NewPool(st, serveOpts.workers, serveOpts.queueDepth)
	pool.Start(ctx)
	defer pool.Stop()

	srv := server.New(st, pool, serveOpts.syncThreshold)
	httpSrv := &http.Server{Addr: serveOpts.addr, Handler: srv.Handler()}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("routing API listening on %s", serveOpts.addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
