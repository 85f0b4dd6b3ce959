package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"driver-registry/internal/config"
	"driver-registry/internal/httpserver"
	"driver-registry/internal/importer"
	personrepo "driver-registry/internal/repository/person"
	personsvc "driver-registry/internal/service/person"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatalf("create data dir: %v", err)
	}

	personRepo := personrepo.NewFile(cfg.PersonsPath(), cfg.DemeritsPath(), logger)
	personService := personsvc.New(personRepo, logger)

	imp := importer.NewLogImporter(personService, logger)
	if err := replay(cfg.PersonsPath(), imp.ReplayPersons, logger); err != nil {
		logger.Fatalf("replay persons: %v", err)
	}
	if err := replay(cfg.DemeritsPath(), imp.ReplayDemerits, logger); err != nil {
		logger.Fatalf("replay demerits: %v", err)
	}
	logger.Printf("restored %d persons", personService.Len())

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		PersonSvc:        personService,
		Storage:          personRepo,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// replay feeds an existing log to fn; a missing log is an empty registry.
func replay(path string, fn func(r io.Reader) (importer.Result, error), logger *log.Logger) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := fn(f)
	if err != nil {
		return err
	}
	logger.Printf("replayed %s: applied=%d skipped=%d", path, res.Applied, res.Skipped)
	return nil
}
