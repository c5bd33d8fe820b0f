package main

import (
	"context"
	"errors"
	"fmt"
	"gamerating/internal/back"
	"gamerating/internal/config"
	"gamerating/internal/util"
	"gamerating/internal/web"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 5 * time.Second

func serve(conf *config.Config) error {
	b, err := back.New("sqlite3", conf.DSN)
	if err != nil {
		return err
	}

	if conf.Fixtures {
		if err := loadFixtures(b); err != nil {
			return util.ConcatErrors([]error{err, b.Close()})
		}
	}

	server := web.NewServer(b, conf)
	signaled := make(chan os.Signal, 1)
	signal.Notify(signaled, syscall.SIGINT, syscall.SIGTERM)

	crashed := make(chan error, 1)
	go func() {
		crashed <- server.ListenAndServe()
	}()

	var errs []error
	select {
	case sig := <-signaled:
		log.Printf("info: received signal %d", sig)
	case err := <-crashed:
		if !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, fmt.Errorf("webserver crashed: %w", err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs = append(errs, server.Shutdown(ctx), closeBack(b))
	if err := util.ConcatErrors(errs); err != nil {
		return err
	}

	log.Print("info: shutdown complete")

	return nil
}

// closeBack closes the store unless a client already did it through /close.
func closeBack(b *back.Back) error {
	if err := b.Close(); err != nil && !errors.Is(err, back.ErrClosed) {
		return err
	}

	return nil
}
