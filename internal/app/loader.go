package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/five82/sortinghat/internal/hpapi"
	"github.com/five82/sortinghat/internal/state"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// Load fetches the three collections concurrently and records the outcome in
// store with a single Update. Characters and spells are required; a failed
// houses fetch is logged and leaves Houses empty.
func Load(ctx context.Context, store *state.Store, fetcher hpapi.Fetcher) error {
	var data state.Catalog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		chars, err := fetcher.ListCharacters(gctx)
		if err != nil {
			return fmt.Errorf("load characters: %w", err)
		}
		data.Characters = chars
		return nil
	})
	g.Go(func() error {
		spells, err := fetcher.ListSpells(gctx)
		if err != nil {
			return fmt.Errorf("load spells: %w", err)
		}
		data.Spells = spells
		return nil
	})
	g.Go(func() error {
		houses, err := fetcher.ListHouses(gctx)
		if err != nil {
			log.Printf("[loader] houses unavailable: %v", err)
			return nil
		}
		data.Houses = houses
		return nil
	})

	if err := g.Wait(); err != nil {
		store.Update(nil, err)
		return err
	}
	store.Update(&data, nil)
	return nil
}

// StartLoader launches a background goroutine that calls Load until it
// succeeds, backing off between failures. It returns immediately. done, if
// non-nil, is closed when the goroutine exits.
func StartLoader(ctx context.Context, store *state.Store, fetcher hpapi.Fetcher, base time.Duration, done chan<- struct{}) {
	if base <= 0 {
		base = defaultRetryInterval
	}
	go func() {
		if done != nil {
			defer close(done)
		}
		failures := 0
		for {
			err := Load(ctx, store, fetcher)
			if err == nil {
				log.Printf("[loader] catalog loaded")
				return
			}
			if ctx.Err() != nil {
				return
			}
			wait := calculateBackoff(failures, base)
			failures++
			log.Printf("[loader] load failed (attempt %d), retrying in %s: %v", failures, wait, err)

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles base for every prior failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
