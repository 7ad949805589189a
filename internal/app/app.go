package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/five82/sortinghat/internal/catalog"
	"github.com/five82/sortinghat/internal/config"
	"github.com/five82/sortinghat/internal/hpapi"
	"github.com/five82/sortinghat/internal/portrait"
	"github.com/five82/sortinghat/internal/sessionlog"
	"github.com/five82/sortinghat/internal/state"
	"github.com/five82/sortinghat/internal/ui"
)

// Options configure a sortinghat session. Everything except ConfigPath is a
// navigation entry point and may be left empty.
type Options struct {
	ConfigPath  string
	LogPath     string // overrides log_file from the config
	House       string // preselected house, overrides the config
	Filter      string // house filter token: all | <house> | none
	Chip        string // chip token: student | staff | dead | species:<v> | gender:<v>
	CharacterID string // open this character's detail view
}

// Run boots the sortinghat TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	house := cfg.House
	if strings.TrimSpace(opts.House) != "" {
		h, ok := catalog.ParseHouse(opts.House)
		if !ok {
			return fmt.Errorf("unknown house %q", opts.House)
		}
		house = h
	}

	logPath := cfg.LogFile
	if strings.TrimSpace(opts.LogPath) != "" {
		logPath, err = config.ExpandPath(opts.LogPath)
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	}
	logFile, err := sessionlog.Open(logPath)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer logFile.Close()

	client, err := hpapi.NewClient(cfg.APIBase, hpapi.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	resolver := portrait.NewResolver(portrait.Options{
		ProxyBase: cfg.ImageProxy,
		WikiBase:  cfg.WikiBase,
	})

	store := &state.Store{}
	store.SelectHouse(house)

	loaderCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	StartLoader(loaderCtx, store, client, defaultRetryInterval, done)
	defer func() {
		cancel()
		<-done
	}()

	log.Printf("[app] session started against %s", client.BaseURL())

	return ui.Run(uiOptions(ctx, opts, house, store, client, resolver, logPath))
}

// uiOptions maps the entry points onto the UI's start view and filter.
func uiOptions(ctx context.Context, opts Options, house catalog.House, store *state.Store, fetcher hpapi.Fetcher, lookup portrait.Lookup, logPath string) ui.Options {
	filter := catalog.Filter{
		House: catalog.ParseHouseFilter(opts.Filter),
		Chip:  catalog.ParseChip(opts.Chip),
	}
	start := ui.ViewHouses
	switch {
	case strings.TrimSpace(opts.Filter) != "" || strings.TrimSpace(opts.Chip) != "":
		start = ui.ViewCharacters
	case strings.TrimSpace(opts.House) != "":
		filter.House = catalog.OnlyHouse(house)
		start = ui.ViewCharacters
	}

	return ui.Options{
		Context:     ctx,
		Fetcher:     fetcher,
		Portraits:   lookup,
		Store:       store,
		LogPath:     logPath,
		StartView:   start,
		Filter:      filter,
		CharacterID: strings.TrimSpace(opts.CharacterID),
	}
}
