package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/sortinghat/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	house := flag.String("house", "", "preselect a house: Gryffindor, Slytherin, Ravenclaw or Hufflepuff")
	filter := flag.String("filter", "", "start on the character list with a house filter: all, <house> or none")
	chip := flag.String("chip", "", "start on the character list with a chip: student, staff, dead, species:<v> or gender:<v>")
	character := flag.String("character", "", "open a character's detail view by id")
	logPath := flag.String("log", "", "override session log path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		LogPath:     *logPath,
		House:       *house,
		Filter:      *filter,
		Chip:        *chip,
		CharacterID: *character,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "sortinghat: %v\n", err)
		return 1
	}
	return 0
}
