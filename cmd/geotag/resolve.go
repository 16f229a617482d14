package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/trailstamp/geotag/config"
	"github.com/trailstamp/geotag/formatter"
	"github.com/trailstamp/geotag/match"
	"github.com/trailstamp/geotag/utils"
)

func runResolve(args []string) {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	at := fs.String("t", "", "Timestamp to resolve, RFC 3339 (required)")
	gpxDir := fs.String("g", "", "GPX tree directory (overrides config)")
	fitDir := fs.String("fit", "", "FIT activity directory (overrides config)")
	tolerance := fs.Duration("tolerance", -1, "Widest track gap interpolation may bridge (overrides config)")
	configPath := fs.String("config", "", "Configuration file path")
	fs.Parse(args)

	if *at == "" {
		fmt.Fprintln(os.Stderr, "Error: -t flag is required. Specify the timestamp to resolve.")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *gpxDir != "" {
		cfg.Track.GPXDir = *gpxDir
	}
	if *fitDir != "" {
		cfg.Track.FITDir = *fitDir
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve timezone %s: %v\n", cfg.Apply.Timezone, err)
		os.Exit(1)
	}
	ts, ok := utils.ParseTimeIn(*at, loc)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unrecognized timestamp: %s\n", *at)
		os.Exit(1)
	}

	store, err := buildStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build track store: %v\n", err)
		os.Exit(1)
	}

	tol := cfg.Tolerance()
	if *tolerance >= 0 {
		tol = *tolerance
	}

	res := match.NewEngine().Resolve(store, match.Query{Timestamp: ts.UTC(), MaxGap: tol})
	fmt.Println(formatter.BuildResolveText(res))
}
