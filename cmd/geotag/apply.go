package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/trailstamp/geotag/batch"
	"github.com/trailstamp/geotag/config"
	"github.com/trailstamp/geotag/fitfile"
	"github.com/trailstamp/geotag/formatter"
	"github.com/trailstamp/geotag/gpx"
	"github.com/trailstamp/geotag/metadata"
	"github.com/trailstamp/geotag/track"
	"github.com/trailstamp/geotag/utils"
)

func runApply(args []string) {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	input := fs.String("i", "", "Directory with target files to tag (required)")
	gpxDir := fs.String("g", "", "GPX tree directory (overrides config)")
	fitDir := fs.String("fit", "", "FIT activity directory (overrides config)")
	ext := fs.String("m", "xmp", "Target file extension to process")
	tolerance := fs.Duration("tolerance", -1, "Widest track gap interpolation may bridge (overrides config)")
	overwrite := fs.Bool("overwrite", false, "Replace existing GPS positions")
	dryRun := fs.Bool("dry-run", false, "Resolve without writing any metadata")
	format := fs.String("format", "text", "Report format: text|json")
	configPath := fs.String("config", "", "Configuration file path")
	fs.Parse(args)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i flag is required. Specify the directory with files to tag.")
		fs.Usage()
		os.Exit(1)
	}
	if *format != "text" && *format != "json" {
		fmt.Fprintf(os.Stderr, "Unknown format: %s\n", *format)
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
	if *overwrite {
		cfg.Apply.Overwrite = true
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve timezone %s: %v\n", cfg.Apply.Timezone, err)
		os.Exit(1)
	}

	store, err := buildStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build track store: %v\n", err)
		os.Exit(1)
	}
	logStoreSummary(store)

	pattern := "*." + normalizeExt(*ext)
	paths, err := filepath.Glob(filepath.Join(*input, pattern))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad target pattern %s: %v\n", pattern, err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		log.Printf("no %s files under %s", pattern, *input)
		return
	}

	tol := cfg.Tolerance()
	if *tolerance >= 0 {
		tol = *tolerance
	}

	tool := metadata.NewExiftool(cfg.Exiftool.Path, cfg.ExiftoolTimeout())
	registry := metadata.NewRegistry(loc, tool)
	coordinator := batch.NewCoordinator(store, registry, batch.Options{
		Tolerance: tol,
		Overwrite: cfg.Apply.Overwrite,
		DryRun:    *dryRun,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, runErr := coordinator.Run(ctx, paths)

	if *format == "json" {
		fmt.Println(string(formatter.BuildJSON(report)))
	} else {
		fmt.Print(formatter.BuildText(report))
	}
	report.LogAll()

	if runErr != nil {
		log.Printf("run interrupted: %v", runErr)
		os.Exit(1)
	}
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// buildStore assembles the track store from the configured sources,
// reusing the gob cache when it is still fresh.
func buildStore(cfg *config.AppConfig) (*track.Store, error) {
	if store, ok := loadCachedStore(cfg); ok {
		return store, nil
	}

	points, err := gpx.ReadTree(cfg.Track.GPXDir)
	if err != nil {
		// A missing GPX tree is fine when FIT sources are configured.
		if cfg.Track.FITDir == "" || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Printf("no GPX tree at %s", cfg.Track.GPXDir)
		points = nil
	}
	if cfg.Track.FITDir != "" {
		fitPoints, err := fitfile.ReadDir(cfg.Track.FITDir)
		if err != nil {
			return nil, err
		}
		points = append(points, fitPoints...)
	}

	store, err := track.NewStore(points)
	if err != nil {
		return nil, err
	}
	if cfg.Track.CacheFile != "" {
		if err := track.SerializeStoreToFile(store, cfg.Track.CacheFile); err != nil {
			log.Printf("failed to write store cache %s: %v", cfg.Track.CacheFile, err)
		} else {
			log.Printf("cached %d points to %s", store.Size(), cfg.Track.CacheFile)
		}
	}
	return store, nil
}

// loadCachedStore returns the cached store when the cache file is
// newer than every configured track source.
func loadCachedStore(cfg *config.AppConfig) (*track.Store, bool) {
	if cfg.Track.CacheFile == "" {
		return nil, false
	}
	info, err := os.Stat(cfg.Track.CacheFile)
	if err != nil {
		return nil, false
	}
	if newest, ok := gpx.TreeModTime(cfg.Track.GPXDir); ok && newest.After(info.ModTime()) {
		return nil, false
	}
	if cfg.Track.FITDir != "" {
		if newest, ok := fitfile.DirModTime(cfg.Track.FITDir); ok && newest.After(info.ModTime()) {
			return nil, false
		}
	}

	store, err := track.DeserializeStoreFromFile(cfg.Track.CacheFile)
	if err != nil {
		log.Printf("ignoring unreadable store cache %s: %v", cfg.Track.CacheFile, err)
		return nil, false
	}
	log.Printf("loaded %d points from cache %s", store.Size(), cfg.Track.CacheFile)
	return store, true
}

func logStoreSummary(store *track.Store) {
	if store.IsEmpty() {
		log.Printf("track store is empty")
		return
	}
	st := store.Stats()
	log.Printf("track store: %d points %s .. %s, %.1f km",
		st.Count, utils.Iso8601UTC(st.Start), utils.Iso8601UTC(st.End), st.DistanceKM)
}
