package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/trailstamp/geotag/config"
	"github.com/trailstamp/geotag/gpx"
	"github.com/trailstamp/geotag/timeline"
	"github.com/trailstamp/geotag/track"
)

func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	input := fs.String("i", "timeline.json", "Google Timeline export to read")
	output := fs.String("o", config.DefaultGPXDir, "Directory for the per-day GPX tree")
	dryRun := fs.Bool("dry-run", false, "List the day files without writing them")
	fs.Parse(args)

	points, err := timeline.DecodeFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read timeline: %v\n", err)
		os.Exit(1)
	}
	if len(points) == 0 {
		log.Printf("no usable points in %s", *input)
		return
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})

	groups := gpx.GroupByDay(points)
	if *dryRun {
		for _, day := range gpx.Days(groups) {
			path, err := gpx.DayPath(*output, day)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to resolve day path: %v\n", err)
				os.Exit(1)
			}
			log.Printf("would write %s (%d points)", path, len(groups[day]))
		}
	} else {
		written, err := gpx.WriteTree(*output, points)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write GPX tree: %v\n", err)
			os.Exit(1)
		}
		for _, path := range written {
			log.Printf("wrote %s", path)
		}
	}

	stats := track.Summarize(points)
	log.Printf("imported %d points across %d days, %.1f km total",
		stats.Count, len(groups), stats.DistanceKM)
}
