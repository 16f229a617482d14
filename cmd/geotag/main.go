package main

import (
	"fmt"
	"os"

	"github.com/trailstamp/geotag/internal"
)

const version = "1.0.0"

func main() {
	internal.InitLogging()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "import":
		runImport(args)
	case "apply":
		runApply(args)
	case "resolve":
		runResolve(args)
	case "version":
		fmt.Printf("geotag version %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`geotag - tag photos with positions interpolated from GPS tracks

Usage: geotag <command> [options]

Commands:
  import     Convert a Google Timeline export into a per-day GPX tree
  apply      Match photo timestamps against the tracks and write GPS metadata
  resolve    Resolve a single timestamp against the tracks
  version    Show geotag version
  help       Show this help message

Run 'geotag <command> -h' for command options.`)
}
