package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/daynight/internal/app"
	"github.com/ironsheep/daynight/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("daynight %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("daynight - classify an image as day or night from its pixel luminance")
			fmt.Println()
			fmt.Println("Usage: daynight < pixels.txt")
			fmt.Println()
			fmt.Println("Reads lines of whitespace-separated B,G,R pixel tokens from stdin")
			fmt.Println("and prints \"day\" or \"night\".")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  DAYNIGHT_LOG_LEVEL=debug        Enable debug logging")
			fmt.Println("  DAYNIGHT_MAX_LINE_BYTES=<n>     Longest accepted input line (default 64 MiB)")
			return
		}
	}

	// Logs go to stderr; stdout carries only the classification
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("daynight v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := app.New(cfg).Run(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Classification failed: %v", err)
	}
}
