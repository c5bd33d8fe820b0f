package main

import (
	"flag"
	"fmt"
	"gamerating/internal/config"
	"log"
	"os"
)

// Version holds the build-time version string.
var Version = "unknown" // nolint:gochecknoglobals

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	flag.Parse()

	switch flag.Arg(0) {
	case "serve":
		conf, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("error: unable to load configuration: %s", err)
		}

		if err := serve(conf); err != nil {
			log.Fatalf("error: %s", err)
		}
	case "version":
		fmt.Fprintf(os.Stdout, "gamerating %s\n", Version)
	case "help":
		fmt.Fprint(os.Stdout, help())
		return
	default:
		fmt.Fprint(os.Stderr, help())
		os.Exit(1)
	}
}

func help() string {
	return fmt.Sprintf(`
gamerating stores game ratings submitted through a small web form.

Usage: %[1]s [-config PATH] COMMAND

COMMANDS
    serve    start the HTTP server
    help     display this help
    version  display the current version

ENVIRONMENT
    GAMERATING_ADDR           listen address (default :8080)
    GAMERATING_DSN            sqlite3 DSN (default :memory:)
    GAMERATING_FIXTURES       insert sample ratings on startup
    GAMERATING_READ_TIMEOUT   HTTP read timeout (default 5s)
    GAMERATING_WRITE_TIMEOUT  HTTP write timeout (default 5s)
    GAMERATING_IDLE_TIMEOUT   HTTP idle timeout (default 10s)
    GAMERATING_RATE_LIMIT     API requests per second, 0 disables (default 0)
    GAMERATING_RATE_BURST     API rate limiter burst (default 1)

A .env file in the working directory is read if present.
`,
		os.Args[0],
	)
}
