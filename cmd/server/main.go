package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "warehouse-backend",
		Usage:  "read-only warehouse tracking API",
		Action: serveAction,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migrate, optionally seed, and serve the HTTP API (default)",
				Action: serveAction,
			},
			{
				Name:   "migrate",
				Usage:  "create missing tables and exit",
				Action: migrateAction,
			},
			{
				Name:   "seed",
				Usage:  "migrate and insert sample data if the store is empty, then exit",
				Action: seedAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
