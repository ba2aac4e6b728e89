// Command migrate applies the database schema.
package main

import (
	"flag"
	"fmt"
	"log"

	"devconnect/internal/config"
	"devconnect/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	// Connect already migrates outside production; running it here
	// again is harmless and covers the production path.
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	log.Println("schema applied")
	return nil
}
