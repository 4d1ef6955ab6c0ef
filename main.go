package main

import (
	"fmt"
	"log"
	"os"

	"github.com/facsched/planner/internal/config"
	"github.com/facsched/planner/internal/database"
	"github.com/facsched/planner/internal/demo"
)

func main() {
	command := "init"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "init":
		cfg := config.NewConfig()
		db, err := database.NewDatabase(cfg.Database.Path)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()
		log.Printf("Schema ready at %s", cfg.Database.Path)

	case "demo":
		dbPath := demo.DefaultDatabasePath
		if len(os.Args) > 2 {
			dbPath = os.Args[2]
		}
		log.Printf("Generating demo database at %s...", dbPath)
		if err := demo.Generate(dbPath); err != nil {
			log.Fatalf("Failed to generate demo database: %v", err)
		}
		log.Println("Demo database generated successfully!")

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  init   Create or migrate the planner database (default)\n")
	fmt.Fprintf(os.Stderr, "  demo   Seed a sample database (default path %s)\n", demo.DefaultDatabasePath)
}
