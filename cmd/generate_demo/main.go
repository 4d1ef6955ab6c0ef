// Command generate_demo creates a demo database with a sample faculty
// member, students, published office hours, enrollments and consultation
// requests.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"

	"github.com/facsched/planner/internal/demo"
)

func main() {
	dbPath := flag.String("db", demo.DefaultDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)
	if err := demo.Generate(*dbPath); err != nil {
		log.Fatalf("Failed to generate demo database: %v", err)
	}
	log.Println("Demo database generated successfully!")
}
