// Command main runs the database seeder for Sticobytes.
package main

import (
	"flag"
	"log"

	"sticobytes/internal/config"
	"sticobytes/internal/database"
	"sticobytes/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", 40, "Number of blog posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d posts, clean=%v\n", *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	admin, err := s.SeedAll(*numPosts)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done. Admin login: %s / admin123", admin.Email)
}
