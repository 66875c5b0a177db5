package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mealplanner/database"
	"mealplanner/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to create")

	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)
	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := utils.SeedDemoData(*numUsers); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		log.Println("Seeding completed")
	case "check":
		checkCmd.Parse(os.Args[2:])
		count, err := utils.CheckSeededUsers()
		if err != nil {
			log.Fatalf("Check failed: %v", err)
		}
		log.Printf("Found %d seeded users", count)
	case "delete":
		deleteCmd.Parse(os.Args[2:])
		if err := utils.DeleteSeededUsers(); err != nil {
			log.Fatalf("Delete failed: %v", err)
		}
		log.Println("Seed data deleted")
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  seed   --users N   Create demo users, profiles and recipes")
	fmt.Println("  check              Count seeded users")
	fmt.Println("  delete             Remove seeded users and their data")
}
