package main

import (
	"carbontrack/database"
	"carbontrack/internal/models"
	"carbontrack/internal/utils"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numActivities := seedCmd.Int("count", utils.DefaultNumActivities, "Number of sample activities to create")
	seedUser := seedCmd.String("user", models.DefaultUserID, "User id to seed activities for")
	daysBack := seedCmd.Int("days", 30, "Spread activity dates across the last N days")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)
	clearUser := clearCmd.String("user", models.DefaultUserID, "User id to clear activities for")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := utils.SeedActivities(*numActivities, *seedUser, *daysBack); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	case "clear":
		clearCmd.Parse(os.Args[2:])
		if err := utils.ClearActivities(*clearUser); err != nil {
			log.Fatalf("Clearing failed: %v", err)
		}
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  seed   Insert randomized sample activities")
	fmt.Println("         --count N   number of activities (default 100)")
	fmt.Println("         --user ID   target user id (default default-user)")
	fmt.Println("         --days N    spread dates across the last N days (default 30)")
	fmt.Println("  clear  Delete all activities for a user")
	fmt.Println("         --user ID   target user id (default default-user)")
}
