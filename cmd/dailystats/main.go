package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell-blog/backend/database"
	"github.com/inkwell-blog/backend/services"
)

// Daily engagement job. Run once per day from the scheduler; it folds
// the running view and comment tallies into a dated stats record and
// optionally exports an offsite snapshot.
func main() {
	dateFlag := flag.String("date", "", "day to record as YYYY-MM-DD (default: today)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	day := time.Now()
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			fmt.Printf("Invalid -date %q: %v\n", *dateFlag, err)
			os.Exit(1)
		}
		day = parsed
	}

	db, err := openDB()
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	engine := services.NewEngine(database.New(db))

	stat, err := engine.RunDailyStatsJob(day)
	if err != nil {
		fmt.Printf("Error recording daily stats: %v\n", err)
		os.Exit(1)
	}
	log.Info().
		Int("views", stat.Views).
		Int("comments", stat.Comments).
		Int("cumulativeViews", stat.CumulativeViews).
		Int("cumulativeComments", stat.CumulativeComments).
		Msg("daily stats job complete")

	if bucket := os.Getenv("SNAPSHOT_BUCKET"); bucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		client, err := services.NewS3Client(ctx)
		if err != nil {
			fmt.Printf("Error loading AWS config for snapshot export: %v\n", err)
			os.Exit(1)
		}
		if err := engine.ExportSnapshot(ctx, client, bucket); err != nil {
			fmt.Printf("Error exporting snapshot: %v\n", err)
			os.Exit(1)
		}
	}
}

func openDB() (*gorm.DB, error) {
	if os.Getenv("DB_TYPE") == "sqlite" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "blog.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		os.Getenv("DB_PASSWORD"),
		envOr("DB_NAME", "blog"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
	)
	return gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
