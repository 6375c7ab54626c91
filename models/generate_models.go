package models

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GenerateModels migrates the schema and emits typed query helpers for
// every entity table. Run with GENERATE_MODELS=true; the process exits
// after generation instead of serving.
func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	g.ApplyBasic(
		Post{},
		Tag{},
		Comment{},
		PostTag{},
		Role{},
		User{},
		DailyStat{},
	)

	fmt.Println("Migrating models...")
	if err := db.AutoMigrate(
		&Role{},
		&User{},
		&Post{},
		&Tag{},
		&Comment{},
		&PostTag{},
		&DailyStat{},
	); err != nil {
		fmt.Printf("Error during models migration: %v\n", err)
		os.Exit(1)
	}

	g.Execute()
	fmt.Println("Model generation complete!")
}
