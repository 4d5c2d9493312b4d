package config

import (
	"log"
	"os"

	"cafe-counter-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret signs tokens. Read from env with a development fallback.
var JWTSecret = []byte(getEnv("JWT_SECRET", "cafe_counter_super_secret_2026"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads a local .env file if present. Missing files are fine;
// real deployments set the environment directly.
func Load() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "cafe_counter_super_secret_2026"))
}

// InitDB opens the sqlite store and migrates the schema. A store that
// cannot be reached at boot is fatal to the whole process; later
// failures are surfaced per operation.
func InitDB() *gorm.DB {
	path := getEnv("SQLITE_PATH", "cafe_counter.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
	return db
}
