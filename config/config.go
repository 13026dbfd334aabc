package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database selected by DB_DRIVER. The default is an on-disk
// sqlite file so the generator runs without any external service; set
// DB_DRIVER=mysql and DB_DSN for a shared database.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	switch driver {
	case "mysql":
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		if dsn == "" {
			dsn = "receipts.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}
