package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"log"
	"os"
)

// Databases holds the two logical databases the platform uses: account data
// lives apart from the content catalogs and anonymous quiz sessions.
type Databases struct {
	User    *gorm.DB
	Catalog *gorm.DB
}

func InitDatabases() *Databases {
	return &Databases{
		User:    open(os.Getenv("USER_POSTGRES_URL")),
		Catalog: open(os.Getenv("CATALOG_POSTGRES_URL")),
	}
}

func open(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}
	return db
}

func CloseDatabases(dbs *Databases) {
	for _, db := range []*gorm.DB{dbs.User, dbs.Catalog} {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("Error getting database instance: %v", err)
			continue
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}
}
