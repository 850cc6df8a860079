package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"liyu1981.xyz/smartfloors-service/pkg/common"
	"liyu1981.xyz/smartfloors-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance opens the database once per process and migrates the schema.
// Later calls return the same instance whatever dialector they pass.
func GetInstance(dialector gorm.Dialector) *DB {
	var l = common.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		l.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		if err := Migrate(conn); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		l.Info("Database migration completed")

		if dialector.Name() == "sqlite" {
			if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
				log.Fatal("Failed to set sqlite journal mode", err)
			}
		}
	})
	return instance
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(&models.Reading{}, &models.Alert{})
}

// Dialector picks a driver from the configured db type: file, memory or postgres.
func Dialector(dbType string) (gorm.Dialector, bool) {
	switch dbType {
	case "file":
		return UseSqliteDialector(), true
	case "memory":
		return UseMemorySqliteDialector(), true
	case "postgres":
		return UsePostgresDialector(), true
	}
	return nil, false
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeySFDbPath); !found {
		dbPath = "smartfloors.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

func UsePostgresDialector() gorm.Dialector {
	return postgres.New(postgres.Config{
		DSN:                  os.Getenv(common.EnvKeySFDbDSN),
		PreferSimpleProtocol: true,
	})
}
