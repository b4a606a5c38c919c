package database

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/commercekit/ecommerce-api/internal/config"
	"github.com/commercekit/ecommerce-api/internal/models"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a database connection based on the configured DB_TYPE
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "mysql", "mariadb":
		mc := mysqldriver.NewConfig()
		mc.User = cfg.DBUser
		mc.Passwd = cfg.DBPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
		mc.DBName = cfg.DBDatabase
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		dialector = mysql.Open(mc.FormatDSN())

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		dialector = postgres.Open(dsn)

	case "sqlite":
		// For SQLite, DBDatabase is the file path
		dialector = sqlite.Open(cfg.DBDatabase)

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = sqlserver.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
	sqlDB.SetMaxIdleConns(cfg.DBConnectionLimit / 2)

	log.Printf("Connected to %s database: %s", cfg.DBType, cfg.DBDatabase)

	return db, nil
}

// AutoMigrate creates the users, products, orders, and order_product tables
// if they do not already exist. Exposed to handlers through GET /init-db.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
	)
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
