package infra

import (
	"fmt"

	"github.com/engrjeff/kapenatinph/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables. TranslateError is enabled so
// repository callers get gorm.ErrDuplicatedKey / ErrForeignKeyViolated
// instead of raw pgconn errors.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests against a
// throwaway container database.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() ships with pgcrypto on older Postgres
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto extension: %w", err)
	}
	return db.AutoMigrate(
		&model.Store{},
		&model.ProductCategory{},
		&model.Product{},
		&model.ProductVariantOption{},
		&model.ProductVariantOptionValue{},
		&model.ProductVariant{},
		&model.Inventory{},
		&model.Recipe{},
		&model.RecipeIngredient{},
	)
}
