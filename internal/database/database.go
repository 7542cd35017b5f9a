package database

import (
	"fmt"
	"strings"

	"arton360/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func New(databaseURL string) (*Database, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		// SQLite for development
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	} else {
		// PostgreSQL for production
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		roles TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS access_tokens (
		id TEXT PRIMARY KEY,
		token TEXT UNIQUE NOT NULL,
		user_id TEXT NOT NULL,
		one_time BOOLEAN DEFAULT false,
		used_at TIMESTAMP,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		vendor_id TEXT NOT NULL,
		sku TEXT UNIQUE,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		description TEXT,
		type TEXT DEFAULT 'simple',
		status TEXT DEFAULT 'publish',
		price DECIMAL(10,2),
		currency TEXT DEFAULT 'USD',
		category TEXT,
		tags TEXT,
		art_type TEXT,
		style TEXT,
		mature_flag BOOLEAN DEFAULT false,
		canvas_json TEXT,
		print_box TEXT,
		attributes TEXT,
		default_attributes TEXT,
		thumbnail_id TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS variations (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		status TEXT DEFAULT 'publish',
		price DECIMAL(10,2),
		attributes TEXT,
		manage_stock BOOLEAN DEFAULT false,
		virtual BOOLEAN DEFAULT false,
		downloadable BOOLEAN DEFAULT false,
		position INTEGER DEFAULT 0,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS media_assets (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		file_name TEXT NOT NULL,
		file_path TEXT NOT NULL,
		url TEXT NOT NULL,
		thumbnail_url TEXT,
		mime_type TEXT,
		width INTEGER DEFAULT 0,
		height INTEGER DEFAULT 0,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS attribute_terms (
		id TEXT PRIMARY KEY,
		taxonomy TEXT NOT NULL,
		slug TEXT NOT NULL,
		name TEXT NOT NULL,
		position INTEGER DEFAULT 0,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS product_events (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		product_id TEXT NOT NULL,
		payload TEXT,
		notes TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	);
	`

	for _, stmt := range strings.Split(createTablesSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}

	return &Database{DB: db}, nil
}

// SeedDefaultTerms installs the stock color and size axes when the term
// store is empty, so a fresh install can generate variations.
func (d *Database) SeedDefaultTerms(colorTax, sizeTax string) error {
	var count int64
	if err := d.DB.Model(&models.AttributeTerm{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	colors := []string{"white", "black", "red", "gray", "navy"}
	sizes := []string{"s", "m", "l", "xl", "2xl"}

	for i, slug := range colors {
		term := models.AttributeTerm{
			Taxonomy: colorTax,
			Slug:     slug,
			Name:     titleCase(slug),
			Position: i,
		}
		if err := d.DB.Create(&term).Error; err != nil {
			return err
		}
	}
	for i, slug := range sizes {
		term := models.AttributeTerm{
			Taxonomy: sizeTax,
			Slug:     slug,
			Name:     strings.ToUpper(slug),
			Position: i,
		}
		if err := d.DB.Create(&term).Error; err != nil {
			return err
		}
	}

	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
