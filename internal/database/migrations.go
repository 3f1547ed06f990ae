package database

import (
	"fmt"

	"gorm.io/gorm"
)

// compositeIndexes back the "list my resources, newest first" queries.
var compositeIndexes = []struct {
	table   string
	name    string
	columns string
}{
	{"events", "idx_events_author_data_evento", "author_uid, data_evento"},
	{"flashcards", "idx_flashcards_author_created_at", "author_uid, created_at"},
	{"pomodoros", "idx_pomodoros_author_created_at", "author_uid, created_at"},
	{"resumos", "idx_resumos_author_created_at", "author_uid, created_at"},
}

// AddIndexes creates the composite indexes that struct tags cannot express
// cleanly. Existing indexes are skipped.
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range compositeIndexes {
		if migrator.HasIndex(idx.table, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// MigrateDatabase runs AutoMigrate followed by the extra indexes.
func MigrateDatabase(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	return nil
}
