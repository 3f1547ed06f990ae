package database

import (
	"testing"

	"github.com/sabidos/sabidos-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "sabidos",
		DBPassword: "p@ss",
		DBName:     "sabidos",
		DBSSLMode:  "disable",
	}

	assert.Equal(t, "postgres://sabidos:p%40ss@db:5432/sabidos?sslmode=disable", postgresDSN(cfg))

	cfg.DBDSN = "postgres://override"
	assert.Equal(t, "postgres://override", postgresDSN(cfg))
}

func TestMySQLDSN(t *testing.T) {
	cfg := &config.Config{DBHost: "db", DBPort: "3306", DBUser: "u", DBPassword: "p", DBName: "n"}

	assert.Equal(t, "u:p@tcp(db:3306)/n?charset=utf8mb4&parseTime=True&loc=UTC", mysqlDSN(cfg))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestMigrateDatabase_SQLite(t *testing.T) {
	db, err := Connect(&config.Config{DBDriver: "sqlite", DBDSN: ":memory:?_foreign_keys=on", DBLogLevel: "silent"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, MigrateDatabase(db))
	// second run is a no-op
	require.NoError(t, MigrateDatabase(db))

	for _, table := range []string{"users", "events", "flashcards", "pomodoros", "resumos"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("events", "idx_events_author_data_evento"))
}
