package db

import (
	"database/sql"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/yusufkecer/fitness-tracker-backend/internal/config"
)

type migration struct {
	version string
	mysql   string
	sqlite  string
}

func (m migration) statements(driver string) string {
	if driver == config.DriverSQLite {
		return m.sqlite
	}
	return m.mysql
}

var migrations = []migration{
	{
		version: "000_create_exercise_sessions",
		mysql: `
			CREATE TABLE IF NOT EXISTS exercise_sessions (
				id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				user_id       VARCHAR(64) NOT NULL,
				exercise_type VARCHAR(20) NOT NULL,
				exercise_id   INT NOT NULL,
				start_time    DATETIME NOT NULL,
				duration      INT NOT NULL,
				date          VARCHAR(10) NOT NULL,
				INDEX idx_sessions_user_date (user_id, date)
			)`,
		sqlite: `
			CREATE TABLE IF NOT EXISTS exercise_sessions (
				id            INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id       VARCHAR(64) NOT NULL,
				exercise_type VARCHAR(20) NOT NULL,
				exercise_id   INTEGER NOT NULL,
				start_time    DATETIME NOT NULL,
				duration      INTEGER NOT NULL,
				date          VARCHAR(10) NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_sessions_user_date ON exercise_sessions (user_id, date)`,
	},
	{
		version: "001_create_users",
		mysql: `
			CREATE TABLE IF NOT EXISTS users (
				user_id       VARCHAR(64) PRIMARY KEY,
				weight        DOUBLE NOT NULL,
				height        DOUBLE NOT NULL,
				bmi           DOUBLE NOT NULL,
				registered_at DATETIME NOT NULL
			)`,
		sqlite: `
			CREATE TABLE IF NOT EXISTS users (
				user_id       VARCHAR(64) PRIMARY KEY,
				weight        DOUBLE NOT NULL,
				height        DOUBLE NOT NULL,
				bmi           DOUBLE NOT NULL,
				registered_at DATETIME NOT NULL
			)`,
	},
}

func RunMigrations(db *sql.DB, driver string) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		applied, err := isMigrationApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := executeMigration(db, driver, m); err != nil {
			return err
		}

		log.WithField("version", m.version).Info("applied migration")
	}

	return nil
}

func isMigrationApplied(db *sql.DB, version string) (bool, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?",
		version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", version, err)
	}
	return count > 0, nil
}

func executeMigration(db *sql.DB, driver string, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.version, err)
	}

	for _, stmt := range strings.Split(m.statements(driver), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to execute migration %s: %w", m.version, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version) VALUES (?)",
		m.version,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", m.version, err)
	}

	return tx.Commit()
}
