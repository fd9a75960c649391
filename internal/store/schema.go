package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Table and column names are kept compatible with earlier releases so an
// existing database keeps working after an upgrade.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		email TEXT UNIQUE,
		created_at TEXT NOT NULL,
		last_login TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id INTEGER PRIMARY KEY,
		full_name TEXT NOT NULL,
		class_number INTEGER NOT NULL,
		language TEXT NOT NULL,
		subjects TEXT NOT NULL,
		date_of_birth TEXT,
		phone_number TEXT,
		parent_phone TEXT,
		FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS user_stats (
		user_id INTEGER PRIMARY KEY,
		current_streak INTEGER NOT NULL DEFAULT 0,
		longest_streak INTEGER NOT NULL DEFAULT 0,
		total_xp INTEGER NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 1,
		badges TEXT NOT NULL DEFAULT '[]',
		last_activity_date TEXT,
		FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS doubts_history (
		doubt_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		subject TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		language TEXT NOT NULL,
		asked_at TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS test_results (
		result_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		subject TEXT NOT NULL,
		score INTEGER NOT NULL,
		total INTEGER NOT NULL,
		taken_at TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS enhanced_test_results (
		result_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		subject TEXT NOT NULL,
		level TEXT NOT NULL,
		total_marks INTEGER NOT NULL,
		obtained_marks INTEGER NOT NULL,
		percentage REAL NOT NULL,
		correct_answers INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		answers TEXT NOT NULL,
		completed_at TEXT NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(user_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS llm_requests (
		request_id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		provider TEXT NOT NULL,
		model TEXT NOT NULL,
		purpose TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		success INTEGER NOT NULL,
		error TEXT,
		request TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_doubts_user ON doubts_history(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_results_user ON enhanced_test_results(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_results_subject ON enhanced_test_results(user_id, subject)`,
}

func initSchema(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
