package db

import "fmt"

// migrate runs database migrations. The seq columns keep insertion order,
// which the store relies on for deterministic snapping and rendering.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS items (
			seq                INTEGER PRIMARY KEY AUTOINCREMENT,
			id                 TEXT NOT NULL UNIQUE,
			user_id            TEXT NOT NULL,
			template_id        TEXT NOT NULL DEFAULT '',
			title              TEXT NOT NULL,
			color              TEXT NOT NULL DEFAULT '',
			start_time         INTEGER NOT NULL,
			duration           INTEGER NOT NULL DEFAULT 0,
			day_index          INTEGER NOT NULL CHECK(day_index BETWEEN 0 AND 6),
			week_id            TEXT NOT NULL,
			completion         INTEGER NOT NULL DEFAULT 0,
			is_recurring       INTEGER NOT NULL DEFAULT 0,
			type               TEXT NOT NULL DEFAULT 'block' CHECK(type IN ('block', 'marker')),
			marker_type        TEXT CHECK(marker_type IN ('wake', 'sleep')),
			exclude_from_stats INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_items_user_week ON items(user_id, week_id);

		CREATE TABLE IF NOT EXISTS templates (
			seq              INTEGER PRIMARY KEY AUTOINCREMENT,
			id               TEXT NOT NULL UNIQUE,
			name             TEXT NOT NULL,
			color            TEXT NOT NULL DEFAULT '',
			icon             TEXT NOT NULL DEFAULT '',
			default_duration INTEGER NOT NULL DEFAULT 60
		);

		CREATE TABLE IF NOT EXISTS users (
			seq    INTEGER PRIMARY KEY AUTOINCREMENT,
			id     TEXT NOT NULL UNIQUE,
			name   TEXT NOT NULL,
			avatar TEXT NOT NULL DEFAULT '',
			theme  TEXT NOT NULL DEFAULT ''
		);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
