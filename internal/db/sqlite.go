// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"mochi/internal/schedule"
)

// SQLite implements schedule.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ListItems returns every stored item, oldest first.
func (s *SQLite) ListItems(ctx context.Context) ([]schedule.Item, error) {
	query := `
		SELECT id, user_id, template_id, title, color, start_time, duration,
		       day_index, week_id, completion, is_recurring, type, marker_type,
		       exclude_from_stats
		FROM items
		ORDER BY seq
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []schedule.Item
	for rows.Next() {
		var (
			it         schedule.Item
			markerType sql.NullString
		)
		if err := rows.Scan(
			&it.ID, &it.UserID, &it.TemplateID, &it.Title, &it.Color,
			&it.StartTime, &it.Duration, &it.DayIndex, &it.WeekID,
			&it.Completion, &it.IsRecurring, &it.Type, &markerType,
			&it.ExcludeFromStats,
		); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		it.MarkerType = schedule.MarkerType(markerType.String)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// PutItems inserts or replaces items by ID in one transaction.
func (s *SQLite) PutItems(ctx context.Context, items ...schedule.Item) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO items (
			id, user_id, template_id, title, color, start_time, duration,
			day_index, week_id, completion, is_recurring, type, marker_type,
			exclude_from_stats
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			template_id = excluded.template_id,
			title = excluded.title,
			color = excluded.color,
			start_time = excluded.start_time,
			duration = excluded.duration,
			day_index = excluded.day_index,
			week_id = excluded.week_id,
			completion = excluded.completion,
			is_recurring = excluded.is_recurring,
			type = excluded.type,
			marker_type = excluded.marker_type,
			exclude_from_stats = excluded.exclude_from_stats
	`

	for _, it := range items {
		markerType := sql.NullString{String: string(it.MarkerType), Valid: it.MarkerType != ""}
		if _, err := tx.ExecContext(ctx, query,
			it.ID, it.UserID, it.TemplateID, it.Title, it.Color,
			it.StartTime, it.Duration, it.DayIndex, it.WeekID,
			it.Completion, it.IsRecurring, it.Type, markerType,
			it.ExcludeFromStats,
		); err != nil {
			return fmt.Errorf("upserting item %s: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing items: %w", err)
	}
	return nil
}

// DeleteItem removes an item. Deleting an absent ID is not an error.
func (s *SQLite) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting item %s: %w", id, err)
	}
	return nil
}

// ListTemplates returns all sticker templates.
func (s *SQLite) ListTemplates(ctx context.Context) ([]schedule.Template, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, color, icon, default_duration FROM templates ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var templates []schedule.Template
	for rows.Next() {
		var t schedule.Template
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Icon, &t.DefaultDuration); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating templates: %w", err)
	}
	return templates, nil
}

// PutTemplate inserts or replaces a template.
func (s *SQLite) PutTemplate(ctx context.Context, t schedule.Template) error {
	query := `
		INSERT INTO templates (id, name, color, icon, default_duration)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			color = excluded.color,
			icon = excluded.icon,
			default_duration = excluded.default_duration
	`
	if _, err := s.db.ExecContext(ctx, query, t.ID, t.Name, t.Color, t.Icon, t.DefaultDuration); err != nil {
		return fmt.Errorf("upserting template %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTemplate removes a template.
func (s *SQLite) DeleteTemplate(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting template %s: %w", id, err)
	}
	return nil
}

// ListUsers returns all planner profiles.
func (s *SQLite) ListUsers(ctx context.Context) ([]schedule.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, avatar, theme FROM users ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []schedule.User
	for rows.Next() {
		var u schedule.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Avatar, &u.Theme); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}
	return users, nil
}

// PutUser inserts or replaces a profile.
func (s *SQLite) PutUser(ctx context.Context, u schedule.User) error {
	query := `
		INSERT INTO users (id, name, avatar, theme)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			avatar = excluded.avatar,
			theme = excluded.theme
	`
	if _, err := s.db.ExecContext(ctx, query, u.ID, u.Name, u.Avatar, u.Theme); err != nil {
		return fmt.Errorf("upserting user %s: %w", u.ID, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}
