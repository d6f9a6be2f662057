// Package filestore provides a plain-file storage implementation backed by
// diskv. Records are JSON documents under kind directories (items,
// templates, users), so a planner directory can be inspected and synced
// with ordinary file tools.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"mochi/internal/schedule"
)

const (
	kindItems     = "items"
	kindTemplates = "templates"
	kindUsers     = "users"
)

// Store implements schedule.Repository on top of a diskv tree.
type Store struct {
	d *diskv.Diskv
}

// itemRecord wraps an Item with its insertion sequence, since files carry
// no ordering of their own.
type itemRecord struct {
	Seq  int64         `json:"seq"`
	Item schedule.Item `json:"item"`
}

type templateRecord struct {
	Seq      int64             `json:"seq"`
	Template schedule.Template `json:"template"`
}

type userRecord struct {
	Seq  int64         `json:"seq"`
	User schedule.User `json:"user"`
}

// New creates a file store rooted at basePath.
func New(basePath string) (*Store, error) {
	if basePath == "" {
		return nil, fmt.Errorf("filestore base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	return &Store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPath,
		InverseTransform:  pathToKey,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

// keyToPath splits "kind/id" keys into a kind directory and an id file.
// IDs are uuids, so the slash is a safe separator.
func keyToPath(key string) *diskv.PathKey {
	idx := strings.IndexByte(key, '/')
	if idx < 0 {
		return &diskv.PathKey{FileName: key}
	}
	return &diskv.PathKey{
		Path:     []string{key[:idx]},
		FileName: key[idx+1:],
	}
}

func pathToKey(pk *diskv.PathKey) string {
	if len(pk.Path) == 0 {
		return pk.FileName
	}
	return pk.Path[0] + "/" + pk.FileName
}

func key(kind, id string) string { return kind + "/" + id }

// nextSeq returns a sequence number past every existing record of a kind.
func (s *Store) nextSeq(ctx context.Context, kind string) int64 {
	var max int64
	for k := range s.d.KeysPrefix(kind+"/", ctx.Done()) {
		raw, err := s.d.Read(k)
		if err != nil {
			continue
		}
		var probe struct {
			Seq int64 `json:"seq"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil && probe.Seq > max {
			max = probe.Seq
		}
	}
	return max + 1
}

// ListItems returns every stored item in insertion order.
func (s *Store) ListItems(ctx context.Context) ([]schedule.Item, error) {
	var records []itemRecord
	for k := range s.d.KeysPrefix(kindItems+"/", ctx.Done()) {
		raw, err := s.d.Read(k)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", k, err)
		}
		var rec itemRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", k, err)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })

	items := make([]schedule.Item, len(records))
	for i, rec := range records {
		items[i] = rec.Item
	}
	return items, nil
}

// PutItems inserts or replaces items by ID. New items are appended to the
// sequence; replaced items keep their position.
func (s *Store) PutItems(ctx context.Context, items ...schedule.Item) error {
	seq := int64(0)
	for _, it := range items {
		rec := itemRecord{Item: it}

		k := key(kindItems, it.ID)
		if raw, err := s.d.Read(k); err == nil {
			var old itemRecord
			if err := json.Unmarshal(raw, &old); err == nil {
				rec.Seq = old.Seq
			}
		}
		if rec.Seq == 0 {
			if seq == 0 {
				seq = s.nextSeq(ctx, kindItems)
			}
			rec.Seq = seq
			seq++
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding item %s: %w", it.ID, err)
		}
		if err := s.d.Write(k, data); err != nil {
			return fmt.Errorf("writing item %s: %w", it.ID, err)
		}
	}
	return nil
}

// DeleteItem removes an item. Deleting an absent ID is not an error.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	k := key(kindItems, id)
	if !s.d.Has(k) {
		return nil
	}
	if err := s.d.Erase(k); err != nil {
		return fmt.Errorf("erasing item %s: %w", id, err)
	}
	return nil
}

// ListTemplates returns all sticker templates in insertion order.
func (s *Store) ListTemplates(ctx context.Context) ([]schedule.Template, error) {
	var records []templateRecord
	for k := range s.d.KeysPrefix(kindTemplates+"/", ctx.Done()) {
		raw, err := s.d.Read(k)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", k, err)
		}
		var rec templateRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", k, err)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })

	templates := make([]schedule.Template, len(records))
	for i, rec := range records {
		templates[i] = rec.Template
	}
	return templates, nil
}

// PutTemplate inserts or replaces a template.
func (s *Store) PutTemplate(ctx context.Context, t schedule.Template) error {
	rec := templateRecord{Template: t}

	k := key(kindTemplates, t.ID)
	if raw, err := s.d.Read(k); err == nil {
		var old templateRecord
		if err := json.Unmarshal(raw, &old); err == nil {
			rec.Seq = old.Seq
		}
	}
	if rec.Seq == 0 {
		rec.Seq = s.nextSeq(ctx, kindTemplates)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding template %s: %w", t.ID, err)
	}
	if err := s.d.Write(k, data); err != nil {
		return fmt.Errorf("writing template %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTemplate removes a template.
func (s *Store) DeleteTemplate(ctx context.Context, id string) error {
	k := key(kindTemplates, id)
	if !s.d.Has(k) {
		return nil
	}
	if err := s.d.Erase(k); err != nil {
		return fmt.Errorf("erasing template %s: %w", id, err)
	}
	return nil
}

// ListUsers returns all planner profiles in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]schedule.User, error) {
	var records []userRecord
	for k := range s.d.KeysPrefix(kindUsers+"/", ctx.Done()) {
		raw, err := s.d.Read(k)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", k, err)
		}
		var rec userRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", k, err)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Seq < records[j].Seq })

	users := make([]schedule.User, len(records))
	for i, rec := range records {
		users[i] = rec.User
	}
	return users, nil
}

// PutUser inserts or replaces a profile.
func (s *Store) PutUser(ctx context.Context, u schedule.User) error {
	rec := userRecord{User: u}

	k := key(kindUsers, u.ID)
	if raw, err := s.d.Read(k); err == nil {
		var old userRecord
		if err := json.Unmarshal(raw, &old); err == nil {
			rec.Seq = old.Seq
		}
	}
	if rec.Seq == 0 {
		rec.Seq = s.nextSeq(ctx, kindUsers)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding user %s: %w", u.ID, err)
	}
	if err := s.d.Write(k, data); err != nil {
		return fmt.Errorf("writing user %s: %w", u.ID, err)
	}
	return nil
}

// Close is a no-op; diskv holds no open handles between operations.
func (s *Store) Close() error { return nil }
