// Package sqlite provides a SQLite implementation of the Storage interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/eventbook-core/internal/domain/entities"
	"github.com/ersonp/eventbook-core/internal/infrastructure/config"
)

// generateUUID returns a new UUID string.
func generateUUID() string {
	return uuid.New().String()
}

// Repository implements ports.Storage using SQLite. Each Save replaces the
// whole snapshot in one transaction; list order is kept in explicit position
// columns.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SnapshotConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Persons, in list order
	CREATE TABLE IF NOT EXISTS persons (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		UNIQUE(name, phone)
	);
	CREATE INDEX IF NOT EXISTS idx_persons_position ON persons(position);

	-- Events, in list order
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		start_time TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		UNIQUE(name, start_time)
	);
	CREATE INDEX IF NOT EXISTS idx_events_position ON events(position);

	-- Links between events and persons
	CREATE TABLE IF NOT EXISTS links (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		person_id TEXT NOT NULL REFERENCES persons(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		UNIQUE(event_id, person_id)
	);
	CREATE INDEX IF NOT EXISTS idx_links_event ON links(event_id);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Save replaces the persisted snapshot in a single transaction.
func (r *Repository) Save(ctx context.Context, snap *entities.Snapshot) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"links", "persons", "events"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	personIDs := make(map[entities.PersonKey]string, len(snap.Persons))
	for i, p := range snap.Persons {
		id := generateUUID()
		personIDs[p.Key()] = id
		tags, merr := json.Marshal(p.Tags)
		if merr != nil {
			return fmt.Errorf("marshaling tags: %w", merr)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO persons (id, position, name, phone, email, address, tags) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, string(p.Name), string(p.Phone), string(p.Email), string(p.Address), string(tags))
		if err != nil {
			return fmt.Errorf("inserting person %s: %w", p.Name, err)
		}
	}

	eventIDs := make(map[entities.EventKey]string, len(snap.Events))
	for i, e := range snap.Events {
		id := generateUUID()
		eventIDs[e.Key()] = id
		tags, merr := json.Marshal(e.Tags)
		if merr != nil {
			return fmt.Errorf("marshaling tags: %w", merr)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO events (id, position, name, address, start_time, tags) VALUES (?, ?, ?, ?, ?, ?)`,
			id, i, string(e.Name), string(e.Address), e.StartTime.String(), string(tags))
		if err != nil {
			return fmt.Errorf("inserting event %s: %w", e.Name, err)
		}
	}

	for _, rec := range snap.Links {
		eventID, ok := eventIDs[rec.Event]
		if !ok {
			return fmt.Errorf("link references unknown event %s", rec.Event.Name)
		}
		for i, key := range rec.Persons {
			personID, ok := personIDs[key]
			if !ok {
				return fmt.Errorf("link references unknown person %s", key.Name)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO links (id, event_id, person_id, position) VALUES (?, ?, ?, ?)`,
				generateUUID(), eventID, personID, i)
			if err != nil {
				return fmt.Errorf("inserting link: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load reads the persisted snapshot. An empty database yields an empty
// snapshot.
func (r *Repository) Load(ctx context.Context) (*entities.Snapshot, error) {
	snap := &entities.Snapshot{}

	persons, err := r.loadPersons(ctx)
	if err != nil {
		return nil, err
	}
	snap.Persons = persons

	events, err := r.loadEvents(ctx)
	if err != nil {
		return nil, err
	}
	snap.Events = events

	links, err := r.loadLinks(ctx)
	if err != nil {
		return nil, err
	}
	snap.Links = links

	return snap, nil
}

func (r *Repository) loadPersons(ctx context.Context) ([]entities.Person, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, phone, email, address, tags FROM persons ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying persons: %w", err)
	}
	defer rows.Close()

	var persons []entities.Person
	for rows.Next() {
		var name, phone, email, address, tagsJSON string
		if err := rows.Scan(&name, &phone, &email, &address, &tagsJSON); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		tags, err := unmarshalTags(tagsJSON)
		if err != nil {
			return nil, fmt.Errorf("person %s: %w", name, err)
		}
		persons = append(persons, entities.Person{
			Name:    entities.Name(name),
			Phone:   entities.Phone(phone),
			Email:   entities.Email(email),
			Address: entities.Address(address),
			Tags:    tags,
		})
	}
	return persons, rows.Err()
}

func (r *Repository) loadEvents(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, address, start_time, tags FROM events ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []entities.Event
	for rows.Next() {
		var name, address, startTime, tagsJSON string
		if err := rows.Scan(&name, &address, &startTime, &tagsJSON); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		start, err := entities.NewDateTime(startTime)
		if err != nil {
			return nil, fmt.Errorf("event %s: invalid start time %q", name, startTime)
		}
		tags, err := unmarshalTags(tagsJSON)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", name, err)
		}
		events = append(events, entities.Event{
			Name:      entities.Name(name),
			Address:   entities.Address(address),
			StartTime: start,
			Tags:      tags,
		})
	}
	return events, rows.Err()
}

func (r *Repository) loadLinks(ctx context.Context) ([]entities.LinkRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.name, e.start_time, p.name, p.phone
		FROM links l
		JOIN events e ON e.id = l.event_id
		JOIN persons p ON p.id = l.person_id
		ORDER BY e.position, l.position`)
	if err != nil {
		return nil, fmt.Errorf("querying links: %w", err)
	}
	defer rows.Close()

	var records []entities.LinkRecord
	for rows.Next() {
		var eventName, eventStart, personName, personPhone string
		if err := rows.Scan(&eventName, &eventStart, &personName, &personPhone); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}
		eventKey := entities.EventKey{Name: entities.Name(eventName), Start: eventStart}
		personKey := entities.PersonKey{Name: entities.Name(personName), Phone: entities.Phone(personPhone)}

		if n := len(records); n > 0 && records[n-1].Event == eventKey {
			records[n-1].Persons = append(records[n-1].Persons, personKey)
		} else {
			records = append(records, entities.LinkRecord{
				Event:   eventKey,
				Persons: []entities.PersonKey{personKey},
			})
		}
	}
	return records, rows.Err()
}

func unmarshalTags(tagsJSON string) ([]entities.Tag, error) {
	if tagsJSON == "" || tagsJSON == "null" {
		return nil, nil
	}
	var tags []entities.Tag
	if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
		return nil, fmt.Errorf("unmarshaling tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}
