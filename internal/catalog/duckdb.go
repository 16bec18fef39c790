// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/models"
)

// MemoryPath opens a private in-memory DuckDB database.
const MemoryPath = ":memory:"

const duckdbQueryTimeout = 30 * time.Second

const poiSchema = `
CREATE TABLE IF NOT EXISTS points_of_interest (
	id              TEXT PRIMARY KEY,
	name            TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	latitude        DOUBLE NOT NULL,
	longitude       DOUBLE NOT NULL,
	category        TEXT NOT NULL,
	rating          DOUBLE NOT NULL,
	price_range     TEXT NOT NULL DEFAULT '',
	tags            TEXT NOT NULL DEFAULT '[]',
	address         TEXT NOT NULL DEFAULT '',
	images          TEXT NOT NULL DEFAULT '[]',
	contact_phone   TEXT,
	contact_website TEXT,
	operating_hours TEXT NOT NULL DEFAULT '{}',
	created_at      TIMESTAMP NOT NULL,
	updated_at      TIMESTAMP NOT NULL
)`

const poiColumns = `id, name, description, latitude, longitude, category, rating,
	price_range, tags, address, images, contact_phone, contact_website,
	operating_hours, created_at, updated_at`

const poiOrder = ` ORDER BY rating DESC, id ASC`

const poiUpsert = `INSERT INTO points_of_interest (` + poiColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	description = EXCLUDED.description,
	latitude = EXCLUDED.latitude,
	longitude = EXCLUDED.longitude,
	category = EXCLUDED.category,
	rating = EXCLUDED.rating,
	price_range = EXCLUDED.price_range,
	tags = EXCLUDED.tags,
	address = EXCLUDED.address,
	images = EXCLUDED.images,
	contact_phone = EXCLUDED.contact_phone,
	contact_website = EXCLUDED.contact_website,
	operating_hours = EXCLUDED.operating_hours,
	updated_at = EXCLUDED.updated_at`

// DuckDBOptions configures a DuckDBStore.
type DuckDBOptions struct {
	// Path is the database file, or MemoryPath.
	Path string

	// MaxMemory is a DuckDB memory limit such as "512MB". Empty uses the DuckDB default.
	MaxMemory string

	// Threads defaults to runtime.NumCPU().
	Threads int
}

// DuckDBStore is a Store backed by an embedded DuckDB database.
type DuckDBStore struct {
	conn   *sql.DB
	logger zerolog.Logger
}

// NewDuckDBStore opens the database and creates the schema.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewDuckDBStore(ctx context.Context, opts DuckDBOptions, logger zerolog.Logger) (*DuckDBStore, error) {
	path := opts.Path
	if path == "" {
		path = MemoryPath
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open("duckdb", duckdbDSN(path, threads, opts.MaxMemory))
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	s := &DuckDBStore{conn: conn, logger: logger.With().Str("component", "catalog").Str("backend", "duckdb").Logger()}
	s.configureConnectionPool(path)

	if err := s.initialize(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize duckdb schema: %w", err)
	}

	s.logger.Info().Str("path", path).Int("threads", threads).Msg("DuckDB catalog opened")
	return s, nil
}

func duckdbDSN(path string, threads int, maxMemory string) string {
	params := []string{
		fmt.Sprintf("threads=%d", threads),
		"autoinstall_known_extensions=false",
		"autoload_known_extensions=false",
	}
	if path != MemoryPath {
		params = append([]string{"access_mode=read_write"}, params...)
	}
	if maxMemory != "" {
		params = append(params, "max_memory="+maxMemory)
	}
	return path + "?" + strings.Join(params, "&")
}

func (s *DuckDBStore) configureConnectionPool(path string) {
	if path == MemoryPath {
		// Every pooled connection must see the same in-memory database.
		s.conn.SetMaxOpenConns(1)
	} else {
		s.conn.SetMaxOpenConns(runtime.NumCPU())
	}
	s.conn.SetMaxIdleConns(2)
	s.conn.SetConnMaxLifetime(time.Hour)
	s.conn.SetConnMaxIdleTime(5 * time.Minute)
}

func (s *DuckDBStore) initialize(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, duckdbQueryTimeout)
	defer cancel()

	_, err := s.conn.ExecContext(ctx, poiSchema)
	return err
}

// Close closes the database.
func (s *DuckDBStore) Close() error {
	return s.conn.Close()
}

// Ping checks the connection.
func (s *DuckDBStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Count returns the number of stored points.
func (s *DuckDBStore) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, duckdbQueryTimeout)
	defer cancel()

	var n int
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM points_of_interest`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count points: %w", err)
	}
	return n, nil
}

// GetByID implements discovery.CatalogStore.
func (s *DuckDBStore) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	ctx, cancel := context.WithTimeout(ctx, duckdbQueryTimeout)
	defer cancel()

	row := s.conn.QueryRowContext(ctx, `SELECT `+poiColumns+` FROM points_of_interest WHERE id = ?`, id)
	p, err := scanPoint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get point %s: %w", id, err)
	}
	return p, nil
}

// GetByIDs implements discovery.CatalogStore.
func (s *DuckDBStore) GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	out := make([]models.PointOfInterest, 0, len(ids))
	for _, chunk := range ChunkIDs(ids, BatchSize) {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(chunk)), ", ")
		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}

		points, err := s.query(ctx, `SELECT `+poiColumns+` FROM points_of_interest WHERE id IN (`+placeholders+`)`, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to get points by id: %w", err)
		}
		out = append(out, points...)
	}
	sortPoints(out)
	return out, nil
}

// GetByCategory implements discovery.CatalogStore.
func (s *DuckDBStore) GetByCategory(ctx context.Context, category models.Category, limit int) ([]models.PointOfInterest, error) {
	points, err := s.query(ctx, `SELECT `+poiColumns+` FROM points_of_interest WHERE category = ?`+poiOrder+` LIMIT ?`,
		string(category), normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get points by category: %w", err)
	}
	return points, nil
}

// GetPopular implements discovery.CatalogStore.
func (s *DuckDBStore) GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	points, err := s.query(ctx, `SELECT `+poiColumns+` FROM points_of_interest WHERE rating >= ?`+poiOrder+` LIMIT ?`,
		PopularMinRating, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get popular points: %w", err)
	}
	return points, nil
}

// GetAll implements discovery.CatalogStore.
func (s *DuckDBStore) GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	points, err := s.query(ctx, `SELECT `+poiColumns+` FROM points_of_interest`+poiOrder+` LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get points: %w", err)
	}
	return points, nil
}

// Upsert implements Store. All points are written in one transaction.
func (s *DuckDBStore) Upsert(ctx context.Context, points ...models.PointOfInterest) error {
	if len(points) == 0 {
		return nil
	}
	points = dedupeLast(points)

	ctx, cancel := context.WithTimeout(ctx, duckdbQueryTimeout)
	defer cancel()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				s.logger.Warn().Err(rbErr).Msg("Rollback failed")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, poiUpsert)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer closeQuietly(stmt)

	for i := range points {
		var args []any
		args, err = pointArgs(&points[i])
		if err != nil {
			return err
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to upsert point %s: %w", points[i].ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert: %w", err)
	}
	return nil
}

func (s *DuckDBStore) query(ctx context.Context, query string, args ...any) ([]models.PointOfInterest, error) {
	ctx, cancel := context.WithTimeout(ctx, duckdbQueryTimeout)
	defer cancel()

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(rows)

	var points []models.PointOfInterest
	for rows.Next() {
		p, err := scanPoint(rows)
		if err != nil {
			return nil, err
		}
		points = append(points, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if points == nil {
		points = []models.PointOfInterest{}
	}
	return points, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoint(row rowScanner) (*models.PointOfInterest, error) {
	var (
		p                    models.PointOfInterest
		category, priceRange string
		tags, images, hours  string
		phone, website       sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description,
		&p.Coordinates.Latitude, &p.Coordinates.Longitude,
		&category, &p.Rating, &priceRange,
		&tags, &p.Address, &images,
		&phone, &website, &hours,
		&p.Metadata.CreatedAt, &p.Metadata.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Category = models.Category(category)
	p.PriceRange = models.PriceRange(priceRange)
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags for %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images for %s: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(hours), &p.OperatingHours); err != nil {
		return nil, fmt.Errorf("failed to decode operating hours for %s: %w", p.ID, err)
	}
	if len(p.Images) == 0 {
		p.Images = nil
	}
	if len(p.OperatingHours) == 0 {
		p.OperatingHours = nil
	}
	if phone.Valid || website.Valid {
		p.ContactInfo = &models.ContactInfo{Phone: phone.String, Website: website.String}
	}
	return &p, nil
}

func pointArgs(p *models.PointOfInterest) ([]any, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags for %s: %w", p.ID, err)
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images for %s: %w", p.ID, err)
	}
	hours := p.OperatingHours
	if hours == nil {
		hours = map[string]string{}
	}
	hoursJSON, err := json.Marshal(hours)
	if err != nil {
		return nil, fmt.Errorf("failed to encode operating hours for %s: %w", p.ID, err)
	}

	var phone, website sql.NullString
	if p.ContactInfo != nil {
		phone = sql.NullString{String: p.ContactInfo.Phone, Valid: true}
		website = sql.NullString{String: p.ContactInfo.Website, Valid: true}
	}

	created, updated := p.Metadata.CreatedAt, p.Metadata.UpdatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	if updated.IsZero() {
		updated = created
	}

	return []any{
		p.ID, p.Name, p.Description,
		p.Coordinates.Latitude, p.Coordinates.Longitude,
		string(p.Category), p.Rating, string(p.PriceRange),
		string(tagsJSON), p.Address, string(imagesJSON),
		phone, website, string(hoursJSON),
		created.UTC(), updated.UTC(),
	}, nil
}

// closeQuietly closes c and discards the error. Used on cleanup paths where
// the primary error is already being returned.
func closeQuietly(c io.Closer) {
	_ = c.Close() //nolint:errcheck // cleanup path
}
