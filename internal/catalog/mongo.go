// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/wayfinder/internal/models"
)

// MongoOptions configures a MongoStore.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string

	// Timeout bounds each operation. Defaults to 10s.
	Timeout time.Duration
}

// MongoStore is a Store backed by a MongoDB collection. Documents use the
// point's bson field names with the ID as _id.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
	logger     zerolog.Logger
}

// NewMongoStore connects, pings and ensures the collection indexes.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewMongoStore(ctx context.Context, opts MongoOptions, logger zerolog.Logger) (*MongoStore, error) {
	if opts.URI == "" {
		return nil, errors.New("mongo uri is required")
	}
	if opts.Database == "" {
		opts.Database = "wayfinder"
	}
	if opts.Collection == "" {
		opts.Collection = "points_of_interest"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.URI).SetTimeout(opts.Timeout))
	if err != nil {
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background()) //nolint:errcheck // cleanup path
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	s := &MongoStore{
		client:     client,
		collection: client.Database(opts.Database).Collection(opts.Collection),
		timeout:    opts.Timeout,
		logger:     logger.With().Str("component", "catalog").Str("backend", "mongo").Logger(),
	}
	if err := s.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background()) //nolint:errcheck // cleanup path
		return nil, err
	}

	s.logger.Info().Str("database", opts.Database).Str("collection", opts.Collection).Msg("MongoDB catalog connected")
	return s, nil
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "rating", Value: -1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create mongo indexes: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping checks the connection.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Count returns the number of stored points.
func (s *MongoStore) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	n, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count points: %w", err)
	}
	return int(n), nil
}

// GetByID implements discovery.CatalogStore.
func (s *MongoStore) GetByID(ctx context.Context, id string) (*models.PointOfInterest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var p models.PointOfInterest
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get point %s: %w", id, err)
	}
	return &p, nil
}

// GetByIDs implements discovery.CatalogStore. Each batch is one $in query.
func (s *MongoStore) GetByIDs(ctx context.Context, ids []string) ([]models.PointOfInterest, error) {
	out := make([]models.PointOfInterest, 0, len(ids))
	for _, chunk := range ChunkIDs(ids, BatchSize) {
		points, err := s.find(ctx, bson.M{"_id": bson.M{"$in": chunk}}, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to get points by id: %w", err)
		}
		out = append(out, points...)
	}
	sortPoints(out)
	return out, nil
}

// GetByCategory implements discovery.CatalogStore.
func (s *MongoStore) GetByCategory(ctx context.Context, category models.Category, limit int) ([]models.PointOfInterest, error) {
	if limit <= 0 {
		return []models.PointOfInterest{}, nil
	}
	points, err := s.find(ctx, bson.M{"category": string(category)}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get points by category: %w", err)
	}
	return points, nil
}

// GetPopular implements discovery.CatalogStore.
func (s *MongoStore) GetPopular(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	if limit <= 0 {
		return []models.PointOfInterest{}, nil
	}
	points, err := s.find(ctx, bson.M{"rating": bson.M{"$gte": PopularMinRating}}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular points: %w", err)
	}
	return points, nil
}

// GetAll implements discovery.CatalogStore.
func (s *MongoStore) GetAll(ctx context.Context, limit int) ([]models.PointOfInterest, error) {
	if limit <= 0 {
		return []models.PointOfInterest{}, nil
	}
	points, err := s.find(ctx, bson.M{}, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get points: %w", err)
	}
	return points, nil
}

// Upsert implements Store with one unordered bulk write of replace-upserts.
func (s *MongoStore) Upsert(ctx context.Context, points ...models.PointOfInterest) error {
	if len(points) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(points))
	for _, p := range dedupeLast(points) {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(p).
			SetUpsert(true))
	}

	if _, err := s.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

// find runs filter in catalog order. limit 0 means unbounded.
func (s *MongoStore) find(ctx context.Context, filter bson.M, limit int) ([]models.PointOfInterest, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := cursor.Close(context.Background()); cerr != nil {
			s.logger.Debug().Err(cerr).Msg("Cursor close failed")
		}
	}()

	points := []models.PointOfInterest{}
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}
	return points, nil
}
