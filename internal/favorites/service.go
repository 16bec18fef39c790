// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package favorites

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfinder/internal/discovery"
	"github.com/tomtom215/wayfinder/internal/events"
	"github.com/tomtom215/wayfinder/internal/logging"
	"github.com/tomtom215/wayfinder/internal/metrics"
	"github.com/tomtom215/wayfinder/internal/models"
	"github.com/tomtom215/wayfinder/internal/validation"
)

// EventPublisher receives favorite state changes.
type EventPublisher interface {
	PublishFavoriteChanged(ctx context.Context, event events.FavoriteChanged) error
}

// Service implements the favorites use cases.
type Service struct {
	store     Store
	catalog   discovery.CatalogStore
	publisher EventPublisher
	logger    zerolog.Logger
}

// NewService wires a favorites store to the catalog. publisher may be nil.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewService(store Store, catalog discovery.CatalogStore, publisher EventPublisher, logger zerolog.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("favorites store is required")
	}
	if catalog == nil {
		return nil, errors.New("catalog store is required")
	}
	return &Service{
		store:     store,
		catalog:   catalog,
		publisher: publisher,
		logger:    logging.Component(logger, "favorites"),
	}, nil
}

// Execute applies params.Action and returns the resulting state.
func (s *Service) Execute(ctx context.Context, params Params) (*Result, error) {
	params = params.normalized()
	if err := validate(params); err != nil {
		metrics.RecordFavorite(actionLabel(params.Action), err)
		return nil, err
	}

	result, err := s.apply(ctx, params)
	metrics.RecordFavorite(string(params.Action), err)
	if err != nil {
		return nil, s.storeFailed(ctx, params, err)
	}

	if result.Changed {
		s.publish(ctx, result)
	}
	return result, nil
}

func (s *Service) apply(ctx context.Context, p Params) (*Result, error) {
	result := &Result{UserID: p.UserID, PointID: p.PointID, Action: p.Action}

	switch p.Action {
	case ActionToggle:
		favorite, err := s.store.Toggle(ctx, p.UserID, p.PointID)
		if err != nil {
			return nil, err
		}
		result.Favorite, result.Changed = favorite, true
	case ActionAdd:
		added, err := s.store.Add(ctx, p.UserID, p.PointID)
		if err != nil {
			return nil, err
		}
		result.Favorite, result.Changed = true, added
	case ActionRemove:
		removed, err := s.store.Remove(ctx, p.UserID, p.PointID)
		if err != nil {
			return nil, err
		}
		result.Favorite, result.Changed = false, removed
	}
	return result, nil
}

// IsFavorite reports whether pointID is one of the user's favorites.
func (s *Service) IsFavorite(ctx context.Context, userID, pointID string) (bool, error) {
	p := Params{UserID: userID, PointID: pointID, Action: ActionAdd}.normalized()
	if err := validate(p); err != nil {
		return false, err
	}
	ok, err := s.store.Contains(ctx, p.UserID, p.PointID)
	if err != nil {
		return false, s.storeFailed(ctx, p, err)
	}
	return ok, nil
}

// IDs returns the user's favorite point IDs, oldest first.
func (s *Service) IDs(ctx context.Context, userID string) ([]string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, &discovery.ValidationError{Field: "UserID", Message: MsgUserIDRequired}
	}
	ids, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, s.storeFailed(ctx, Params{UserID: userID}, err)
	}
	return ids, nil
}

// Favorites resolves the user's favorites through the catalog, keeping the
// favorite order. IDs no longer in the catalog are skipped.
func (s *Service) Favorites(ctx context.Context, userID string) ([]models.PointOfInterest, error) {
	ids, err := s.IDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.PointOfInterest{}, nil
	}

	found, err := s.catalog.GetByIDs(ctx, ids)
	if err != nil {
		return nil, s.storeFailed(ctx, Params{UserID: userID}, err)
	}

	byID := make(map[string]models.PointOfInterest, len(found))
	for i := range found {
		byID[found[i].ID] = found[i]
	}
	out := make([]models.PointOfInterest, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) publish(ctx context.Context, r *Result) {
	if s.publisher == nil {
		return
	}
	event := events.NewFavoriteChanged(r.UserID, r.PointID, string(r.Action), r.Favorite)
	if err := s.publisher.PublishFavoriteChanged(ctx, event); err != nil {
		s.logger.Warn().Err(err).
			Str("event_id", event.EventID).
			Str("user_id", r.UserID).
			Str("point_id", r.PointID).
			Msg("Failed to publish favorite change")
	}
}

func (s *Service) storeFailed(ctx context.Context, p Params, cause error) error {
	logger := s.logger.With().Str("request_id", logging.RequestIDFromContext(ctx)).Logger()
	logger.Error().Err(cause).
		Str("user_id", p.UserID).
		Str("point_id", p.PointID).
		Str("action", string(p.Action)).
		Msg("favorites store call failed")
	return discovery.NewRepositoryError(ErrManageFailed, cause)
}

func validate(p Params) error {
	verr := validation.ValidateStructWithMessages(p, paramMessages)
	if verr == nil {
		return nil
	}
	first := verr.First()
	if first == nil {
		return &discovery.ValidationError{Message: verr.Error()}
	}
	return &discovery.ValidationError{Field: first.Field(), Message: first.Error()}
}

// actionLabel bounds the metrics label cardinality for rejected input.
func actionLabel(a Action) string {
	if a.Valid() {
		return string(a)
	}
	return "invalid"
}
