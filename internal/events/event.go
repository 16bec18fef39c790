// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// DefaultTopic carries FavoriteChanged events.
const DefaultTopic = "wayfinder.favorites"

// FavoriteChanged records a change to a user's favorites.
type FavoriteChanged struct {
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	PointID   string    `json:"point_id"`
	Action    string    `json:"action"`
	Favorite  bool      `json:"favorite"`
	Timestamp time.Time `json:"timestamp"`
}

// NewFavoriteChanged stamps a new event with a random ID and the current time.
func NewFavoriteChanged(userID, pointID, action string, favorite bool) FavoriteChanged {
	return FavoriteChanged{
		EventID:   uuid.New().String(),
		UserID:    userID,
		PointID:   pointID,
		Action:    action,
		Favorite:  favorite,
		Timestamp: time.Now().UTC(),
	}
}

// Validate checks the fields every consumer relies on.
func (e *FavoriteChanged) Validate() error {
	switch {
	case e.EventID == "":
		return errors.New("event_id is required")
	case e.UserID == "":
		return errors.New("user_id is required")
	case e.PointID == "":
		return errors.New("point_id is required")
	case e.Timestamp.IsZero():
		return errors.New("timestamp is required")
	}
	return nil
}

// Encode returns the JSON payload.
func (e *FavoriteChanged) Encode() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}
	return json.Marshal(e)
}

// DecodeFavoriteChanged parses and validates a payload.
func DecodeFavoriteChanged(payload []byte) (*FavoriteChanged, error) {
	var e FavoriteChanged
	if err := json.Unmarshal(payload, &e); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid event: %w", err)
	}
	return &e, nil
}
