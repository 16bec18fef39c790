// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package favorites

import (
	"context"
	"errors"
	"strings"
)

// Validation messages.
const (
	MsgUserIDRequired  = "Valid userId is required"
	MsgPointIDRequired = "Valid pointId is required"
	MsgActionInvalid   = "Valid action (add, remove, toggle) is required"
)

// ErrManageFailed is the sentinel for every favorites store failure.
var ErrManageFailed = errors.New("failed to manage favorites")

// Action is a favorites mutation.
type Action string

// Supported actions.
const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionToggle Action = "toggle"
)

// Valid reports whether a is a supported action.
func (a Action) Valid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionToggle:
		return true
	default:
		return false
	}
}

// Params is the input to Service.Execute.
type Params struct {
	UserID  string `validate:"required,max=128"`
	PointID string `validate:"required,max=128"`
	Action  Action `validate:"required,oneof=add remove toggle"`
}

func (p Params) normalized() Params {
	return Params{
		UserID:  strings.TrimSpace(p.UserID),
		PointID: strings.TrimSpace(p.PointID),
		Action:  Action(strings.ToLower(strings.TrimSpace(string(p.Action)))),
	}
}

var paramMessages = map[string]string{
	"UserID":  MsgUserIDRequired,
	"PointID": MsgPointIDRequired,
	"Action":  MsgActionInvalid,
}

// Result is the outcome of Execute.
type Result struct {
	UserID  string `json:"user_id"`
	PointID string `json:"point_id"`
	Action  Action `json:"action"`

	// Favorite is the resulting state.
	Favorite bool `json:"favorite"`

	// Changed is false when the action was a no-op.
	Changed bool `json:"changed"`
}

// Store persists favorites in insertion order.
type Store interface {
	// Add reports whether pointID was newly added.
	Add(ctx context.Context, userID, pointID string) (bool, error)

	// Remove reports whether pointID was present.
	Remove(ctx context.Context, userID, pointID string) (bool, error)

	// Toggle adds pointID if absent and removes it otherwise, as one atomic
	// step, and reports whether it is a favorite afterwards.
	Toggle(ctx context.Context, userID, pointID string) (bool, error)

	Contains(ctx context.Context, userID, pointID string) (bool, error)

	// List returns the user's favorite IDs, oldest first. Never nil.
	List(ctx context.Context, userID string) ([]string, error)
}
