package abilitykit

import (
	"context"
)

// Session is the snapshot the session store supplies for the authenticated
// user. PermissionStrings may be empty before the backend has answered the
// first policy poll; bootstrap then falls back to the preset for RoleCode.
type Session struct {
	UserID            string
	OrganizationID    string
	RoleCode          string
	EventIDs          []string
	PermissionStrings []string
}

// SessionSource returns the current session snapshot. The engine treats the
// transport as opaque: an HTTP client, a cached snapshot or a test stub are
// all acceptable providers.
type SessionSource interface {
	Snapshot(ctx context.Context) (Session, error)
}

// SessionSourceFunc adapts a plain function to a SessionSource.
type SessionSourceFunc func(ctx context.Context) (Session, error)

// Snapshot implements SessionSource.
func (f SessionSourceFunc) Snapshot(ctx context.Context) (Session, error) {
	return f(ctx)
}

// AbilityProvider answers authorization queries. Implemented by Ability and
// SessionAbility; consumers that only gate should depend on this interface.
type AbilityProvider interface {
	Can(action Action, subject Subject, data map[string]any) bool
	Cannot(action Action, subject Subject, data map[string]any) bool
}
