package abilitykit

import (
	"context"
)

// Context keys for abilitykit values.
type contextKey string

const (
	contextKeyUserID  contextKey = "abilitykit:user_id"
	contextKeyOrgID   contextKey = "abilitykit:org_id"
	contextKeyRole    contextKey = "abilitykit:role"
	contextKeyAbility contextKey = "abilitykit:ability"
)

// WithUserID adds the acting user id to the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKeyUserID, userID)
}

// GetUserID retrieves the acting user id from context.
// Returns empty string if not set.
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(contextKeyUserID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithOrgID adds the acting organization id to the context.
func WithOrgID(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, contextKeyOrgID, orgID)
}

// GetOrgID retrieves the acting organization id from context.
// Returns empty string if not set.
func GetOrgID(ctx context.Context) string {
	if v := ctx.Value(contextKeyOrgID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// WithRole adds the acting preset role to the context.
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, contextKeyRole, role)
}

// GetRole retrieves the acting preset role from context.
// Returns RoleViewer, the lowest-privilege preset, if not set.
func GetRole(ctx context.Context) Role {
	if v := ctx.Value(contextKeyRole); v != nil {
		if r, ok := v.(Role); ok {
			return r
		}
	}
	return RoleViewer
}

// WithAbility adds an AbilityProvider to the context.
// This is set by middleware and can be retrieved in handlers.
func WithAbility(ctx context.Context, ability AbilityProvider) context.Context {
	return context.WithValue(ctx, contextKeyAbility, ability)
}

// GetAbility retrieves the AbilityProvider from context.
// Returns nil if not set.
func GetAbility(ctx context.Context) AbilityProvider {
	if v := ctx.Value(contextKeyAbility); v != nil {
		if a, ok := v.(AbilityProvider); ok {
			return a
		}
	}
	return nil
}

// FromContext retrieves the AbilityProvider from context.
// Alias for GetAbility for convenience.
func FromContext(ctx context.Context) AbilityProvider {
	return GetAbility(ctx)
}
