package abilitykit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestContextUserID tests user id plumbing
func TestContextUserID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetUserID(ctx))

	ctx = WithUserID(ctx, "user-1")
	assert.Equal(t, "user-1", GetUserID(ctx))
}

// TestContextOrgID tests organization id plumbing
func TestContextOrgID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetOrgID(ctx))

	ctx = WithOrgID(ctx, "org-1")
	assert.Equal(t, "org-1", GetOrgID(ctx))
}

// TestContextRole tests role plumbing and its safe default
func TestContextRole(t *testing.T) {
	ctx := context.Background()

	// Missing role degrades to the lowest privilege preset.
	assert.Equal(t, RoleViewer, GetRole(ctx))

	ctx = WithRole(ctx, RoleManager)
	assert.Equal(t, RoleManager, GetRole(ctx))
}

// TestContextAbility tests ability plumbing
func TestContextAbility(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetAbility(ctx))
	assert.Nil(t, FromContext(ctx))

	ability := NewAbility([]Rule{{Action: ActionRead, Subject: SubjectEvent}})
	ctx = WithAbility(ctx, ability)

	got := GetAbility(ctx)
	require.NotNil(t, got)
	assert.True(t, got.Can(ActionRead, SubjectEvent, nil))
	assert.Equal(t, got, FromContext(ctx))
}

// TestContextAbilitySessionHolder tests that a SessionAbility satisfies the provider contract
func TestContextAbilitySessionHolder(t *testing.T) {
	session := NewSessionAbility()
	session.Replace(FallbackRules("user-1"))

	ctx := WithAbility(context.Background(), session)

	got := GetAbility(ctx)
	require.NotNil(t, got)
	assert.True(t, got.Can(ActionRead, SubjectUser, map[string]any{"id": "user-1"}))
}
