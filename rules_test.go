package abilitykit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseScope tests scope token recognition
func TestParseScope(t *testing.T) {
	tests := []struct {
		token string
		scope Scope
		ok    bool
	}{
		{"own", ScopeOwn, true},
		{"org", ScopeOrg, true},
		{"assigned", ScopeAssigned, true},
		{"any", ScopeAny, true},
		{"none", ScopeNone, true},
		{"galaxy", "", false},
		{"", "", false},
		{"Own", "", false}, // scope tokens are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			scope, ok := ParseScope(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.scope, scope)
		})
	}
}

// TestRuleMatches tests rule relevance for action/subject pairs
func TestRuleMatches(t *testing.T) {
	tests := []struct {
		name    string
		rule    Rule
		action  Action
		subject Subject
		want    bool
	}{
		{"exact pair", Rule{Action: ActionRead, Subject: SubjectEvent}, ActionRead, SubjectEvent, true},
		{"wrong action", Rule{Action: ActionRead, Subject: SubjectEvent}, ActionDelete, SubjectEvent, false},
		{"wrong subject", Rule{Action: ActionRead, Subject: SubjectEvent}, ActionRead, SubjectAttendee, false},
		{"manage covers any action", Rule{Action: ActionManage, Subject: SubjectEvent}, ActionCheckin, SubjectEvent, true},
		{"all covers any subject", Rule{Action: ActionRead, Subject: SubjectAll}, ActionRead, SubjectBadge, true},
		{"manage all covers everything", Rule{Action: ActionManage, Subject: SubjectAll}, Action("archive"), Subject("Kiosk"), true},
		{"queried manage is not a wildcard", Rule{Action: ActionRead, Subject: SubjectEvent}, ActionManage, SubjectEvent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.matches(tt.action, tt.subject))
		})
	}
}

// TestIn tests membership condition construction
func TestIn(t *testing.T) {
	t.Run("In builds a membership value", func(t *testing.T) {
		v := In("evt_1", "evt_2")
		cond, ok := v.(inCondition)
		assert.True(t, ok)
		assert.Equal(t, []any{"evt_1", "evt_2"}, cond.values)
	})

	t.Run("InStrings converts a string slice", func(t *testing.T) {
		v := InStrings([]string{"e1", "e2", "e3"})
		cond, ok := v.(inCondition)
		assert.True(t, ok)
		assert.Equal(t, []any{"e1", "e2", "e3"}, cond.values)
	})

	t.Run("InStrings of empty slice matches nothing", func(t *testing.T) {
		ability := NewAbility([]Rule{
			{Action: ActionRead, Subject: SubjectEvent, Conditions: Conditions{"id": InStrings(nil)}},
		})
		assert.False(t, ability.Can(ActionRead, SubjectEvent, map[string]any{"id": "e1"}))
	})
}
