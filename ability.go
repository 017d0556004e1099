package abilitykit

import (
	"sync"
)

// Ability is a compiled, queryable rule set. It is the single object UI
// gates ask "can this session do X to Y"; it is never persisted and is
// rebuilt whole whenever its source rules change.
//
// Rules are applied in declaration order. For a given query the last
// matching rule wins, so an Inverted rule declared after a grant carves an
// exception out of it.
type Ability struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewAbility compiles an ordered Rule list into an Ability.
// The rule slice is copied; callers may reuse theirs.
func NewAbility(rules []Rule) *Ability {
	a := &Ability{}
	a.Update(rules)
	return a
}

// Can reports whether some grant matches the action/subject pair and no
// later-declared matching denial overrides it.
//
// data supplies the candidate object for conditioned rules. A conditioned
// grant with nil data cannot be determined and therefore does not apply; a
// conditioned denial with nil data applies conservatively. Both resolve the
// ambiguity toward deny.
//
// Example:
//
//	ability.Can(ActionUpdate, SubjectEvent, map[string]any{"org_id": "org_1"})
func (a *Ability) Can(action Action, subject Subject, data map[string]any) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	allowed := false
	for _, rule := range a.rules {
		if !rule.matches(action, subject) {
			continue
		}
		if rule.Inverted {
			if len(rule.Conditions) == 0 || data == nil || matchConditions(rule.Conditions, data) {
				allowed = false
			}
			continue
		}
		if len(rule.Conditions) == 0 || (data != nil && matchConditions(rule.Conditions, data)) {
			allowed = true
		}
	}
	return allowed
}

// Cannot is the exact negation of Can.
func (a *Ability) Cannot(action Action, subject Subject, data map[string]any) bool {
	return !a.Can(action, subject, data)
}

// Why returns the rule that decided the most recent-matching outcome for
// the query, along with the outcome itself. Used by UIs that surface a
// denial Reason next to a disabled control. The second return is false when
// no rule matched at all.
func (a *Ability) Why(action Action, subject Subject, data map[string]any) (Rule, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var deciding Rule
	matched := false
	for _, rule := range a.rules {
		if !rule.matches(action, subject) {
			continue
		}
		if rule.Inverted {
			if len(rule.Conditions) == 0 || data == nil || matchConditions(rule.Conditions, data) {
				deciding = rule
				matched = true
			}
			continue
		}
		if len(rule.Conditions) == 0 || (data != nil && matchConditions(rule.Conditions, data)) {
			deciding = rule
			matched = true
		}
	}
	return deciding, matched
}

// Update atomically replaces the active rule set. Readers observe either
// the previous complete rule set or the new one, never a mix.
func (a *Ability) Update(rules []Rule) {
	copied := make([]Rule, len(rules))
	copy(copied, rules)

	a.mu.Lock()
	a.rules = copied
	a.mu.Unlock()
}

// Rules returns a copy of the active rule set in declaration order.
func (a *Ability) Rules() []Rule {
	a.mu.RLock()
	defer a.mu.RUnlock()

	copied := make([]Rule, len(a.rules))
	copy(copied, a.rules)
	return copied
}

// IsEmpty returns true if the ability holds no rules.
func (a *Ability) IsEmpty() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.rules) == 0
}

// matchConditions reports whether every condition key equals (or, for In
// values, contains) the corresponding data key. Missing data keys fail the
// match.
func matchConditions(conditions Conditions, data map[string]any) bool {
	for key, want := range conditions {
		got, ok := data[key]
		if !ok {
			return false
		}
		if !matchCondition(want, got) {
			return false
		}
	}
	return true
}

// matchCondition compares a single condition value against a data value.
func matchCondition(want, got any) bool {
	if in, ok := want.(inCondition); ok {
		for _, v := range in.values {
			if v == got {
				return true
			}
		}
		return false
	}
	return want == got
}
