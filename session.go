package abilitykit

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SessionAbility holds the ability for the lifetime of an authenticated
// session. It starts empty, is populated the first time permission strings
// or a role preset become available, and is rebuilt whole on every change
// to the backing rules (role switch, organization switch, policy poll
// refresh). Reset discards it on logout.
//
// There is exactly one writer (the refresh path) and many readers. Replace
// swaps the compiled ability in a single assignment under the lock, so a
// reader always sees either the old complete ability or the new one, never
// a mix. Until populated, Can conservatively returns false.
type SessionAbility struct {
	mu       sync.RWMutex
	ability  *Ability
	revision string

	log zerolog.Logger
}

// NewSessionAbility creates an empty, unpopulated session holder.
func NewSessionAbility() *SessionAbility {
	return &SessionAbility{log: zerolog.Nop()}
}

// WithLogger sets the logger used for rebuild diagnostics.
func (s *SessionAbility) WithLogger(log zerolog.Logger) *SessionAbility {
	s.log = log.With().Str("component", "session_ability").Logger()
	return s
}

// Can reports whether the current ability grants the action. Returns false
// while the holder is unpopulated.
func (s *SessionAbility) Can(action Action, subject Subject, data map[string]any) bool {
	s.mu.RLock()
	ability := s.ability
	s.mu.RUnlock()

	if ability == nil {
		return false
	}
	return ability.Can(action, subject, data)
}

// Cannot is the exact negation of Can.
func (s *SessionAbility) Cannot(action Action, subject Subject, data map[string]any) bool {
	return !s.Can(action, subject, data)
}

// Replace builds a fresh ability from the rule list and swaps it in
// atomically. Each rebuild is stamped with a new revision id for log
// correlation.
func (s *SessionAbility) Replace(rules []Rule) {
	ability := NewAbility(rules)
	revision := uuid.NewString()

	s.mu.Lock()
	s.ability = ability
	s.revision = revision
	s.mu.Unlock()

	s.log.Debug().
		Str("revision", revision).
		Int("rules", len(rules)).
		Msg("Ability rebuilt")
}

// Reset discards the ability on logout. Subsequent Can calls return false
// until the next Replace.
func (s *SessionAbility) Reset() {
	s.mu.Lock()
	s.ability = nil
	s.revision = ""
	s.mu.Unlock()

	s.log.Debug().Msg("Ability reset")
}

// Populated returns true once an ability has been built and not reset.
func (s *SessionAbility) Populated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ability != nil
}

// Revision returns the id of the current rebuild, or "" while unpopulated.
func (s *SessionAbility) Revision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Ability returns the current compiled ability, or nil while unpopulated.
// Callers needing rule inspection (effective-permission screens) use this;
// plain gating should go through Can.
func (s *SessionAbility) Ability() *Ability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ability
}
