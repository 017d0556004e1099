package abilitykit

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRefreshInterval is the policy poll period used when no interval
// option is given.
const DefaultRefreshInterval = 30 * time.Second

// Refresher keeps a SessionAbility in sync with the session source by
// polling on a fixed interval. A failed poll is not an engine error: the
// previous ability stays in place (stale but consistent) and a warning is
// logged; the next successful poll replaces it.
type Refresher struct {
	source   SessionSource
	session  *SessionAbility
	compiler *Compiler
	interval time.Duration
	log      zerolog.Logger
}

// RefresherOption configures the Refresher.
type RefresherOption func(*Refresher)

// WithInterval sets the poll period.
func WithInterval(interval time.Duration) RefresherOption {
	return func(r *Refresher) {
		r.interval = interval
	}
}

// WithCompiler sets the compiler used for backend permission strings.
func WithCompiler(compiler *Compiler) RefresherOption {
	return func(r *Refresher) {
		r.compiler = compiler
	}
}

// WithRefresherLogger sets the logger for poll diagnostics.
func WithRefresherLogger(log zerolog.Logger) RefresherOption {
	return func(r *Refresher) {
		r.log = log.With().Str("component", "refresher").Logger()
	}
}

// NewRefresher creates a Refresher for a session holder.
//
// Example:
//
//	refresher := abilitykit.NewRefresher(source, session,
//	    abilitykit.WithInterval(15*time.Second),
//	)
//	go refresher.Start(ctx)
func NewRefresher(source SessionSource, session *SessionAbility, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		source:   source,
		session:  session,
		compiler: NewCompiler(),
		interval: DefaultRefreshInterval,
		log:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Start begins the poll loop and blocks until ctx is cancelled. Call in a
// goroutine. The first refresh happens immediately so a new session does
// not wait a full interval for its ability.
func (r *Refresher) Start(ctx context.Context) {
	r.log.Info().Dur("interval", r.interval).Msg("Refresher started")

	if err := r.RefreshOnce(ctx); err != nil {
		r.log.Warn().Err(err).Msg("Initial refresh failed, ability stays empty")
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("Refresher stopped")
			return
		case <-ticker.C:
			if err := r.RefreshOnce(ctx); err != nil {
				r.log.Warn().Err(err).
					Str("revision", r.session.Revision()).
					Msg("Refresh failed, keeping previous ability")
			}
		}
	}
}

// RefreshOnce performs a single snapshot/compile/replace cycle.
//
// Sessions that carry backend permission strings are compiled through the
// Compiler; sessions that do not yet (fresh login, policy endpoint not
// answered) fall back to the preset for the session's role plus the profile
// fallback rules, so the UI is usable immediately.
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	session, err := r.source.Snapshot(ctx)
	if err != nil {
		return NewError(ErrSourceUnavailable, err.Error())
	}

	var rules []Rule
	if len(session.PermissionStrings) > 0 {
		rules = r.compiler.Compile(session.PermissionStrings, session.UserID, session.OrganizationID)
	} else {
		rctx := RoleContext{
			OrgID:    session.OrganizationID,
			UserID:   session.UserID,
			EventIDs: session.EventIDs,
		}
		rules = RulesFor(MapBackendRole(session.RoleCode), rctx)
		rules = append(rules, FallbackRules(session.UserID)...)
	}

	r.session.Replace(rules)
	return nil
}
