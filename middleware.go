package abilitykit

import (
	"net/http"
)

// Middleware provides HTTP middleware for ability gating. It is a consumer
// of the engine, the server-side analog of the UI gates: the decision comes
// from the session ability, never from the request.
type Middleware struct {
	session      *SessionAbility
	getAbility   func(*http.Request) AbilityProvider
	errorHandler func(http.ResponseWriter, *http.Request, error)
}

// MiddlewareOption configures the Middleware.
type MiddlewareOption func(*Middleware)

// NewMiddleware creates a new Middleware instance bound to a session
// ability.
//
// Example:
//
//	mw := abilitykit.NewMiddleware(session,
//	    abilitykit.WithErrorHandler(renderProblemJSON),
//	)
func NewMiddleware(session *SessionAbility, opts ...MiddlewareOption) *Middleware {
	m := &Middleware{
		session:      session,
		errorHandler: defaultErrorHandler,
	}
	m.getAbility = m.defaultGetAbility

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// WithAbilityExtractor sets a custom function to resolve the ability for a
// request. Use when abilities are carried per-request instead of held by
// one session (e.g. multi-session servers).
func WithAbilityExtractor(fn func(*http.Request) AbilityProvider) MiddlewareOption {
	return func(m *Middleware) {
		m.getAbility = fn
	}
}

// WithErrorHandler sets a custom error handler for middleware.
func WithErrorHandler(fn func(http.ResponseWriter, *http.Request, error)) MiddlewareOption {
	return func(m *Middleware) {
		m.errorHandler = fn
	}
}

func (m *Middleware) defaultGetAbility(r *http.Request) AbilityProvider {
	if ability := GetAbility(r.Context()); ability != nil {
		return ability
	}
	if m.session != nil {
		return m.session
	}
	return nil
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	if IsForbidden(err) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// DataExtractor extracts the candidate data object for conditioned checks
// from an HTTP request.
type DataExtractor func(*http.Request) map[string]any

// DataFromQuery creates a DataExtractor that copies the named query
// parameters into the data object.
//
// Example:
//
//	// For route /events?org_id=org_123
//	mw.RequireCanData(abilitykit.ActionRead, abilitykit.SubjectEvent,
//	    abilitykit.DataFromQuery("org_id"))
func DataFromQuery(params ...string) DataExtractor {
	return func(r *http.Request) map[string]any {
		data := make(map[string]any, len(params))
		for _, p := range params {
			if v := r.URL.Query().Get(p); v != "" {
				data[p] = v
			}
		}
		return data
	}
}

// DataFromHeader creates a DataExtractor that maps header values into data
// keys.
//
// Example:
//
//	// For header X-Organization-ID: org_123
//	mw.RequireCanData(abilitykit.ActionRead, abilitykit.SubjectReport,
//	    abilitykit.DataFromHeader(map[string]string{"org_id": "X-Organization-ID"}))
func DataFromHeader(keys map[string]string) DataExtractor {
	return func(r *http.Request) map[string]any {
		data := make(map[string]any, len(keys))
		for key, header := range keys {
			if v := r.Header.Get(header); v != "" {
				data[key] = v
			}
		}
		return data
	}
}

// RequireCan creates middleware that requires an unconditioned grant for
// the action/subject pair.
//
// Example:
//
//	router.Handle("/events", mw.RequireCan(abilitykit.ActionRead, abilitykit.SubjectEvent)(listEvents))
func (m *Middleware) RequireCan(action Action, subject Subject) func(http.Handler) http.Handler {
	return m.RequireCanData(action, subject, nil)
}

// RequireCanData creates middleware that requires a grant for the
// action/subject pair against data extracted from the request. Conditioned
// grants with no extractor resolve to deny, same as the engine.
func (m *Middleware) RequireCanData(action Action, subject Subject, extractor DataExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ability := m.getAbility(r)
			if ability == nil {
				m.errorHandler(w, r, NewError(ErrForbidden, "no ability for request"))
				return
			}

			var data map[string]any
			if extractor != nil {
				data = extractor(r)
			}

			if ability.Cannot(action, subject, data) {
				m.errorHandler(w, r, NewError(ErrForbidden, "missing required grant"))
				return
			}

			ctx := WithAbility(r.Context(), ability)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAny creates middleware that passes when any of the action/subject
// pairs is granted without conditions.
//
// Example:
//
//	mw.RequireAny(
//	    abilitykit.Query{Action: abilitykit.ActionExport, Subject: abilitykit.SubjectReport},
//	    abilitykit.Query{Action: abilitykit.ActionManage, Subject: abilitykit.SubjectReport},
//	)
func (m *Middleware) RequireAny(queries ...Query) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ability := m.getAbility(r)
			if ability == nil {
				m.errorHandler(w, r, NewError(ErrForbidden, "no ability for request"))
				return
			}

			for _, q := range queries {
				if ability.Can(q.Action, q.Subject, nil) {
					ctx := WithAbility(r.Context(), ability)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			m.errorHandler(w, r, NewError(ErrForbidden, "missing required grant"))
		})
	}
}

// LoadAbility creates middleware that attaches the session ability to the
// request context without gating. Use when the handler does its own checks.
//
// Example:
//
//	router.Handle("/dashboard", mw.LoadAbility()(dashboardHandler))
//
//	func dashboard(w http.ResponseWriter, r *http.Request) {
//	    ability := abilitykit.FromContext(r.Context())
//	    if ability.Can(abilitykit.ActionExport, abilitykit.SubjectReport, nil) {
//	        // Show export button
//	    }
//	}
func (m *Middleware) LoadAbility() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ability := m.getAbility(r)
			if ability == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := WithAbility(r.Context(), ability)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Query is an action/subject pair for RequireAny.
type Query struct {
	Action  Action
	Subject Subject
}
