package abilitykit

import (
	"strings"

	"github.com/rs/zerolog"
)

// actionAliases maps backend action tokens to one or more canonical Actions.
// Tokens already matching a canonical Action map to themselves; anything else
// passes through verbatim as a custom verb, so backend-defined actions keep
// working without a client release.
var actionAliases = map[string][]Action{
	"view":    {ActionRead},
	"list":    {ActionRead},
	"show":    {ActionRead},
	"add":     {ActionCreate},
	"edit":    {ActionUpdate},
	"remove":  {ActionDelete},
	"destroy": {ActionDelete},
	"write":   {ActionCreate, ActionUpdate},
}

// canonicalActionSet holds the verbs that are already canonical Actions.
var canonicalActionSet = map[Action]bool{
	ActionManage:  true,
	ActionCreate:  true,
	ActionRead:    true,
	ActionUpdate:  true,
	ActionDelete:  true,
	ActionCheckin: true,
	ActionExport:  true,
	ActionInvite:  true,
	ActionApprove: true,
	ActionRefuse:  true,
	ActionPrint:   true,
}

// resourceSubjects maps backend resource tokens to canonical Subjects.
// Unmapped resources pass through verbatim, same forward-compatibility rule
// as actions.
var resourceSubjects = map[string]Subject{
	"organizations": SubjectOrganization,
	"organization":  SubjectOrganization,
	"events":        SubjectEvent,
	"event":         SubjectEvent,
	"attendees":     SubjectAttendee,
	"attendee":      SubjectAttendee,
	"users":         SubjectUser,
	"user":          SubjectUser,
	"badges":        SubjectBadge,
	"scans":         SubjectScan,
	"reports":       SubjectReport,
	"settings":      SubjectSettings,
	"invitations":   SubjectInvitation,
	"roles":         SubjectRole,
}

// crudActions are the four actions whose joint presence for a
// (resource, scope) pair escalates to a blanket manage grant.
var crudActions = map[Action]bool{
	ActionCreate: true,
	ActionRead:   true,
	ActionUpdate: true,
	ActionDelete: true,
}

// Compiler turns backend permission strings into Rules.
//
// The compiler is total over its input: malformed strings are logged and
// skipped, never raised. It performs no network or storage access; the
// output is a pure function of the permission strings and the acting
// user/organization ids.
type Compiler struct {
	log zerolog.Logger
}

// NewCompiler creates a Compiler with diagnostics disabled.
func NewCompiler() *Compiler {
	return &Compiler{log: zerolog.Nop()}
}

// WithLogger sets the logger used for dropped-permission warnings.
func (c *Compiler) WithLogger(log zerolog.Logger) *Compiler {
	c.log = log.With().Str("component", "compiler").Logger()
	return c
}

// crudKey identifies a (resource, scope) pair for the escalation pass.
type crudKey struct {
	resource string
	scope    Scope
}

// Compile parses backend permission strings of the shape
// "resource.action:scope[:ignored]" into an ordered Rule list.
//
// After all strings are compiled, the CRUD-escalation pass appends one
// manage rule for every (resource, scope) pair that accumulated all four of
// create, read, update and delete, carrying the same scope-derived
// condition as the constituent rules. Synthesized manage rules are never
// themselves counted as CRUD input.
func (c *Compiler) Compile(permissions []string, userID, orgID string) []Rule {
	var rules []Rule

	seen := make(map[crudKey]map[Action]bool)
	var seenOrder []crudKey

	for _, raw := range permissions {
		resource, verb, scope, err := parsePermission(raw)
		if err != nil {
			c.log.Warn().Err(err).Str("permission", raw).Msg("Dropping permission string")
			continue
		}

		subject := canonicalSubject(resource)
		conditions := scopeConditions(scope, subject, userID, orgID)

		for _, action := range canonicalActions(verb) {
			rule := Rule{Action: action, Subject: subject}
			if len(conditions) > 0 {
				rule.Conditions = conditions
			}
			rules = append(rules, rule)

			if crudActions[action] {
				key := crudKey{resource: resource, scope: scope}
				if seen[key] == nil {
					seen[key] = make(map[Action]bool)
					seenOrder = append(seenOrder, key)
				}
				seen[key][action] = true
			}
		}
	}

	// Escalation pass. seenOrder keeps the output deterministic.
	for _, key := range seenOrder {
		if len(seen[key]) != len(crudActions) {
			continue
		}
		subject := canonicalSubject(key.resource)
		rule := Rule{Action: ActionManage, Subject: subject}
		if conditions := scopeConditions(key.scope, subject, userID, orgID); len(conditions) > 0 {
			rule.Conditions = conditions
		}
		rules = append(rules, rule)
	}

	return rules
}

// parsePermission splits a raw permission string into resource, verb and
// scope. Segments past the scope are ignored.
func parsePermission(raw string) (resource, verb string, scope Scope, err error) {
	segments := strings.Split(raw, ":")
	if len(segments) < 2 {
		return "", "", "", NewError(ErrMalformedPermission, "missing scope segment").WithPermission(raw)
	}

	code := strings.SplitN(segments[0], ".", 2)
	if len(code) != 2 || code[0] == "" || code[1] == "" {
		return "", "", "", NewError(ErrMalformedPermission, "code must be resource.action").WithPermission(raw)
	}

	scope, ok := ParseScope(segments[1])
	if !ok {
		return "", "", "", NewError(ErrUnknownScope, "scope "+segments[1]).WithPermission(raw)
	}

	return code[0], code[1], scope, nil
}

// ValidatePermission checks whether a raw permission string would compile.
// The compiler itself never fails; this is for surfaces that want to reject
// bad input eagerly (e.g. admin tooling).
func ValidatePermission(raw string) error {
	_, _, _, err := parsePermission(raw)
	return err
}

// canonicalActions resolves a backend verb to its canonical Actions.
func canonicalActions(verb string) []Action {
	if canonicalActionSet[Action(verb)] {
		return []Action{Action(verb)}
	}
	if aliased, ok := actionAliases[verb]; ok {
		return aliased
	}
	return []Action{Action(verb)}
}

// canonicalSubject resolves a backend resource token to its Subject.
func canonicalSubject(resource string) Subject {
	if subject, ok := resourceSubjects[resource]; ok {
		return subject
	}
	return Subject(resource)
}

// scopeConditions resolves a scope to its condition map. An empty result
// means the rule carries no condition at all.
func scopeConditions(scope Scope, subject Subject, userID, orgID string) Conditions {
	switch scope {
	case ScopeOwn:
		if subject == SubjectUser {
			return Conditions{"id": userID}
		}
		return Conditions{"user_id": userID}
	case ScopeOrg:
		return Conditions{"org_id": orgID}
	case ScopeAssigned, ScopeAny, ScopeNone:
		// Assigned relies on backend filtering; any and none carry no
		// client-side restriction either.
		return nil
	}
	return nil
}
