package abilitykit

// Action is a verb a user may perform on a Subject.
// ActionManage is special: it stands for "all actions" on its subject.
// Backend-defined verbs that are not listed here pass through the compiler
// verbatim as custom actions.
type Action string

const (
	ActionManage  Action = "manage"
	ActionCreate  Action = "create"
	ActionRead    Action = "read"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionCheckin Action = "checkin"
	ActionExport  Action = "export"
	ActionInvite  Action = "invite"
	ActionApprove Action = "approve"
	ActionRefuse  Action = "refuse"
	ActionPrint   Action = "print"
)

// Subject is a domain noun a Rule applies to.
// SubjectAll is special: it stands for "every subject".
// Backend resources without a canonical mapping pass through the compiler
// verbatim as custom subjects.
type Subject string

const (
	SubjectAll          Subject = "all"
	SubjectOrganization Subject = "Organization"
	SubjectEvent        Subject = "Event"
	SubjectAttendee     Subject = "Attendee"
	SubjectUser         Subject = "User"
	SubjectBadge        Subject = "Badge"
	SubjectScan         Subject = "Scan"
	SubjectReport       Subject = "Report"
	SubjectSettings     Subject = "Settings"
	SubjectInvitation   Subject = "Invitation"
	SubjectRole         Subject = "Role"
)

// Scope is the breadth qualifier on a backend permission string.
type Scope string

const (
	// ScopeOwn ties the rule to the acting user. The condition key is "id"
	// for the users resource and "user_id" for everything else.
	ScopeOwn Scope = "own"

	// ScopeOrg ties the rule to the acting organization via "org_id".
	ScopeOrg Scope = "org"

	// ScopeAssigned synthesizes no condition. The backend filters assigned
	// entities itself; the client only toggles visibility. This is a known
	// permissive scope.
	ScopeAssigned Scope = "assigned"

	// ScopeAny synthesizes no condition. Global access.
	ScopeAny Scope = "any"

	// ScopeNone synthesizes no condition. Org-level enforcement is assumed
	// server-side.
	ScopeNone Scope = "none"
)

// ParseScope returns the Scope for a raw scope token.
// Returns false for tokens outside the scope table.
func ParseScope(token string) (Scope, bool) {
	switch Scope(token) {
	case ScopeOwn, ScopeOrg, ScopeAssigned, ScopeAny, ScopeNone:
		return Scope(token), true
	}
	return "", false
}

// Conditions is a structural filter evaluated against a candidate data
// object. Every key must equal the corresponding data key, or, for values
// built with In, be a member of the listed set. An absent Conditions map
// means "no restriction".
type Conditions map[string]any

// inCondition is a set-membership condition value. Build with In.
type inCondition struct {
	values []any
}

// In builds a membership condition value: the data value must equal one of
// the listed values.
//
// Example:
//
//	Conditions{"id": In("evt_1", "evt_2")}
func In(values ...any) any {
	return inCondition{values: values}
}

// InStrings builds a membership condition value from a string slice.
// Convenience for id lists carried in a RoleContext.
func InStrings(values []string) any {
	anys := make([]any, len(values))
	for i, v := range values {
		anys[i] = v
	}
	return inCondition{values: anys}
}

// Rule is a single authorization statement. Rules are evaluated in
// declaration order; a later matching rule overrides an earlier one for the
// same action/subject pair (last-match-wins), which is how Inverted rules
// carve exceptions out of broader grants.
type Rule struct {
	Action     Action
	Subject    Subject
	Conditions Conditions // nil means no restriction
	Fields     []string   // optional field allowlist, informational
	Inverted   bool       // true registers a denial instead of a grant
	Reason     string     // optional operator-facing explanation for denials
}

// matches reports whether this rule is relevant for an action/subject pair.
// Conditions are evaluated separately by the Ability.
func (r Rule) matches(action Action, subject Subject) bool {
	if r.Action != ActionManage && r.Action != action {
		return false
	}
	if r.Subject != SubjectAll && r.Subject != subject {
		return false
	}
	return true
}

// RoleContext carries the acting session's identifiers into preset policy
// evaluation. It is supplied fresh on every call and never cached.
type RoleContext struct {
	OrgID    string
	UserID   string
	EventIDs []string
}
