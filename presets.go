package abilitykit

// Role is a preset policy key. Presets are the fallback rule source used
// before the backend has returned permission strings, and the only source
// for roles that are entirely client-defined (the super admin wildcard).
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleStaff      Role = "STAFF"
	RolePartner    Role = "PARTNER"
	RoleViewer     Role = "VIEWER"
)

// backendRoles maps backend role codes (lowercase, underscore) to preset
// roles. The mapping is total: codes absent from the table degrade to
// RoleViewer, the lowest-privilege preset, never to an unmapped state.
var backendRoles = map[string]Role{
	"super_admin":   RoleSuperAdmin,
	"admin":         RoleAdmin,
	"org_admin":     RoleAdmin,
	"manager":       RoleManager,
	"event_manager": RoleManager,
	"staff":         RoleStaff,
	"checkin_staff": RoleStaff,
	"partner":       RolePartner,
	"viewer":        RoleViewer,
}

// MapBackendRole turns a raw backend role code into a preset Role.
// Unknown codes degrade to RoleViewer.
func MapBackendRole(code string) Role {
	if role, ok := backendRoles[code]; ok {
		return role
	}
	return RoleViewer
}

// MapBackendRoles is the plural form of MapBackendRole.
func MapBackendRoles(codes []string) []Role {
	roles := make([]Role, len(codes))
	for i, code := range codes {
		roles[i] = MapBackendRole(code)
	}
	return roles
}

// RulesFor returns the hand-authored preset rule list for a role, expressed
// in terms of the supplied context. Unknown roles return an empty list
// (deny-by-default), never an error.
//
// Presets deliberately mirror what the backend would issue for the same
// role, so a session bootstrapped from a preset and one built from
// permission strings answer the same Can questions.
func RulesFor(role Role, rctx RoleContext) []Rule {
	switch role {
	case RoleSuperAdmin:
		return []Rule{
			{Action: ActionManage, Subject: SubjectAll},
		}

	case RoleAdmin:
		org := Conditions{"org_id": rctx.OrgID}
		return []Rule{
			{Action: ActionManage, Subject: SubjectOrganization, Conditions: Conditions{"id": rctx.OrgID}},
			{Action: ActionManage, Subject: SubjectEvent, Conditions: org},
			{Action: ActionManage, Subject: SubjectAttendee, Conditions: org},
			{Action: ActionManage, Subject: SubjectUser, Conditions: org},
			{Action: ActionManage, Subject: SubjectBadge, Conditions: org},
			{Action: ActionManage, Subject: SubjectScan, Conditions: org},
			{Action: ActionManage, Subject: SubjectReport, Conditions: org},
			{Action: ActionManage, Subject: SubjectInvitation, Conditions: org},
			{Action: ActionManage, Subject: SubjectRole, Conditions: org},
			{Action: ActionRead, Subject: SubjectSettings, Conditions: org},
			{Action: ActionUpdate, Subject: SubjectSettings, Conditions: org},
		}

	case RoleManager:
		org := Conditions{"org_id": rctx.OrgID}
		return []Rule{
			{Action: ActionRead, Subject: SubjectOrganization, Conditions: Conditions{"id": rctx.OrgID}},
			{Action: ActionManage, Subject: SubjectEvent, Conditions: org},
			{Action: ActionManage, Subject: SubjectAttendee, Conditions: org},
			{Action: ActionManage, Subject: SubjectBadge, Conditions: org},
			{Action: ActionInvite, Subject: SubjectInvitation, Conditions: org},
			{Action: ActionRead, Subject: SubjectScan, Conditions: org},
			{Action: ActionRead, Subject: SubjectReport, Conditions: org},
			{Action: ActionExport, Subject: SubjectReport, Conditions: org},
		}

	case RoleStaff:
		org := Conditions{"org_id": rctx.OrgID}
		return []Rule{
			{Action: ActionRead, Subject: SubjectEvent, Conditions: org},
			{Action: ActionRead, Subject: SubjectAttendee, Conditions: org},
			{Action: ActionCheckin, Subject: SubjectAttendee, Conditions: org},
			{Action: ActionCreate, Subject: SubjectScan, Conditions: org},
			{Action: ActionPrint, Subject: SubjectBadge, Conditions: org},
		}

	case RolePartner:
		events := InStrings(rctx.EventIDs)
		return []Rule{
			{Action: ActionRead, Subject: SubjectEvent, Conditions: Conditions{"id": events}},
			{Action: ActionRead, Subject: SubjectAttendee, Conditions: Conditions{"event_id": events}},
			{Action: ActionRead, Subject: SubjectReport, Conditions: Conditions{"event_id": events}},
		}

	case RoleViewer:
		org := Conditions{"org_id": rctx.OrgID}
		return []Rule{
			{Action: ActionRead, Subject: SubjectEvent, Conditions: org},
			{Action: ActionRead, Subject: SubjectAttendee, Conditions: org},
			{Action: ActionRead, Subject: SubjectReport, Conditions: org},
		}
	}

	return nil
}

// FallbackRules grants a user read and update of their own profile
// regardless of role resolution, so an authenticated-but-unprovisioned
// session is never completely locked out of the UI.
func FallbackRules(userID string) []Rule {
	own := Conditions{"id": userID}
	return []Rule{
		{Action: ActionRead, Subject: SubjectUser, Conditions: own},
		{Action: ActionUpdate, Subject: SubjectUser, Conditions: own},
	}
}
