package abilitykit

// Reason strings returned by the hierarchy gate. Stable values; UIs key
// tooltip copy off them.
const (
	ReasonOwnRole   = "cannot modify your own role"
	ReasonAtOrAbove = "cannot modify a role at or above your own level"
)

// Decision is the hierarchy gate verdict. Reason is set only on denial.
type Decision struct {
	CanModify bool
	Reason    string
}

// Ladder ranks roles from highest to lowest privilege. It is consulted only
// by the role administration gate, never by the Ability: the two checks are
// layered, both must pass before a role-permission edit is offered.
//
// Roles absent from the ladder rank below its last entry, the safe default
// for codes the client has never heard of.
type Ladder struct {
	order []Role
}

// NewLadder creates a Ladder from roles ordered highest privilege first.
func NewLadder(roles ...Role) *Ladder {
	order := make([]Role, len(roles))
	copy(order, roles)
	return &Ladder{order: order}
}

// Ordinal returns a role's position on the ladder; 0 is the highest
// privilege. Unknown roles return len(ladder), one past the lowest rung.
func (l *Ladder) Ordinal(role Role) int {
	for i, r := range l.order {
		if r == role {
			return i
		}
	}
	return len(l.order)
}

// CanModifyUser decides whether the acting user may edit the permissions of
// a user holding the target role.
//
// Two denials, checked in order: editing the role you yourself hold
// (self-protection, even for the highest role), and editing any role ranked
// at or above your own. actingUserID and targetUserID are carried for
// diagnostics only; the comparison runs on the role codes.
//
// This gate is advisory: it drives UI disablement and the backend must
// independently re-enforce it.
func (l *Ladder) CanModifyUser(actingRole, targetRole Role, actingUserID, targetUserID string) Decision {
	if actingRole == targetRole {
		return Decision{CanModify: false, Reason: ReasonOwnRole}
	}

	if l.Ordinal(targetRole) <= l.Ordinal(actingRole) {
		return Decision{CanModify: false, Reason: ReasonAtOrAbove}
	}

	return Decision{CanModify: true}
}

// DefaultLadder is the privilege ranking of the built-in presets.
var DefaultLadder = NewLadder(
	RoleSuperAdmin,
	RoleAdmin,
	RoleManager,
	RoleStaff,
	RolePartner,
	RoleViewer,
)

// CanModifyUser is a convenience function using the DefaultLadder.
func CanModifyUser(actingRole, targetRole Role, actingUserID, targetUserID string) Decision {
	return DefaultLadder.CanModifyUser(actingRole, targetRole, actingUserID, targetUserID)
}
