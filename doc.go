// Package abilitykit provides the capability engine behind an event and
// attendee administration console.
//
// AbilityKit converts raw permission strings issued by the backend (or
// static role presets) into an in-memory ability that every screen queries
// synchronously to decide what to render and which actions to allow. It is
// pure and in-process: no persistence, no transport, no blocking calls.
//
// # Core Concepts
//
// Rule: one authorization statement — (action, subject, conditions?,
// inverted?). Rules are evaluated in declaration order; the last matching
// rule wins, so an inverted rule declared after a grant carves an exception
// out of it.
//
// Permission string: the backend-native shape "resource.action:scope",
// e.g. "events.update:org". Malformed strings are logged and dropped, never
// raised.
//
// Scope: the breadth qualifier — own, org, assigned, any, none. own and org
// synthesize a condition tying the rule to the acting user or organization;
// the rest defer enforcement to the backend.
//
// Ability: the compiled, queryable object exposing Can and Cannot. Owned by
// a SessionAbility for the life of the authenticated session and rebuilt
// whole whenever the backing rules change.
//
// # Key Features
//
//   - Permission-string compiler: backend strings to rules, scope resolved
//     into structural conditions
//   - CRUD escalation: full create+read+update+delete on a resource/scope
//     collapses into a blanket manage grant
//   - Role presets: hand-authored fallback policies per role, used before
//     the backend has answered, plus a super admin wildcard
//   - Hierarchy gate: an ordinal role ladder that blocks editing your own
//     role or any role at or above your level, independent of the ability
//   - Session holder: atomic full replace on every policy refresh; readers
//     never observe a partially updated rule set
//
// # Basic Usage
//
//	// 1. Compile backend permission strings (at session bootstrap)
//	compiler := abilitykit.NewCompiler().WithLogger(log)
//	rules := compiler.Compile(session.PermissionStrings, session.UserID, session.OrganizationID)
//
//	// 2. Hold them for the session
//	ability := abilitykit.NewSessionAbility()
//	ability.Replace(rules)
//
//	// 3. Gate everything off Can
//	if ability.Can(abilitykit.ActionUpdate, abilitykit.SubjectEvent,
//	    map[string]any{"org_id": session.OrganizationID}) {
//	    // Render the edit action
//	}
//
// # Preset Bootstrap
//
// Before the backend has returned permission strings, build the ability
// from the role preset plus the profile fallback:
//
//	role := abilitykit.MapBackendRole(session.RoleCode)
//	rules := abilitykit.RulesFor(role, abilitykit.RoleContext{
//	    OrgID:    session.OrganizationID,
//	    UserID:   session.UserID,
//	    EventIDs: session.EventIDs,
//	})
//	rules = append(rules, abilitykit.FallbackRules(session.UserID)...)
//	ability.Replace(rules)
//
// # Polling Refresh
//
// The Refresher keeps the session ability in sync with the backend on a
// fixed interval; a failed poll keeps the previous ability in place:
//
//	refresher := abilitykit.NewRefresher(source, ability,
//	    abilitykit.WithInterval(30*time.Second),
//	)
//	go refresher.Start(ctx)
//
// # Role Administration Gate
//
// The ability alone cannot express "a manager may edit other managers'
// permissions but never their own, and never an admin's". CanModifyUser is
// the second, mandatory gate in front of any role-permission edit:
//
//	decision := abilitykit.CanModifyUser(actingRole, targetRole, userID, targetUserID)
//	if !decision.CanModify {
//	    // Disable the control; decision.Reason carries the tooltip copy
//	}
//
// The gate is advisory — it drives UI disablement; the backend re-enforces
// it independently.
package abilitykit
