package abilitykit

import (
	"fmt"
	"testing"
)

// benchPermissions builds a realistic backend permission set for an org
// admin console session.
func benchPermissions() []string {
	return []string{
		"events.read:org",
		"events.create:org",
		"events.update:org",
		"events.delete:org",
		"attendees.read:org",
		"attendees.update:org",
		"attendees.checkin:org",
		"badges.print:org",
		"reports.read:org",
		"reports.export:org",
		"users.update:own",
		"invitations.invite:org",
	}
}

// benchAbility compiles the benchmark permission set once.
func benchAbility() *Ability {
	compiler := NewCompiler()
	return NewAbility(compiler.Compile(benchPermissions(), "user-1", "org-1"))
}

// ============================================================================
// Compilation Benchmarks
// ============================================================================

// BenchmarkCompile benchmarks the Compile method
func BenchmarkCompile(b *testing.B) {
	compiler := NewCompiler()
	permissions := benchPermissions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = compiler.Compile(permissions, "user-1", "org-1")
	}
}

// BenchmarkCompileLarge benchmarks compilation of a wide permission set
func BenchmarkCompileLarge(b *testing.B) {
	permissions := make([]string, 0, 200)
	for i := 0; i < 50; i++ {
		resource := fmt.Sprintf("resource%d", i)
		permissions = append(permissions,
			resource+".create:org",
			resource+".read:org",
			resource+".update:org",
			resource+".delete:org",
		)
	}
	compiler := NewCompiler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = compiler.Compile(permissions, "user-1", "org-1")
	}
}

// BenchmarkValidatePermission benchmarks the ValidatePermission function
func BenchmarkValidatePermission(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ValidatePermission("events.checkin:org")
	}
}

// ============================================================================
// Decision Benchmarks
// ============================================================================

// BenchmarkCan benchmarks the Can method
func BenchmarkCan(b *testing.B) {
	ability := benchAbility()
	data := map[string]any{"org_id": "org-1"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ability.Can(ActionUpdate, SubjectEvent, data)
	}
}

// BenchmarkCanUnconditioned benchmarks a check with no data object
func BenchmarkCanUnconditioned(b *testing.B) {
	ability := NewAbility([]Rule{{Action: ActionManage, Subject: SubjectAll}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ability.Can(ActionRead, SubjectEvent, nil)
	}
}

// BenchmarkWhy benchmarks the Why method
func BenchmarkWhy(b *testing.B) {
	ability := benchAbility()
	data := map[string]any{"org_id": "org-1"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ability.Why(ActionUpdate, SubjectEvent, data)
	}
}

// BenchmarkConcurrentCan benchmarks concurrent decisions on one ability
func BenchmarkConcurrentCan(b *testing.B) {
	ability := benchAbility()
	data := map[string]any{"org_id": "org-1"}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = ability.Can(ActionRead, SubjectAttendee, data)
		}
	})
}

// ============================================================================
// Preset Benchmarks
// ============================================================================

// BenchmarkRulesFor benchmarks preset policy materialization
func BenchmarkRulesFor(b *testing.B) {
	rctx := RoleContext{OrgID: "org-1", UserID: "user-1"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RulesFor(RoleAdmin, rctx)
	}
}

// BenchmarkSessionReplace benchmarks the atomic ability swap
func BenchmarkSessionReplace(b *testing.B) {
	session := NewSessionAbility()
	rules := RulesFor(RoleManager, RoleContext{OrgID: "org-1", UserID: "user-1"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		session.Replace(rules)
	}
}

// ============================================================================
// Memory Allocation Benchmarks
// ============================================================================

// BenchmarkCompileAllocs measures memory allocations for Compile
func BenchmarkCompileAllocs(b *testing.B) {
	compiler := NewCompiler()
	permissions := benchPermissions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = compiler.Compile(permissions, "user-1", "org-1")
	}
}

// BenchmarkCanAllocs measures memory allocations for Can
func BenchmarkCanAllocs(b *testing.B) {
	ability := benchAbility()
	data := map[string]any{"org_id": "org-1"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ability.Can(ActionRead, SubjectEvent, data)
	}
}
