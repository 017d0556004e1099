package abilitykit

// RuleFilter selects rules out of a compiled rule list. Role administration
// screens use it to display a role's effective permissions (e.g. "all
// denials", "everything touching Event").
//
// Zero-value fields are not filtered on; chain With* setters to narrow.
type RuleFilter struct {
	// Filter by action; ActionManage matches only literal manage rules
	Action Action

	// Filter by subject; SubjectAll matches only literal all rules
	Subject Subject

	// Filter by denial flag
	Inverted *bool

	// Filter by presence of a condition key (e.g. "org_id")
	ConditionKey string
}

// NewRuleFilter creates an empty RuleFilter matching every rule.
func NewRuleFilter() RuleFilter {
	return RuleFilter{}
}

// WithAction sets the action filter.
func (f RuleFilter) WithAction(action Action) RuleFilter {
	f.Action = action
	return f
}

// WithSubject sets the subject filter.
func (f RuleFilter) WithSubject(subject Subject) RuleFilter {
	f.Subject = subject
	return f
}

// WithInverted sets the denial-flag filter.
func (f RuleFilter) WithInverted(inverted bool) RuleFilter {
	f.Inverted = &inverted
	return f
}

// WithConditionKey sets the condition-key filter.
func (f RuleFilter) WithConditionKey(key string) RuleFilter {
	f.ConditionKey = key
	return f
}

// Apply returns the rules matching the filter, preserving declaration
// order.
func (f RuleFilter) Apply(rules []Rule) []Rule {
	var matched []Rule
	for _, rule := range rules {
		if f.Action != "" && rule.Action != f.Action {
			continue
		}
		if f.Subject != "" && rule.Subject != f.Subject {
			continue
		}
		if f.Inverted != nil && rule.Inverted != *f.Inverted {
			continue
		}
		if f.ConditionKey != "" {
			if _, ok := rule.Conditions[f.ConditionKey]; !ok {
				continue
			}
		}
		matched = append(matched, rule)
	}
	return matched
}
