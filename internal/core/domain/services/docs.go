// Package services contains stateless domain services for schedule
// generation.
//
// RuleSet evaluates the configured scheduling constraints (rolling
// days-off windows, rest after evening shifts, daily shift balance) and
// Planner uses it to greedily build a complete 28-day plan for a staff
// group. The planner is deterministic and never fails; constraint
// breaches it could not avoid are reported by RuleSet.CheckPlan as
// advisory violations.
package services
