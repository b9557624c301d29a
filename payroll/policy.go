/*
policy.go - Tolerance policy for worked-hours classification

PURPOSE:
  Both resolvers compare worked time against the shift's expected hours and
  classify the day as exact, shortfall or overtime. The comparison window is
  a policy decision that historically drifted between revisions of this
  system, so it lives in one place with one canonical setting.

CANONICAL POLICY:
  A fixed symmetric window of expected ± 30 minutes. An 8-hour shift is
  "complete" anywhere in [7.5h, 8.5h]; below is shortfall, above is overtime.
  The margin is configurable per engine instance but there is exactly one
  policy shape - no per-call overrides, no mixed modes.
*/
package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TOLERANCE POLICY
// =============================================================================

// DefaultToleranceMinutes is the canonical half-width of the completion
// window around the shift's expected hours.
const DefaultToleranceMinutes = 30

// TolerancePolicy decides whether a worked duration counts as a complete
// day, a shortfall, or overtime against a shift's expected hours.
type TolerancePolicy struct {
	Margin decimal.Decimal // hours on each side of the expected duration
}

// DefaultTolerancePolicy returns the canonical ±30 minute window.
func DefaultTolerancePolicy() TolerancePolicy {
	return TolerancePolicy{
		Margin: decimal.NewFromInt(DefaultToleranceMinutes).Div(decimal.NewFromInt(60)),
	}
}

// NewTolerancePolicy builds a policy with a custom margin in minutes.
func NewTolerancePolicy(marginMinutes int) TolerancePolicy {
	return TolerancePolicy{
		Margin: decimal.NewFromInt(int64(marginMinutes)).Div(decimal.NewFromInt(60)),
	}
}

// Bounds returns the [lower, upper] completion window for an expected
// duration in hours.
func (p TolerancePolicy) Bounds(expected decimal.Decimal) (lower, upper decimal.Decimal) {
	return expected.Sub(p.Margin), expected.Add(p.Margin)
}

// WorkOutcome is the tolerance classification of a worked duration.
type WorkOutcome int

const (
	OutcomeExact WorkOutcome = iota
	OutcomeShortfall
	OutcomeOvertime
)

func (o WorkOutcome) String() string {
	switch o {
	case OutcomeExact:
		return "exact"
	case OutcomeShortfall:
		return "shortfall"
	case OutcomeOvertime:
		return "overtime"
	default:
		return fmt.Sprintf("WorkOutcome(%d)", int(o))
	}
}

// Classify compares worked hours against the expected hours window.
// The second return is the distance from the violated bound:
//   - shortfall: lower bound minus worked (the missing time)
//   - overtime:  worked minus expected  (the surplus over the baseline)
//   - exact:     zero
func (p TolerancePolicy) Classify(worked, expected decimal.Decimal) (WorkOutcome, decimal.Decimal) {
	lower, upper := p.Bounds(expected)
	switch {
	case worked.LessThan(lower):
		return OutcomeShortfall, lower.Sub(worked)
	case worked.GreaterThan(upper):
		return OutcomeOvertime, worked.Sub(expected)
	default:
		return OutcomeExact, decimal.Zero
	}
}

// formatHoursMinutes renders a decimal hour quantity as "HhMMm" for notes.
func formatHoursMinutes(h decimal.Decimal) string {
	totalMinutes := h.Mul(decimal.NewFromInt(60)).Round(0).IntPart()
	return fmt.Sprintf("%dh %02dm", totalMinutes/60, totalMinutes%60)
}
