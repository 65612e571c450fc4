package ledger

import (
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// ComputeGoalProgress derives the completion state of a savings goal. The
// percentage is clamped to [0, 100] even when the saved amount has overshot
// the target; TargetAmount is validated positive at creation, so no zero
// denominator arises here.
func ComputeGoalProgress(goal *models.SavingsGoal) models.GoalProgress {
	progress := models.GoalProgress{
		ProgressPct: decimal.Zero,
		Remaining:   goal.TargetAmount.Sub(goal.CurrentAmount),
	}

	if progress.Remaining.IsNegative() {
		progress.Remaining = decimal.Zero
	}

	pct := goal.CurrentAmount.Div(goal.TargetAmount).Mul(oneHundred)
	switch {
	case pct.IsNegative():
		progress.ProgressPct = decimal.Zero
	case pct.GreaterThan(oneHundred):
		progress.ProgressPct = oneHundred
	default:
		progress.ProgressPct = pct
	}

	progress.Completed = goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount)

	return progress
}
