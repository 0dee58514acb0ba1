// Package metrics derives portfolio KPIs from an in-memory snapshot of
// one project's child records. Nothing in here touches storage; the
// handler fetches the snapshot and hands it over.
package metrics

import (
	"github.com/scafflow-dev/scafflow/internal/models"
	"github.com/scafflow-dev/scafflow/internal/rollup"
	"github.com/scafflow-dev/scafflow/internal/types"
	"github.com/shopspring/decimal"
)

// ProjectMetrics carries every KPI independently. Ratio fields are nil
// when their denominator is zero; they are never NaN or Inf.
type ProjectMetrics struct {
	AverageTaskProgress      int             `json:"average_task_progress"`
	BudgetTotal              decimal.Decimal `json:"budget_total"`
	BudgetSpent              decimal.Decimal `json:"budget_spent"`
	BudgetVarianceSum        decimal.Decimal `json:"budget_variance_sum"`
	ChangeOrderTotal         decimal.Decimal `json:"change_order_total"`
	ChangeOrderApprovalRate  *float64        `json:"change_order_approval_rate"`
	CostPerformanceIndex     *float64        `json:"cost_performance_index"`
	SchedulePerformanceIndex float64         `json:"schedule_performance_index"`
	ProgressDrawTotal        decimal.Decimal `json:"progress_draw_total"`
}

func Compute(tasks []models.Task, items []models.BudgetItem, orders []models.ChangeOrder, draws []models.ProgressDraw) ProjectMetrics {
	budgetTotal := decimal.Zero
	budgetSpent := decimal.Zero
	varianceSum := decimal.Zero

	for _, item := range items {
		budgetTotal = budgetTotal.Add(item.BudgetAmount)
		budgetSpent = budgetSpent.Add(item.SpentAmount)
		varianceSum = varianceSum.Add(item.Variance)
	}

	changeOrderTotal := decimal.Zero
	approved := 0

	for _, order := range orders {
		changeOrderTotal = changeOrderTotal.Add(order.Amount)
		if order.Status == types.ChangeOrderStatusApproved {
			approved++
		}
	}

	drawTotal := decimal.Zero

	for _, draw := range draws {
		drawTotal = drawTotal.Add(draw.Amount)
	}

	progresses := make([]int, 0, len(tasks))

	for _, task := range tasks {
		progresses = append(progresses, task.ProgressPercentage)
	}

	averageProgress := rollup.Average(progresses)

	return ProjectMetrics{
		AverageTaskProgress:      averageProgress,
		BudgetTotal:              budgetTotal,
		BudgetSpent:              budgetSpent,
		BudgetVarianceSum:        varianceSum,
		ChangeOrderTotal:         changeOrderTotal,
		ChangeOrderApprovalRate:  approvalRate(approved, len(orders)),
		CostPerformanceIndex:     costPerformanceIndex(budgetTotal, budgetSpent, changeOrderTotal),
		SchedulePerformanceIndex: float64(averageProgress) / 100,
		ProgressDrawTotal:        drawTotal,
	}
}

func costPerformanceIndex(budgetTotal, budgetSpent, changeOrderTotal decimal.Decimal) *float64 {
	denominator := budgetSpent.Add(changeOrderTotal)

	if denominator.IsZero() {
		return nil
	}

	cpi := budgetTotal.InexactFloat64() / denominator.InexactFloat64()
	return &cpi
}

func approvalRate(approved, total int) *float64 {
	if total == 0 {
		return nil
	}

	rate := float64(approved) / float64(total)
	return &rate
}
