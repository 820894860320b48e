package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bousai_recommend/models"
)

// DefaultBudgetTolerance 允许超出预算10%
var DefaultBudgetTolerance = decimal.RequireFromString("1.1")

// ParseTolerance 解析配置中的预算上浮系数，必须 >= 1
func ParseTolerance(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid budget tolerance %q: %w", s, err)
	}
	if d.LessThan(decimal.NewFromInt(1)) {
		return decimal.Zero, fmt.Errorf("budget tolerance %s must be >= 1", s)
	}
	return d, nil
}

// FilterByBudget 按模型给出的顺序贪心选取：
// 累计价格 + 当前价格 <= budget * tolerance 时纳入，否则跳过并继续检查后面的商品。
// 不会重新排序，结果是输入的子序列。
func FilterByBudget(candidates []models.Candidate, budget int64, tolerance decimal.Decimal) []models.Candidate {
	limit := decimal.NewFromInt(budget).Mul(tolerance)
	total := decimal.Zero

	selected := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		next := total.Add(decimal.NewFromInt(c.Price))
		if next.GreaterThan(limit) {
			continue
		}
		total = next
		selected = append(selected, c)
	}
	return selected
}
