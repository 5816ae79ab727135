package calculation

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/money"
)

type incomeSource struct {
	category domain.IncomeCategory
	amount   decimal.Decimal
}

func incomeSources(in domain.HouseholdIncomeInput) []incomeSource {
	return []incomeSource{
		{domain.IncomeWork, in.NetSalary},
		{domain.IncomeWork, in.MiniJob},
		{domain.IncomeFamily, in.ChildBenefit},
		{domain.IncomeFamily, in.ChildSupplement},
		{domain.IncomeFamily, in.ParentalAllow},
		{domain.IncomeFamily, in.Maintenance},
		{domain.IncomeHousing, in.HousingBenefit},
		{domain.IncomeOther, in.CitizenBenefit},
		{domain.IncomeOther, in.CareAllowance},
		{domain.IncomeOther, in.StudentGrant},
		{domain.IncomeOther, in.Pension},
		{domain.IncomeOther, in.RentalIncome},
		{domain.IncomeOther, in.Other},
	}
}

// HouseholdIncome sums monthly household income per category. Negative entries count as zero.
func HouseholdIncome(in domain.HouseholdIncomeInput) domain.HouseholdIncomeResult {
	sources := incomeSources(in)
	byCategory := make(map[domain.IncomeCategory]decimal.Decimal, len(domain.IncomeCategories))
	for _, cat := range domain.IncomeCategories {
		matching := lo.Filter(sources, func(s incomeSource, _ int) bool { return s.category == cat })
		byCategory[cat] = money.Cents(lo.Reduce(matching, func(acc decimal.Decimal, s incomeSource, _ int) decimal.Decimal {
			return acc.Add(money.NonNegative(s.amount))
		}, decimal.Zero))
	}
	monthly := lo.Reduce(domain.IncomeCategories, func(acc decimal.Decimal, cat domain.IncomeCategory, _ int) decimal.Decimal {
		return acc.Add(byCategory[cat])
	}, decimal.Zero)

	return domain.HouseholdIncomeResult{
		Input:      in,
		ByCategory: byCategory,
		Monthly:    monthly,
		Yearly:     monthly.Mul(twelve),
	}
}
