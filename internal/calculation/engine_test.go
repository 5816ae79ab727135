package calculation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/pkg/dateutil"
)

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Infof(format string, args ...any)  { r.Debugf(format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.Debugf(format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.Debugf(format, args...) }

func TestEngineWrapsErrors(t *testing.T) {
	engine := NewEngine2026()

	_, err := engine.NetSalary(domain.NetSalaryInput{Gross: dec("3000"), TaxClass: 8})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTaxClass)
	assert.Contains(t, err.Error(), "failed to calculate net salary")

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, "tax_class", inputErr.Field)

	_, err = engine.NoticePeriod(domain.NoticePeriodProfile{
		Start:     dateutil.MustParseDate("2024-01-02"),
		Reference: dateutil.MustParseDate("2024-01-01"),
	})
	assert.ErrorIs(t, err, ErrDateOrder)

	_, err = engine.Overtime(domain.OvertimeInput{MonthlyGross: dec("3000")})
	assert.ErrorIs(t, err, ErrIndeterminate)
}

func TestEngineRunsEveryCalculator(t *testing.T) {
	engine := NewEngine2026()

	net, err := engine.NetSalary(domain.NetSalaryInput{Gross: dec("4000"), TaxClass: 1, State: domain.StateBerlin})
	require.NoError(t, err)
	assert.Equal(t, "2625.00", net.NetMonthly.StringFixed(2))

	sev, err := engine.Severance(domain.SeveranceInput{RegularIncome: dec("50000"), Severance: dec("20000"), TaxClass: 1})
	require.NoError(t, err)
	assert.Equal(t, "556.00", sev.TaxSaving.StringFixed(2))
	assert.Equal(t, "20000", engine.EstimateSeverance(domain.SeveranceEstimate{Years: dec("10"), MonthlyGross: dec("4000")}).String())

	vt, err := engine.VehicleTax(domain.VehicleProfile{Displacement: 1598, CO2: 145, Fuel: domain.FuelPetrol, FirstRegistration: dateutil.NewDate(2020, 5, 1)})
	require.NoError(t, err)
	assert.Equal(t, "141.00", vt.AnnualTax.StringFixed(2))

	hb, err := engine.HousingBenefit(domain.HousingBenefitInput{HouseholdSize: 1, GrossIncome: dec("12000"), ColdRent: dec("500"), RentLevel: 3, PaysTax: true, PaysHealth: true, PaysPension: true})
	require.NoError(t, err)
	assert.Equal(t, "392", hb.Benefit.String())

	pa, err := engine.ParentalAllowance(domain.ParentalAllowanceInput{NetIncome: dec("2000"), Children: 1})
	require.NoError(t, err)
	assert.Equal(t, "1300.00", pa.Parent.Basic.StringFixed(2))

	cs, err := engine.ChildSupplement(domain.ChildSupplementInput{Status: domain.HouseholdSingle, Children: 1, ReceivesChildBenefit: true, Gross: dec("500")})
	require.NoError(t, err)
	assert.Equal(t, domain.SupplementBelowMinimum, cs.Outcome)

	fine, err := engine.SpeedingFine(domain.SpeedingInput{Location: domain.RoadUrban, Vehicle: domain.VehicleCar, Allowed: 50, Driven: 80})
	require.NoError(t, err)
	assert.Equal(t, "208.50", fine.Total.StringFixed(2))

	income := engine.HouseholdIncome(domain.HouseholdIncomeInput{NetSalary: dec("2000"), ChildBenefit: dec("259")})
	assert.Equal(t, "2259.00", income.Monthly.StringFixed(2))
}

func TestEngineIsIdempotent(t *testing.T) {
	engine := NewEngine2026()

	tests := []struct {
		name string
		run  func() (any, error)
	}{
		{name: "Net salary", run: func() (any, error) {
			return engine.NetSalary(domain.NetSalaryInput{Gross: dec("4000"), TaxClass: 6, Children: 1, State: domain.StateBayern, ChurchTax: true})
		}},
		{name: "Severance", run: func() (any, error) {
			return engine.Severance(domain.SeveranceInput{RegularIncome: dec("50000"), Severance: dec("20000"), TaxClass: 1})
		}},
		{name: "Severance estimate", run: func() (any, error) {
			return engine.EstimateSeverance(domain.SeveranceEstimate{Years: dec("7.5"), MonthlyGross: dec("3800")}), nil
		}},
		{name: "Vehicle tax", run: func() (any, error) {
			return engine.VehicleTax(domain.VehicleProfile{Displacement: 1598, CO2: 145, Fuel: domain.FuelPetrol, FirstRegistration: dateutil.NewDate(2020, 5, 1)})
		}},
		{name: "Housing benefit", run: func() (any, error) {
			return engine.HousingBenefit(domain.HousingBenefitInput{HouseholdSize: 3, GrossIncome: dec("24000"), ColdRent: dec("700"), RentLevel: 4, PaysTax: true})
		}},
		{name: "Parental allowance", run: func() (any, error) {
			return engine.ParentalAllowance(domain.ParentalAllowanceInput{NetIncome: dec("2000"), Children: 2})
		}},
		{name: "Child supplement", run: func() (any, error) {
			return engine.ChildSupplement(domain.ChildSupplementInput{Status: domain.HouseholdSingle, Children: 1, ReceivesChildBenefit: true, Gross: dec("1500"), Net: dec("1200")})
		}},
		{name: "Overtime", run: func() (any, error) {
			return engine.Overtime(domain.OvertimeInput{MonthlyGross: dec("3000"), WeeklyHours: dec("40"), OvertimeHours: dec("10"), SurchargePct: dec("25")})
		}},
		{name: "Speeding fine", run: func() (any, error) {
			return engine.SpeedingFine(domain.SpeedingInput{Location: domain.RoadRural, Vehicle: domain.VehicleCar, Probation: true, Allowed: 100, Driven: 131})
		}},
		{name: "Notice period", run: func() (any, error) {
			return engine.NoticePeriod(domain.NoticePeriodProfile{Start: dateutil.NewDate(2010, 1, 1), Reference: dateutil.NewDate(2024, 6, 1)})
		}},
		{name: "Household income", run: func() (any, error) {
			return engine.HouseholdIncome(domain.HouseholdIncomeInput{NetSalary: dec("2000"), ChildBenefit: dec("259")}), nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.run()
			require.NoError(t, err)
			second, err := tt.run()
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestEngineSetLogger(t *testing.T) {
	engine := NewEngine2026()
	rec := &recordingLogger{}
	engine.SetLogger(rec)

	_, err := engine.NetSalary(domain.NetSalaryInput{Gross: dec("-1"), TaxClass: 1})
	require.NoError(t, err)
	require.NotEmpty(t, rec.messages)
	assert.Contains(t, rec.messages[0], "clamped")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestEngineAcceptsLogrusEntry(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	engine := NewEngine2026()
	engine.SetLogger(logger.WithField("module", "calculation"))

	_, err := engine.HousingBenefit(domain.HousingBenefitInput{HouseholdSize: 12, GrossIncome: dec("20000"), ColdRent: dec("800"), RentLevel: 2})
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "calculation", hook.LastEntry().Data["module"])
}

func TestEngineUsesCustomRules(t *testing.T) {
	rules := domain.DefaultRules()
	rules.Fines.Fee = dec("35")
	engine := NewEngine(rules)

	fine, err := engine.SpeedingFine(domain.SpeedingInput{Location: domain.RoadUrban, Vehicle: domain.VehicleCar, Allowed: 50, Driven: 80})
	require.NoError(t, err)
	assert.Equal(t, "215.00", fine.Total.StringFixed(2))
	assert.Equal(t, 2026, engine.Rules().Year)
}

func TestHouseholdIncome(t *testing.T) {
	result := HouseholdIncome(domain.HouseholdIncomeInput{
		NetSalary:      dec("2100"),
		MiniJob:        dec("538"),
		ChildBenefit:   dec("518"),
		ParentalAllow:  dec("300"),
		HousingBenefit: dec("120"),
		Pension:        dec("450.50"),
		Other:          dec("-80"),
	})

	assert.Equal(t, "2638.00", result.ByCategory[domain.IncomeWork].StringFixed(2))
	assert.Equal(t, "818.00", result.ByCategory[domain.IncomeFamily].StringFixed(2))
	assert.Equal(t, "120.00", result.ByCategory[domain.IncomeHousing].StringFixed(2))
	assert.Equal(t, "450.50", result.ByCategory[domain.IncomeOther].StringFixed(2), "negative entries count as zero")
	assert.Equal(t, "4026.50", result.Monthly.StringFixed(2))
	assert.Equal(t, "48318.00", result.Yearly.StringFixed(2))
	assert.Len(t, result.ByCategory, len(domain.IncomeCategories))
}
