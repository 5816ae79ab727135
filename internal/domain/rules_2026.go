package domain

import (
	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/pkg/dateutil"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func bound(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func decs(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = dec(v)
	}
	return out
}

// DefaultRules returns the 2026 constants. Each call builds a fresh bundle.
func DefaultRules() Rules {
	return Rules{
		Year:              2026,
		IncomeTax:         defaultIncomeTax(),
		SocialInsurance:   defaultSocialInsurance(),
		Payroll:           defaultPayroll(),
		Severance:         SeveranceRules{SpreadYears: 5, EstimateFactor: dec("0.5"), MaxChurchRatePct: dec("9")},
		VehicleTax:        defaultVehicleTax(),
		HousingBenefit:    defaultHousingBenefit(),
		ParentalAllowance: defaultParentalAllowance(),
		ChildSupplement:   defaultChildSupplement(),
		Overtime: OvertimeRules{
			WeeksPerMonth:          dec("4.333"),
			TaxFreeMinWeeklyHours:  dec("40"),
			TaxFreeMaxSurchargePct: dec("25"),
			DefaultTaxRatePct:      dec("35"),
		},
		Fines:        defaultFines(),
		NoticePeriod: defaultNoticePeriod(),
	}
}

func defaultIncomeTax() IncomeTaxRules {
	return IncomeTaxRules{
		BasicAllowance: dec("12348"),
		Zones: []PolynomialZone{
			{UpperBound: bound("12348")},
			{UpperBound: bound("17799"), Origin: dec("12348"), Scale: dec("10000"), Quadratic: dec("914.51"), Linear: dec("1400")},
			{UpperBound: bound("69878"), Origin: dec("17799"), Scale: dec("10000"), Quadratic: dec("173.10"), Linear: dec("2397"), Constant: dec("1034.87")},
			{UpperBound: bound("277825"), Scale: dec("1"), Linear: dec("0.42"), Constant: dec("-11135.63")},
			{Scale: dec("1"), Linear: dec("0.45"), Constant: dec("-19470.38")},
		},
		SingleParentRelief:         dec("4260"),
		SingleParentReliefPerChild: dec("240"),
		Class5Factor:               dec("1.25"),
		Class6MinimumRate:          dec("0.14"),
	}
}

func defaultSocialInsurance() SocialInsuranceRules {
	return SocialInsuranceRules{
		PensionCeiling:          dec("8450"),
		HealthCeiling:           dec("5812.50"),
		PensionRate:             dec("0.093"),
		UnemploymentRate:        dec("0.013"),
		HealthBaseRate:          dec("0.073"),
		DefaultSupplementalRate: dec("2.9"),
		CareBaseRate:            dec("0.018"),
		CareChildlessSurcharge:  dec("0.006"),
		CareChildDiscount:       dec("0.0025"),
		CareMaxDiscountSteps:    4,
		CareMinimumRate:         dec("0.008"),
		CareRegionalSurcharges:  map[State]decimal.Decimal{StateSachsen: dec("0.005")},
	}
}

func defaultPayroll() PayrollRules {
	return PayrollRules{
		WorkExpenseAllowance:    dec("1230"),
		SpecialExpenseAllowance: dec("36"),
		WeeksPerMonth:           dec("4.33"),
		DefaultWeeklyHours:      dec("40"),
		SoliExemption:           dec("19488"),
		SoliRate:                dec("0.055"),
		SoliMitigationRate:      dec("0.119"),
		ChurchTaxRates: map[State]decimal.Decimal{
			StateBadenWuerttemberg: dec("0.08"),
			StateBayern:            dec("0.08"),
		},
		ChurchTaxDefaultRate: dec("0.09"),
	}
}

func defaultVehicleTax() VehicleTaxRules {
	modern := func() map[FuelType]decimal.Decimal {
		return map[FuelType]decimal.Decimal{FuelPetrol: dec("2.00"), FuelDiesel: dec("9.50"), FuelElectric: decimal.Zero}
	}
	return VehicleTaxRules{
		Eras: []VehicleEra{
			{
				Name:              "legacy",
				DisplacementRates: map[FuelType]decimal.Decimal{FuelPetrol: dec("6.75"), FuelDiesel: dec("15.44"), FuelElectric: decimal.Zero},
				CO2Mode:           CO2None,
			},
			{
				Name:              "co2-2009",
				From:              dateutil.NewDate(2009, 7, 1),
				DisplacementRates: modern(),
				CO2Mode:           CO2Linear,
				CO2Allowance:      dec("120"),
				CO2LinearRate:     dec("2.00"),
			},
			{
				Name:              "co2-2012",
				From:              dateutil.NewDate(2012, 1, 1),
				DisplacementRates: modern(),
				CO2Mode:           CO2Linear,
				CO2Allowance:      dec("110"),
				CO2LinearRate:     dec("2.00"),
			},
			{
				Name:              "co2-2014",
				From:              dateutil.NewDate(2014, 1, 1),
				DisplacementRates: modern(),
				CO2Mode:           CO2Progressive,
				CO2Allowance:      dec("95"),
				CO2Bands: []StepBand{
					{UpperBound: bound("115"), Rate: dec("2.00")},
					{UpperBound: bound("135"), Rate: dec("2.20")},
					{UpperBound: bound("155"), Rate: dec("2.50")},
					{UpperBound: bound("175"), Rate: dec("2.90")},
					{UpperBound: bound("195"), Rate: dec("3.40")},
					{Rate: dec("4.00")},
				},
			},
		},
		ElectricRegisteredBy:   dateutil.NewDate(2030, 12, 31),
		ElectricExemptionUntil: dateutil.NewDate(2035, 12, 31),
		DisplacementUnit:       dec("100"),
	}
}

func defaultHousingBenefit() HousingBenefitRules {
	return HousingBenefitRules{
		MaxHouseholdSize: 8,
		RentLimits: [][]decimal.Decimal{
			decs("361", "408", "456", "511", "562", "615", "677"),
			decs("437", "493", "551", "619", "680", "745", "820"),
			decs("521", "587", "657", "737", "809", "887", "975"),
			decs("607", "684", "764", "856", "940", "1029", "1131"),
			decs("693", "781", "874", "976", "1074", "1173", "1293"),
			decs("779", "878", "984", "1096", "1208", "1317", "1455"),
			decs("865", "975", "1094", "1216", "1342", "1461", "1617"),
			decs("951", "1072", "1204", "1336", "1476", "1605", "1779"),
		},
		Heating: decs("110.40", "118.60", "139.80", "160.20", "180.60", "201.00", "221.40", "241.80"),
		Climate: decs("19.20", "24.80", "29.60", "34.00", "38.80", "43.60", "48.40", "53.20"),
		Coefficients: []HousingCoefficients{
			{A: dec("0.04"), B: dec("0.0004797"), C: dec("0.0000408")},
			{A: dec("0.03"), B: dec("0.0003571"), C: dec("0.0000304")},
			{A: dec("0.02"), B: dec("0.0002917"), C: dec("0.0000245")},
			{A: dec("0.01"), B: dec("0.0002163"), C: dec("0.0000176")},
			{A: dec("0"), B: dec("0.0001907"), C: dec("0.0000172")},
			{A: dec("-0.01"), B: dec("0.0001722"), C: dec("0.0000166")},
			{A: dec("-0.02"), B: dec("0.0001592"), C: dec("0.0000165")},
			{A: dec("-0.03"), B: dec("0.0001583"), C: dec("0.0000165")},
		},
		DeductionStep:  dec("0.10"),
		Factor:         dec("1.15"),
		MinimumPayment: dec("10"),
	}
}

func defaultParentalAllowance() ParentalAllowanceRules {
	return ParentalAllowanceRules{
		IncomeCap:           dec("2770"),
		BaseRate:            dec("0.65"),
		MiddleRate:          dec("0.67"),
		LowIncomeThreshold:  dec("1000"),
		MiddleUpperBound:    dec("1200"),
		TaperUpperBound:     dec("1240"),
		RateStep:            dec("0.001"),
		RateStepIncome:      dec("2"),
		MaxRate:             dec("1"),
		Minimum:             dec("300"),
		Maximum:             dec("1800"),
		MultipleBirthBonus:  dec("300"),
		SiblingBonusRate:    dec("0.10"),
		SiblingBonusMinimum: dec("75"),
		BasicMonths:         12,
	}
}

func defaultChildSupplement() ChildSupplementRules {
	return ChildSupplementRules{
		MaxPerChild:          dec("297"),
		ChildBenefitPerChild: dec("259"),
		MinimumGross: map[HouseholdStatus]decimal.Decimal{
			HouseholdSingle: dec("600"),
			HouseholdCouple: dec("900"),
		},
		StandardNeed: map[HouseholdStatus]decimal.Decimal{
			HouseholdSingle: dec("563"),
			HouseholdCouple: dec("1012"),
		},
		WithdrawalRate:         dec("0.45"),
		ChildIncomeRate:        dec("0.45"),
		RentShare:              dec("0.70"),
		WorkFlatAllowance:      dec("100"),
		InsuranceFlatAllowance: dec("30"),
	}
}

func tier(min, max int, fine string, points, banMonths int) FineTier {
	return FineTier{Min: min, Max: max, Fine: dec(fine), Points: points, BanMonths: banMonths}
}

func defaultFines() FineRules {
	repeatOnly := tier(26, 30, "180", 1, 1)
	repeatOnly.BanOnRepeat = true
	return FineRules{
		MaxSpeed:              350,
		FlatToleranceBelow:    100,
		FlatTolerance:         3,
		ToleranceRate:         dec("0.03"),
		FeeThreshold:          dec("60"),
		Fee:                   dec("28.50"),
		ProbationThreshold:    21,
		ProbationExtensionYrs: 2,
		UrbanLight: []FineTier{
			tier(1, 10, "30", 0, 0),
			tier(11, 15, "50", 0, 0),
			tier(16, 20, "70", 0, 0),
			tier(21, 25, "115", 1, 0),
			repeatOnly,
			tier(31, 40, "260", 2, 1),
			tier(41, 50, "400", 2, 1),
			tier(51, 60, "560", 2, 2),
			tier(61, 70, "700", 2, 3),
			tier(71, 999, "800", 2, 3),
		},
		RuralLight: []FineTier{
			tier(1, 10, "20", 0, 0),
			tier(11, 15, "40", 0, 0),
			tier(16, 20, "60", 0, 0),
			tier(21, 25, "100", 1, 0),
			tier(26, 30, "150", 1, 0),
			tier(31, 40, "200", 1, 0),
			tier(41, 50, "320", 2, 1),
			tier(51, 60, "480", 2, 1),
			tier(61, 70, "600", 2, 2),
			tier(71, 999, "700", 2, 3),
		},
		UrbanHeavy: []FineTier{
			tier(1, 10, "40", 0, 0),
			tier(11, 15, "60", 0, 0),
			tier(16, 20, "160", 1, 0),
			tier(21, 25, "175", 1, 0),
			tier(26, 30, "235", 2, 1),
			tier(31, 40, "340", 2, 1),
			tier(41, 50, "560", 2, 2),
			tier(51, 60, "700", 2, 3),
			tier(61, 999, "800", 2, 3),
		},
		RuralHeavy: []FineTier{
			tier(1, 10, "30", 0, 0),
			tier(11, 15, "50", 0, 0),
			tier(16, 20, "140", 1, 0),
			tier(21, 25, "150", 1, 0),
			tier(26, 30, "175", 1, 0),
			tier(31, 40, "255", 2, 1),
			tier(41, 50, "480", 2, 1),
			tier(51, 60, "600", 2, 2),
			tier(61, 999, "700", 2, 3),
		},
	}
}

func defaultNoticePeriod() NoticePeriodRules {
	return NoticePeriodRules{
		ProbationMonths: 6,
		ProbationDays:   14,
		BasicYears:      2,
		BasicDays:       28,
		MidMonthDay:     15,
		Steps: []NoticeStep{
			{MinYears: 2, Months: 1},
			{MinYears: 5, Months: 2},
			{MinYears: 8, Months: 3},
			{MinYears: 10, Months: 4},
			{MinYears: 12, Months: 5},
			{MinYears: 15, Months: 6},
			{MinYears: 20, Months: 7},
		},
	}
}
