package output

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/internal/letter"
	"github.com/steuerkit/rechner/internal/rentlevel"
)

// Line is one labelled value of a report.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section groups related lines under a heading.
type Section struct {
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

// Report is the display model shared by all formatters. Result keeps the raw
// calculation result for machine-readable formats.
type Report struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	Notes    []string  `json:"notes,omitempty"`
	Result   any       `json:"result"`
}

func (r *Report) section(title string) *Section {
	r.Sections = append(r.Sections, Section{Title: title})
	return &r.Sections[len(r.Sections)-1]
}

func (s *Section) add(label, value string) *Section {
	s.Lines = append(s.Lines, Line{Label: label, Value: value})
	return s
}

func (s *Section) eur(label string, d decimal.Decimal) *Section {
	return s.add(label, FormatCurrency(d))
}

// BuildReport converts a calculation result into its display model.
func BuildReport(result any) (*Report, error) {
	switch r := result.(type) {
	case domain.NetSalaryResult:
		return netSalaryReport(r), nil
	case domain.SeveranceResult:
		return severanceReport(r), nil
	case domain.SeveranceEstimateResult:
		return severanceEstimateReport(r), nil
	case domain.VehicleTaxResult:
		return vehicleTaxReport(r), nil
	case domain.HousingBenefitResult:
		return housingBenefitReport(r), nil
	case domain.ParentalAllowanceResult:
		return parentalAllowanceReport(r), nil
	case domain.ChildSupplementResult:
		return childSupplementReport(r), nil
	case domain.OvertimeResult:
		return overtimeReport(r), nil
	case domain.SpeedingResult:
		return speedingReport(r), nil
	case domain.NoticePeriodResult:
		return noticePeriodReport(r), nil
	case domain.HouseholdIncomeResult:
		return householdIncomeReport(r), nil
	case *letter.Letter:
		return letterReport(r), nil
	case []rentlevel.City:
		return rentLevelReport(r), nil
	default:
		return nil, fmt.Errorf("%w: no report for %T", ErrUnsupportedFormat, result)
	}
}

func netSalaryReport(r domain.NetSalaryResult) *Report {
	rep := &Report{Title: "Brutto-Netto-Rechnung", Result: r}
	rep.section("Einkommen").
		eur("Brutto monatlich", r.GrossMonthly).
		eur("Brutto jährlich", r.GrossAnnual).
		add("Steuerklasse", strconv.Itoa(int(r.Input.TaxClass))).
		eur("Zu versteuerndes Einkommen", r.TaxableIncome)
	rep.section("Steuern").
		eur("Lohnsteuer", r.IncomeTax).
		eur("Solidaritätszuschlag", r.SolidaritySurcharge).
		eur("Kirchensteuer", r.ChurchTax).
		eur("Steuern gesamt", r.TotalTax)
	rep.section("Sozialversicherung").
		eur("Rentenversicherung", r.SocialInsurance.Pension).
		eur("Arbeitslosenversicherung", r.SocialInsurance.Unemployment).
		eur("Krankenversicherung", r.SocialInsurance.Health).
		eur("Pflegeversicherung", r.SocialInsurance.Care).
		eur("Sozialabgaben gesamt", r.SocialInsurance.Total)
	net := rep.section("Ergebnis").
		eur("Abzüge gesamt", r.TotalDeductions).
		add("Abzugsquote", FormatPercentage(r.DeductionRatio)).
		eur("Netto monatlich", r.NetMonthly).
		eur("Netto jährlich", r.NetAnnual)
	if r.HourlyNet != nil {
		net.eur("Netto pro Stunde", *r.HourlyNet)
	}
	return rep
}

func severanceReport(r domain.SeveranceResult) *Report {
	rep := &Report{Title: "Abfindung (Fünftelregelung)", Result: r}
	rep.section("Eingaben").
		eur("Jahreseinkommen", r.Input.RegularIncome).
		eur("Abfindung", r.Input.Severance)
	rep.section("Steuer auf die Abfindung").
		eur("Mit Fünftelregelung", r.SmoothedTaxTotal).
		eur("Ohne Fünftelregelung", r.UnsmoothedTaxTotal).
		eur("Ersparnis", r.TaxSaving).
		add("Effektiver Steuersatz", FormatPercentage(r.EffectiveRate))
	rep.section("Ergebnis").
		eur("Netto-Abfindung", r.NetSeverance).
		eur("Netto-Jahreseinkommen", r.NetRegular).
		eur("Gesamt netto", r.TotalAnnualNet)
	if r.RawSaving.IsNegative() {
		rep.Notes = append(rep.Notes, "Die Fünftelregelung bringt hier keinen Vorteil.")
	}
	return rep
}

func severanceEstimateReport(r domain.SeveranceEstimateResult) *Report {
	rep := &Report{Title: "Abfindung (Faustformel)", Result: r}
	rep.section("Schätzung").
		add("Betriebszugehörigkeit", FormatNumber(r.Input.Years, 1)+" Jahre").
		eur("Bruttomonatsgehalt", r.Input.MonthlyGross).
		eur("Abfindung", r.Amount)
	return rep
}

func vehicleTaxReport(r domain.VehicleTaxResult) *Report {
	rep := &Report{Title: "Kfz-Steuer", Result: r}
	s := rep.section("Fahrzeug").
		add("Hubraum", fmt.Sprintf("%d cm³", r.Input.Displacement)).
		add("CO₂", fmt.Sprintf("%d g/km", r.Input.CO2)).
		add("Kraftstoff", string(r.Input.Fuel)).
		add("Erstzulassung", r.Input.FirstRegistration.German())
	if r.Exempt {
		s.add("Steuerbefreit bis", r.ExemptUntil.German())
	}
	tax := rep.section("Steuer").
		eur("Hubraumanteil", r.DisplacementTax).
		eur("CO₂-Anteil", r.CO2Tax)
	for _, share := range r.Breakdown {
		tax.eur(fmt.Sprintf("  %d-%d g/km à %s", share.From, share.To, FormatCurrency(share.Rate)), share.Amount)
	}
	tax.eur("Jahressteuer", r.AnnualTax).
		eur("Monatlich", r.MonthlyTax)
	return rep
}

func housingBenefitReport(r domain.HousingBenefitResult) *Report {
	rep := &Report{Title: "Wohngeld", Result: r}
	rep.section("Berechnung").
		add("Haushaltsmitglieder", strconv.Itoa(r.HouseholdSize)).
		add("Pauschaler Abzug", FormatPercentage(r.DeductionRate.Mul(decimal.NewFromInt(100)))).
		eur("Monatliches Einkommen", r.MonthlyIncome).
		eur("Höchstbetrag Miete", r.MaxRecognizedRent).
		eur("Berücksichtigte Miete", r.RecognizedRent)
	rep.section("Ergebnis").
		eur("Wohngeld monatlich", r.Benefit)
	if r.BelowMinimum {
		rep.Notes = append(rep.Notes, "Der Anspruch liegt unter dem Mindestbetrag und wird nicht ausgezahlt.")
	}
	return rep
}

func parentAllowanceLines(s *Section, p domain.ParentAllowance) {
	s.eur("Berücksichtigtes Netto", p.ConsideredIncome).
		add("Ersatzrate", FormatPercentage(p.Rate.Mul(decimal.NewFromInt(100)))).
		eur("Basiselterngeld", p.Basic).
		add("Bezugsdauer Basis", fmt.Sprintf("%d Monate", p.BasicMonths)).
		eur("ElterngeldPlus", p.Plus).
		add("Bezugsdauer Plus", fmt.Sprintf("%d Monate", p.PlusMonths))
}

func parentalAllowanceReport(r domain.ParentalAllowanceResult) *Report {
	rep := &Report{Title: "Elterngeld", Result: r}
	if r.Blocked {
		rep.Notes = append(rep.Notes, "Die Einkommensgrenze ist überschritten, es besteht kein Anspruch.")
	}
	parentAllowanceLines(rep.section("Elternteil"), r.Parent)
	if r.Partner != nil {
		parentAllowanceLines(rep.section("Partnerin oder Partner"), *r.Partner)
	}
	return rep
}

var supplementNotes = map[domain.ChildSupplementOutcome]string{
	domain.SupplementNoChildBenefit: "Kinderzuschlag setzt den Bezug von Kindergeld voraus.",
	domain.SupplementBelowMinimum:   "Das Bruttoeinkommen liegt unter der Mindesteinkommensgrenze.",
	domain.SupplementIncomeTooHigh:  "Das anzurechnende Einkommen ist zu hoch.",
}

func childSupplementReport(r domain.ChildSupplementResult) *Report {
	rep := &Report{Title: "Kinderzuschlag", Result: r}
	rep.section("Prüfung").
		eur("Bruttoeinkommen", r.CombinedGross).
		eur("Mindesteinkommen", r.MinimumGross).
		eur("Bereinigtes Netto", r.AdjustedNet).
		eur("Elternbedarf", r.ParentNeed)
	rep.section("Ergebnis").
		eur("Kinderzuschlag", r.Supplement).
		eur("Kindergeld", r.ChildBenefitTotal).
		eur("Leistungen gesamt", r.TotalSupport)
	if note, ok := supplementNotes[r.Outcome]; ok {
		rep.Notes = append(rep.Notes, note)
	}
	return rep
}

func overtimeReport(r domain.OvertimeResult) *Report {
	rep := &Report{Title: "Überstunden", Result: r}
	rep.section("Vergütung").
		eur("Stundenlohn", r.HourlyRate).
		eur("Grundvergütung", r.BasePay).
		eur("Zuschlag", r.SurchargePay).
		eur("Brutto gesamt", r.TotalGross).
		eur("Steuerfrei", r.TaxFree).
		eur("Netto (geschätzt)", r.Net)
	rep.section("Freizeitausgleich").
		add("Ohne Zuschlag", FormatNumber(r.TimeOffBase, 2)+" Std.").
		add("Mit Zuschlag", FormatNumber(r.TimeOffTotal, 2)+" Std.")
	return rep
}

func speedingReport(r domain.SpeedingResult) *Report {
	rep := &Report{Title: "Bußgeld", Result: r}
	s := rep.section("Verstoß").
		add("Erlaubt", fmt.Sprintf("%d km/h", r.Input.Allowed)).
		add("Gemessen", fmt.Sprintf("%d km/h", r.Input.Driven)).
		add("Toleranz", fmt.Sprintf("%d km/h", r.Tolerance)).
		add("Überschreitung", fmt.Sprintf("%d km/h", r.Overage))
	if !r.Violation {
		s.add("Ergebnis", "Kein Verstoß")
		return rep
	}
	rep.section("Folgen").
		eur("Bußgeld", r.Fine).
		eur("Gebühren", r.Fee).
		eur("Gesamt", r.Total).
		add("Punkte", strconv.Itoa(r.Points)).
		add("Fahrverbot", r.Ban)
	if r.Probation != nil {
		rep.Notes = append(rep.Notes, fmt.Sprintf("Probezeit: Verlängerung um %d Jahre und Aufbauseminar.", r.Probation.ExtensionYears))
	}
	return rep
}

func noticePeriodReport(r domain.NoticePeriodResult) *Report {
	rep := &Report{Title: "Kündigungsfrist", Result: r}
	rep.section("Ergebnis").
		add("Beginn", r.Input.Start.German()).
		add("Stichtag", r.Reference.German()).
		add("Betriebszugehörigkeit", fmt.Sprintf("%d Jahre, %d Monate, %d Tage", r.TenureYears, r.TenureMonths, r.TenureDays)).
		add("Frist", r.Label).
		add("Letzter Arbeitstag", r.EndDate.German())
	return rep
}

var incomeCategoryLabels = map[domain.IncomeCategory]string{
	domain.IncomeWork:    "Arbeit",
	domain.IncomeFamily:  "Familie",
	domain.IncomeHousing: "Wohnen",
	domain.IncomeOther:   "Sonstiges",
}

func householdIncomeReport(r domain.HouseholdIncomeResult) *Report {
	rep := &Report{Title: "Haushaltseinkommen", Result: r}
	s := rep.section("Monatlich nach Kategorie")
	for _, c := range domain.IncomeCategories {
		s.eur(incomeCategoryLabels[c], r.ByCategory[c])
	}
	rep.section("Summe").
		eur("Monatlich", r.Monthly).
		eur("Jährlich", r.Yearly)
	return rep
}

func letterReport(l *letter.Letter) *Report {
	rep := &Report{Title: l.Subject, Result: l}
	rep.section("Schreiben").add("Datei", l.FileName)
	rep.Notes = append(rep.Notes, l.Text)
	return rep
}

func rentLevelReport(cities []rentlevel.City) *Report {
	rep := &Report{Title: "Mietstufen", Result: cities}
	s := rep.section("Treffer")
	for _, c := range cities {
		s.add(fmt.Sprintf("%s (%s)", c.Name, c.State), fmt.Sprintf("Mietstufe %d", c.Level))
	}
	if len(cities) == 0 {
		rep.Notes = append(rep.Notes, "Keine Stadt gefunden. Die Mietstufe kann manuell angegeben werden.")
	}
	return rep
}
