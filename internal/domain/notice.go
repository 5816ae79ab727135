package domain

import "github.com/steuerkit/rechner/pkg/dateutil"

// NoticePeriodProfile is the notice period request. A zero Reference means today.
type NoticePeriodProfile struct {
	Start     dateutil.Date `yaml:"start" json:"start"`
	Reference dateutil.Date `yaml:"reference,omitempty" json:"reference,omitempty"`
}

// NoticeRule names how the last working day was derived.
type NoticeRule string

const (
	NoticeProbation NoticeRule = "probation"
	NoticeBasic     NoticeRule = "basic"
	NoticeExtended  NoticeRule = "extended"
)

// NoticePeriodResult holds tenure, the statutory period and the resulting end date.
type NoticePeriodResult struct {
	Input NoticePeriodProfile `json:"input"`

	Reference    dateutil.Date `json:"reference"`
	TenureYears  int           `json:"tenure_years"`
	TenureMonths int           `json:"tenure_months"`
	TenureDays   int           `json:"tenure_days"`
	Rule         NoticeRule    `json:"rule"`
	PeriodMonths int           `json:"period_months"` // zero for week-based periods
	PeriodDays   int           `json:"period_days"`   // zero for month-based periods
	Label        string        `json:"label"`
	EndDate      dateutil.Date `json:"end_date"`
}
