// Package letter composes termination letters (Kündigungsschreiben) as plain text.
package letter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/steuerkit/rechner/pkg/dateutil"
)

// ErrUnknownOption is returned for termination options other than the three known ones.
var ErrUnknownOption = errors.New("unknown termination option")

// ContractType selects subject line, reference label and extra requests.
type ContractType string

const (
	ContractEmployment ContractType = "arbeit"
	ContractTenancy    ContractType = "wohnung"
	ContractInsurance  ContractType = "versicherung"
	ContractFitness    ContractType = "fitness"
	ContractInternet   ContractType = "internet"
	ContractOther      ContractType = "sonstiges"
)

// Option is the kind of termination.
type Option string

const (
	OptionOrdinary   Option = "ordentlich"
	OptionImmediate  Option = "fristlos"
	OptionNonRenewal Option = "nicht_verlaengern"
)

// Party is a postal address block.
type Party struct {
	Name   string `yaml:"name" json:"name"`
	Street string `yaml:"street" json:"street"`
	Zip    string `yaml:"zip" json:"zip"`
	City   string `yaml:"city" json:"city"`
}

// Request holds everything the letter is composed from. Empty fields get placeholders.
type Request struct {
	ContractType ContractType  `yaml:"contract_type" json:"contract_type"`
	Option       Option        `yaml:"option" json:"option"`                           // Default: ordentlich
	Sender       Party         `yaml:"sender" json:"sender"`
	Recipient    Party         `yaml:"recipient" json:"recipient"`
	Reference    string        `yaml:"reference,omitempty" json:"reference,omitempty"`
	Date         dateutil.Date `yaml:"date,omitempty" json:"date,omitempty"`           // zero: today
	EndDate      dateutil.Date `yaml:"end_date,omitempty" json:"end_date,omitempty"`   // zero: next possible date
	Reason       string        `yaml:"reason,omitempty" json:"reason,omitempty"`       // fristlos only
}

// Letter is the composed letter, both as parts and as the full text.
type Letter struct {
	Sender    []string `json:"sender"`
	PlaceDate string   `json:"place_date"`
	Recipient []string `json:"recipient"`
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	Signature string   `json:"signature"`
	FileName  string   `json:"file_name"`
	Text      string   `json:"text"`
}

var (
	defaultSender    = Party{Name: "Max Mustermann", Street: "Musterstr. 1", Zip: "12345", City: "Berlin"}
	defaultRecipient = Party{Name: "Firmenname GmbH", Street: "Hauptstr. 100", Zip: "10115", City: "Berlin"}
)

const nextPossibleDate = "nächstmöglichen Zeitpunkt"

type contractTexts struct {
	subject        string
	referenceLabel string
	extra          string
}

var contracts = map[ContractType]contractTexts{
	ContractEmployment: {
		subject:        "Kündigung meines Arbeitsverhältnisses",
		referenceLabel: "Personalnummer",
		extra:          "Zudem bitte ich um die Erstellung eines qualifizierten Arbeitszeugnisses sowie die Herausgabe meiner restlichen Arbeitspapiere.",
	},
	ContractTenancy: {
		subject:        "Kündigung meines Mietvertrags",
		referenceLabel: "Mieternummer",
		extra:          "Bezüglich der Wohnungsübergabe und der Kautionsrückzahlung werde ich mich zeitnah mit Ihnen in Verbindung setzen.",
	},
	ContractInsurance: {subject: "Kündigung meiner Versicherung", referenceLabel: "Versicherungsnummer"},
	ContractFitness:   {subject: "Kündigung meiner Mitgliedschaft", referenceLabel: "Vertragsnummer"},
	ContractInternet:  {subject: "Kündigung meines Internetanschlusses", referenceLabel: "Vertragsnummer"},
}

var genericContract = contractTexts{subject: "Kündigung meines Vertrags", referenceLabel: "Kundennummer"}

var letterTemplate = template.Must(template.New("letter").Parse(`{{range .Sender}}{{.}}
{{end}}
{{range .Recipient}}{{.}}
{{end}}
{{.PlaceDate}}

{{.Subject}}

{{.Body}}

___________________________
{{.Signature}}
`))

// Now returns the current time; tests may replace it.
var Now = time.Now

func textsFor(t ContractType) contractTexts {
	if texts, ok := contracts[t]; ok {
		return texts
	}
	return genericContract
}

func withDefaults(p, d Party) Party {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = d.Name
	}
	if strings.TrimSpace(p.Street) == "" {
		p.Street = d.Street
	}
	if strings.TrimSpace(p.Zip) == "" {
		p.Zip = d.Zip
	}
	if strings.TrimSpace(p.City) == "" {
		p.City = d.City
	}
	return p
}

func (p Party) lines() []string {
	return []string{p.Name, p.Street, p.Zip + " " + p.City}
}

// Compose builds the letter for req.
func Compose(req Request) (*Letter, error) {
	option := req.Option
	if option == "" {
		option = OptionOrdinary
	}
	sender := withDefaults(req.Sender, defaultSender)
	recipient := withDefaults(req.Recipient, defaultRecipient)
	texts := textsFor(req.ContractType)

	date := req.Date
	if date.IsZero() {
		date = dateutil.DateOf(Now())
	}
	endDate := nextPossibleDate
	if !req.EndDate.IsZero() {
		endDate = req.EndDate.German()
	}

	var main string
	switch option {
	case OptionOrdinary:
		main = fmt.Sprintf("hiermit kündige ich meinen oben genannten Vertrag ordentlich und fristgerecht zum %s.", endDate)
	case OptionImmediate:
		main = "hiermit kündige ich meinen oben genannten Vertrag außerordentlich und fristlos aus wichtigem Grund."
		if reason := strings.TrimSpace(req.Reason); reason != "" {
			main += "\n\nBegründung: " + reason
		}
		main += "\n\nHilfsweise kündige ich zum nächstmöglichen Termin."
	case OptionNonRenewal:
		main = fmt.Sprintf("hiermit teile ich Ihnen mit, dass ich meinen befristeten Vertrag nicht verlängere. Dieser endet somit planmäßig zum %s.", endDate)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, req.Option)
	}

	paragraphs := []string{"Sehr geehrte Damen und Herren,", main}
	if texts.extra != "" {
		paragraphs = append(paragraphs, texts.extra)
	}
	paragraphs = append(paragraphs,
		"Bitte bestätigen Sie mir den Erhalt dieser Kündigung sowie das Beendigungsdatum schriftlich.",
		"Mit freundlichen Grüßen,")

	subject := texts.subject
	if ref := strings.TrimSpace(req.Reference); ref != "" {
		subject += fmt.Sprintf(" (%s: %s)", texts.referenceLabel, ref)
	}

	l := &Letter{
		Sender:    sender.lines(),
		PlaceDate: fmt.Sprintf("%s, den %s", sender.City, date.German()),
		Recipient: recipient.lines(),
		Subject:   subject,
		Body:      strings.Join(paragraphs, "\n\n"),
		Signature: sender.Name,
		FileName:  fileName(req.ContractType, sender.Name),
	}

	var buf bytes.Buffer
	if err := letterTemplate.Execute(&buf, l); err != nil {
		return nil, fmt.Errorf("failed to render letter: %w", err)
	}
	l.Text = buf.String()
	return l, nil
}

func fileName(t ContractType, name string) string {
	if t == "" {
		t = ContractOther
	}
	return fmt.Sprintf("Kuendigung_%s_%s.txt", t, strings.Join(strings.Fields(name), "_"))
}
