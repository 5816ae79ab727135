package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one row per report line: section, label, value.
// Notes are not part of the CSV output.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	w.Comma = ';'
	if err := w.Write([]string{"Abschnitt", "Position", "Wert"}); err != nil {
		return nil, err
	}
	for _, s := range report.Sections {
		for _, l := range s.Lines {
			if err := w.Write([]string{s.Title, l.Label, l.Value}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
