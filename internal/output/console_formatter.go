package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ConsoleFormatter renders the report as aligned plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, strings.ToUpper(report.Title))
	fmt.Fprintln(&buf, strings.Repeat("=", utf8.RuneCountInString(report.Title)))

	width := 0
	for _, s := range report.Sections {
		for _, l := range s.Lines {
			width = max(width, utf8.RuneCountInString(l.Label))
		}
	}

	for _, s := range report.Sections {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, s.Title)
		fmt.Fprintln(&buf, strings.Repeat("-", utf8.RuneCountInString(s.Title)))
		for _, l := range s.Lines {
			pad := strings.Repeat(" ", width-utf8.RuneCountInString(l.Label))
			fmt.Fprintf(&buf, "%s:%s  %s\n", l.Label, pad, l.Value)
		}
	}

	if len(report.Notes) > 0 {
		fmt.Fprintln(&buf)
		for _, n := range report.Notes {
			if strings.Contains(n, "\n") {
				fmt.Fprintln(&buf, n)
				continue
			}
			fmt.Fprintf(&buf, "• %s\n", n)
		}
	}
	return buf.Bytes(), nil
}
