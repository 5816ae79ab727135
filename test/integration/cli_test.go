package integration

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steuerkit/rechner/internal/cli"
	"github.com/steuerkit/rechner/internal/domain"
)

// run executes the CLI with args and stdin, returning stdout, stderr and the error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := cli.NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLINetSalaryConsole(t *testing.T) {
	out, _, err := run(t, "", "netto", "../testdata/netto.yaml")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "BRUTTO-NETTO-RECHNUNG\n"), out)
	assert.Contains(t, out, "2.625,00 €")
}

func TestCLINetSalaryJSONFromStdin(t *testing.T) {
	out, _, err := run(t, `{"gross": 4000, "tax_class": 1, "state": "berlin"}`, "netto", "--format", "json")
	require.NoError(t, err)

	var result domain.NetSalaryResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.Equal(t, "2625.00", result.NetMonthly.StringFixed(2))
}

func TestCLICalculators(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		contains []string
	}{
		{
			name:     "Speeding fine from JSON file",
			args:     []string{"bussgeld", "../testdata/bussgeld.json"},
			contains: []string{"208,50 €", "1 Monat*"},
		},
		{
			name:     "Notice period",
			args:     []string{"kuendigungsfrist", "../testdata/kuendigungsfrist.yaml"},
			contains: []string{"KÜNDIGUNGSFRIST", "30.11.2024"},
		},
		{
			name:     "Housing benefit resolves the city",
			args:     []string{"wohngeld", "../testdata/wohngeld.yaml", "-f", "json"},
			contains: []string{`"rent_level": 2`},
		},
		{
			name:     "Severance estimate",
			args:     []string{"abfindung-schaetzen", "-f", "csv"},
			stdin:    "years: 10\nmonthly_gross: 4000\n",
			contains: []string{"Abschnitt;Position;Wert", "20.000,00 €"},
		},
		{
			name:     "Household income",
			args:     []string{"haushaltseinkommen"},
			stdin:    "net_salary: 2000\nchild_benefit: 259\n",
			contains: []string{"HAUSHALTSEINKOMMEN", "27.108,00 €"},
		},
		{
			name:     "Rent level search",
			args:     []string{"mietstufe", "mün"},
			contains: []string{"München (BY)", "Münster (NW)"},
		},
		{
			name:     "Termination letter text",
			args:     []string{"kuendigung", "../testdata/kuendigung.yaml", "--text"},
			contains: []string{"Erika Musterfrau\nLindenweg 5\n04109 Leipzig\n", "Leipzig, den 02.03.2026", "Kündigung meiner Mitgliedschaft (Vertragsnummer: M-4711)"},
		},
		{
			name:     "Termination letter report",
			args:     []string{"kuendigung", "../testdata/kuendigung.yaml"},
			contains: []string{"Kuendigung_fitness_Erika_Musterfrau.txt"},
		},
		{
			name:     "HTML report",
			args:     []string{"bussgeld", "../testdata/bussgeld.json", "-f", "html"},
			contains: []string{"<!DOCTYPE html>", `id="result"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCLIRulesOverride(t *testing.T) {
	out, _, err := run(t, "", "bussgeld", "../testdata/bussgeld.json", "--rules", "../testdata/rules-override.yaml", "-f", "json")
	require.NoError(t, err)

	var result domain.SpeedingResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), out)
	assert.Equal(t, "210.00", result.Total.StringFixed(2))
}

func TestCLIRulesRoundTrip(t *testing.T) {
	dump, _, err := run(t, "", "regeln", "--rules", "../testdata/rules-override.yaml")
	require.NoError(t, err)
	assert.Contains(t, dump, "year: 2027")

	path := t.TempDir() + "/rules.yaml"
	require.NoError(t, writeFile(path, dump))

	out, _, err := run(t, "", "bussgeld", "../testdata/bussgeld.json", "--rules", path, "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total": "210`)
}

func TestCLIErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		stdin       string
		expectedErr string
	}{
		{
			name:        "Unknown format",
			args:        []string{"netto", "../testdata/netto.yaml", "-f", "pdf"},
			expectedErr: "unsupported output format",
		},
		{
			name:        "Unknown log level",
			args:        []string{"netto", "../testdata/netto.yaml", "--log-level", "loud"},
			expectedErr: "log level must be one of",
		},
		{
			name:        "Missing request file",
			args:        []string{"netto", "../testdata/missing.yaml"},
			expectedErr: "failed to read file",
		},
		{
			name:        "Empty stdin",
			args:        []string{"netto"},
			expectedErr: "empty request",
		},
		{
			name:        "Invalid tax class",
			args:        []string{"netto"},
			stdin:       "gross: 3000\ntax_class: 8\n",
			expectedErr: "tax class",
		},
		{
			name:        "Unknown city",
			args:        []string{"wohngeld"},
			stdin:       "household_size: 1\ngross_income: 12000\ncold_rent: 500\ncity: Atlantis\n",
			expectedErr: "unknown city",
		},
		{
			name:        "Broken rules file",
			args:        []string{"regeln", "--rules", "../testdata/rules-invalid.yaml"},
			expectedErr: "failed to load rules",
		},
		{
			name:        "Too many arguments",
			args:        []string{"netto", "a.yaml", "b.yaml"},
			expectedErr: "accepts at most 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, strings.ToLower(err.Error()), strings.ToLower(tt.expectedErr))
		})
	}
}

func TestCLILogging(t *testing.T) {
	_, stderr, err := run(t, "", "netto", "../testdata/netto.yaml", "--log-level", "debug", "--rules", "../testdata/rules-override.yaml")
	require.NoError(t, err)
	assert.Contains(t, stderr, "module=cli")

	_, stderr, err = run(t, "", "netto", "../testdata/netto.yaml")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
