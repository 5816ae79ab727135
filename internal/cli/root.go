// Package cli implements the rechner command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/steuerkit/rechner/internal/calculation"
	"github.com/steuerkit/rechner/internal/config"
	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/internal/output"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvRules = "RECHNER_RULES"
	EnvAddr  = "RECHNER_ADDR"
)

var logLevels = map[string]logrus.Level{
	"trace": logrus.TraceLevel,
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
	"off":   logrus.PanicLevel,
}

// app carries the streams and persistent flags shared by all commands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	parser *config.InputParser

	rulesPath string
	format    string
	logLevel  string

	logger *logrus.Logger
}

// NewRootCommand builds the command tree reading requests from stdin and writing to stdout and stderr.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		parser: &config.InputParser{Stdin: stdin},
		logger: logrus.New(),
	}

	root := &cobra.Command{
		Use:   "rechner",
		Short: "German tax, benefit and fee calculators",
		Long: "rechner computes net salary, severance taxation, vehicle tax, housing benefit, parental allowance,\n" +
			"child supplement, overtime pay, speeding fines and notice periods from YAML or JSON requests.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.rulesPath, "rules", os.Getenv(EnvRules), "YAML file with rule overrides (env "+EnvRules+")")
	flags.StringVarP(&a.format, "format", "f", "console", "output format: console, csv, html or json")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error or off")

	root.AddCommand(calculatorCommands(a)...)
	root.AddCommand(
		newRentLevelCommand(a),
		newLetterCommand(a),
		newRulesCommand(a),
		newServeCommand(a),
	)
	return root
}

// Execute runs the command tree against the process streams.
func Execute() int {
	root := NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) setupLogging() error {
	level, ok := logLevels[a.logLevel]
	if !ok {
		names := make([]string, 0, len(logLevels))
		for name := range logLevels {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("log level must be one of %v, got %q", names, a.logLevel)
	}
	a.logger.SetOutput(a.stderr)
	a.logger.SetLevel(level)
	return nil
}

func (a *app) log(module string) *logrus.Entry {
	return a.logger.WithField("module", module)
}

// rules loads the active rules bundle.
func (a *app) rules() (domain.Rules, error) {
	rules, err := a.parser.LoadRules(a.rulesPath)
	if err != nil {
		return domain.Rules{}, fmt.Errorf("failed to load rules: %w", err)
	}
	if a.rulesPath != "" {
		a.log("cli").Infof("using rules from %s (year %d)", a.rulesPath, rules.Year)
	}
	return rules, nil
}

// engine builds a calculation engine for the active rules, logging through logrus.
func (a *app) engine() (*calculation.Engine, error) {
	rules, err := a.rules()
	if err != nil {
		return nil, err
	}
	engine := calculation.NewEngine(rules)
	engine.SetLogger(a.log("calculation"))
	return engine, nil
}

func (a *app) render(result any) error {
	return output.Render(a.stdout, a.format, result)
}
