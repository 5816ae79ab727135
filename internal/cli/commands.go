package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steuerkit/rechner/internal/calculation"
	"github.com/steuerkit/rechner/internal/config"
	"github.com/steuerkit/rechner/internal/domain"
	"github.com/steuerkit/rechner/internal/letter"
	"github.com/steuerkit/rechner/internal/rentlevel"
)

const requestHelp = "The request is read from FILE (YAML or JSON) or from standard input when FILE is omitted or \"-\"."

// calculatorCommand builds a subcommand that decodes a request, runs one calculator and renders the result.
func calculatorCommand[In, Out any](a *app, use, short string, run func(*calculation.Engine, In) (Out, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [FILE]",
		Short: short,
		Long:  short + ".\n\n" + requestHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engine()
			if err != nil {
				return err
			}
			var in In
			if err := a.parser.LoadRequest(requestPath(args), &in); err != nil {
				return fmt.Errorf("failed to load request: %w", err)
			}
			out, err := run(engine, in)
			if err != nil {
				return err
			}
			return a.render(out)
		},
	}
}

func requestPath(args []string) string {
	if len(args) == 0 {
		return config.StdinPath
	}
	return args[0]
}

func calculatorCommands(a *app) []*cobra.Command {
	return []*cobra.Command{
		calculatorCommand(a, "netto", "Gross-to-net salary with wage tax and social insurance",
			(*calculation.Engine).NetSalary),
		calculatorCommand(a, "abfindung", "Severance taxation with and without the one-fifth rule",
			(*calculation.Engine).Severance),
		calculatorCommand(a, "abfindung-schaetzen", "Customary severance estimate from tenure and monthly gross",
			func(e *calculation.Engine, in domain.SeveranceEstimate) (domain.SeveranceEstimateResult, error) {
				return domain.SeveranceEstimateResult{Input: in, Amount: e.EstimateSeverance(in)}, nil
			}),
		calculatorCommand(a, "kfz-steuer", "Annual vehicle tax from displacement, CO2 and first registration",
			(*calculation.Engine).VehicleTax),
		calculatorCommand(a, "wohngeld", "Monthly housing benefit (Wohngeld)",
			func(e *calculation.Engine, in domain.HousingBenefitInput) (domain.HousingBenefitResult, error) {
				in, err := rentlevel.Resolve(in)
				if err != nil {
					return domain.HousingBenefitResult{}, err
				}
				return e.HousingBenefit(in)
			}),
		calculatorCommand(a, "elterngeld", "Parental allowance for one or both parents",
			(*calculation.Engine).ParentalAllowance),
		calculatorCommand(a, "kinderzuschlag", "Child supplement means test (Kinderzuschlag)",
			(*calculation.Engine).ChildSupplement),
		calculatorCommand(a, "ueberstunden", "Overtime pay, tax-free surcharge share and time off",
			(*calculation.Engine).Overtime),
		calculatorCommand(a, "bussgeld", "Speeding fine, points and driving ban",
			(*calculation.Engine).SpeedingFine),
		calculatorCommand(a, "kuendigungsfrist", "Statutory notice period and last working day",
			(*calculation.Engine).NoticePeriod),
		calculatorCommand(a, "haushaltseinkommen", "Monthly household income by category",
			func(e *calculation.Engine, in domain.HouseholdIncomeInput) (domain.HouseholdIncomeResult, error) {
				return e.HouseholdIncome(in), nil
			}),
	}
}

func newRentLevelCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mietstufe [STADT...]",
		Short: "Look up the Wohngeld rent level of a city",
		Long:  "Lists every city whose name contains the query, ignoring case. Without a query the full list is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				return a.render(rentlevel.Cities())
			}
			return a.render(rentlevel.Search(query))
		},
	}
}

func newLetterCommand(a *app) *cobra.Command {
	var textOnly bool
	cmd := &cobra.Command{
		Use:   "kuendigung [FILE]",
		Short: "Compose a termination letter",
		Long:  "Composes a termination letter for employment, tenancy, insurance, gym, internet or other contracts.\n\n" + requestHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req letter.Request
			if err := a.parser.LoadRequest(requestPath(args), &req); err != nil {
				return fmt.Errorf("failed to load request: %w", err)
			}
			l, err := letter.Compose(req)
			if err != nil {
				return err
			}
			if textOnly {
				_, err := fmt.Fprint(a.stdout, l.Text)
				return err
			}
			return a.render(l)
		},
	}
	cmd.Flags().BoolVar(&textOnly, "text", false, "print only the letter text")
	return cmd
}

func newRulesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regeln",
		Short: "Print the active rules bundle as YAML",
		Long:  "Prints the built-in rules, merged with --rules overrides, in the format --rules accepts.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := a.rules()
			if err != nil {
				return err
			}
			return a.parser.WriteRules(a.stdout, rules)
		},
	}
}
