package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"slipfall-engine/internal/estimator"
)

// -- settlement --

var settlementCmd = &cobra.Command{
	Use:   "settlement",
	Short: "Estimate a slip and fall settlement",
	Example: `  slipfall settlement --medical "15,000" --fault 20 --severity severe --location grocery
  slipfall settlement --medical 42000 --wages 8000 --attorney=false --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		medical, _ := cmd.Flags().GetString("medical")
		wages, _ := cmd.Flags().GetString("wages")
		fault, _ := cmd.Flags().GetFloat64("fault")
		severity, _ := cmd.Flags().GetString("severity")
		location, _ := cmd.Flags().GetString("location")
		attorney, _ := cmd.Flags().GetBool("attorney")
		strict, _ := cmd.Flags().GetBool("strict")
		asJSON, _ := cmd.Flags().GetBool("json")

		in := estimator.SettlementInput{
			MedicalExpenses: estimator.ParseAmount(medical),
			LostWages:       estimator.ParseAmount(wages),
			FaultPercent:    fault,
			Severity:        estimator.Severity(severity),
			HasAttorney:     attorney,
			Location:        estimator.LocationKey(location),
		}
		return runSettlement(cmd.OutOrStdout(), cmd.ErrOrStderr(), in, strict, asJSON)
	},
}

func runSettlement(out, errOut io.Writer, in estimator.SettlementInput, strict, asJSON bool) error {
	var res estimator.SettlementResult
	if strict {
		r, err := estimator.ComputeSettlementStrict(in)
		if err != nil {
			return fmt.Errorf("settlement: %w", err)
		}
		res = r
	} else {
		printWarnings(errOut, in.Violations())
		res = estimator.ComputeSettlement(in.Sanitize())
	}

	if asJSON {
		return writeJSON(out, res)
	}
	formatSettlement(out, in.Sanitize(), res)
	return nil
}

func formatSettlement(w io.Writer, in estimator.SettlementInput, r estimator.SettlementResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Severity:\t%s (%s)\n", in.Severity.Label(), in.Severity.RangeLabel())
	fmt.Fprintf(tw, "Medical expenses:\t%s\n", estimator.FormatUSD(r.MedicalExpenses))
	fmt.Fprintf(tw, "Lost wages:\t%s\n", estimator.FormatUSD(r.LostWages))
	fmt.Fprintf(tw, "Pain and suffering (%gx, factor %g):\t%s\n", r.PainSufferingMultiplier, r.LocationFactor, estimator.FormatUSD(r.PainSufferingAmount))
	fmt.Fprintf(tw, "Subtotal:\t%s\n", estimator.FormatUSD(r.Subtotal))
	if r.FaultReduction != 0 {
		fmt.Fprintf(tw, "Your fault (%g%%):\t-%s\n", in.FaultPercent, estimator.FormatUSD(r.FaultReduction))
	}
	fmt.Fprintf(tw, "Total before fees:\t%s\n", estimator.FormatUSD(r.TotalBeforeFees))
	if in.HasAttorney {
		fmt.Fprintf(tw, "Attorney fees (%g%%):\t-%s\n", estimator.PreSettlementFeeRate*100, estimator.FormatUSD(r.AttorneyFees))
	}
	fmt.Fprintf(tw, "Net settlement:\t%s\n", estimator.FormatUSD(r.NetSettlement))
	fmt.Fprintf(tw, "Likely range:\t%s - %s\n", estimator.FormatUSD(r.SettlementRange.Min), estimator.FormatUSD(r.SettlementRange.Max))
	tw.Flush()
}

// -- insurance --

var insuranceCmd = &cobra.Command{
	Use:   "insurance",
	Short: "Estimate a liability insurance payout",
	Example: `  slipfall insurance --medical "200,000" --limit "100,000"
  slipfall insurance --medical 25000 --property 500 --fault 30`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		medical, _ := cmd.Flags().GetString("medical")
		property, _ := cmd.Flags().GetString("property")
		limit, _ := cmd.Flags().GetString("limit")
		fault, _ := cmd.Flags().GetFloat64("fault")
		strict, _ := cmd.Flags().GetBool("strict")
		asJSON, _ := cmd.Flags().GetBool("json")

		in := estimator.InsuranceInput{
			MedicalExpenses: estimator.ParseAmount(medical),
			PropertyDamage:  estimator.ParseAmount(property),
			LiabilityLimit:  estimator.ParseAmount(limit),
			FaultPercent:    fault,
		}
		return runInsurance(cmd.OutOrStdout(), cmd.ErrOrStderr(), in, strict, asJSON)
	},
}

func runInsurance(out, errOut io.Writer, in estimator.InsuranceInput, strict, asJSON bool) error {
	var res estimator.InsuranceResult
	if strict {
		r, err := estimator.ComputeInsurancePayoutStrict(in)
		if err != nil {
			return fmt.Errorf("insurance: %w", err)
		}
		res = r
	} else {
		printWarnings(errOut, in.Violations())
		res = estimator.ComputeInsurancePayout(in.Sanitize())
	}

	if asJSON {
		return writeJSON(out, res)
	}
	formatInsurance(out, res)
	return nil
}

func formatInsurance(w io.Writer, r estimator.InsuranceResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Adjusted damages:\t%s\n", estimator.FormatUSD(r.AdjustedDamages))
	fmt.Fprintf(tw, "Liability payout:\t%s\n", estimator.FormatUSD(r.LiabilityPayout))
	fmt.Fprintf(tw, "Medical payments coverage:\t%s\n", estimator.FormatUSD(r.MedCoverage))
	fmt.Fprintf(tw, "Total claim:\t%s\n", estimator.FormatUSD(r.TotalClaim))
	tw.Flush()
	fmt.Fprintf(w, "\n%s\n", r.Recommendation)
}

// -- injuries --

var injuriesCmd = &cobra.Command{
	Use:   "injuries [key]",
	Short: "List common injuries, or show the estimate for one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		if len(args) == 0 {
			return runInjuries(cmd.OutOrStdout(), asJSON)
		}
		return runInjury(cmd.OutOrStdout(), estimator.InjuryKey(args[0]), asJSON)
	},
}

func runInjuries(out io.Writer, asJSON bool) error {
	injuries := estimator.Injuries()
	if asJSON {
		return writeJSON(out, injuries)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tINJURY\tSEVERITY\tRANGE\tRECOVERY")
	for _, in := range injuries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s - %s\t%s\n",
			in.Key, in.Name, in.Severity,
			estimator.FormatUSD(in.AvgSettlement.Min), estimator.FormatUSD(in.AvgSettlement.Max),
			in.RecoveryTime,
		)
	}
	return tw.Flush()
}

func runInjury(out io.Writer, key estimator.InjuryKey, asJSON bool) error {
	est, err := estimator.EstimateInjury(key)
	if err != nil {
		return fmt.Errorf("injury %q: %w", key, err)
	}
	if asJSON {
		return writeJSON(out, est)
	}

	fmt.Fprintf(out, "%s\n%s\n\n", est.Injury.Name, est.Injury.Description)
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Typical range:\t%s - %s\n", estimator.FormatUSD(est.Injury.AvgSettlement.Min), estimator.FormatUSD(est.Injury.AvgSettlement.Max))
	fmt.Fprintf(tw, "Average:\t%s\n", estimator.FormatUSD(est.Average))
	fmt.Fprintf(tw, "With attorney:\t%s\n", estimator.FormatUSD(est.WithAttorney))
	fmt.Fprintf(tw, "Recovery time:\t%s\n", est.Injury.RecoveryTime)
	return tw.Flush()
}

func printWarnings(w io.Writer, vs []estimator.Violation) {
	for _, v := range vs {
		fmt.Fprintf(w, "warning: %s\n", v.Error())
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrap(err, "encode json")
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func init() {
	sf := settlementCmd.Flags()
	sf.String("medical", "15,000", "medical expenses (accepts \"15,000\" or \"$15000\")")
	sf.String("wages", "0", "lost wages")
	sf.Float64("fault", 0, "your share of fault, 0-100")
	sf.String("severity", string(estimator.DefaultSeverity), "injury severity: minor, moderate, severe, catastrophic")
	sf.String("location", string(estimator.DefaultLocation), "accident location, e.g. grocery, restaurant, retail, workplace")
	sf.Bool("attorney", true, "deduct a contingency fee")

	inf := insuranceCmd.Flags()
	inf.String("medical", "0", "medical expenses")
	inf.String("property", "0", "property damage")
	inf.String("limit", "100,000", "property owner's liability limit")
	inf.Float64("fault", 0, "your share of fault, 0-100")

	for _, c := range []*cobra.Command{settlementCmd, insuranceCmd} {
		c.Flags().Bool("strict", false, "reject invalid inputs instead of adjusting them")
	}
	for _, c := range []*cobra.Command{settlementCmd, insuranceCmd, injuriesCmd} {
		c.Flags().Bool("json", false, "print the raw result as JSON")
		rootCmd.AddCommand(c)
	}
}
