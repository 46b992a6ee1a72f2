package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteCertificationXLSX writes the certification document as a workbook:
// a summary sheet, the full paytable, and the volatility profile.
func WriteCertificationXLSX(path string, c Certification) error {
	f := excelize.NewFile()

	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}
	rows := [][]any{
		{"Report", c.ReportType},
		{"Generator", c.Generator},
		{"Generated", c.GeneratedAt.String()},
		{"Mechanic", string(c.Mechanic)},
		{"Model hash", string(c.ModelHash)},
		{"Theoretical RTP %", c.Proof.TheoreticalRTPPct},
		{"House edge %", c.Proof.HouseEdgePct},
		{"Probability sum", c.Proof.ProbabilitySum},
		{"Probability sum check", passFail(c.Compliance.ProbabilitySumValid)},
		{"RTP check", passFail(c.Compliance.RTPMatchesTheory)},
	}
	if c.Compliance.MonteCarloRTPPass != nil {
		rows = append(rows, []any{"Monte Carlo check", passFail(*c.Compliance.MonteCarloRTPPass)})
	}
	if err := writeRows(f, summary, rows); err != nil {
		return err
	}

	payRows := [][]any{{"Outcome", "Probability", "Multiplier", "Contribution"}}
	for _, e := range c.Proof.Entries {
		payRows = append(payRows, []any{e.Outcome, e.Probability, e.Multiplier, e.Contribution})
	}
	if err := addSheet(f, "Paytable", payRows); err != nil {
		return err
	}

	v := c.Volatility
	volRows := [][]any{
		{"Metric", "Value"},
		{"Standard deviation", v.StandardDeviation},
		{"Variance", v.Variance},
		{"Hit frequency %", v.HitFrequency * 100},
		{"Volatility index", v.VolatilityIndex},
		{"Max win multiplier", v.MaxWinMultiplier},
		{"Max win probability", v.MaxWinProbability},
		{"Median payout", v.MedianPayout},
		{"Skewness", v.Skewness},
		{"P(win > 10x) %", v.PWinGT10x * 100},
		{"P(win > 100x) %", v.PWinGT100x * 100},
	}
	if err := addSheet(f, "Volatility", volRows); err != nil {
		return err
	}

	if c.MonteCarlo != nil {
		res := *c.MonteCarlo
		mcRows := [][]any{
			{"Rounds", res.Rounds},
			{"Theoretical RTP %", res.TheoreticalRTP * 100},
			{"Measured RTP %", res.MeasuredRTP * 100},
			{"Deviation %", res.Deviation * 100},
			{"Tolerance %", res.Tolerance * 100},
			{"Verdict", passFail(res.Pass)},
			{"Seed", res.Seed},
		}
		if err := addSheet(f, "MonteCarlo", mcRows); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// WriteValidationXLSX writes a cross-mechanic validation run, one row per
// mechanic.
func WriteValidationXLSX(path string, v Validation) error {
	f := excelize.NewFile()

	sheet := "Validation"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][]any{{
		"Mechanic", "Rounds", "Theoretical RTP %", "Measured RTP %",
		"Deviation %", "Hit Frequency %", "Std Dev", "Max Payout", "Verdict",
	}}
	for _, res := range v.Report.Results {
		rows = append(rows, []any{
			string(res.Mechanic), res.Rounds,
			res.TheoreticalRTP * 100, res.MeasuredRTP * 100,
			res.Deviation * 100, res.HitFrequency * 100,
			res.StdDev, res.MaxPayout, passFail(res.Pass),
		})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func addSheet(f *excelize.File, name string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeRows(f, name, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell %d,%d: %w", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
