package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"gamefair/internal/montecarlo"
)

// Markdown renders the certification document for human review
func (c Certification) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.ReportType)
	fmt.Fprintf(&b, "- **Mechanic:** %s\n", c.Mechanic)
	fmt.Fprintf(&b, "- **Model hash:** `%s`\n", c.ModelHash)
	fmt.Fprintf(&b, "- **Generator:** %s\n", c.Generator)
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", c.GeneratedAt)

	fmt.Fprintf(&b, "## RTP Proof\n\n")
	fmt.Fprintf(&b, "Theoretical RTP **%.4f%%**, house edge **%.4f%%**.\n\n",
		c.Proof.TheoreticalRTPPct, c.Proof.HouseEdgePct)
	b.WriteString("| Outcome | P | Mult | P x Mult |\n|---|---|---|---|\n")
	for _, e := range c.Proof.Entries {
		fmt.Fprintf(&b, "| %s | %.10f | %.4f | %.10f |\n",
			e.Outcome, e.Probability, e.Multiplier, e.Contribution)
	}
	fmt.Fprintf(&b, "\nProbability sum %.10f (%s), paytable RTP %.8f (%s).\n\n",
		c.Proof.ProbabilitySum, passFail(c.Proof.ProbabilitySumPass),
		c.Proof.PaytableRTP, passFail(c.Proof.RTPPass))

	fmt.Fprintf(&b, "## Volatility Profile\n\n")
	v := c.Volatility
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Standard deviation | %.4f |\n", v.StandardDeviation)
	fmt.Fprintf(&b, "| Hit frequency | %.2f%% |\n", v.HitFrequency*100)
	fmt.Fprintf(&b, "| Volatility index | %.2f |\n", v.VolatilityIndex)
	fmt.Fprintf(&b, "| Max win | %.2fx (P=%.2e) |\n", v.MaxWinMultiplier, v.MaxWinProbability)
	fmt.Fprintf(&b, "| Skewness | %.4f |\n", v.Skewness)
	fmt.Fprintf(&b, "| P(win > 10x) | %.4f%% |\n", v.PWinGT10x*100)
	fmt.Fprintf(&b, "| P(win > 100x) | %.6f%% |\n\n", v.PWinGT100x*100)

	fmt.Fprintf(&b, "## Regulatory Compliance\n\n")
	fmt.Fprintf(&b, "- Probability sum valid: **%s**\n", passFail(c.Compliance.ProbabilitySumValid))
	fmt.Fprintf(&b, "- RTP matches theory: **%s**\n", passFail(c.Compliance.RTPMatchesTheory))
	fmt.Fprintf(&b, "- House edge positive: **%s**\n", passFail(c.Compliance.HouseEdgePositive))
	if c.Compliance.MonteCarloRTPPass != nil {
		fmt.Fprintf(&b, "- Monte Carlo RTP: **%s**\n", passFail(*c.Compliance.MonteCarloRTPPass))
	}

	if c.References != nil {
		b.WriteString("\n## Reference Tables\n\n")
		writeReferences(&b, c.References)
	}

	if c.MonteCarlo != nil {
		b.WriteString("\n## Monte Carlo Validation\n\n")
		writeSimulation(&b, *c.MonteCarlo)
	}
	return b.String()
}

// Markdown renders the validation document for human review
func (v Validation) Markdown() string {
	var b strings.Builder
	r := v.Report

	fmt.Fprintf(&b, "# %s\n\n", v.ReportType)
	fmt.Fprintf(&b, "- **Report ID:** `%s`\n", r.ID)
	fmt.Fprintf(&b, "- **Generated:** %s\n", r.GeneratedAt)
	fmt.Fprintf(&b, "- **Total rounds:** %d\n", r.TotalRounds)
	fmt.Fprintf(&b, "- **Overall:** %s\n\n", passFail(r.OverallPass))

	b.WriteString("| Mechanic | Theory | Measured | Deviation | Hit Freq | Std Dev | Verdict |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "| %s | %.4f%% | %.4f%% | %.4f%% | %.2f%% | %.3f | %s |\n",
			res.Mechanic, res.TheoreticalRTP*100, res.MeasuredRTP*100,
			res.Deviation*100, res.HitFrequency*100, res.StdDev, passFail(res.Pass))
	}

	for _, res := range r.Results {
		fmt.Fprintf(&b, "\n## %s\n\n", res.Mechanic)
		writeSimulation(&b, res)
	}
	return b.String()
}

func writeSimulation(b *strings.Builder, res montecarlo.SimulationResult) {
	fmt.Fprintf(b, "Rounds %d, measured RTP %.4f%% against %.4f%% theoretical (deviation %.4f%%, tolerance ±%.2f%%): **%s**.\n\n",
		res.Rounds, res.MeasuredRTP*100, res.TheoreticalRTP*100,
		res.Deviation*100, res.Tolerance*100, passFail(res.Pass))
	fmt.Fprintf(b, "Hit frequency %.2f%%, std dev %.4f, max payout %.2fx, median win %.2fx, %s rounds/s over seed `%s`.\n",
		res.HitFrequency*100, res.StdDev, res.MaxPayout, res.MedianWin,
		formatRate(res.RoundsPerSecond), res.Seed)

	if res.CIUpper > 0 {
		fmt.Fprintf(b, "\n95%% CI: [%.4f%%, %.4f%%].\n", res.CILower*100, res.CIUpper*100)
	}
	if res.Histogram != nil {
		b.WriteString("\n| Payout | Share |\n|---|---|\n")
		for i, name := range montecarlo.HistogramBuckets {
			fmt.Fprintf(b, "| %s | %.2f%% |\n", name, res.Histogram.Percent(i))
		}
	}
	if res.Streaks != nil {
		fmt.Fprintf(b, "\nMax win streak %d, max loss streak %d (%d wins / %d losses).\n",
			res.Streaks.MaxWinStreak, res.Streaks.MaxLossStreak,
			res.Streaks.TotalWins, res.Streaks.TotalLosses)
	}
	if res.Uniformity != nil {
		fmt.Fprintf(b, "\nRNG uniformity: chi² %.2f against critical %.2f (p=%.4f): **%s**.\n",
			res.Uniformity.ChiSquared, res.Uniformity.CriticalValue,
			res.Uniformity.PValue, passFail(res.Uniformity.Pass))
	}
	if res.Sessions != nil {
		fmt.Fprintf(b, "\nSession RTP over %d windows of %d rounds: min %.2f%%, max %.2f%%, std %.4f%%.\n",
			res.Sessions.Windows, res.Sessions.WindowSize,
			res.Sessions.MinRTP*100, res.Sessions.MaxRTP*100, res.Sessions.StdDevRTP*100)
	}
}

func writeReferences(b *strings.Builder, refs *ReferenceTables) {
	if refs.CrashCashouts != nil {
		b.WriteString("| Cashout Target | P(win) | P x T |\n|---|---|---|\n")
		for _, r := range refs.CrashCashouts {
			fmt.Fprintf(b, "| %.1fx | %.6f | %.6f |\n", r.Target, r.WinProb, r.RTPCheck)
		}
	}
	if refs.MinesReveals != nil {
		b.WriteString("| Reveals | P(survive) | Multiplier |\n|---|---|---|\n")
		for _, r := range refs.MinesReveals {
			fmt.Fprintf(b, "| %d | %.6f | %.4fx |\n", r.Reveals, r.Survival, r.Multiplier)
		}
	}
	if refs.DiceChances != nil {
		b.WriteString("| Win Chance | Multiplier | c x mult |\n|---|---|---|\n")
		for _, r := range refs.DiceChances {
			fmt.Fprintf(b, "| %.0f%% | %.4fx | %.6f |\n", r.Chance*100, r.Multiplier, r.RTPCheck)
		}
	}
}

// HTML renders the certification document through the Markdown pipeline
func (c Certification) HTML() []byte {
	return renderHTML(c.Markdown())
}

// HTML renders the validation document through the Markdown pipeline
func (v Validation) HTML() []byte {
	return renderHTML(v.Markdown())
}

func renderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}

func formatRate(rps float64) string {
	switch {
	case rps >= 1e6:
		return fmt.Sprintf("%.1fM", rps/1e6)
	case rps >= 1e3:
		return fmt.Sprintf("%.0fk", rps/1e3)
	default:
		return fmt.Sprintf("%.0f", rps)
	}
}
