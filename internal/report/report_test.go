package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gamefair/domain/mechanics"
	"gamefair/domain/model"
	"gamefair/internal/mathengine"
	"gamefair/internal/montecarlo"
)

func diceModel(t *testing.T) model.MathModel {
	t.Helper()
	m, err := mathengine.Build(model.DiceParams{EdgeFactor: 0.97})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func diceRun(t *testing.T) montecarlo.SimulationResult {
	t.Helper()
	v := montecarlo.New(montecarlo.Options{
		Tolerance:   0.005,
		Diagnostics: montecarlo.AllDiagnostics(),
	})
	res, err := v.Validate(model.DiceParams{EdgeFactor: 0.97}, 200_000)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestCertifyDocument(t *testing.T) {
	m := diceModel(t)
	c := Certify(m)

	if c.ReportType != CertificationType {
		t.Errorf("report type %q", c.ReportType)
	}
	if c.Generator != Generator {
		t.Errorf("generator %q", c.Generator)
	}
	if c.ModelHash != m.ModelHash {
		t.Error("hash not carried over")
	}
	if !c.Compliance.ProbabilitySumValid || !c.Compliance.RTPMatchesTheory || !c.Compliance.HouseEdgePositive {
		t.Errorf("compliance flags %+v", c.Compliance)
	}
	if c.Compliance.MonteCarloRTPPass != nil {
		t.Error("monte carlo flag set without a simulation")
	}
	if c.References == nil || len(c.References.DiceChances) == 0 {
		t.Error("dice chance ladder missing")
	}
	if c.MonteCarlo != nil {
		t.Error("simulation block present without a run")
	}
}

func TestCertifyReferenceSelection(t *testing.T) {
	crash, err := mathengine.Build(model.CrashParams{HouseEdge: 0.03, MaxMultiplier: 100})
	if err != nil {
		t.Fatal(err)
	}
	if c := Certify(crash); c.References == nil || len(c.References.CrashCashouts) == 0 {
		t.Error("crash ladder missing")
	}

	wheel, err := mathengine.Build(model.WheelParams{SegmentCount: 20, Volatility: model.RiskMedium, TargetRTP: 0.96})
	if err != nil {
		t.Fatal(err)
	}
	if c := Certify(wheel); c.References != nil {
		t.Error("wheel has no published ladder")
	}
}

func TestCertifyWithSimulation(t *testing.T) {
	c := CertifyWithSimulation(diceModel(t), diceRun(t))
	if c.MonteCarlo == nil {
		t.Fatal("simulation block missing")
	}
	if c.Compliance.MonteCarloRTPPass == nil || !*c.Compliance.MonteCarloRTPPass {
		t.Errorf("monte carlo flag %+v", c.Compliance.MonteCarloRTPPass)
	}
}

func TestCertificationJSONRoundTrips(t *testing.T) {
	data, err := Certify(diceModel(t)).JSON()
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["report_type"] != CertificationType {
		t.Errorf("report_type %v", doc["report_type"])
	}
	if _, ok := doc["rtp_proof"]; !ok {
		t.Error("rtp_proof block missing")
	}
}

func TestCertificationMarkdown(t *testing.T) {
	md := CertifyWithSimulation(diceModel(t), diceRun(t)).Markdown()
	for _, heading := range []string{
		"RTP Proof", "Volatility Profile", "Regulatory Compliance",
		"Reference Tables", "Monte Carlo Validation",
	} {
		if !strings.Contains(md, heading) {
			t.Errorf("markdown missing %q section", heading)
		}
	}
	if !strings.Contains(md, "dice") {
		t.Error("mechanic name missing")
	}
}

func TestCertificationHTML(t *testing.T) {
	html := Certify(diceModel(t)).HTML()
	if len(html) == 0 {
		t.Fatal("empty html")
	}
	if !strings.Contains(string(html), "<table") {
		t.Error("proof table not rendered")
	}
}

func TestValidationDocument(t *testing.T) {
	r := montecarlo.NewReport()
	r.Add(diceRun(t))
	v := Validate(r)

	if v.ReportType != ValidationType {
		t.Errorf("report type %q", v.ReportType)
	}
	data, err := v.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Fatal("invalid json")
	}
	md := v.Markdown()
	if !strings.Contains(md, string(mechanics.Dice)) {
		t.Error("mechanic missing from markdown")
	}
	if len(v.HTML()) == 0 {
		t.Error("empty html")
	}
}

func TestWriteCertificationXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dice.xlsx")
	c := CertifyWithSimulation(diceModel(t), diceRun(t))
	if err := WriteCertificationXLSX(path, c); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty workbook")
	}
}

func TestWriteValidationXLSX(t *testing.T) {
	r := montecarlo.NewReport()
	r.Add(diceRun(t))

	path := filepath.Join(t.TempDir(), "validation.xlsx")
	if err := WriteValidationXLSX(path, Validate(r)); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
