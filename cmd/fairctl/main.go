// fairctl drives the fairness engine from the command line: build and
// certify a math model, run Monte Carlo validation, and export the
// resulting documents.
//
// Usage:
//
//	fairctl certify <mechanic> [flags]
//	fairctl validate <mechanic|all> [flags]
//
// A validation that finishes outside tolerance still exits 0: the verdict
// is the report's content, not a tool fault.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"gamefair/domain/mechanics"
	"gamefair/internal"
	"gamefair/internal/config"
	"gamefair/internal/errors"
	"gamefair/internal/mathengine"
	"gamefair/internal/montecarlo"
	"gamefair/internal/report"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config: %v", err)
		os.Exit(1)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "certify":
		err = runCertify(cfg, logger, args)
	case "validate":
		err = runValidate(cfg, logger, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("%s: %v (code=%s)", cmd, err, errors.GetCode(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: fairctl <certify|validate> <mechanic|all> [flags]")
}

func runCertify(cfg *config.Config, logger *internal.Logger, args []string) error {
	fs := flag.NewFlagSet("certify", flag.ExitOnError)
	preset := fs.String("preset", cfg.Report.Preset, "parameter preset (v1_defaults or v2_defaults)")
	withMC := fs.Bool("montecarlo", false, "embed a Monte Carlo run in the certificate")
	rounds := fs.Int("rounds", cfg.Simulation.Rounds, "Monte Carlo rounds")
	format := fs.String("format", "json", "output format: json, markdown, html, xlsx")
	out := fs.String("out", "", "output file (default stdout; required for xlsx)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.InvalidInput("certify needs a mechanic")
	}

	mech, err := mechanics.Parse(fs.Arg(0))
	if err != nil {
		return err
	}
	params, err := mathengine.DefaultParams(mech, *preset)
	if err != nil {
		return err
	}
	m, err := mathengine.Build(params)
	if err != nil {
		return errors.ModelBuildError(string(mech), err)
	}
	logger.Info("%s", m.Summary())

	var cert report.Certification
	if *withMC {
		v := newValidator(cfg)
		sim, err := v.ValidateModel(m, *rounds)
		if err != nil {
			return errors.SimulationError(string(mech), err)
		}
		logger.Info("%s", sim.Summary())
		cert = report.CertifyWithSimulation(m, sim)
	} else {
		cert = report.Certify(m)
	}
	logger.Info("%s", cert.Summary())

	return emitCertification(cfg, cert, *format, *out)
}

func runValidate(cfg *config.Config, logger *internal.Logger, args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	preset := fs.String("preset", cfg.Report.Preset, "parameter preset (v1_defaults or v2_defaults)")
	rounds := fs.Int("rounds", cfg.Simulation.Rounds, "rounds per mechanic")
	tolerance := fs.Float64("tolerance", cfg.Simulation.Tolerance, "maximum RTP deviation")
	format := fs.String("format", "json", "output format: json, markdown, html, xlsx")
	out := fs.String("out", "", "output file (default stdout; required for xlsx)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errors.InvalidInput("validate needs a mechanic or 'all'")
	}

	cfg.Simulation.Tolerance = *tolerance
	v := newValidator(cfg)
	defer logger.Timed("validate")()

	var doc report.Validation
	if fs.Arg(0) == "all" {
		rep, err := v.ValidateAll(context.Background(), *preset, *rounds)
		if err != nil {
			return errors.SimulationError("all", err)
		}
		doc = report.Validate(rep)
	} else {
		mech, err := mechanics.Parse(fs.Arg(0))
		if err != nil {
			return err
		}
		params, err := mathengine.DefaultParams(mech, *preset)
		if err != nil {
			return err
		}
		res, err := v.Validate(params, *rounds)
		if err != nil {
			return errors.SimulationError(string(mech), err)
		}
		rep := montecarlo.NewReport()
		rep.Add(res)
		doc = report.Validate(rep)
	}
	logger.Info("%s", doc.Summary())

	return emitValidation(cfg, doc, *format, *out)
}

func newValidator(cfg *config.Config) *montecarlo.Validator {
	return montecarlo.New(montecarlo.Options{
		Tolerance:   cfg.Simulation.Tolerance,
		Seed:        cfg.Simulation.Seed,
		SessionSize: cfg.Simulation.SessionSize,
		Diagnostics: montecarlo.AllDiagnostics(),
	})
}

func emitCertification(cfg *config.Config, cert report.Certification, format, out string) error {
	switch format {
	case "json":
		data, err := cert.JSON()
		if err != nil {
			return err
		}
		return emit(out, data)
	case "markdown":
		return emit(out, []byte(cert.Markdown()))
	case "html":
		return emit(out, cert.HTML())
	case "xlsx":
		path := xlsxPath(cfg, out, fmt.Sprintf("certification_%s.xlsx", cert.Mechanic))
		if err := report.WriteCertificationXLSX(path, cert); err != nil {
			return errors.ExportError(path, err)
		}
		return nil
	}
	return errors.InvalidInput("unknown format " + format)
}

func emitValidation(cfg *config.Config, doc report.Validation, format, out string) error {
	switch format {
	case "json":
		data, err := doc.JSON()
		if err != nil {
			return err
		}
		return emit(out, data)
	case "markdown":
		return emit(out, []byte(doc.Markdown()))
	case "html":
		return emit(out, doc.HTML())
	case "xlsx":
		path := xlsxPath(cfg, out, "validation.xlsx")
		if err := report.WriteValidationXLSX(path, doc); err != nil {
			return errors.ExportError(path, err)
		}
		return nil
	}
	return errors.InvalidInput("unknown format " + format)
}

func emit(out string, data []byte) error {
	if out == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.ExportError(out, err)
	}
	return nil
}

func xlsxPath(cfg *config.Config, out, fallback string) string {
	if out != "" {
		return out
	}
	return filepath.Join(cfg.Report.OutputDir, fallback)
}
