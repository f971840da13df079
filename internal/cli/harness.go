package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/infra/console"
	"github.com/aalvaropc/cartlab/internal/usecase"
	ucexpect "github.com/aalvaropc/cartlab/internal/usecase/expect"
)

type harnessIO struct {
	in  io.Reader
	out io.Writer
}

// runHarness prints the classification table for the configured cases, then
// asks once for a number inside the reader range and echoes it back.
func runHarness(ctx context.Context, hio harnessIO, cfg domain.Config, log *slog.Logger) error {
	log.Info("harness.start", "cases", len(cfg.Cases), "min", cfg.Reader.Min, "max", cfg.Reader.Max)

	results, err := usecase.NewClassifyCases().Execute(ctx, cfg.Cases)
	if err != nil {
		return err
	}

	w := hio.out
	if title := cfg.Table.Title; title != "" {
		fmt.Fprintf(w, "%s\n%s\n\n", title, strings.Repeat("=", utf8.RuneCountInString(title)))
	}
	printCaseTable(w, results, cfg.Table.Column)

	fmt.Fprintf(w, "\nEnter a number between %g and %g, or enter anything else: ", cfg.Reader.Min, cfg.Reader.Max)

	reader := usecase.NewReadNumber(console.NewLineReader(hio.in), w, usecase.WithLogger(log))
	number, err := reader.Execute(ctx, cfg.Reader.Min, cfg.Reader.Max)
	if err != nil {
		fmt.Fprintln(w)
		log.Error("harness.read.failed", "err", err)
		return err
	}

	fmt.Fprintf(w, "\nThank-you! The number you entered was %.*f\n\n", cfg.Table.Precision, number)

	if n := ucexpect.Failures(results); n > 0 {
		log.Warn("harness.expectations.failed", "count", n)
		return fmt.Errorf("%d test case(s) did not match their expectation", n)
	}
	log.Info("harness.ok", "value", number)
	return nil
}

// printCaseTable writes left-justified fixed-width columns. A Check column is
// added only when some case carries an expectation.
func printCaseTable(w io.Writer, results []domain.CaseResult, column int) {
	checks := ucexpect.HasChecks(results)

	if checks {
		fmt.Fprintf(w, "%-*s%-*s%s\n", column, "Test Case", column, "Numeric?", "Check")
		fmt.Fprintf(w, "%-*s%-*s%s\n\n", column, "=========", column, "========", "=====")
	} else {
		fmt.Fprintf(w, "%-*s%s\n", column, "Test Case", "Numeric?")
		fmt.Fprintf(w, "%-*s%s\n\n", column, "=========", "========")
	}

	for _, r := range results {
		verdict := ucexpect.Verdict(r.Numeric)
		if !checks {
			fmt.Fprintf(w, "%-*s%s\n", column, r.Input, verdict)
			continue
		}

		if r.Check == nil {
			fmt.Fprintf(w, "%-*s%s\n", column, r.Input, verdict)
			continue
		}

		status := "PASS"
		if !r.Check.Passed {
			status = "FAIL (" + r.Check.Message + ")"
		}
		fmt.Fprintf(w, "%-*s%-*s%s\n", column, r.Input, column, verdict, status)
	}
}
