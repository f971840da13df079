package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/cartlab/internal/domain"
	"github.com/aalvaropc/cartlab/internal/usecase"
	ucexpect "github.com/aalvaropc/cartlab/internal/usecase/expect"
)

func classifyCmd(st *appState) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "classify [input...]",
		Short: "Classify strings as numeric or not (defaults to the workspace test cases)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(st.workspace)
			if err != nil {
				return err
			}

			cases := ws.cfg.Cases
			if len(args) > 0 {
				cases = make([]domain.Case, 0, len(args))
				for _, a := range args {
					cases = append(cases, domain.Case{Input: a})
				}
			}

			results, err := usecase.NewClassifyCases().Execute(cmd.Context(), cases)
			if err != nil {
				return err
			}

			if err := printClassification(cmd.OutOrStdout(), results, ws.cfg.Table.Column, format); err != nil {
				return err
			}

			if n := ucexpect.Failures(results); n > 0 {
				return fmt.Errorf("%d test case(s) did not match their expectation", n)
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

type jsonCase struct {
	Input   string            `json:"input"`
	Kind    domain.NumberKind `json:"kind"`
	Numeric bool              `json:"numeric"`
	Check   *jsonCheck        `json:"check,omitempty"`
}

type jsonCheck struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

func printClassification(w io.Writer, results []domain.CaseResult, column int, format string) error {
	switch format {
	case "json":
		out := make([]jsonCase, 0, len(results))
		for _, r := range results {
			jc := jsonCase{Input: r.Input, Kind: r.Kind, Numeric: r.Numeric}
			if r.Check != nil {
				jc.Check = &jsonCheck{Passed: r.Check.Passed, Message: r.Check.Message}
			}
			out = append(out, jc)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"cases":    out,
			"failures": ucexpect.Failures(results),
		})
	case "pretty", "":
		printCaseTable(w, results, column)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
