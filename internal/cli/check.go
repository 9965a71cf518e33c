package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/usecase"
)

func checkCmd(v *viper.Viper) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "check",
		Short: "Solve the days listed in answers.yaml and compare",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := openWorkspace(v, false)
			if err != nil {
				return err
			}
			defer ws.close(cmd.Context())

			year := resolveYear(cmd, v, 0)
			uc := usecase.NewCheckAnswers(ws.answers, ws.solver(false))

			report, err := uc.Execute(cmd.Context(), year)
			if err != nil {
				return err
			}

			if format == "json" {
				if err := writeJSON(out(cmd), report); err != nil {
					return err
				}
			} else {
				printCheckReport(out(cmd), report)
			}

			if !report.Passed() {
				return fmt.Errorf("answer check failed (%d mismatch, %d failed)",
					report.Count(domain.CheckMismatch), report.Count(domain.CheckFailed))
			}
			return nil
		},
	}

	c.Flags().IntP(keyYear, "y", 0, "Only check this year (default: every listed year)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printCheckReport(w io.Writer, r usecase.CheckReport) {
	if len(r.Days) == 0 {
		fmt.Fprintln(w, "(no expected answers listed)")
		return
	}

	for _, d := range r.Days {
		for _, p := range d.Parts {
			line := fmt.Sprintf("%-8s %s %s", checkMark(p.Status), d.Key, p.Part)
			if p.Message != "" {
				line += ": " + p.Message
			}
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintf(w, "\n%d match, %d mismatch, %d failed, %d unchecked\n",
		r.Count(domain.CheckMatch),
		r.Count(domain.CheckMismatch),
		r.Count(domain.CheckFailed),
		r.Count(domain.CheckUnchecked),
	)
}

func checkMark(s domain.CheckStatus) string {
	switch s {
	case domain.CheckMatch:
		return "ok"
	case domain.CheckMismatch:
		return "MISMATCH"
	case domain.CheckFailed:
		return "FAIL"
	default:
		return "?"
	}
}
