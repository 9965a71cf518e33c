package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/inputfs"
	"github.com/aalvaropc/aoc/internal/usecase"
)

func runCmd(v *viper.Viper) *cobra.Command {
	var day int
	var inputFile string
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Solve one day from a workspace input (or --input FILE)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := openWorkspace(v, inputFile != "")
			if err != nil {
				return err
			}
			defer ws.close(cmd.Context())

			key := domain.Key{Year: resolveYear(cmd, v, ws.cfg.Defaults.Year), Day: day}
			uc := ws.solver(!noSave)

			var (
				res   domain.Result
				runID string
			)
			if inputFile != "" {
				in, rerr := inputfs.ReadFile(inputFile)
				if rerr != nil {
					return rerr
				}
				res, runID, err = uc.ExecuteInput(cmd.Context(), key, in)
			} else {
				res, runID, err = uc.Execute(cmd.Context(), key)
			}

			if perr := printResult(out(cmd), res, runID, format); perr != nil && err == nil {
				err = perr
			}
			if err != nil {
				return err
			}
			if res.Failed() {
				return fmt.Errorf("%s failed", key)
			}
			return nil
		},
	}

	c.Flags().IntP(keyYear, "y", 0, "Puzzle year (default: AOC_YEAR or defaults.year)")
	c.Flags().IntVarP(&day, "day", "d", 0, "Puzzle day 1..25 (required)")
	c.Flags().StringVar(&inputFile, "input", "", "Read the input from FILE instead of the workspace")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("day")
	return c
}

func allCmd(v *viper.Viper) *cobra.Command {
	var days []int
	var limit int
	var noSave bool
	var format string

	c := &cobra.Command{
		Use:   "all",
		Short: "Solve every registered day of a year concurrently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := openWorkspace(v, false)
			if err != nil {
				return err
			}
			defer ws.close(cmd.Context())

			year := resolveYear(cmd, v, ws.cfg.Defaults.Year)

			opts := []usecase.SolveAllOption{usecase.WithLimit(limit)}
			if !noSave {
				opts = append(opts, usecase.WithBatchStore(ws.store))
			}
			uc := usecase.NewSolveAll(ws.solver(false), ws.catalog, opts...)

			batch, runID, err := uc.Execute(cmd.Context(), year, days)
			if perr := printBatch(out(cmd), batch, runID, format); perr != nil && err == nil {
				err = perr
			}
			if err != nil {
				return err
			}
			if n := batch.Failed(); n > 0 {
				return fmt.Errorf("%d day(s) failed", n)
			}
			return nil
		},
	}

	c.Flags().IntP(keyYear, "y", 0, "Puzzle year (default: AOC_YEAR or defaults.year)")
	c.Flags().IntSliceVarP(&days, "day", "d", nil, "Restrict to these days (default: all registered)")
	c.Flags().IntVar(&limit, "limit", 0, "Max days solved in parallel (default: GOMAXPROCS)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printResult(w io.Writer, res domain.Result, runID string, format string) error {
	switch format {
	case "json":
		return writeJSON(w, map[string]any{
			"run_id": runID,
			"result": res,
		})
	case "pretty", "":
		printPrettyResult(w, res)
		if runID != "" {
			fmt.Fprintf(w, "Run ID: %s\n", runID)
		}
		return nil
	default:
		return checkFormat(format)
	}
}

func printBatch(w io.Writer, b usecase.Batch, runID string, format string) error {
	switch format {
	case "json":
		// errs stays index-aligned with results; solved days are null.
		errs := make([]*string, len(b.Errors))
		for i, e := range b.Errors {
			if e != nil {
				msg := e.Error()
				errs[i] = &msg
			}
		}
		return writeJSON(w, map[string]any{
			"run_id":  runID,
			"results": b.Results,
			"errors":  errs,
		})
	case "pretty", "":
		for _, r := range b.Results {
			printPrettyResult(w, r)
		}
		fmt.Fprintf(w, "%d day(s), %d failed\n", len(b.Results), b.Failed())
		if runID != "" {
			fmt.Fprintf(w, "Run ID: %s\n", runID)
		}
		return nil
	default:
		return checkFormat(format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPrettyResult(w io.Writer, res domain.Result) {
	total := res.EndedAt.Sub(res.StartedAt)
	if res.StartedAt.IsZero() || res.EndedAt.IsZero() {
		total = 0
	}

	status := "OK"
	if res.Failed() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "[%s] %s (%s)\n", status, res.Key, total.Round(time.Microsecond))

	if res.Error != nil {
		fmt.Fprintf(w, "  error: %s (%s)\n\n", res.Error.Message, res.Error.Kind)
		return
	}

	printAnswer(w, "part one", res.PartOne)
	printAnswer(w, "part two", res.PartTwo)
	fmt.Fprintln(w)
}

func printAnswer(w io.Writer, label string, a domain.Answer) {
	if a.Error != nil {
		fmt.Fprintf(w, "  %s: error: %s (%s)\n", label, a.Error.Message, a.Error.Kind)
		return
	}

	// Rendered grids span several lines; indent them under the label.
	if strings.Contains(a.Value, "\n") {
		fmt.Fprintf(w, "  %s: (%dms)\n", label, a.DurationMS)
		for _, line := range strings.Split(a.Value, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
		return
	}
	fmt.Fprintf(w, "  %s: %s (%dms)\n", label, a.Value, a.DurationMS)
}
