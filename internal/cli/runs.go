package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aalvaropc/aoc/internal/usecase"
)

func runsCmd(v *viper.Viper) *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved run artifacts",
	}

	c.AddCommand(runsListCmd(v), runsShowCmd(v))
	return c
}

func runsListCmd(v *viper.Viper) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(v, false)
			if err != nil {
				return err
			}
			defer ws.close(cmd.Context())

			refs, err := usecase.NewQueryRuns(ws.store).List()
			if err != nil {
				return err
			}
			if len(refs) == 0 {
				fmt.Fprintln(out(cmd), "(no runs saved)")
				return nil
			}
			if limit > 0 && len(refs) > limit {
				refs = refs[:limit]
			}

			for _, r := range refs {
				days := make([]string, 0, len(r.Days))
				for _, k := range r.Days {
					days = append(days, k.String())
				}
				fmt.Fprintf(out(cmd), "- %s  %s  failed=%d  [%s]\n",
					r.ID, r.StartedAt.Local().Format(time.DateTime), r.Failed, strings.Join(days, " "))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N runs")
	return cmd
}

func runsShowCmd(v *viper.Viper) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved run, or the value selected by --query (JSONPath)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(v, false)
			if err != nil {
				return err
			}
			defer ws.close(cmd.Context())

			s, err := usecase.NewQueryRuns(ws.store).Show(args[0], query)
			if err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), strings.TrimRight(s, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", `JSONPath expression, e.g. "$.results[0].part_one.value"`)
	return cmd
}
