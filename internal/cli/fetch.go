package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/infra/aocfetch"
	"github.com/aalvaropc/aoc/internal/usecase"
)

func fetchCmd(v *viper.Viper) *cobra.Command {
	var day int
	var force bool

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Download a puzzle input into the workspace (needs AOC_SESSION)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(v, false)
			if err != nil {
				return err
			}
			defer ws.close(cmd.Context())

			key := domain.Key{Year: resolveYear(cmd, v, ws.cfg.Defaults.Year), Day: day}
			fetcher := aocfetch.New(ws.cfg.Fetch, sessionToken(v, ws.cfg))

			path, err := usecase.NewFetchInput(fetcher, ws.inputs).Execute(cmd.Context(), key, force)
			if err != nil {
				return err
			}

			if rel, rerr := filepath.Rel(ws.root, path); rerr == nil {
				path = rel
			}
			fmt.Fprintf(out(cmd), "Saved %s to %s\n", key, path)
			return nil
		},
	}

	c.Flags().IntP(keyYear, "y", 0, "Puzzle year (default: AOC_YEAR or defaults.year)")
	c.Flags().IntVarP(&day, "day", "d", 0, "Puzzle day 1..25 (required)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing input file")

	_ = c.MarkFlagRequired("day")
	return c
}
