package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aalvaropc/aoc/internal/usecase"
)

func listCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			year := resolveYear(cmd, v, 0)

			ws, err := openWorkspace(v, true)
			if err != nil {
				return err
			}
			defer ws.close(cmd.Context())

			keys := usecase.NewListDays(ws.catalog).Execute(year)
			if len(keys) == 0 {
				fmt.Fprintln(out(cmd), "(no days registered)")
				return nil
			}

			for _, k := range keys {
				mark := " "
				if ws.inputs != nil && ws.inputs.Available(k) {
					mark = "*"
				}
				fmt.Fprintf(out(cmd), "%s %s\n", mark, k)
			}
			if ws.inputs != nil {
				fmt.Fprintln(out(cmd), "\n* input present")
			}
			return nil
		},
	}

	cmd.Flags().IntP(keyYear, "y", 0, "Only list this year")
	return cmd
}
