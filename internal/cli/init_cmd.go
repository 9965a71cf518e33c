package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aalvaropc/aoc/internal/infra/fsworkspace"
	"github.com/aalvaropc/aoc/internal/usecase"
)

func initCmd(v *viper.Viper) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create an aoc workspace (aoc.yaml, answers.yaml, inputs/, runs/)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := strings.TrimSpace(v.GetString(keyWorkspace))
			if len(args) == 1 {
				root = args[0]
			}
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}

			year := resolveYear(cmd, v, 0)
			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, year, force); err != nil {
				return err
			}

			fmt.Fprintf(out(cmd), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().IntP(keyYear, "y", 0, "Default puzzle year written to aoc.yaml")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing aoc.yaml and answers.yaml")
	return c
}
