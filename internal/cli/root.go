package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aalvaropc/aoc/internal/buildinfo"
	"github.com/aalvaropc/aoc/internal/infra/fsworkspace"
	"github.com/aalvaropc/aoc/internal/infra/workspacefinder"
	"github.com/aalvaropc/aoc/internal/ui/tui"
	"github.com/aalvaropc/aoc/internal/usecase"
)

// Viper keys. Each one is also readable from the environment as AOC_<KEY>.
const (
	keyDebug     = "debug"
	keyWorkspace = "workspace"
	keyYear      = "year"
	keySession   = "session"
)

func init() {
	// Query the terminal background before any bubbletea program starts so
	// the OSC 11 reply does not race the input loop.
	_ = lipgloss.HasDarkBackground()
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:          "aoc",
		Short:        "aoc: puzzle day harness",
		Version:      buildinfo.String(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowser(cmd, v)
		},
	}

	cmd.PersistentFlags().Bool(keyDebug, false, "enable verbose logging to .aoc/logs/aoc.log")
	cmd.PersistentFlags().StringP(keyWorkspace, "w", "", "Workspace root (optional; autodetected if omitted)")
	_ = v.BindPFlag(keyDebug, cmd.PersistentFlags().Lookup(keyDebug))
	_ = v.BindPFlag(keyWorkspace, cmd.PersistentFlags().Lookup(keyWorkspace))

	cmd.AddCommand(
		runCmd(v),
		allCmd(v),
		listCmd(v),
		checkCmd(v),
		fetchCmd(v),
		initCmd(v),
		runsCmd(v),
		versionCmd(),
	)
	return cmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("AOC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(keyYear)
	_ = v.BindEnv(keySession)
	return v
}

func runBrowser(cmd *cobra.Command, v *viper.Viper) error {
	deps := tui.Deps{
		WorkspaceLocator:     workspacefinder.NewFinder(),
		WorkspaceInitializer: fsworkspace.NewInitializer(),
		Debug:                v.GetBool(keyDebug),
	}

	ws, err := openWorkspace(v, false)
	switch {
	case err == nil:
		defer ws.close(cmd.Context())
		deps.WorkspaceRoot = ws.root
		deps.Year = ws.cfg.Defaults.Year
		deps.Days = usecase.NewListDays(ws.catalog).Execute(0)
		deps.Solver = ws.solver(true)
		deps.Inputs = ws.inputs
		deps.Logger = ws.log()
	case errors.Is(err, errNoWorkspace):
		deps.Days = usecase.NewListDays(defaultCatalog()).Execute(0)
	default:
		return err
	}

	return tui.Run(deps)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

// resolveYear prefers an explicit -y flag, then AOC_YEAR, then the workspace
// default.
func resolveYear(cmd *cobra.Command, v *viper.Viper, fallback int) int {
	if f := cmd.Flags().Lookup(keyYear); f != nil && f.Changed {
		y, _ := cmd.Flags().GetInt(keyYear)
		return y
	}
	if v.IsSet(keyYear) {
		if y := v.GetInt(keyYear); y != 0 {
			return y
		}
	}
	return fallback
}

func out(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
