package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/usecase"
)

// solveTimeout bounds one day solved from the browser.
const solveTimeout = 5 * time.Minute

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string, year int) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, year, false)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func listenSolve(ch <-chan solveDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return solveDoneMsg{err: errors.New("solver channel closed")}
		}
		return msg
	}
}

// startSolveAsync solves k on its own goroutine; the returned command delivers
// a single solveDoneMsg.
func startSolveAsync(
	solver *usecase.SolveDay,
	k domain.Key,
	log *slog.Logger,
	debug bool,
) (chan solveDoneMsg, tea.Cmd) {
	ch := make(chan solveDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		log.Info("tui.solve.start", "year", k.Year, "day", k.Day, "debug", debug)

		if solver == nil {
			ch <- solveDoneMsg{key: k, err: errors.New("no workspace: solving is disabled")}
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), solveTimeout)
		defer cancel()

		res, id, err := solver.Execute(ctx, k)
		if err != nil {
			log.Error("tui.solve.failed", "year", k.Year, "day", k.Day, "err", err, "saved_id", id)
		} else if debug {
			log.Debug("tui.solve.ok",
				"year", k.Year,
				"day", k.Day,
				"saved_id", id,
				"part_one_ms", res.PartOne.DurationMS,
				"part_two_ms", res.PartTwo.DurationMS,
			)
		}

		ch <- solveDoneMsg{key: k, result: res, id: id, err: err}
	}()

	return ch, listenSolve(ch)
}
