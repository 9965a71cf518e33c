package tui

import "github.com/aalvaropc/aoc/internal/domain"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type solveDoneMsg struct {
	key    domain.Key
	result domain.Result
	id     string
	err    error
}
