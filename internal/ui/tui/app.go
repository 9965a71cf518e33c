package tui

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/aoc/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenResult
)

type dayItem struct {
	key      domain.Key
	hasInput bool
}

func (d dayItem) Title() string { return fmt.Sprintf("%d · day %02d", d.key.Year, d.key.Day) }

func (d dayItem) Description() string {
	if d.hasInput {
		return "input present"
	}
	return "input missing"
}

func (d dayItem) FilterValue() string {
	return strconv.Itoa(d.key.Year) + " " + strconv.Itoa(d.key.Day)
}

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	days list.Model

	workspaceFound bool
	workspaceRoot  string

	solving   bool
	active    domain.Key
	result    domain.Result
	resultID  string
	resultErr error

	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := make([]list.Item, 0, len(deps.Days))
	for _, k := range deps.Days {
		has := deps.Inputs != nil && deps.Inputs.Available(k)
		items = append(items, dayItem{key: k, hasInput: has})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Days"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme:          t,
		deps:           deps,
		scr:            screenHome,
		days:           l,
		workspaceFound: deps.WorkspaceRoot != "",
		workspaceRoot:  deps.WorkspaceRoot,
	}

	// Start on the first day of the default year.
	for i, k := range deps.Days {
		if k.Year == deps.Year {
			m.days.Select(i)
			break
		}
	}

	return m
}

func (m model) Init() tea.Cmd {
	if m.workspaceFound {
		return nil
	}
	return cmdRefreshWorkspace(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.days.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created. Restart aoc to solve days."
		return m, cmdRefreshWorkspace(m.deps)

	case solveDoneMsg:
		m.solving = false
		m.active = msg.key
		m.result = msg.result
		m.resultID = msg.id
		m.resultErr = msg.err
		m.scr = screenResult
		return m, nil

	case tea.KeyMsg:
		// While filtering, keys belong to the list.
		if m.scr == screenHome && m.days.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "enter":
			if m.scr != screenHome || m.solving {
				return m, nil
			}
			it, ok := m.days.SelectedItem().(dayItem)
			if !ok {
				return m, nil
			}
			if m.deps.Solver == nil {
				m.toast = "No workspace: press i to create one here."
				return m, nil
			}
			m.solving = true
			m.active = it.key
			m.toast = ""
			_, cmd := startSolveAsync(m.deps.Solver, it.key, m.deps.Logger, m.deps.Debug)
			return m, cmd

		case "i":
			if m.scr == screenHome && !m.workspaceFound {
				wd, err := os.Getwd()
				if err != nil {
					m.toast = userMessage(err)
					return m, nil
				}
				return m, cmdInitWorkspaceHere(m.deps, wd, m.deps.Year)
			}

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.days, cmd = m.days.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("aoc") + "\n" +
		m.theme.Subtitle.Render("puzzle days, two answers each") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Card.Render(
			"⚠ No workspace found.\n\nPress i to create one in the current directory.",
		)
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		status := ""
		if m.solving {
			status = "\n" + m.theme.Subtitle.Render("Solving "+m.active.String()+"…")
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter solve • / search • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.days.View()) + status + toast + "\n" + help)

	case screenResult:
		var body string
		if m.resultErr != nil && m.result.Key == (domain.Key{}) {
			body = m.theme.Error.Render(userMessage(m.resultErr))
		} else {
			body = renderResult(m.theme, m.result, m.resultID)
			if m.resultErr != nil {
				body += "\n" + m.theme.Error.Render(userMessage(m.resultErr))
			}
		}
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.active.String()),
				body,
				m.theme.Help.Render("esc/b back • q home"),
			),
		)
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
