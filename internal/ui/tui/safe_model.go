package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/aoc/internal/domain"
)

const panicNotice = "Unexpected error (see logs)"

// safeModel keeps a panicking Update or View from killing the terminal
// session. Update falls back to the day list; View prints a notice.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.update", r)
			s.m = s.m.reset(panicNotice)
			next, cmd = s, nil
		}
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (view string) {
	defer func() {
		if r := recover(); r != nil {
			s.report("tui.view", r)
			view = panicNotice
		}
	}()
	return s.m.View()
}

func (s safeModel) report(where string, r any) {
	attrs := []any{
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}
	if s.m.active != (domain.Key{}) {
		attrs = append(attrs, "year", s.m.active.Year, "day", s.m.active.Day)
	}
	s.log.Error("panic.recovered", attrs...)
}

// reset returns to the day list, dropping any in-flight solve.
func (m model) reset(toast string) model {
	m.scr = screenHome
	m.solving = false
	m.resultErr = nil
	m.result = domain.Result{}
	m.resultID = ""
	m.toast = toast
	return m
}

var _ tea.Model = safeModel{}
