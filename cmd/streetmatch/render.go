package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"streetmatch/internal/textutil"
)

type theme struct {
	Match lipgloss.Style
	Score lipgloss.Style
	Scope lipgloss.Style
	Dim   lipgloss.Style
}

var defaultTheme = theme{
	Match: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Score: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	Scope: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	Dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// renderer styles output only when it goes to a terminal.
type renderer struct {
	styled bool
	theme  theme
}

func newRenderer(w io.Writer) renderer {
	return renderer{styled: isTerminal(w), theme: defaultTheme}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (r renderer) apply(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

func (r renderer) match(s string) string { return r.apply(r.theme.Match, s) }

func (r renderer) score(v float64) string { return r.apply(r.theme.Score, formatSimilarity(v)) }

func (r renderer) scope(s string) string { return r.apply(r.theme.Scope, s) }

func (r renderer) dim(s string) string { return r.apply(r.theme.Dim, s) }

func formatSimilarity(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// scopeLabel turns a corpus file path into the postal code or place name it
// stands for.
func scopeLabel(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	return textutil.PlaceNameFromToken(filepath.Base(path))
}

// displayScope is scopeLabel title-cased for people. Postal codes pass
// through unchanged.
func displayScope(path string) string {
	label := scopeLabel(path)
	if label == "" {
		return ""
	}
	return cases.Title(language.Und).String(label)
}
