package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/taxsplit/pkg/split"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// candidateModel is the bubbletea model for interactive root selection.
// It shows the ranked candidates for one split and records the choice.
type candidateModel struct {
	Title      string
	Candidates []split.Candidate
	Cursor     int
	Choice     *split.Candidate
	Height     int
	Offset     int
}

// newCandidateModel creates a candidate list model.
func newCandidateModel(title string, candidates []split.Candidate) candidateModel {
	return candidateModel{
		Title:      title,
		Candidates: candidates,
		Height:     15,
	}
}

func (m candidateModel) Init() tea.Cmd {
	return nil
}

func (m candidateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Candidates)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Choice = &m.Candidates[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m candidateModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Candidates) {
		end = len(m.Candidates)
	}

	for i := m.Offset; i < end; i++ {
		cand := m.Candidates[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		label := cand.Label
		if label == "" {
			label = "—"
		}
		line := fmt.Sprintf("%s%-12s %4d leaves  %s", cursor, cand.ID, cand.Span, label)

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Candidates))))

	return b.String()
}

// pickCandidate runs an interactive picker over the candidates and returns
// the selection, or an error when the user aborts.
func pickCandidate(title string, candidates []split.Candidate) (*split.Candidate, error) {
	final, err := tea.NewProgram(newCandidateModel(title, candidates)).Run()
	if err != nil {
		return nil, fmt.Errorf("run candidate picker: %w", err)
	}
	m, ok := final.(candidateModel)
	if !ok || m.Choice == nil {
		return nil, fmt.Errorf("root selection aborted")
	}
	return m.Choice, nil
}

// pickRoots interactively selects the valid root and then a distinct test
// root from the ranked candidate lists.
func pickRoots(g *taxonomy.Graph, spanning map[string]taxonomy.Set, opts split.Options) (*split.Roots, error) {
	validCandidates := split.Candidates(g, spanning, opts.ValidClasses, opts.Margin)
	if len(validCandidates) == 0 {
		return nil, fmt.Errorf("no valid-root candidates within margin %d", opts.Margin)
	}
	valid, err := pickCandidate("Select Validation Root", validCandidates)
	if err != nil {
		return nil, err
	}

	testCandidates := make([]split.Candidate, 0)
	for _, cand := range split.Candidates(g, spanning, opts.TestClasses, opts.Margin) {
		if cand.ID != valid.ID {
			testCandidates = append(testCandidates, cand)
		}
	}
	if len(testCandidates) == 0 {
		return nil, fmt.Errorf("no distinct test-root candidates within margin %d", opts.Margin)
	}
	test, err := pickCandidate("Select Test Root", testCandidates)
	if err != nil {
		return nil, err
	}

	return &split.Roots{Valid: valid.ID, Test: test.ID}, nil
}
