// Package model holds the bubbletea models behind interactive commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/clonecfg/internal/application/usecase"
	"github.com/bnema/clonecfg/internal/cli/styles"
	"github.com/bnema/clonecfg/internal/domain/entity"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	chromeLines   = 8
	minTableRows  = 3
)

// SavesModel browses the save history in a table.
type SavesModel struct {
	ctx    context.Context
	input  usecase.ListSavesInput
	listUC *usecase.ListSavesUseCase
	theme  *styles.Theme

	saves   []*entity.SaveRecord
	table   table.Model
	loading bool
	chosen  bool
	err     error
	width   int
	height  int
}

// NewSavesModel creates a model that loads saves matching input.
func NewSavesModel(
	ctx context.Context,
	theme *styles.Theme,
	listUC *usecase.ListSavesUseCase,
	input usecase.ListSavesInput,
) SavesModel {
	return SavesModel{
		ctx:     ctx,
		input:   input,
		listUC:  listUC,
		theme:   theme,
		loading: true,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

type savesLoadedMsg struct {
	saves []*entity.SaveRecord
	err   error
}

// Init implements tea.Model.
func (m SavesModel) Init() tea.Cmd {
	return m.loadSaves
}

func (m SavesModel) loadSaves() tea.Msg {
	out, err := m.listUC.Execute(m.ctx, m.input)
	if err != nil {
		return savesLoadedMsg{err: err}
	}
	return savesLoadedMsg{saves: out.Saves}
}

// Update implements tea.Model.
func (m SavesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildTable()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.chosen = m.Selected() != nil
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case savesLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.saves = msg.saves
		m.rebuildTable()
	}

	return m, nil
}

func (m *SavesModel) rebuildTable() {
	rows := make([]table.Row, len(m.saves))
	for i, s := range m.saves {
		rows[i] = styles.SaveRow(s)
	}
	height := max(min(len(rows), m.height-chromeLines), minTableRows)
	cursor := m.table.Cursor()
	m.table = styles.NewStyledTable(m.theme, styles.SavesTableColumns(), rows, m.width-4, height)
	if cursor > 0 && cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

// Selected returns the highlighted save, or nil.
func (m SavesModel) Selected() *entity.SaveRecord {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.saves) {
		return nil
	}
	return m.saves[i]
}

// Chosen reports whether the user quit by picking a save with enter.
func (m SavesModel) Chosen() bool {
	return m.chosen
}

// Err returns the load error, if any.
func (m SavesModel) Err() error {
	return m.err
}

// View implements tea.Model.
func (m SavesModel) View() string {
	t := m.theme
	var sb strings.Builder

	sb.WriteString(t.Title.Render("Save history"))
	sb.WriteString("\n\n")

	switch {
	case m.loading:
		sb.WriteString(t.Subtle.Render("Loading..."))
	case m.err != nil:
		sb.WriteString(t.RenderError(m.err))
	case len(m.saves) == 0:
		sb.WriteString(t.Subtle.Render("No saves recorded"))
	default:
		sb.WriteString(m.table.View())
		if sel := m.Selected(); sel != nil {
			sb.WriteString("\n\n")
			sb.WriteString(t.Subtle.Render(fmt.Sprintf("%s  %s", sel.Destination, sel.Digest)))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(t.HelpKey.Render("↑/↓") + " " + t.HelpDesc.Render("move") + "  ")
	sb.WriteString(t.HelpKey.Render("enter") + " " + t.HelpDesc.Render("show payload") + "  ")
	sb.WriteString(t.HelpKey.Render("q") + " " + t.HelpDesc.Render("quit"))
	return sb.String()
}
