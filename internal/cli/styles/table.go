package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

const digestShortLen = 12

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// SavesTableColumns returns columns for the save history table.
func SavesTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Package", Width: 32},
		{Title: "Keys", Width: 6},
		{Title: "Size", Width: 10},
		{Title: "Digest", Width: 14},
		{Title: "Saved", Width: 10},
	}
}

// SaveRow converts a save record to a table row.
func SaveRow(rec *entity.SaveRecord) table.Row {
	return table.Row{
		strconv.FormatInt(rec.ID, 10),
		rec.PackageName,
		strconv.Itoa(rec.KeyCount),
		HumanBytes(len(rec.Payload)),
		ShortDigest(rec.Digest),
		RelativeTime(rec.CreatedAt),
	}
}

// ShortDigest truncates a hex digest for display.
func ShortDigest(digest string) string {
	if len(digest) <= digestShortLen {
		return digest
	}
	return digest[:digestShortLen]
}
