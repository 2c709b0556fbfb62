package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SettingRow is one rendered setting.
type SettingRow struct {
	Category string
	Key      string
	Role     string
	Summary  string
	Children []string
}

// SettingsRenderer renders an analyzed configuration grouped by category.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a renderer using theme.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// Render prints rows in order with a header per category. Children are
// listed under their parent when showTree is set.
func (r *SettingsRenderer) Render(rows []SettingRow, showTree bool) string {
	if len(rows) == 0 {
		return r.theme.Subtle.Render("No settings")
	}

	keyWidth := 0
	for _, row := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(row.Key))
	}
	keyStyle := r.theme.Normal.Width(keyWidth + 2)
	treeStyle := r.theme.Subtle.PaddingLeft(4)

	var sb strings.Builder
	current := ""
	for _, row := range rows {
		if row.Category != current {
			if current != "" {
				sb.WriteString("\n")
			}
			current = row.Category
			sb.WriteString(r.theme.Subtitle.Render(strings.ToUpper(row.Category)))
			sb.WriteString("\n")
		}

		sb.WriteString("  ")
		sb.WriteString(keyStyle.Render(row.Key))
		sb.WriteString(r.summary(row))
		if row.Role != "leaf" {
			sb.WriteString(" ")
			sb.WriteString(r.theme.RoleBadge(row.Role))
		}
		sb.WriteString("\n")

		if showTree && len(row.Children) > 0 {
			for i, child := range row.Children {
				branch := "├─ "
				if i == len(row.Children)-1 {
					branch = "└─ "
				}
				sb.WriteString(treeStyle.Render(branch + child))
				sb.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *SettingsRenderer) summary(row SettingRow) string {
	switch row.Summary {
	case "Enabled":
		return r.theme.SuccessStyle.Render(row.Summary)
	case "Disabled", "Not set":
		return r.theme.Subtle.Render(row.Summary)
	default:
		return r.theme.Normal.Render(row.Summary)
	}
}

// RenderCounts renders the footer with hierarchy totals.
func (r *SettingsRenderer) RenderCounts(total, parents, children int) string {
	return r.theme.Subtle.Render(fmt.Sprintf("%d settings, %d parents, %d children", total, parents, children))
}
