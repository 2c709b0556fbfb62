package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/clonecfg/internal/domain/entity"
)

// SavesRenderer renders save history in non-interactive mode.
type SavesRenderer struct {
	theme *Theme
}

// NewSavesRenderer creates a renderer using theme.
func NewSavesRenderer(theme *Theme) *SavesRenderer {
	return &SavesRenderer{theme: theme}
}

// RenderList renders one line per save, newest first.
func (r *SavesRenderer) RenderList(saves []*entity.SaveRecord) string {
	if len(saves) == 0 {
		return r.theme.Subtle.Render("No saves recorded")
	}
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	for _, s := range saves {
		sb.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
			iconStyle.Render(IconPackage),
			r.theme.Highlight.Render(s.PackageName),
			r.theme.MutedBadge(fmt.Sprintf("%d keys", s.KeyCount)),
			r.theme.TimeBadge(s.CreatedAt),
			r.theme.Subtle.Render(ShortDigest(s.Digest)),
		))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderSaved renders the result of a save.
func (r *SavesRenderer) RenderSaved(packageName, destination string, keyCount int) string {
	return r.theme.RenderSuccess(fmt.Sprintf("Saved %s (%d keys)", r.theme.Highlight.Render(packageName), keyCount)) +
		"\n  " + r.theme.Subtle.Render(IconArrow+" "+destination)
}

// RenderPruned renders the result of a prune.
func (r *SavesRenderer) RenderPruned(deleted int64, keep int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s Removed %s, kept the newest %d per package",
		iconStyle.Render(IconTrash),
		r.theme.Highlight.Render(fmt.Sprintf("%d saves", deleted)),
		keep,
	)
}
