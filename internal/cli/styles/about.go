package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/clonecfg/internal/domain/build"
)

// VersionRenderer renders build info.
type VersionRenderer struct {
	theme *Theme
}

// NewVersionRenderer creates a renderer using theme.
func NewVersionRenderer(theme *Theme) *VersionRenderer {
	return &VersionRenderer{theme: theme}
}

// Render renders one styled line per build field.
func (r *VersionRenderer) Render(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := func(icon, key, value string) string {
		if value == "" {
			value = "unknown"
		}
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(value))
	}

	lines := []string{
		r.theme.Title.Render(build.AppName),
		line(IconVersion, "Version", info.Version),
		line(IconGitBranch, "Commit", info.Commit),
		line(IconCalendar, "Built", info.BuildDate),
		line(IconGo, "Go", info.GoVersion),
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	}
	return strings.Join(lines, "\n")
}
