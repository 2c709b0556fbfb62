package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a renderer using theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file location.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s Config %s", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderWritten renders a confirmation for a written file.
func (r *ConfigRenderer) RenderWritten(kind, path string) string {
	return r.theme.RenderSuccess(fmt.Sprintf("Wrote %s %s", kind, r.theme.Highlight.Render(filepath.Base(path)))) +
		"\n  " + r.theme.Subtle.Render(path)
}

// RenderBody frames a TOML or JSON document under a header.
func (r *ConfigRenderer) RenderBody(title, body string) string {
	return r.theme.BoxHeader.Render(title) + "\n" + body
}
