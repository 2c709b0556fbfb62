// Package styles provides reusable lipgloss-based CLI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconPackage = "\uf187" // archive/package

	IconTrash    = "\uf1f8" // trash
	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconClock    = "\uf017" // clock
	IconTree     = "\uf1bb" // tree
	IconCursor   = "\uf054" // chevron-right
)
