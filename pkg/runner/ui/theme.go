package ui

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the interactive UI.
type Theme struct {
	Sidebar SidebarTheme
	List    ListTheme
	Footer  FooterTheme
	Modal   ModalTheme
}

// SidebarTheme styles the bucket column.
type SidebarTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Bucket   lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Count    lipgloss.Style
}

// ListTheme styles the item column.
type ListTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Preview lipgloss.Style
	Cursor  lipgloss.Style
	Drag    lipgloss.Style
	Target  lipgloss.Style
	Copied  lipgloss.Style
	Empty   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help  lipgloss.Style
	Note  lipgloss.Style
	Error lipgloss.Style
}

// ModalTheme styles the confirm prompt and the blocking error screen.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	cursor := lipgloss.NewStyle().Reverse(true)

	return Theme{
		Sidebar: SidebarTheme{
			Frame:    frame,
			Title:    lipgloss.NewStyle().Bold(true),
			Bucket:   lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Cursor:   cursor,
			Count:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		List: ListTheme{
			Frame:   frame,
			Title:   lipgloss.NewStyle().Bold(true),
			Label:   lipgloss.NewStyle().Bold(true),
			Preview: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Cursor:  cursor,
			Drag:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Target:  lipgloss.NewStyle().Underline(true),
			Copied:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Empty:   lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Note:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("196")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}
