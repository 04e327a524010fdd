package tui

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// maxListRows caps the gallery list so the stats panel stays visible on
// short terminals.
const maxListRows = 20

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("resview"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(m.state.Dir()))
	b.WriteString("\n\n")

	if !m.dirValid {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%q is not a valid directory", m.rawDir)))
		b.WriteString("\n\n")
	}

	if m.state.Focused() {
		b.WriteString(m.focusedView())
	} else {
		b.WriteString(m.galleryView())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(m.status))
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	b.WriteString("\n")
	return b.String()
}

// galleryView renders the file list with the cursor plus the stats panel.
func (m Model) galleryView() string {
	files := m.state.Files()
	if len(files) == 0 {
		return warnStyle.Render("No images found in the selected directory.") + "\n" +
			dimStyle.Render("Select a directory containing images (tab cycles bookmarks).") + "\n"
	}

	var list strings.Builder
	start := 0
	if m.cursor >= maxListRows {
		start = m.cursor - maxListRows + 1
	}
	end := start + maxListRows
	if end > len(files) {
		end = len(files)
	}
	for i := start; i < end; i++ {
		name := filepath.Base(files[i])
		if i == m.cursor {
			list.WriteString(cursorStyle.Render("> " + name))
		} else {
			list.WriteString("  " + name)
		}
		list.WriteString("\n")
	}
	if end < len(files) {
		list.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(files)-end)))
		list.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(strings.TrimRight(list.String(), "\n")),
		" ",
		panelStyle.Render(m.statsView()),
	) + "\n"
}

// statsView renders the aggregate panel driven by the metadata summary.
func (m Model) statsView() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total images: %d\n", m.summary.Total)
	fmt.Fprintf(&b, "Total size:   %s\n", humanize.IBytes(m.summary.TotalSize))
	b.WriteString("Dimensions:\n")
	if !m.summary.HasDimensions() {
		b.WriteString(dimStyle.Render("  N/A"))
		return b.String()
	}
	for _, d := range m.summary.Histogram {
		fmt.Fprintf(&b, "  %s\n", d)
	}
	return strings.TrimRight(b.String(), "\n")
}

// focusedView renders the single-image detail with navigation hints.
func (m Model) focusedView() string {
	i, path, ok := m.state.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", filepath.Base(path))
	fmt.Fprintf(&b, "%s\n\n", dimStyle.Render(path))
	fmt.Fprintf(&b, "Image %d of %d\n", i+1, len(m.state.Files()))

	if m.info != nil {
		fmt.Fprintf(&b, "Dimensions: %dx%d px\n", m.info.Width, m.info.Height)
		fmt.Fprintf(&b, "Size:       %s\n", humanize.IBytes(uint64(m.info.Size)))
		fmt.Fprintf(&b, "Modified:   %s\n", m.info.ModTime.Format("2006-01-02 15:04:05"))
		if len(m.info.EXIF) > 0 {
			b.WriteString("EXIF:\n")
			keys := make([]string, 0, len(m.info.EXIF))
			for k := range m.info.EXIF {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(&b, "  %s: %s\n", k, m.info.EXIF[k])
			}
		}
	} else {
		b.WriteString(warnStyle.Render("Image metadata not available.") + "\n")
	}

	b.WriteString("\n")
	prev := "← previous"
	if !m.state.CanPrev() {
		prev = dimStyle.Render(prev)
	}
	next := "next →"
	if !m.state.CanNext() {
		next = dimStyle.Render(next)
	}
	fmt.Fprintf(&b, "%s   %s   esc back\n", prev, next)

	return panelStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}
