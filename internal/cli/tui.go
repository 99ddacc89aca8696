package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/seedpacket/pkg/assets"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
	headerStyle  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// ImageListModel - Interactive background image selection
// =============================================================================

// ImageListModel is the bubbletea model for interactive image selection.
// The first row stands for "no background image".
type ImageListModel struct {
	Images   []assets.Info
	Cursor   int
	Height   int
	Offset   int
	Selected *string // nil until the user confirms; "" means no image
}

// NewImageListModel creates a new image list model.
func NewImageListModel(images []assets.Info) ImageListModel {
	return ImageListModel{
		Images: images,
		Height: 15,
	}
}

// rows is the number of selectable rows, including "no image".
func (m ImageListModel) rows() int { return len(m.Images) + 1 }

func (m ImageListModel) Init() tea.Cmd {
	return nil
}

func (m ImageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < m.rows()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			name := ""
			if m.Cursor > 0 {
				name = m.Images[m.Cursor-1].Name
			}
			m.Selected = &name
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

func (m ImageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Background Image"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, m.rows())

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		if i == 0 {
			rows = append(rows, []string{cursor, noImage, "", ""})
			continue
		}
		info := m.Images[i-1]
		rows = append(rows, []string{cursor, info.Name, formatBytes(int(info.Size)), formatRelativeTime(info.ModTime)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Image", "Size", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.rows())))

	return b.String()
}

// pickImage runs the picker and returns the chosen image name, "" for no
// image. It returns errAborted when the user quits without choosing.
func pickImage(ctx context.Context, images []assets.Info) (string, error) {
	final, err := tea.NewProgram(NewImageListModel(images), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", fmt.Errorf("image picker: %w", err)
	}
	m, ok := final.(ImageListModel)
	if !ok || m.Selected == nil {
		return "", errAborted
	}
	return *m.Selected, nil
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	diff := timeNow().Sub(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
