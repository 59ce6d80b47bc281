package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"todoster/internal/task"
)

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	tuiDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	tuiCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	tuiHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and toggle tasks interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			list, err := app.LoadList()
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(newTUIModel(app, list)).Run()
			if err != nil {
				return err
			}
			m, ok := final.(tuiModel)
			if !ok {
				return fmt.Errorf("unexpected model type %T", final)
			}
			if !m.dirty {
				return nil
			}
			if err := app.SaveList(m.list); err != nil {
				return err
			}
			fmt.Println("Saved.")
			return nil
		},
	}
}

type tuiModel struct {
	app    *App
	list   *task.List
	cursor int
	adding bool
	input  textinput.Model
	dirty  bool
}

func newTUIModel(app *App, list *task.List) tuiModel {
	input := textinput.New()
	input.Placeholder = "New task text"
	input.CharLimit = 200
	return tuiModel{app: app, list: list, input: input}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		switch keyMsg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.list.Add(text, nil)
				m.dirty = true
				m.cursor = len(m.list.Items) - 1
			}
			m.adding = false
			m.input.Reset()
			return m, nil
		case "esc":
			m.adding = false
			m.input.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.list.Items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ":
		if m.cursor < len(m.list.Items) {
			item := &m.list.Items[m.cursor]
			if item.Complete {
				item.MarkIncomplete()
			} else {
				item.MarkComplete(m.app.Now())
			}
			m.dirty = true
		}
	case "a":
		m.adding = true
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder
	b.WriteString(tuiTitleStyle.Render("todoster"))
	b.WriteString("\n\n")

	if len(m.list.Items) == 0 {
		b.WriteString("(no tasks)\n")
	}
	for i, item := range m.list.Items {
		cursor := "  "
		if i == m.cursor && !m.adding {
			cursor = tuiCursorStyle.Render("> ")
		}
		box := "[ ]"
		text := item.Text
		if item.RepeatDays != nil {
			text = fmt.Sprintf("%s (Repeat: %dd)", text, *item.RepeatDays)
		}
		if item.Complete {
			box = "[x]"
			text = tuiDoneStyle.Render(text)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, box, text)
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(tuiHelpStyle.Render("enter save · esc cancel"))
	} else {
		b.WriteString(tuiHelpStyle.Render("j/k move · space toggle · a add · q save and quit"))
	}
	b.WriteString("\n")
	return b.String()
}
