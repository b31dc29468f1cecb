package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/maslabs/chatwidget/internal/widget"
)

const typingTickInterval = 250 * time.Millisecond

var (
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	typingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// settledMsg reports that an exchange finished, successfully or not.
type settledMsg struct {
	err error
}

type typingTickMsg time.Time

// Model renders a widget.Widget in the terminal: a scrollable message list,
// an input box, and an animated typing indicator while a reply is pending.
type Model struct {
	widget   *widget.Widget
	viewport viewport.Model
	input    textinput.Model
	frame    int
	ready    bool
}

func NewModel(w *widget.Widget) Model {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.CharLimit = 500
	input.Focus()

	return Model{
		widget: w,
		input:  input,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			// Alt+enter signals line-break intent and sends nothing.
			if msg.Alt {
				return m, nil
			}
			if m.widget.Awaiting() {
				return m, nil
			}
			m.widget.SetInput(m.input.Value())
			m.input.SetValue("")
			m.refresh()
			return m, tea.Batch(m.sendCmd(), m.typingTick())
		}

	case settledMsg:
		m.refresh()
		return m, nil

	case typingTickMsg:
		if m.widget.Awaiting() {
			m.frame++
			m.refresh()
			return m, m.typingTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		inputHeight := 3
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - inputHeight
		}
		m.input.Width = msg.Width - 4
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	if !m.widget.Awaiting() {
		m.input, cmd = m.input.Update(msg)
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(cmd, vpCmd)
}

func (m Model) View() string {
	if !m.ready {
		return "Connecting..."
	}

	prompt := m.input.View()
	if m.widget.Awaiting() {
		prompt = typingStyle.Render("Waiting for a reply...")
	}

	return m.viewport.View() + "\n\n" + prompt
}

// sendCmd runs one exchange off the update loop. The widget serialises
// submissions itself, so a stray re-entry settles immediately.
func (m Model) sendCmd() tea.Cmd {
	return func() tea.Msg {
		return settledMsg{err: m.widget.Send(context.Background())}
	}
}

func (m Model) typingTick() tea.Cmd {
	return tea.Tick(typingTickInterval, func(t time.Time) tea.Msg {
		return typingTickMsg(t)
	})
}

// refresh re-renders the transcript and scrolls to the newest entry.
func (m *Model) refresh() {
	var b strings.Builder
	for _, entry := range m.widget.Entries() {
		switch entry.Sender {
		case widget.SenderUser:
			b.WriteString(userStyle.Render("You: ") + entry.Text)
		case widget.SenderBot:
			b.WriteString(botStyle.Render("Bot: ") + entry.Text)
		case widget.SenderError:
			b.WriteString(errorStyle.Render("Error: ") + entry.Text)
		case widget.SenderTyping:
			b.WriteString(typingStyle.Render("Bot is typing" + strings.Repeat(".", m.frame%3+1)))
		}
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}
