package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/networkbook/networkbook/internal/commands"
	"github.com/networkbook/networkbook/internal/logger"
	"github.com/networkbook/networkbook/internal/ui"
	"github.com/networkbook/networkbook/internal/watcher"
)

// MessageReloaded is shown after the book was changed by another process.
const MessageReloaded = "The book changed on disk and was reloaded."

// bookChangedMsg is sent by the watcher when the book file changes.
type bookChangedMsg struct{}

// reserved rows: input, feedback, footer and the blank line between them
const chromeHeight = 4

type pane int

const (
	paneList pane = iota
	paneHelp
)

var (
	feedbackStyle = lipgloss.NewStyle().PaddingLeft(1)
	errorStyle    = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("196"))
	footerStyle   = lipgloss.NewStyle().PaddingLeft(1).Faint(true)
)

// tuiModel is the bubbletea model of the interactive shell: a command box,
// a feedback line and a scrollable pane showing either the list or help.
type tuiModel struct {
	session  *Session
	input    textinput.Model
	viewport viewport.Model
	pane     pane
	cardOpts ui.CardOptions

	feedback string
	failed   bool
	quitting bool
	width    int
	height   int
}

func newTUIModel(s *Session, display *ui.DisplayContext) tuiModel {
	in := textinput.New()
	in.Placeholder = "Enter command here... (help for usage)"
	in.Prompt = "> "
	in.CharLimit = 1024
	in.Focus()

	m := tuiModel{
		session:  s,
		input:    in,
		viewport: viewport.New(display.TermWidth, 20),
		cardOpts: ui.CardOptions{Hyperlinks: display.Hyperlinks},
		width:    display.TermWidth,
	}
	m.showList()
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-4, 10)
		m.refresh()
		return m, nil

	case bookChangedMsg:
		reloaded, err := m.session.ReloadIfChanged()
		if err != nil {
			m.feedback, m.failed = err.Error(), true
		} else if reloaded {
			m.feedback, m.failed = MessageReloaded, false
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			if m.pane == paneHelp {
				m.showList()
			}
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit runs the text in the command box.
func (m tuiModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	res, err := m.session.Run(line)
	if err != nil {
		// keep the text so it can be corrected
		m.feedback, m.failed = err.Error(), true
		return m, nil
	}
	m.input.SetValue("")
	m.feedback, m.failed = res.Feedback, false
	if res.SaveErr != nil {
		m.feedback = ui.Warningf("%s (not saved: %v)", res.Feedback, res.SaveErr)
	}

	switch res.Action {
	case commands.ActionExit:
		m.quitting = true
		return m, tea.Quit
	case commands.ActionHelp:
		m.showHelp(res.Topic)
	default:
		m.showList()
	}
	return m, nil
}

func (m *tuiModel) showList() {
	m.pane = paneList
	m.viewport.SetContent(ui.RenderList(m.session.Model().FilteredPersonList(), m.cardOpts))
	m.viewport.GotoTop()
}

func (m *tuiModel) showHelp(topic string) {
	m.pane = paneHelp
	m.viewport.SetContent(RenderHelp(topic, m.width-ui.MarkdownRenderMargin))
	m.viewport.GotoTop()
}

func (m *tuiModel) refresh() {
	if m.pane == paneList {
		m.showList()
	}
}

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.failed {
		b.WriteString(errorStyle.Render(m.feedback))
	} else {
		b.WriteString(feedbackStyle.Render(m.feedback))
	}
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	footer := "enter run · ↑/↓ scroll · ctrl+c quit"
	if m.pane == paneHelp {
		footer = "esc back to list · " + footer
	}
	b.WriteString(footerStyle.Render(footer))
	return b.String()
}

// RunTUI runs the interactive shell until exit or ctrl+c.
func RunTUI(s *Session, display *ui.DisplayContext) error {
	if display == nil {
		display = ui.NewDisplayContext(false)
	}
	p := tea.NewProgram(newTUIModel(s, display), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if s.Store() != nil {
		watchBook(ctx, s.Store().Path(), func() { p.Send(bookChangedMsg{}) })
	}

	_, err := p.Run()
	return err
}

// watchBook calls onChange whenever path is changed until ctx is done.
func watchBook(ctx context.Context, path string, onChange func()) {
	w, err := watcher.New(watcher.Config{Path: path, OnChange: onChange})
	if err != nil {
		logger.Logger.Debug("not watching book", "path", path, "err", err)
		return
	}
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Logger.Debug("book watcher stopped", "path", path, "err", err)
		}
	}()
}
