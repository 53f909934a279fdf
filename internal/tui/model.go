// Package tui renders the site shell in a terminal. Scrolling, navigation,
// the onboarding modal, the chat widget and the contact form are driven by
// the same controllers a browser host would use.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/siteshell/internal/scrollnav"
	"github.com/ziadkadry99/siteshell/internal/shell"
	"github.com/ziadkadry99/siteshell/internal/submission"
)

// UnitsPerLine converts terminal lines to scroll offset units, so the compact
// chrome appears a few lines into the page.
const UnitsPerLine = 20

// focus is the surface receiving keystrokes.
type focus int

const (
	focusPage focus = iota
	focusChat
	focusContact
)

// refreshMsg tells the model that controller state changed off the UI loop.
type refreshMsg struct{}

// tickMsg redraws surfaces that change right after a state event, such as the
// contact confirmation and the chat closing itself.
type tickMsg time.Time

const tickInterval = 250 * time.Millisecond

var chatFields = []submission.Field{
	submission.FieldFirstName,
	submission.FieldLastName,
	submission.FieldEmail,
	submission.FieldMessage,
}

var contactFields = []submission.Field{
	submission.FieldFirstName,
	submission.FieldLastName,
	submission.FieldEmail,
	submission.FieldPhone,
	submission.FieldSubject,
	submission.FieldMessage,
}

// Model is the bubbletea model of the shell.
type Model struct {
	shell  *shell.Shell
	events chan tea.Msg
	stops  []func()

	vp     viewport.Model
	input  textinput.Model
	focus  focus
	field  int
	width  int
	height int
	ready  bool

	// missing lists the required fields that blocked the last send.
	missing []submission.Field
}

// New creates a Model over a mounted shell.
func New(s *shell.Shell) *Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 2000
	ti.PlaceholderStyle = mutedStyle

	m := &Model{
		shell:  s,
		events: make(chan tea.Msg, 16),
		input:  ti,
		vp:     viewport.New(80, 20),
	}

	notify := func() {
		select {
		case m.events <- refreshMsg{}:
		default:
		}
	}
	m.stops = append(m.stops,
		s.Onboarding.Subscribe(func(bool) { notify() }),
		s.Chat.Controller().Subscribe(func(submission.State) { notify() }),
		s.Contact.Controller().Subscribe(func(submission.State) { notify() }),
		s.Scroll.Subscribe(func(scrollnav.Mode) { notify() }),
	)
	m.loadPage()
	return m
}

// Close removes the model's subscriptions.
func (m *Model) Close() {
	for _, stop := range m.stops {
		stop()
	}
	m.stops = nil
}

// Init starts listening for controller events.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForEvent(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) waitForEvent() tea.Cmd {
	ch := m.events
	return func() tea.Msg { return <-ch }
}

// Update handles input and controller events.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-6, 3)
		m.ready = true
		m.loadPage()
		return m, nil

	case refreshMsg:
		m.syncViewport()
		if m.focus == focusChat && !m.shell.Chat.IsOpen() {
			m.leaveForm()
		}
		if m.focus != focusPage {
			m.loadField()
		}
		return m, m.waitForEvent()

	case tickMsg:
		if m.focus == focusChat && !m.shell.Chat.IsOpen() {
			m.leaveForm()
		}
		return m, tick()

	case tea.MouseMsg:
		if tea.MouseEvent(msg).IsWheel() {
			if m.focus == focusPage && !m.shell.Onboarding.IsOpen() {
				return m, m.scrollViewport(msg)
			}
			return m, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.inChatArea(msg.Y) {
			m.shell.Chat.OutsideClick()
			if m.focus == focusChat && !m.shell.Chat.IsOpen() {
				m.leaveForm()
			}
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.shell.Onboarding.IsOpen() {
			return m, m.updateModal(msg)
		}
		if m.shell.Contact.ConfirmationOpen() {
			if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc {
				m.shell.Contact.DismissConfirmation()
			}
			return m, nil
		}
		switch m.focus {
		case focusChat, focusContact:
			return m, m.updateForm(msg)
		default:
			return m, m.updatePage(msg)
		}
	}
	return m, nil
}

func (m *Model) updateModal(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.shell.Onboarding.CloseModal()
	case tea.KeyEnter:
		m.shell.LearnMore()
		m.loadPage()
	}
	return nil
}

func (m *Model) updatePage(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "i":
		m.shell.Layout().Info()
		return nil
	case "m":
		m.shell.Menu.Toggle()
		return nil
	case "c":
		m.shell.Chat.Toggle()
		if m.shell.Chat.IsOpen() {
			m.enterForm(focusChat)
		}
		return nil
	case "f":
		if m.shell.Navigator.Current() == "/contact" {
			m.enterForm(focusContact)
		}
		return nil
	}

	if n := routeIndex(msg.String()); n >= 0 && n < len(m.shell.Routes()) {
		m.shell.Navigate(m.shell.Routes()[n].Path)
		m.loadPage()
		return nil
	}

	return m.scrollViewport(msg)
}

// scrollViewport lets the viewport handle a scroll key or wheel event and
// reports the new offset to the shell.
func (m *Model) scrollViewport(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	m.shell.Viewport.ScrollTo(0, float64(m.vp.YOffset*UnitsPerLine))
	return cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	fields := m.fields()
	switch msg.Type {
	case tea.KeyEsc:
		if m.focus == focusChat {
			m.shell.Chat.Close()
		}
		m.leaveForm()
		return nil
	case tea.KeyTab, tea.KeyShiftTab:
		step := 1
		if msg.Type == tea.KeyShiftTab {
			step = len(fields) - 1
		}
		m.field = (m.field + step) % len(fields)
		m.loadField()
		return nil
	case tea.KeyEnter:
		if m.focus == focusChat {
			if !m.shell.Chat.Send() {
				m.missing = m.shell.Chat.Missing()
			}
		} else {
			if !m.shell.Contact.Submit() {
				m.missing = m.shell.Contact.Missing()
			}
		}
		m.loadField()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.edit(fields[m.field], m.input.Value())
	m.missing = m.stillMissing()
	return cmd
}

func (m *Model) enterForm(f focus) {
	m.focus = f
	m.field = 0
	m.missing = nil
	m.loadField()
	m.input.Focus()
}

func (m *Model) leaveForm() {
	m.focus = focusPage
	m.missing = nil
	m.input.Blur()
}

// stillMissing narrows the reported missing fields to those still blank.
func (m *Model) stillMissing() []submission.Field {
	if len(m.missing) == 0 {
		return nil
	}
	var out []submission.Field
	c := m.controller()
	for _, f := range m.missing {
		if strings.TrimSpace(fieldValue(c, f)) == "" {
			out = append(out, f)
		}
	}
	return out
}

func (m *Model) fields() []submission.Field {
	if m.focus == focusContact {
		return contactFields
	}
	return chatFields
}

func (m *Model) controller() *submission.Controller {
	if m.focus == focusContact {
		return m.shell.Contact.Controller()
	}
	return m.shell.Chat.Controller()
}

func (m *Model) edit(f submission.Field, v string) {
	if m.focus == focusContact {
		m.shell.Contact.Edit(f, v)
		return
	}
	m.shell.Chat.Edit(f, v)
}

// loadField puts the focused field's current value into the input.
func (m *Model) loadField() {
	f := m.fields()[m.field]
	m.input.Placeholder = string(f)
	m.input.SetValue(fieldValue(m.controller(), f))
	m.input.CursorEnd()
}

// loadPage fills the viewport for the current path and follows the shell's
// scroll position.
func (m *Model) loadPage() {
	m.vp.SetContent(pageContent(m.shell.Navigator.Current(), m.vp.Width))
	m.shell.Viewport.SetContentHeight(float64(max(m.vp.TotalLineCount()-m.vp.Height, 0) * UnitsPerLine))
	m.syncViewport()
}

func (m *Model) syncViewport() {
	_, y := m.shell.Viewport.Position()
	m.vp.SetYOffset(int(y) / UnitsPerLine)
}

func (m *Model) inChatArea(y int) bool {
	return m.shell.Chat.IsOpen() && y >= m.height-chatHeight
}

func routeIndex(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1')
	}
	return -1
}

func fieldValue(c *submission.Controller, f submission.Field) string {
	p := c.Payload()
	switch f {
	case submission.FieldFirstName:
		return p.FirstName
	case submission.FieldLastName:
		return p.LastName
	case submission.FieldEmail:
		return p.Email
	case submission.FieldPhone:
		return p.Phone
	case submission.FieldSubject:
		return p.Subject
	case submission.FieldMessage:
		return p.Message
	}
	return ""
}

// pageContent stands in for the site's static pages.
func pageContent(path string, width int) string {
	title := strings.TrimPrefix(path, "/")
	if title == "" {
		title = "home"
	}
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(strings.ToUpper(title)) + "\n\n")
	for i := 1; i <= 60; i++ {
		line := fmt.Sprintf("%s - section %d", title, i)
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
