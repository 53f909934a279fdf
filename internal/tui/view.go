package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/siteshell/internal/scrollnav"
	"github.com/ziadkadry99/siteshell/internal/submission"
)

const chatHeight = 12

// narrowWidth is the width below which links collapse into the mobile menu.
const narrowWidth = 60

// View renders the shell.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	nav := m.renderNav(m.shell.Layout())
	body := m.vp.View()

	switch {
	case m.shell.Onboarding.IsOpen():
		body = m.overlay(renderOnboarding())
	case m.shell.Contact.ConfirmationOpen():
		body = m.overlay(boxStyle.Render(okStyle.Render("Thanks! Your message is on its way.") + "\n\n" + mutedStyle.Render("enter to dismiss")))
	case m.shell.Menu.IsOpen():
		body = m.overlay(m.renderMenu())
	}

	parts := []string{nav, body}
	if m.shell.Chat.IsOpen() {
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.renderChat()))
	} else if m.focus == focusContact {
		parts = append(parts, m.renderContact())
	}
	parts = append(parts, mutedStyle.Render(m.help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderNav draws one of the two navigation layouts. The layouts are swapped
// wholesale when the scroll mode changes.
func (m *Model) renderNav(l scrollnav.Layout) string {
	current := m.shell.Navigator.Current()
	links := make([]string, 0, len(l.Routes))
	for i, r := range l.Routes {
		style := linkStyle
		if r.IsActive(current) {
			style = activeLink
		}
		links = append(links, style.Render(fmt.Sprintf("%d %s", i+1, r.Label)))
	}
	linkRow := strings.Join(links, "  ")
	if m.width > 0 && m.width < narrowWidth {
		linkRow = "m ☰"
	}
	info := "i ⓘ"

	if l.Mode == scrollnav.Compact {
		pill := pillStyle.Render(logoSmall.Render("◆") + "  " + linkRow + "  " + info)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, pill)
	}

	left := logoLarge.Render("◆ siteshell")
	right := linkRow + "   " + info
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return barStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) renderMenu() string {
	var b strings.Builder
	for i, r := range m.shell.Routes() {
		fmt.Fprintf(&b, "%d  %s\n", i+1, r.Label)
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderOnboarding() string {
	body := "Welcome! We build fast, accessible websites.\n\n" +
		mutedStyle.Render("enter: learn more   esc: close")
	return boxStyle.Render(body)
}

func (m *Model) renderChat() string {
	c := m.shell.Chat.Controller()
	var b strings.Builder
	b.WriteString(logoSmall.Render("Chat with us") + "\n")
	switch st := c.State(); st.Kind {
	case submission.KindSubmitting:
		b.WriteString(mutedStyle.Render("sending...") + "\n")
	case submission.KindSuccess:
		b.WriteString(okStyle.Render("Message sent! We'll get back to you soon.") + "\n")
	case submission.KindError:
		b.WriteString(errStyle.Render(st.Message) + "\n")
	default:
		b.WriteString(m.renderFields(chatFields))
		b.WriteString(m.renderMissing())
	}
	return boxStyle.Width(min(m.width, 48)).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderContact() string {
	c := m.shell.Contact.Controller()
	var b strings.Builder
	b.WriteString(logoSmall.Render("Contact us") + "\n")
	b.WriteString(m.renderFields(contactFields))
	b.WriteString(m.renderMissing())
	switch st := c.State(); st.Kind {
	case submission.KindSubmitting:
		b.WriteString(mutedStyle.Render("sending..."))
	case submission.KindError:
		b.WriteString(errStyle.Render(st.Message))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderFields(fields []submission.Field) string {
	var b strings.Builder
	c := m.controller()
	for i, f := range fields {
		if i == m.field {
			b.WriteString(m.input.View() + "\n")
			continue
		}
		v := fieldValue(c, f)
		if v == "" {
			v = mutedStyle.Render(string(f))
		}
		b.WriteString("  " + v + "\n")
	}
	return b.String()
}

// renderMissing names the required fields that kept the last send from going
// out.
func (m *Model) renderMissing() string {
	if len(m.missing) == 0 {
		return ""
	}
	labels := make([]string, len(m.missing))
	for i, f := range m.missing {
		labels[i] = fieldLabels[f]
	}
	return errStyle.Render("Required: "+strings.Join(labels, ", ")) + "\n"
}

var fieldLabels = map[submission.Field]string{
	submission.FieldFirstName: "first name",
	submission.FieldLastName:  "last name",
	submission.FieldEmail:     "email",
	submission.FieldPhone:     "phone",
	submission.FieldSubject:   "subject",
	submission.FieldMessage:   "message",
}

func (m *Model) overlay(content string) string {
	return lipgloss.Place(m.width, m.vp.Height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) help() string {
	switch {
	case m.shell.Onboarding.IsOpen():
		return "enter learn more • esc close"
	case m.focus != focusPage:
		return "tab next field • enter send • esc back"
	}
	h := "↑/↓ scroll • 1-4 pages • i info • c chat • q quit"
	if m.shell.Navigator.Current() == "/contact" {
		h += " • f form"
	}
	return h
}
