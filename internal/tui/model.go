// Package tui is a terminal rendition of the contact form.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pooja2309/portfolio/internal/contact"
	"github.com/pooja2309/portfolio/internal/form"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("99")).Foreground(lipgloss.Color("230"))
	successToast = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1)
	failureToast = successToast.BorderForeground(lipgloss.Color("196"))
)

// submittedMsg carries the outcome of a Submit back into Update.
type submittedMsg struct {
	result form.Result
}

// Model is the Bubble Tea model for the contact form. Focus moves over
// the three single-line inputs and then the message area.
type Model struct {
	ctx     context.Context
	form    *form.Form
	inputs  []textinput.Model // name, email, subject
	message textarea.Model
	spinner spinner.Model
	focus   int
	pending bool
	toast   form.Notification
	width   int
}

var inputFields = []string{contact.FieldName, contact.FieldEmail, contact.FieldSubject}

// NewModel builds a model over f. ctx bounds every submission.
func NewModel(ctx context.Context, f *form.Form) Model {
	placeholders := []string{"Your name", "your.email@example.com", "What's this about?"}
	inputs := make([]textinput.Model, len(inputFields))
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 254
		ti.Width = 48
		inputs[i] = ti
	}
	inputs[0].Focus()

	ta := textarea.New()
	ta.Placeholder = "Tell me about your project or just say hello!"
	ta.CharLimit = 5000
	ta.SetWidth(50)
	ta.SetHeight(5)
	ta.ShowLineNumbers = false

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		form:    f,
		inputs:  inputs,
		message: ta,
		spinner: s,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case submittedMsg:
		return m.handleResult(msg.result), nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus < len(m.inputs) {
				return m.submit()
			}
		}
		if m.pending {
			return m, nil
		}
		return m.updateFocused(msg)
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}
	m.pending = true
	m.toast = form.Notification{}
	f, ctx := m.form, m.ctx
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return submittedMsg{result: f.Submit(ctx)}
	})
}

func (m Model) handleResult(res form.Result) Model {
	if res.Status == form.Ignored {
		return m
	}
	m.pending = false
	switch res.Status {
	case form.Sent:
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.message.SetValue("")
		m.toast = res.Notification
	case form.Failed:
		m.toast = res.Notification
	}
	return m
}

func (m Model) moveFocus(delta int) Model {
	n := len(m.inputs) + 1
	m.focus = (m.focus + delta + n) % n
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if m.focus == len(m.inputs) {
		m.message.Focus()
	} else {
		m.message.Blur()
	}
	return m
}

// updateFocused forwards a key to the focused widget and mirrors its value
// into the form so inline errors clear as the visitor types.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus < len(m.inputs) {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.form.Set(inputFields[m.focus], m.inputs[m.focus].Value())
		return m, cmd
	}
	m.message, cmd = m.message.Update(msg)
	m.form.Set(contact.FieldMessage, m.message.Value())
	return m, cmd
}

var fieldLabels = map[string]string{
	contact.FieldName:    "Name",
	contact.FieldEmail:   "Email",
	contact.FieldSubject: "Subject",
	contact.FieldMessage: "Message",
}

// View renders the form, its inline errors, the submit action and the toast.
func (m Model) View() string {
	var b strings.Builder
	errs := m.form.Errors()

	b.WriteString(titleStyle.Render("Get In Touch"))
	b.WriteString("\n\n")

	for i, field := range inputFields {
		b.WriteString(labelStyle.Render(fieldLabels[field]) + "\n")
		b.WriteString(m.inputs[i].View() + "\n")
		writeError(&b, errs[field])
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render(fieldLabels[contact.FieldMessage]) + "\n")
	b.WriteString(m.message.View() + "\n")
	writeError(&b, errs[contact.FieldMessage])
	b.WriteString("\n")

	if m.pending {
		b.WriteString(m.spinner.View() + " Sending...\n")
	} else {
		b.WriteString(buttonStyle.Render("Send Message") + "\n")
	}

	if m.toast.Title != "" {
		style := successToast
		if m.toast.Destructive {
			style = failureToast
		}
		b.WriteString("\n" + style.Render(m.toast.Title+"\n"+m.toast.Description) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("tab: next field • ctrl+s: send • esc: quit") + "\n")
	return b.String()
}

func writeError(b *strings.Builder, msg string) {
	if msg != "" {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}
}
