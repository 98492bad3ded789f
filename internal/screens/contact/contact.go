// Package contact is the contact form screen.
package contact

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-playground/validator/v10"

	"github.com/minatgo/minatgo/internal/screen"
	"github.com/minatgo/minatgo/internal/store"
	"github.com/minatgo/minatgo/internal/ui/components"
	"github.com/minatgo/minatgo/internal/ui/layout"
	"github.com/minatgo/minatgo/internal/ui/theme"
)

const (
	fieldName = iota
	fieldEmail
	fieldMessage
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type savedMsg struct {
	Err error
}

// ContactScreen collects a name, email and message.
type ContactScreen struct {
	saver  screen.ContactSaver
	fields []components.Field
	focus  int
	status string
	sent   bool
	busy   bool
}

var (
	_ screen.Screen          = (*ContactScreen)(nil)
	_ screen.KeyHintProvider = (*ContactScreen)(nil)
	_ screen.InputCapturer   = (*ContactScreen)(nil)
)

func New(saver screen.ContactSaver) *ContactScreen {
	return &ContactScreen{
		saver: saver,
		fields: []components.Field{
			fieldName:    components.NewField("Nama", "Nama lengkap", 120),
			fieldEmail:   components.NewField("Email", "nama@contoh.com", 254),
			fieldMessage: components.NewField("Pesan", "Tulis pesanmu", 4000),
		},
	}
}

func (c *ContactScreen) Init() tea.Cmd {
	return c.fields[c.focus].Focus()
}

func (c *ContactScreen) Title() string { return "Kontak" }

// CapturingInput is always true while the form is open; Esc still leaves.
func (c *ContactScreen) CapturingInput() bool { return !c.sent }

func (c *ContactScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Kolom berikutnya"},
		{Key: "Ctrl+S", Description: "Kirim"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (c *ContactScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		c.busy = false
		if msg.Err != nil {
			c.status = "Pesan gagal dikirim: " + msg.Err.Error()
			return c, nil
		}
		c.sent = true
		c.status = "Terima kasih! Pesanmu sudah kami terima."
		for i := range c.fields {
			c.fields[i].SetValue("")
		}
		return c, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "down":
			return c, c.move(1)
		case "shift+tab", "up":
			return c, c.move(-1)
		case "enter":
			if c.focus < fieldMessage {
				return c, c.move(1)
			}
			return c, c.submit()
		case "ctrl+s":
			return c, c.submit()
		}
		c.sent = false
	}

	var cmd tea.Cmd
	c.fields[c.focus], cmd = c.fields[c.focus].Update(msg)
	return c, cmd
}

func (c *ContactScreen) move(dir int) tea.Cmd {
	c.fields[c.focus].Blur()
	c.focus = (c.focus + dir + len(c.fields)) % len(c.fields)
	return c.fields[c.focus].Focus()
}

func (c *ContactScreen) submit() tea.Cmd {
	if c.busy || !c.check() {
		return nil
	}
	c.busy = true
	c.status = "Mengirim..."
	msg := store.ContactMessage{
		Name:    strings.TrimSpace(c.fields[fieldName].Value()),
		Email:   strings.TrimSpace(c.fields[fieldEmail].Value()),
		Message: strings.TrimSpace(c.fields[fieldMessage].Value()),
	}
	saver := c.saver
	return func() tea.Msg {
		_, err := saver.Save(context.Background(), msg)
		return savedMsg{Err: err}
	}
}

// check validates every field and records per-field errors.
func (c *ContactScreen) check() bool {
	rules := []struct {
		tag, msg string
	}{
		fieldName:    {"required,max=120", "Nama wajib diisi"},
		fieldEmail:   {"required,email", "Email tidak valid"},
		fieldMessage: {"required,max=4000", "Pesan wajib diisi"},
	}
	ok := true
	for i, r := range rules {
		c.fields[i].Err = ""
		if err := validate.Var(strings.TrimSpace(c.fields[i].Value()), r.tag); err != nil {
			c.fields[i].Err = r.msg
			ok = false
		}
	}
	if !ok {
		c.status = ""
	}
	return ok
}

func (c *ContactScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	parts := []string{
		theme.Title.Width(cw - 8).Render("Hubungi Kami"),
		theme.Subtitle.Width(cw - 8).Render("Punya pertanyaan atau saran? Kirim pesan di sini."),
		"",
	}
	for _, f := range c.fields {
		parts = append(parts, f.View(), "")
	}
	if c.status != "" {
		style := theme.Chosen
		if !c.sent {
			style = theme.Hint
		}
		parts = append(parts, style.Render(c.status))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		components.Card(strings.Join(parts, "\n"), cw))
}
