package contact

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minatgo/minatgo/internal/store"
)

type recordingSaver struct {
	saved []store.ContactMessage
	err   error
}

func (r *recordingSaver) Save(_ context.Context, msg store.ContactMessage) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.saved = append(r.saved, msg)
	return int64(len(r.saved)), nil
}

func typeText(c *ContactScreen, s string) {
	for _, r := range s {
		c.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func ctrlS() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
}

func TestContact_ValidatesBeforeSaving(t *testing.T) {
	saver := &recordingSaver{}
	c := New(saver)
	c.Init()

	typeText(c, "Sari")
	c.move(1)
	typeText(c, "bukan-email")

	if _, cmd := c.Update(ctrlS()); cmd != nil {
		t.Fatal("invalid form must not be submitted")
	}
	if c.fields[fieldEmail].Err == "" || c.fields[fieldMessage].Err == "" {
		t.Error("expected email and message errors")
	}
	if c.fields[fieldName].Err != "" {
		t.Error("name is valid")
	}
}

func TestContact_Submit(t *testing.T) {
	saver := &recordingSaver{}
	c := New(saver)
	c.Init()

	typeText(c, "Sari")
	c.move(1)
	typeText(c, "sari@example.com")
	c.move(1)
	typeText(c, "Halo")

	_, cmd := c.Update(ctrlS())
	if cmd == nil {
		t.Fatal("expected save command")
	}
	c.Update(cmd())

	if len(saver.saved) != 1 || saver.saved[0].Email != "sari@example.com" {
		t.Fatalf("saved = %#v", saver.saved)
	}
	if !c.sent || c.fields[fieldName].Value() != "" {
		t.Error("form should be cleared after sending")
	}
}

func TestContact_SaveError(t *testing.T) {
	c := New(&recordingSaver{err: errors.New("disk full")})
	c.Init()
	typeText(c, "Sari")
	c.move(1)
	typeText(c, "sari@example.com")
	c.move(1)
	typeText(c, "Halo")

	_, cmd := c.Update(ctrlS())
	c.Update(cmd())
	if c.sent {
		t.Error("failed save must not report success")
	}
}
