package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/store"
)

func typed(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func pressed(k tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: k}
}

func step(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func seededStore() *store.Store {
	st := store.New()
	st.PutUser(model.NewAnnotator("u1", "Alice", "a@x", "pw"))
	st.PutUser(model.NewAdministrator("admin1", "Bob", "b@x", "secret"))
	return st
}

func login(t *testing.T, st *store.Store, id, password string) Model {
	t.Helper()
	m := New(st, zerolog.Nop())
	m = step(t, m, typed(id), pressed(tea.KeyEnter), typed(password), pressed(tea.KeyEnter))
	if m.screen != screenMenu {
		t.Fatalf("screen = %d after login, want menu", m.screen)
	}
	return m
}

func TestLogin_BadPassword(t *testing.T) {
	st := seededStore()
	m := New(st, zerolog.Nop())

	m = step(t, m, typed("u1"), pressed(tea.KeyEnter), typed("wrong"), pressed(tea.KeyEnter))

	if m.screen != screenLogin {
		t.Fatal("bad password reached the menu")
	}
	if m.loginErr == "" {
		t.Error("no error shown on failed login")
	}
}

func TestMenu_RoleSpecificEntries(t *testing.T) {
	st := seededStore()

	annotator := login(t, st, "u1", "pw")
	if got := annotator.menuEntries()[1]; got != "My annotations" {
		t.Errorf("annotator entry = %q", got)
	}

	admin := login(t, st, "admin1", "secret")
	if got := admin.menuEntries()[1]; got != "Review pending annotations" {
		t.Errorf("admin entry = %q", got)
	}
}

func TestAddTextThroughPrompt(t *testing.T) {
	st := seededStore()
	m := login(t, st, "u1", "pw")

	// Third menu entry is "Add a text".
	m = step(t, m, typed("j"), typed("j"), pressed(tea.KeyEnter))
	if m.screen != screenInput {
		t.Fatalf("screen = %d, want input", m.screen)
	}

	m = step(t, m, typed("hello world"), pressed(tea.KeyEnter))

	if !m.Dirty {
		t.Error("adding a text should mark the session dirty")
	}
	text, ok := st.Text("T1")
	if !ok {
		t.Fatal("T1 not in store")
	}
	if text.Content != "hello world" {
		t.Errorf("content = %q", text.Content)
	}
}

func TestAnnotateAndValidateFlow(t *testing.T) {
	st := seededStore()
	st.PutText(model.NewText(st.NextTextID(), "some prose"))

	// Annotator opens the first text and annotates it.
	m := login(t, st, "u1", "pw")
	m = step(t, m, pressed(tea.KeyEnter)) // Browse texts
	if m.screen != screenTexts {
		t.Fatalf("screen = %d, want texts", m.screen)
	}
	m = step(t, m, pressed(tea.KeyEnter)) // open T1
	m = step(t, m, typed("a"), typed("nice"), pressed(tea.KeyEnter))

	ann, ok := st.Annotation("A1")
	if !ok {
		t.Fatal("A1 not created")
	}
	if ann.Valid {
		t.Error("fresh annotation must be pending")
	}
	if !m.Dirty {
		t.Error("session not dirty after annotating")
	}

	// Admin reviews it from the pending screen.
	admin := login(t, st, "admin1", "secret")
	admin = step(t, admin, typed("j"), pressed(tea.KeyEnter)) // Review pending
	if admin.screen != screenPending {
		t.Fatalf("screen = %d, want pending", admin.screen)
	}
	admin = step(t, admin, typed("v"))

	if !ann.Valid {
		t.Error("annotation not validated")
	}
	if !admin.Dirty {
		t.Error("admin session not dirty after validating")
	}
}

func TestSessionReceivesAnnotationNotice(t *testing.T) {
	st := seededStore()
	text := model.NewText(st.NextTextID(), "watched")
	st.PutText(text)

	m := New(st, zerolog.Nop())
	alice, _ := st.User("u1")
	alice.(*model.Annotator).Annotate(text, st.NextAnnotationID(), "note")

	if len(m.board.lines) != 1 {
		t.Fatalf("notices = %d, want 1", len(m.board.lines))
	}
}
