// Package tui implements the interactive workbench session: a login form
// followed by role-specific menus for browsing texts, annotating, and
// reviewing annotations. Every action dispatches into the same store and
// domain operations the scripted commands use.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/mlaforge/annobench/internal/auth"
	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/observer"
	"github.com/mlaforge/annobench/internal/store"
)

type screen int

const (
	screenLogin screen = iota
	screenMenu
	screenTexts
	screenText
	screenMine
	screenPending
	screenCollections
	screenCollection
	screenInput
)

// inputAction says what the single-line input prompt is collecting.
type inputAction int

const (
	actionNone inputAction = iota
	actionNewText
	actionAnnotate
	actionModify
	actionCorrect
	actionNewCollection
	actionAddToCollection
)

// noticeBoard collects events published by texts the session watches.
type noticeBoard struct {
	lines []string
}

func (n *noticeBoard) Notify(e observer.Event) {
	n.lines = append(n.lines, e.Message)
}

// Model is the bubbletea model for one workbench session.
type Model struct {
	store *store.Store
	log   zerolog.Logger

	screen screen
	user   model.User

	// login form
	idInput    textinput.Model
	pwInput    textinput.Model
	loginFocus int
	loginErr   string

	// browsing state
	cursor     int
	texts      []*model.Text
	text       *model.Text
	annCursor  int
	anns       []*model.Annotation
	cols       []*model.Collection
	col        *model.Collection
	backScreen screen

	// input prompt
	input     textinput.Model
	action    inputAction
	targetAnn *model.Annotation

	board  *noticeBoard
	status string

	// Dirty reports whether any mutation happened; the caller saves when
	// the program ends with Dirty set.
	Dirty bool
}

// New builds a session over st. The session subscribes to every text so new
// annotations surface in the notice area immediately.
func New(st *store.Store, log zerolog.Logger) Model {
	id := textinput.New()
	id.Placeholder = "user id"
	id.Focus()
	id.CharLimit = 64

	pw := textinput.New()
	pw.Placeholder = "password"
	pw.EchoMode = textinput.EchoPassword
	pw.CharLimit = 64

	in := textinput.New()
	in.CharLimit = 0

	m := Model{
		store:   st,
		log:     log,
		screen:  screenLogin,
		idInput: id,
		pwInput: pw,
		input:   in,
		board:   &noticeBoard{},
	}
	for _, t := range st.Texts() {
		t.Subscribe(m.board)
	}
	return m
}

// Run executes the session and reports whether the store was mutated.
func Run(st *store.Store, log zerolog.Logger) (bool, error) {
	final, err := tea.NewProgram(New(st, log)).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.Dirty, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenInput:
		return m.updateInput(msg)
	default:
		if key, ok := msg.(tea.KeyMsg); ok {
			return m.updateBrowse(key)
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.loginFocus = 1 - m.loginFocus
			if m.loginFocus == 0 {
				m.idInput.Focus()
				m.pwInput.Blur()
			} else {
				m.pwInput.Focus()
				m.idInput.Blur()
			}
			return m, textinput.Blink
		case "enter":
			if m.loginFocus == 0 {
				m.loginFocus = 1
				m.idInput.Blur()
				m.pwInput.Focus()
				return m, textinput.Blink
			}
			u, err := auth.Login(m.store, m.idInput.Value(), m.pwInput.Value())
			if err != nil {
				m.loginErr = err.Error()
				m.pwInput.SetValue("")
				return m, nil
			}
			m.user = u
			m.loginErr = ""
			m.screen = screenMenu
			m.cursor = 0
			m.log.Info().Str("user", u.ID()).Str("role", u.Role()).Msg("logged in")
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.idInput, cmd = m.idInput.Update(msg)
	} else {
		m.pwInput, cmd = m.pwInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.screen = m.backScreen
			m.action = actionNone
			m.input.Blur()
			return m, nil
		case "enter":
			return m.applyInput(m.input.Value())
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// prompt switches to the input screen, remembering where to return.
func (m Model) prompt(action inputAction, placeholder string) (tea.Model, tea.Cmd) {
	m.backScreen = m.screen
	m.screen = screenInput
	m.action = action
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) applyInput(value string) (tea.Model, tea.Cmd) {
	if value == "" {
		m.screen = m.backScreen
		m.action = actionNone
		m.input.Blur()
		return m, nil
	}

	switch m.action {
	case actionNewText:
		text := model.NewText(m.store.NextTextID(), value)
		m.store.PutText(text)
		text.Subscribe(m.board)
		m.Dirty = true
		m.status = fmt.Sprintf("added text %s", text.ID)

	case actionAnnotate:
		if annotator, ok := m.user.(*model.Annotator); ok && m.text != nil {
			ann := annotator.Annotate(m.text, m.store.NextAnnotationID(), value)
			m.store.PutAnnotation(ann)
			m.Dirty = true
			m.status = fmt.Sprintf("added annotation %s", ann.ID)
		}

	case actionModify:
		if annotator, ok := m.user.(*model.Annotator); ok && m.targetAnn != nil {
			if err := annotator.Modify(m.targetAnn, value); err != nil {
				m.status = err.Error()
			} else {
				m.Dirty = true
				m.status = fmt.Sprintf("modified %s (back to pending)", m.targetAnn.ID)
			}
		}

	case actionCorrect:
		if admin, ok := m.user.(*model.Administrator); ok && m.targetAnn != nil {
			if text, found := m.store.Text(m.targetAnn.TextID); found {
				if err := admin.Correct(text, m.targetAnn, value); err != nil {
					m.status = err.Error()
				} else {
					m.Dirty = true
					m.status = fmt.Sprintf("corrected %s", m.targetAnn.ID)
				}
			}
		}

	case actionNewCollection:
		if err := m.store.AddCollection(model.NewCollection(value)); err != nil {
			m.status = err.Error()
		} else {
			m.Dirty = true
			m.cols = m.store.Collections()
			m.status = fmt.Sprintf("created collection %s", value)
		}

	case actionAddToCollection:
		if m.col != nil {
			if text, found := m.store.Text(value); found {
				if m.col.Contains(text) {
					m.status = fmt.Sprintf("%s is already in %s", value, m.col.Name)
				} else {
					m.col.Add(text)
					m.Dirty = true
					m.status = fmt.Sprintf("added %s to %s", value, m.col.Name)
				}
			} else {
				m.status = fmt.Sprintf("no text %s", value)
			}
		}
	}

	m.screen = m.backScreen
	m.action = actionNone
	m.targetAnn = nil
	m.input.Blur()
	return m, nil
}
