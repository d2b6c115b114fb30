package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlaforge/annobench/internal/model"
)

// menuEntries returns the main menu for the logged-in role.
func (m Model) menuEntries() []string {
	switch m.user.(type) {
	case *model.Administrator:
		return []string{"Browse texts", "Review pending annotations", "Add a text", "Collections", "Quit"}
	default:
		return []string{"Browse texts", "My annotations", "Add a text", "Collections", "Quit"}
	}
}

func (m Model) updateBrowse(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		return m.updateMenu(key)
	case screenTexts:
		return m.updateTexts(key)
	case screenText:
		return m.updateText(key)
	case screenMine:
		return m.updateAnnotationList(key, screenMenu)
	case screenPending:
		return m.updateAnnotationList(key, screenMenu)
	case screenCollections:
		return m.updateCollections(key)
	case screenCollection:
		return m.updateCollection(key)
	}
	return m, nil
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.menuEntries()
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		switch m.cursor {
		case 0:
			m.texts = m.store.Texts()
			m.cursor = 0
			m.screen = screenTexts
		case 1:
			if _, isAdmin := m.user.(*model.Administrator); isAdmin {
				m.anns = pending(m.store.Annotations())
				m.screen = screenPending
			} else {
				m.anns = byAuthor(m.store.Annotations(), m.user.ID())
				m.screen = screenMine
			}
			m.annCursor = 0
		case 2:
			return m.prompt(actionNewText, "text content")
		case 3:
			m.cols = m.store.Collections()
			m.cursor = 0
			m.screen = screenCollections
		case 4:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateTexts(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.texts)-1 {
			m.cursor++
		}
	case "q", "esc":
		m.screen = screenMenu
		m.cursor = 0
	case "enter":
		if len(m.texts) > 0 {
			m.text = m.texts[m.cursor]
			m.annCursor = 0
			m.screen = screenText
		}
	}
	return m, nil
}

func (m Model) updateText(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	anns := m.text.Annotations()
	switch key.String() {
	case "up", "k":
		if m.annCursor > 0 {
			m.annCursor--
		}
	case "down", "j":
		if m.annCursor < len(anns)-1 {
			m.annCursor++
		}
	case "q", "esc":
		m.screen = screenTexts
	case "a":
		if _, ok := m.user.(*model.Annotator); ok {
			return m.prompt(actionAnnotate, "annotation content")
		}
	case "m":
		if _, ok := m.user.(*model.Annotator); ok && len(anns) > 0 {
			m.targetAnn = anns[m.annCursor]
			return m.prompt(actionModify, "new content")
		}
	case "v":
		if admin, ok := m.user.(*model.Administrator); ok && len(anns) > 0 {
			if err := admin.Validate(m.text, anns[m.annCursor]); err != nil {
				m.status = err.Error()
			} else {
				m.Dirty = true
				m.status = fmt.Sprintf("validated %s", anns[m.annCursor].ID)
			}
		}
	case "c":
		if _, ok := m.user.(*model.Administrator); ok && len(anns) > 0 {
			m.targetAnn = anns[m.annCursor]
			return m.prompt(actionCorrect, "corrected content")
		}
	}
	return m, nil
}

// updateAnnotationList drives both the "my annotations" and the admin
// "pending" screens: same navigation, role-gated actions.
func (m Model) updateAnnotationList(key tea.KeyMsg, back screen) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.annCursor > 0 {
			m.annCursor--
		}
	case "down", "j":
		if m.annCursor < len(m.anns)-1 {
			m.annCursor++
		}
	case "q", "esc":
		m.screen = back
		m.cursor = 0
	case "m":
		if _, ok := m.user.(*model.Annotator); ok && len(m.anns) > 0 {
			m.targetAnn = m.anns[m.annCursor]
			return m.prompt(actionModify, "new content")
		}
	case "v":
		if admin, ok := m.user.(*model.Administrator); ok && len(m.anns) > 0 {
			ann := m.anns[m.annCursor]
			if text, found := m.store.Text(ann.TextID); found {
				if err := admin.Validate(text, ann); err != nil {
					m.status = err.Error()
				} else {
					m.Dirty = true
					m.status = fmt.Sprintf("validated %s", ann.ID)
					m.anns = pending(m.store.Annotations())
					if m.annCursor >= len(m.anns) && m.annCursor > 0 {
						m.annCursor--
					}
				}
			}
		}
	case "c":
		if _, ok := m.user.(*model.Administrator); ok && len(m.anns) > 0 {
			m.targetAnn = m.anns[m.annCursor]
			return m.prompt(actionCorrect, "corrected content")
		}
	}
	return m, nil
}

func (m Model) updateCollections(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.cols)-1 {
			m.cursor++
		}
	case "q", "esc":
		m.screen = screenMenu
		m.cursor = 0
	case "n":
		return m.prompt(actionNewCollection, "collection name")
	case "enter":
		if len(m.cols) > 0 {
			m.col = m.cols[m.cursor]
			m.cursor = 0
			m.screen = screenCollection
		}
	}
	return m, nil
}

func (m Model) updateCollection(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.col.Texts())-1 {
			m.cursor++
		}
	case "q", "esc":
		m.cols = m.store.Collections()
		m.cursor = 0
		m.screen = screenCollections
	case "t":
		return m.prompt(actionAddToCollection, "text id (e.g. T1)")
	case "enter":
		if members := m.col.Texts(); len(members) > 0 {
			m.text = members[m.cursor]
			m.annCursor = 0
			m.screen = screenText
		}
	}
	return m, nil
}

func pending(anns []*model.Annotation) []*model.Annotation {
	var out []*model.Annotation
	for _, a := range anns {
		if !a.Valid {
			out = append(out, a)
		}
	}
	return out
}

func byAuthor(anns []*model.Annotation, authorID string) []*model.Annotation {
	var out []*model.Annotation
	for _, a := range anns {
		if a.AuthorID == authorID {
			out = append(out, a)
		}
	}
	return out
}
