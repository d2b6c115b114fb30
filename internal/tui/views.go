package tui

import (
	"fmt"
	"strings"

	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/style"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	switch m.screen {
	case screenLogin:
		m.viewLogin(&b)
	case screenMenu:
		m.viewMenu(&b)
	case screenTexts:
		m.viewTexts(&b)
	case screenText:
		m.viewText(&b)
	case screenMine:
		m.viewAnnotations(&b, "My annotations", "m: modify")
	case screenPending:
		m.viewAnnotations(&b, "Pending annotations", "v: validate  c: correct")
	case screenCollections:
		m.viewCollections(&b)
	case screenCollection:
		m.viewCollection(&b)
	case screenInput:
		m.viewInput(&b)
	}

	if m.status != "" && m.screen != screenLogin {
		fmt.Fprintf(&b, "\n%s %s\n", style.ArrowPrefix, m.status)
	}
	if len(m.board.lines) > 0 && m.screen == screenMenu {
		b.WriteString("\n" + style.Title.Render("Notifications") + "\n")
		for _, line := range m.board.lines {
			fmt.Fprintf(&b, "  %s %s\n", style.Dim.Render("•"), line)
		}
	}
	return b.String()
}

func (m Model) viewLogin(b *strings.Builder) {
	b.WriteString(style.Title.Render("annobench login") + "\n\n")
	fmt.Fprintf(b, "%s\n%s\n", m.idInput.View(), m.pwInput.View())
	if m.loginErr != "" {
		fmt.Fprintf(b, "\n%s %s\n", style.ErrorPrefix, m.loginErr)
	}
	b.WriteString(style.Dim.Render("\nenter: next/submit  tab: switch field  esc: quit\n"))
}

func (m Model) viewMenu(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n", style.Title.Render(fmt.Sprintf("Menu — %s (%s)", m.user.Name(), m.user.Role())))
	for i, entry := range m.menuEntries() {
		cursor := "  "
		if i == m.cursor {
			cursor = style.Info.Render("> ")
		}
		fmt.Fprintf(b, "%s%s\n", cursor, entry)
	}
}

func (m Model) viewTexts(b *strings.Builder) {
	b.WriteString(style.Title.Render("Texts") + "\n\n")
	if len(m.texts) == 0 {
		b.WriteString(style.Dim.Render("(no texts yet)") + "\n")
	}
	for i, t := range m.texts {
		cursor := "  "
		if i == m.cursor {
			cursor = style.Info.Render("> ")
		}
		fmt.Fprintf(b, "%s%s %s %s\n",
			cursor, style.Bold.Render(t.ID), excerpt(t.Content, 60),
			style.Dim.Render(fmt.Sprintf("(%d annotations)", len(t.Annotations()))))
	}
	b.WriteString(style.Dim.Render("\nenter: open  q: back\n"))
}

func (m Model) viewText(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n%s\n\n", style.Title.Render("Text "+m.text.ID), m.text.Content)

	anns := m.text.Annotations()
	if len(anns) == 0 {
		b.WriteString(style.Dim.Render("(no annotations)") + "\n")
	}
	for i, ann := range anns {
		cursor := "  "
		if i == m.annCursor {
			cursor = style.Info.Render("> ")
		}
		fmt.Fprintf(b, "%s%s %s %s %s\n",
			cursor, style.Bold.Render(ann.ID), style.Badge(ann.Valid),
			excerpt(ann.Content, 50), style.Dim.Render("by "+ann.AuthorID))
	}

	switch m.user.(type) {
	case *model.Administrator:
		b.WriteString(style.Dim.Render("\nv: validate  c: correct  q: back\n"))
	default:
		b.WriteString(style.Dim.Render("\na: annotate  m: modify selected  q: back\n"))
	}
}

func (m Model) viewAnnotations(b *strings.Builder, title, keys string) {
	b.WriteString(style.Title.Render(title) + "\n\n")
	if len(m.anns) == 0 {
		b.WriteString(style.Dim.Render("(nothing here)") + "\n")
	}
	for i, ann := range m.anns {
		cursor := "  "
		if i == m.annCursor {
			cursor = style.Info.Render("> ")
		}
		fmt.Fprintf(b, "%s%s %s on %s %s %s\n",
			cursor, style.Bold.Render(ann.ID), style.Badge(ann.Valid),
			ann.TextID, excerpt(ann.Content, 45), style.Dim.Render("by "+ann.AuthorID))
	}
	b.WriteString(style.Dim.Render("\n" + keys + "  q: back\n"))
}

func (m Model) viewCollections(b *strings.Builder) {
	b.WriteString(style.Title.Render("Collections") + "\n\n")
	if len(m.cols) == 0 {
		b.WriteString(style.Dim.Render("(no collections yet)") + "\n")
	}
	for i, col := range m.cols {
		cursor := "  "
		if i == m.cursor {
			cursor = style.Info.Render("> ")
		}
		fmt.Fprintf(b, "%s%s %s\n", cursor, style.Bold.Render(col.Name),
			style.Dim.Render(fmt.Sprintf("(%d texts)", len(col.Texts()))))
	}
	b.WriteString(style.Dim.Render("\nenter: open  n: new collection  q: back\n"))
}

func (m Model) viewCollection(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n\n", style.Title.Render("Collection "+m.col.Name))
	members := m.col.Texts()
	if len(members) == 0 {
		b.WriteString(style.Dim.Render("(empty)") + "\n")
	}
	for i, t := range members {
		cursor := "  "
		if i == m.cursor {
			cursor = style.Info.Render("> ")
		}
		fmt.Fprintf(b, "%s%s %s\n", cursor, style.Bold.Render(t.ID), excerpt(t.Content, 60))
	}
	b.WriteString(style.Dim.Render("\nenter: open text  t: add text by id  q: back\n"))
}

func (m Model) viewInput(b *strings.Builder) {
	b.WriteString(style.Title.Render("Input") + "\n\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(style.Dim.Render("\nenter: confirm  esc: cancel\n"))
}

// excerpt shortens s to max runes for one-line listings.
func excerpt(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
