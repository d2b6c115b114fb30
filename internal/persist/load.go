package persist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/store"
)

// maxLineBytes bounds a single row. Text content rows can be long; user and
// annotation rows never are.
const maxLineBytes = 1 << 20

// LoadAll populates st from the four files, in the fixed order users, texts,
// annotations, collections. A missing file means "empty resource" and is not
// an error; malformed rows and dangling references are logged and skipped.
// Only real I/O failures are returned.
func (c *Codec) LoadAll(st *store.Store, p Paths) error {
	if err := c.loadUsers(st, p.Users); err != nil {
		return fmt.Errorf("loading users: %w", err)
	}
	if err := c.loadTexts(st, p.Texts); err != nil {
		return fmt.Errorf("loading texts: %w", err)
	}
	if err := c.loadAnnotations(st, p.Annotations); err != nil {
		return fmt.Errorf("loading annotations: %w", err)
	}
	if err := c.loadCollections(st, p.Collections); err != nil {
		return fmt.Errorf("loading collections: %w", err)
	}
	return nil
}

// eachRow opens path and calls fn for every non-blank line. A missing file
// is reported once at warn level and treated as empty.
func (c *Codec) eachRow(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.Log.Warn().Str("file", path).Msg("resource file missing, treating as empty")
			return nil
		}
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if c.Latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(line)
	}
	return sc.Err()
}

func (c *Codec) loadUsers(st *store.Store, path string) error {
	return c.eachRow(path, func(line string) {
		parts := strings.Split(line, Sep)
		if len(parts) < 5 {
			c.Log.Warn().Str("file", path).Str("line", line).Msg("skipping short user row")
			return
		}
		id, name, email, role, password := parts[0], parts[1], parts[2], parts[3], parts[4]

		switch {
		case strings.EqualFold(role, model.RoleAdmin):
			st.PutUser(model.NewAdministrator(id, name, email, password))
		case strings.EqualFold(role, model.RoleAnnotator):
			st.PutUser(model.NewAnnotator(id, name, email, password))
		default:
			c.Log.Warn().Str("file", path).Str("role", role).Msg("skipping user row with unknown role")
		}
	})
}

func (c *Codec) loadTexts(st *store.Store, path string) error {
	return c.eachRow(path, func(line string) {
		// Content is the last field, so only the first separator splits:
		// the content itself may contain the delimiter.
		parts := strings.SplitN(line, Sep, 2)
		if len(parts) < 2 {
			c.Log.Warn().Str("file", path).Str("line", line).Msg("skipping short text row")
			return
		}
		st.PutText(model.NewText(parts[0], parts[1]))
	})
}

func (c *Codec) loadAnnotations(st *store.Store, path string) error {
	return c.eachRow(path, func(line string) {
		parts := strings.Split(line, Sep)
		if len(parts) < 5 {
			c.Log.Warn().Str("file", path).Str("line", line).Msg("skipping short annotation row")
			return
		}
		id, textID, authorID, content := parts[0], parts[1], parts[2], parts[3]

		text, ok := st.Text(textID)
		if !ok {
			c.Log.Warn().Str("file", path).Str("annotation", id).Str("text", textID).
				Msg("skipping annotation for unknown text")
			return
		}

		ann := model.NewAnnotation(id, textID, authorID, content)
		ann.Valid = parseBool(parts[4])
		text.RestoreAnnotation(ann)
		st.PutAnnotation(ann)
	})
}

func (c *Codec) loadCollections(st *store.Store, path string) error {
	return c.eachRow(path, func(line string) {
		parts := strings.Split(line, Sep)
		if len(parts) < 2 {
			c.Log.Warn().Str("file", path).Str("line", line).Msg("skipping short collection row")
			return
		}
		name, textID := parts[0], parts[1]

		col, ok := st.Collection(name)
		if !ok {
			col = model.NewCollection(name)
			// The name cannot exist yet; the lookup above just missed.
			_ = st.AddCollection(col)
		}

		text, ok := st.Text(textID)
		if !ok {
			// The collection itself stays registered, possibly empty.
			c.Log.Warn().Str("file", path).Str("collection", name).Str("text", textID).
				Msg("skipping membership for unknown text")
			return
		}
		col.Add(text)
	})
}

// parseBool matches the legacy boolean encoding: a case-insensitive "true"
// is true, every other token is false. It never fails.
func parseBool(tok string) bool {
	return strings.EqualFold(tok, "true")
}
