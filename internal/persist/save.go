package persist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/mlaforge/annobench/internal/store"
)

// SaveAll rewrites the four resource files from the current registries.
// Each file is fully regenerated, not merged. Output order is deterministic
// (users by id, texts and annotations by numeric suffix, collections by name
// with members in insertion order), so an unchanged store saves byte-stable
// files.
func (c *Codec) SaveAll(st *store.Store, p Paths) error {
	if err := c.saveUsers(st, p.Users); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	if err := c.saveTexts(st, p.Texts); err != nil {
		return fmt.Errorf("saving texts: %w", err)
	}
	if err := c.saveAnnotations(st, p.Annotations); err != nil {
		return fmt.Errorf("saving annotations: %w", err)
	}
	if err := c.saveCollections(st, p.Collections); err != nil {
		return fmt.Errorf("saving collections: %w", err)
	}
	return nil
}

// writeFile opens path for truncating write, hands fn a buffered writer and
// flushes/closes everything in this call. No handle outlives the save.
func (c *Codec) writeFile(path string, fn func(w *bufio.Writer)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var out io.Writer = f
	var enc *transform.Writer
	if c.Latin1 {
		enc = transform.NewWriter(f, charmap.ISO8859_1.NewEncoder())
		out = enc
	}

	w := bufio.NewWriter(out)
	fn(w)

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if enc != nil {
		if err := enc.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

func (c *Codec) saveUsers(st *store.Store, path string) error {
	return c.writeFile(path, func(w *bufio.Writer) {
		for _, u := range st.Users() {
			fmt.Fprintf(w, "%s%s%s%s%s%s%s%s%s\n",
				u.ID(), Sep, u.Name(), Sep, u.Email(), Sep, u.Role(), Sep, u.Password())
		}
	})
}

func (c *Codec) saveTexts(st *store.Store, path string) error {
	return c.writeFile(path, func(w *bufio.Writer) {
		for _, t := range st.Texts() {
			fmt.Fprintf(w, "%s%s%s\n", t.ID, Sep, t.Content)
		}
	})
}

func (c *Codec) saveAnnotations(st *store.Store, path string) error {
	return c.writeFile(path, func(w *bufio.Writer) {
		for _, a := range st.Annotations() {
			fmt.Fprintf(w, "%s%s%s%s%s%s%s%s%s\n",
				a.ID, Sep, a.TextID, Sep, a.AuthorID, Sep, a.Content, Sep, strconv.FormatBool(a.Valid))
		}
	})
}

func (c *Codec) saveCollections(st *store.Store, path string) error {
	return c.writeFile(path, func(w *bufio.Writer) {
		for _, col := range st.Collections() {
			for _, t := range col.Texts() {
				fmt.Fprintf(w, "%s%s%s\n", col.Name, Sep, t.ID)
			}
		}
	})
}
