package model

import (
	"fmt"

	"github.com/mlaforge/annobench/internal/observer"
)

// Collection is a named, ordered grouping of texts. It references texts, it
// does not own them: the same *Text is reachable from the global registry
// and from every collection listing it, so mutations are visible through
// either path. Like Text it is an observable subject and announces new
// members.
type Collection struct {
	observer.Subject

	Name string

	texts []*Text
}

// NewCollection creates an empty collection.
func NewCollection(name string) *Collection {
	return &Collection{Name: name}
}

// Texts returns the member texts in insertion order.
func (c *Collection) Texts() []*Text {
	return c.texts
}

// Contains reports whether t is already a member.
func (c *Collection) Contains(t *Text) bool {
	for _, member := range c.texts {
		if member == t {
			return true
		}
	}
	return false
}

// Add appends t to the collection and publishes the text-added event.
func (c *Collection) Add(t *Text) {
	c.texts = append(c.texts, t)
	c.Publish(observer.Event{
		Kind:       observer.TextAdded,
		TextID:     t.ID,
		Collection: c.Name,
		Message:    fmt.Sprintf("collection %s: new text %s", c.Name, t.ID),
	})
}
