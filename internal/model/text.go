package model

import (
	"fmt"

	"github.com/mlaforge/annobench/internal/observer"
)

// Text is an annotatable document. It owns its annotations (insertion order
// is display order) and is an observable subject: attaching an annotation
// publishes an event to every subscriber. Texts are never deleted.
type Text struct {
	observer.Subject

	ID      string
	Content string

	annotations []*Annotation
}

// NewText creates a text with no annotations.
func NewText(id, content string) *Text {
	return &Text{ID: id, Content: content}
}

// Annotations returns the owned annotations in insertion order. The slice is
// shared; callers must not reorder it.
func (t *Text) Annotations() []*Annotation {
	return t.annotations
}

// Contains reports whether ann is in this text's annotation sequence.
func (t *Text) Contains(ann *Annotation) bool {
	for _, a := range t.annotations {
		if a == ann {
			return true
		}
	}
	return false
}

// AddAnnotation appends ann and publishes the annotation-added event
// synchronously, on the caller's goroutine.
func (t *Text) AddAnnotation(ann *Annotation) {
	t.annotations = append(t.annotations, ann)
	t.Publish(observer.Event{
		Kind:         observer.AnnotationAdded,
		TextID:       t.ID,
		AnnotationID: ann.ID,
		AuthorID:     ann.AuthorID,
		Message:      fmt.Sprintf("text %s: new annotation %s by %s", t.ID, ann.ID, ann.AuthorID),
	})
}

// RestoreAnnotation appends ann without publishing. The file loader uses it
// to rebuild a text's sequence; everything else goes through AddAnnotation.
func (t *Text) RestoreAnnotation(ann *Annotation) {
	t.annotations = append(t.annotations, ann)
}

func (t *Text) validate(ann *Annotation) {
	ann.Valid = true
}

func (t *Text) correct(ann *Annotation, newContent string) {
	ann.Content = newContent
	ann.Valid = true
}
