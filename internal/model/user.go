// Package model defines the workbench entities — users, texts, annotations,
// text collections — and the legal state transitions between them.
package model

import (
	"errors"
	"fmt"
)

// Role tokens as they appear in the user file. ANNOTATEUR is the annotator
// role; the legacy spelling is kept because existing data directories use it.
const (
	RoleAdmin     = "ADMIN"
	RoleAnnotator = "ANNOTATEUR"
)

var (
	// ErrNotAuthor indicates a user tried to modify an annotation they do
	// not own.
	ErrNotAuthor = errors.New("not the annotation author")

	// ErrNotAttached indicates an annotation does not belong to the text it
	// was supposed to be reviewed on.
	ErrNotAttached = errors.New("annotation not attached to text")
)

// User is the common surface of the two account variants. The variant is
// fixed at construction: role-specific behavior lives on Administrator and
// Annotator, not here.
type User interface {
	ID() string
	Name() string
	Email() string
	Role() string
	Password() string
}

// account carries the fields shared by both variants. Accounts are immutable
// after creation.
type account struct {
	id       string
	name     string
	email    string
	password string // stored in clear, same as the on-disk user file
}

func (a account) ID() string       { return a.id }
func (a account) Name() string     { return a.name }
func (a account) Email() string    { return a.email }
func (a account) Password() string { return a.password }

// Administrator reviews annotations: it can validate them as-is or correct
// their content.
type Administrator struct {
	account
}

// NewAdministrator creates an administrator account.
func NewAdministrator(id, name, email, password string) *Administrator {
	return &Administrator{account{id: id, name: name, email: email, password: password}}
}

// Role implements User.
func (a *Administrator) Role() string { return RoleAdmin }

// Validate marks ann as valid. The annotation must be attached to text;
// validating an annotation through an unrelated text is rejected.
func (a *Administrator) Validate(text *Text, ann *Annotation) error {
	if !text.Contains(ann) {
		return fmt.Errorf("%w: %s is not on %s", ErrNotAttached, ann.ID, text.ID)
	}
	text.validate(ann)
	return nil
}

// Correct replaces the annotation content and then marks it valid, so the
// persisted correction always carries valid=true.
func (a *Administrator) Correct(text *Text, ann *Annotation, newContent string) error {
	if !text.Contains(ann) {
		return fmt.Errorf("%w: %s is not on %s", ErrNotAttached, ann.ID, text.ID)
	}
	text.correct(ann, newContent)
	return nil
}

// Annotator writes annotations on texts and may rework its own afterwards.
type Annotator struct {
	account
}

// NewAnnotator creates an annotator account.
func NewAnnotator(id, name, email, password string) *Annotator {
	return &Annotator{account{id: id, name: name, email: email, password: password}}
}

// Role implements User.
func (a *Annotator) Role() string { return RoleAnnotator }

// Annotate creates an annotation on text with the given id and content,
// attaches it, and returns it. The new annotation starts unvalidated. The
// text publishes its annotation-added event before Annotate returns.
func (a *Annotator) Annotate(text *Text, id, content string) *Annotation {
	ann := NewAnnotation(id, text.ID, a.id, content)
	text.AddAnnotation(ann)
	return ann
}

// Modify rewrites the content of an annotation the annotator authored and
// resets it to unvalidated. A caller that is not the author gets ErrNotAuthor
// and the annotation is left untouched.
func (a *Annotator) Modify(ann *Annotation, newContent string) error {
	if ann.AuthorID != a.id {
		return fmt.Errorf("%w: %s belongs to %s", ErrNotAuthor, ann.ID, ann.AuthorID)
	}
	ann.Content = newContent
	ann.Valid = false
	return nil
}

// NewUser constructs the variant matching role. The role token is matched
// exactly; callers normalize case first (the file loader does).
func NewUser(id, name, email, role, password string) (User, error) {
	switch role {
	case RoleAdmin:
		return NewAdministrator(id, name, email, password), nil
	case RoleAnnotator:
		return NewAnnotator(id, name, email, password), nil
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}
}
