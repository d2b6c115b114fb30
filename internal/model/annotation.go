package model

// Annotation is a remark attached to one text. Content is mutable through
// the author's Modify and the administrator's Correct; Valid tracks the
// review state (false until an administrator validates or corrects).
type Annotation struct {
	ID       string
	TextID   string
	AuthorID string
	Content  string
	Valid    bool
}

// NewAnnotation creates an unvalidated annotation. The author id is recorded
// as given; it is not checked against the user registry.
func NewAnnotation(id, textID, authorID, content string) *Annotation {
	return &Annotation{
		ID:       id,
		TextID:   textID,
		AuthorID: authorID,
		Content:  content,
	}
}
