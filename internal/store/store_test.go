package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaforge/annobench/internal/model"
)

func TestNextTextID_Sequence(t *testing.T) {
	s := New()

	assert.Equal(t, "T1", s.NextTextID())
	assert.Equal(t, "T2", s.NextTextID())
	assert.Equal(t, "A1", s.NextAnnotationID())
	assert.Equal(t, "A2", s.NextAnnotationID())
	assert.Equal(t, "T3", s.NextTextID())
}

func TestPutText_AdvancesCounterPastRestoredIDs(t *testing.T) {
	s := New()

	// Out of order and with gaps, as a saved file may be.
	s.PutText(model.NewText("T5", "five"))
	s.PutText(model.NewText("T2", "two"))

	assert.Equal(t, "T6", s.NextTextID())
	assert.Equal(t, "T7", s.NextTextID())
}

func TestPutAnnotation_AdvancesCounter(t *testing.T) {
	s := New()

	s.PutAnnotation(model.NewAnnotation("A9", "T1", "u1", "note"))

	assert.Equal(t, "A10", s.NextAnnotationID())
	// Text counter is untouched by annotation ids.
	assert.Equal(t, "T1", s.NextTextID())
}

func TestIDMonotonicity_InterleavedLoadsAndGeneration(t *testing.T) {
	s := New()
	seen := map[string]bool{}

	s.PutText(model.NewText("T5", "restored"))
	seen["T5"] = true

	for i := 0; i < 10; i++ {
		id := s.NextTextID()
		require.False(t, seen[id], "generated id %s collides", id)
		seen[id] = true
		s.PutText(model.NewText(id, "generated"))
	}
}

func TestPutText_MalformedIDDoesNotAdvance(t *testing.T) {
	s := New()

	s.PutText(model.NewText("legacy", "no numeric suffix"))
	s.PutText(model.NewText("T", "too short"))

	assert.Equal(t, "T1", s.NextTextID())
}

func TestAddCollection_RejectsDuplicate(t *testing.T) {
	s := New()

	require.NoError(t, s.AddCollection(model.NewCollection("poetry")))

	err := s.AddCollection(model.NewCollection("poetry"))
	require.ErrorIs(t, err, ErrCollectionExists)

	// The original registration survives.
	c, ok := s.Collection("poetry")
	require.True(t, ok)
	assert.Equal(t, "poetry", c.Name)
}

func TestLookups(t *testing.T) {
	s := New()

	u := model.NewAnnotator("u1", "Alice", "a@x", "pw")
	s.PutUser(u)
	text := model.NewText("T1", "content")
	s.PutText(text)
	ann := model.NewAnnotation("A1", "T1", "u1", "note")
	s.PutAnnotation(ann)

	got, ok := s.User("u1")
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Name())

	gotText, ok := s.Text("T1")
	require.True(t, ok)
	assert.Same(t, text, gotText)

	gotAnn, ok := s.Annotation("A1")
	require.True(t, ok)
	assert.Same(t, ann, gotAnn)

	_, ok = s.Text("T99")
	assert.False(t, ok)
}

func TestListings_Deterministic(t *testing.T) {
	s := New()

	s.PutText(model.NewText("T10", "ten"))
	s.PutText(model.NewText("T2", "two"))
	s.PutText(model.NewText("T1", "one"))

	texts := s.Texts()
	require.Len(t, texts, 3)
	assert.Equal(t, "T1", texts[0].ID)
	assert.Equal(t, "T2", texts[1].ID)
	assert.Equal(t, "T10", texts[2].ID)

	s.PutUser(model.NewAnnotator("u2", "B", "b@x", "pw"))
	s.PutUser(model.NewAnnotator("u1", "A", "a@x", "pw"))
	users := s.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID())

	require.NoError(t, s.AddCollection(model.NewCollection("zoo")))
	require.NoError(t, s.AddCollection(model.NewCollection("arts")))
	cols := s.Collections()
	require.Len(t, cols, 2)
	assert.Equal(t, "arts", cols[0].Name)
}

func TestSharedReference_StoreAndCollection(t *testing.T) {
	s := New()

	text := model.NewText("T1", "content")
	s.PutText(text)

	col := model.NewCollection("poetry")
	col.Add(text)
	require.NoError(t, s.AddCollection(col))

	// A mutation through the registry path is visible through the
	// collection path: same object, not a copy.
	alice := model.NewAnnotator("u1", "Alice", "a@x", "pw")
	fromStore, _ := s.Text("T1")
	alice.Annotate(fromStore, "A1", "note")

	fromCollection := col.Texts()[0]
	require.Len(t, fromCollection.Annotations(), 1)
	assert.Equal(t, "A1", fromCollection.Annotations()[0].ID)
}
