package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/store"
)

func testCodec() *Codec {
	return New(zerolog.Nop())
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadAll_BasicFixture(t *testing.T) {
	dir := t.TempDir()
	p := DefaultPaths(dir)

	writeFixture(t, p.Users,
		"u1;Alice;a@x;ANNOTATEUR;pw\n"+
			"admin1;Bob;b@x;ADMIN;secret\n")
	writeFixture(t, p.Texts,
		"T1;Il pleut; il fait froid\n"+
			"T2;Deuxieme texte\n")
	writeFixture(t, p.Annotations,
		"A1;T1;u1;une remarque;true\n"+
			"A2;T2;u1;autre remarque;false\n")
	writeFixture(t, p.Collections,
		"hiver;T1\n"+
			"hiver;T2\n")

	st := store.New()
	require.NoError(t, testCodec().LoadAll(st, p))

	u, ok := st.User("u1")
	require.True(t, ok)
	assert.Equal(t, model.RoleAnnotator, u.Role())
	assert.Equal(t, "pw", u.Password())

	admin, ok := st.User("admin1")
	require.True(t, ok)
	assert.IsType(t, (*model.Administrator)(nil), admin)

	// Text content keeps the delimiter past the first split.
	text, ok := st.Text("T1")
	require.True(t, ok)
	assert.Equal(t, "Il pleut; il fait froid", text.Content)

	ann, ok := st.Annotation("A1")
	require.True(t, ok)
	assert.True(t, ann.Valid)
	require.Len(t, text.Annotations(), 1)
	assert.Same(t, ann, text.Annotations()[0])

	col, ok := st.Collection("hiver")
	require.True(t, ok)
	require.Len(t, col.Texts(), 2)
	assert.Same(t, text, col.Texts()[0])
}

func TestLoadAll_SeedsCounters(t *testing.T) {
	dir := t.TempDir()
	p := DefaultPaths(dir)

	writeFixture(t, p.Texts, "T5;cinq\n")
	writeFixture(t, p.Annotations, "A9;T5;u1;neuf;false\n")

	st := store.New()
	require.NoError(t, testCodec().LoadAll(st, p))

	assert.Equal(t, "T6", st.NextTextID())
	assert.Equal(t, "A10", st.NextAnnotationID())
}

func TestLoadAll_MissingFilesAreEmpty(t *testing.T) {
	st := store.New()
	require.NoError(t, testCodec().LoadAll(st, DefaultPaths(t.TempDir())))

	assert.Empty(t, st.Users())
	assert.Empty(t, st.Texts())
	assert.Empty(t, st.Annotations())
	assert.Empty(t, st.Collections())
}

func TestLoadAll_SkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	p := DefaultPaths(dir)

	writeFixture(t, p.Users,
		"u1;Alice;a@x;ANNOTATEUR;pw\n"+
			"\n"+ // blank line
			"broken;row\n"+ // too few fields
			"u2;Eve;e@x;INTRUDER;pw\n"+ // unknown role
			"u3;Carol;c@x;annotateur;pw\n") // role is case-insensitive
	writeFixture(t, p.Texts,
		"T1;ok\n"+
			"justanid\n")
	writeFixture(t, p.Annotations,
		"A1;T1\n"+ // short
		"A2;T1;u1;fine;TRUE\n"+ // boolean is case-insensitive
			"A3;T1;u1;whatever;yes\n") // unrecognized token means false

	st := store.New()
	require.NoError(t, testCodec().LoadAll(st, p))

	assert.Len(t, st.Users(), 2)
	_, ok := st.User("u2")
	assert.False(t, ok, "unknown role must not create a partial user")
	_, ok = st.User("u3")
	assert.True(t, ok)

	assert.Len(t, st.Texts(), 1)

	require.Len(t, st.Annotations(), 2)
	a2, _ := st.Annotation("A2")
	assert.True(t, a2.Valid)
	a3, _ := st.Annotation("A3")
	assert.False(t, a3.Valid)
}

func TestLoadAll_ReferentialSkip(t *testing.T) {
	dir := t.TempDir()
	p := DefaultPaths(dir)

	writeFixture(t, p.Texts, "T1;present\n")
	writeFixture(t, p.Annotations,
		"A1;T404;u1;dangling;false\n"+
			"A2;T1;u1;fine;false\n")
	writeFixture(t, p.Collections,
		"ghosts;T404\n"+
			"real;T1\n")

	st := store.New()
	require.NoError(t, testCodec().LoadAll(st, p))

	_, ok := st.Annotation("A1")
	assert.False(t, ok, "annotation with missing text must be dropped")
	_, ok = st.Annotation("A2")
	assert.True(t, ok, "rest of the file loads normally")

	// The collection is still materialized, just empty.
	ghosts, ok := st.Collection("ghosts")
	require.True(t, ok)
	assert.Empty(t, ghosts.Texts())
}

func TestLoadAll_OrphanAuthorTolerated(t *testing.T) {
	dir := t.TempDir()
	p := DefaultPaths(dir)

	writeFixture(t, p.Texts, "T1;content\n")
	writeFixture(t, p.Annotations, "A1;T1;nobody;note;false\n")

	st := store.New()
	require.NoError(t, testCodec().LoadAll(st, p))

	ann, ok := st.Annotation("A1")
	require.True(t, ok)
	assert.Equal(t, "nobody", ann.AuthorID)
}

func TestRoundTrip_Idempotent(t *testing.T) {
	st := store.New()
	st.PutUser(model.NewAnnotator("u1", "Alice", "a@x", "pw"))
	st.PutUser(model.NewAdministrator("admin1", "Bob", "b@x", "secret"))

	alice, _ := st.User("u1")
	annotator := alice.(*model.Annotator)

	t1 := model.NewText(st.NextTextID(), "premier; avec separateur")
	st.PutText(t1)
	t2 := model.NewText(st.NextTextID(), "second")
	st.PutText(t2)

	a1 := annotator.Annotate(t1, st.NextAnnotationID(), "remarque")
	st.PutAnnotation(a1)
	admin, _ := st.User("admin1")
	require.NoError(t, admin.(*model.Administrator).Validate(t1, a1))

	col := model.NewCollection("essais")
	col.Add(t2)
	col.Add(t1)
	require.NoError(t, st.AddCollection(col))

	dir := t.TempDir()
	p := DefaultPaths(dir)
	c := testCodec()
	require.NoError(t, c.SaveAll(st, p))

	reloaded := store.New()
	require.NoError(t, c.LoadAll(reloaded, p))

	assert.Len(t, reloaded.Users(), 2)
	require.Len(t, reloaded.Texts(), 2)
	gotT1, _ := reloaded.Text("T1")
	assert.Equal(t, "premier; avec separateur", gotT1.Content)

	gotA1, ok := reloaded.Annotation("A1")
	require.True(t, ok)
	assert.True(t, gotA1.Valid)
	assert.Equal(t, "remarque", gotA1.Content)
	assert.Equal(t, "u1", gotA1.AuthorID)
	require.Len(t, gotT1.Annotations(), 1)

	gotCol, ok := reloaded.Collection("essais")
	require.True(t, ok)
	require.Len(t, gotCol.Texts(), 2)
	assert.Equal(t, "T2", gotCol.Texts()[0].ID)
	assert.Equal(t, "T1", gotCol.Texts()[1].ID)

	// Generated ids stay clear of everything restored.
	assert.Equal(t, "T3", reloaded.NextTextID())
	assert.Equal(t, "A2", reloaded.NextAnnotationID())

	// Saving the reloaded store again produces identical bytes.
	dir2 := t.TempDir()
	p2 := DefaultPaths(dir2)
	require.NoError(t, c.SaveAll(reloaded, p2))
	for _, pair := range [][2]string{
		{p.Users, p2.Users},
		{p.Texts, p2.Texts},
		{p.Annotations, p2.Annotations},
		{p.Collections, p2.Collections},
	} {
		first, err := os.ReadFile(pair[0])
		require.NoError(t, err)
		second, err := os.ReadFile(pair[1])
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	}
}

func TestEndToEnd_AnnotateValidateReload(t *testing.T) {
	dir := t.TempDir()
	p := DefaultPaths(dir)
	writeFixture(t, p.Users, "u1;Alice;a@x;ANNOTATEUR;pw\n")

	c := testCodec()
	st := store.New()
	require.NoError(t, c.LoadAll(st, p))

	text := model.NewText("T1", "hello")
	st.PutText(text)

	u, ok := st.User("u1")
	require.True(t, ok)
	alice := u.(*model.Annotator)

	ann := alice.Annotate(text, "A1", "nice")
	st.PutAnnotation(ann)
	assert.False(t, ann.Valid)

	admin := model.NewAdministrator("admin1", "Bob", "b@x", "pw")
	require.NoError(t, admin.Validate(text, ann))

	require.NoError(t, c.SaveAll(st, p))

	reloaded := store.New()
	require.NoError(t, c.LoadAll(reloaded, p))
	got, ok := reloaded.Annotation("A1")
	require.True(t, ok)
	assert.True(t, got.Valid)
	assert.Equal(t, "nice", got.Content)
}

func TestLatin1RoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := DefaultPaths(dir)

	st := store.New()
	st.PutText(model.NewText("T1", "poème d'été"))

	c := testCodec()
	c.Latin1 = true
	require.NoError(t, c.SaveAll(st, p))

	// The bytes on disk are ISO 8859-1, as the legacy tool wrote them.
	raw, err := os.ReadFile(p.Texts)
	require.NoError(t, err)
	want, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("T1;poème d'été\n"))
	require.NoError(t, err)
	assert.Equal(t, want, raw)

	reloaded := store.New()
	require.NoError(t, c.LoadAll(reloaded, p))
	text, ok := reloaded.Text("T1")
	require.True(t, ok)
	assert.Equal(t, "poème d'été", text.Content)
}

func TestLockDir(t *testing.T) {
	dir := t.TempDir()

	fl, err := LockDir(dir)
	require.NoError(t, err)
	defer fl.Unlock()

	_, err = LockDir(dir)
	require.ErrorIs(t, err, ErrLocked)

	require.NoError(t, fl.Unlock())
	again, err := LockDir(dir)
	require.NoError(t, err)
	require.NoError(t, again.Unlock())

	assert.FileExists(t, filepath.Join(dir, LockFileName))
}
