// Package persist reads and writes the four delimited files that carry the
// workbench state between runs: users, texts, annotations and collection
// memberships. The format is the legacy contract — `;`-separated fields, no
// header row, no quoting or escaping — so loading and saving must stay
// byte-compatible with data directories produced by the old tool.
//
// Load order is fixed (users, texts, annotations, collections) because
// annotations and collection rows reference texts; rows that cannot be
// resolved or parsed are skipped with a diagnostic, never fatally.
package persist

import (
	"path/filepath"

	"github.com/rs/zerolog"
)

// Sep is the field delimiter. Fields cannot contain it except the text
// content field, which is the last field of its row and split on the first
// occurrence only.
const Sep = ";"

// Default file names inside a data directory. The legacy French names are
// kept so existing directories load unchanged.
const (
	UsersFile       = "utilisateurs.csv"
	TextsFile       = "textes.csv"
	AnnotationsFile = "annotations.csv"
	CollectionsFile = "collections.csv"
)

// Paths names the four resource files of one data directory.
type Paths struct {
	Users       string
	Texts       string
	Annotations string
	Collections string
}

// DefaultPaths returns the standard file layout under dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Users:       filepath.Join(dir, UsersFile),
		Texts:       filepath.Join(dir, TextsFile),
		Annotations: filepath.Join(dir, AnnotationsFile),
		Collections: filepath.Join(dir, CollectionsFile),
	}
}

// Codec performs the load/save round-trip. Latin1 selects ISO 8859-1
// transcoding for directories written with the legacy platform encoding;
// the default is UTF-8 passthrough.
type Codec struct {
	Log    zerolog.Logger
	Latin1 bool
}

// New returns a codec logging diagnostics through log.
func New(log zerolog.Logger) *Codec {
	return &Codec{Log: log}
}
