package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"

	"github.com/mlaforge/annobench/internal/auth"
	"github.com/mlaforge/annobench/internal/config"
	"github.com/mlaforge/annobench/internal/logging"
	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/persist"
	"github.com/mlaforge/annobench/internal/store"
	"github.com/mlaforge/annobench/internal/workspace"
)

// workbench is one command's load-mutate-save session: config, logger,
// populated store and the data-directory lock, all torn down by close.
type workbench struct {
	root  string
	cfg   config.Config
	log   zerolog.Logger
	store *store.Store
	codec *persist.Codec
	paths persist.Paths
	lock  *flock.Flock
}

// openWorkbench locates the workbench root, loads config and state, and
// takes the data-directory lock.
func openWorkbench() (*workbench, error) {
	root, err := workspace.FindFromCwd()
	if err != nil {
		return nil, fmt.Errorf("%w; run 'annobench init' first", err)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	log := logging.Stderr(cfg.LogLevel)

	dataDir := cfg.ResolveDataDir(root)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	lock, err := persist.LockDir(dataDir)
	if err != nil {
		return nil, err
	}

	codec := persist.New(log)
	codec.Latin1 = cfg.Latin1()

	st := store.New()
	paths := cfg.Paths(root)
	if err := codec.LoadAll(st, paths); err != nil {
		lock.Unlock()
		return nil, err
	}

	return &workbench{
		root:  root,
		cfg:   cfg,
		log:   log,
		store: st,
		codec: codec,
		paths: paths,
		lock:  lock,
	}, nil
}

// save rewrites the four resource files from the store.
func (w *workbench) save() error {
	return w.codec.SaveAll(w.store, w.paths)
}

// close releases the data-directory lock.
func (w *workbench) close() {
	if w.lock != nil {
		w.lock.Unlock()
	}
}

// actingUser resolves the user a mutating command acts as: the --as flag if
// given, otherwise ANNOBENCH_USER.
func (w *workbench) actingUser(flagID string) (model.User, error) {
	id := flagID
	if id == "" {
		id = auth.CurrentUserID()
	}
	if id == "" {
		return nil, errors.New("no acting user: pass --as <id> or set ANNOBENCH_USER")
	}
	u, ok := w.store.User(id)
	if !ok {
		return nil, fmt.Errorf("unknown user %q", id)
	}
	return u, nil
}

// asAnnotator resolves the acting user and requires the annotator role.
func (w *workbench) asAnnotator(flagID string) (*model.Annotator, error) {
	u, err := w.actingUser(flagID)
	if err != nil {
		return nil, err
	}
	annotator, ok := u.(*model.Annotator)
	if !ok {
		return nil, fmt.Errorf("user %s is not an annotator", u.ID())
	}
	return annotator, nil
}

// asAdministrator resolves the acting user and requires the admin role.
func (w *workbench) asAdministrator(flagID string) (*model.Administrator, error) {
	u, err := w.actingUser(flagID)
	if err != nil {
		return nil, err
	}
	admin, ok := u.(*model.Administrator)
	if !ok {
		return nil, fmt.Errorf("user %s is not an administrator", u.ID())
	}
	return admin, nil
}
