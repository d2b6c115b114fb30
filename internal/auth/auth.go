// Package auth handles the login step: matching an id/password pair against
// the user registry. Passwords are stored and compared in clear, the same
// contract as the on-disk user file.
package auth

import (
	"errors"
	"os"

	"github.com/mlaforge/annobench/internal/model"
	"github.com/mlaforge/annobench/internal/store"
)

// EnvUser names the acting user for scripted (non-interactive) commands.
const EnvUser = "ANNOBENCH_USER"

// ErrBadCredentials covers both an unknown user id and a wrong password, so
// a failed login does not reveal which part was wrong.
var ErrBadCredentials = errors.New("invalid user id or password")

// Login returns the user matching id and password.
func Login(st *store.Store, id, password string) (model.User, error) {
	u, ok := st.User(id)
	if !ok {
		return nil, ErrBadCredentials
	}
	if u.Password() != password {
		return nil, ErrBadCredentials
	}
	return u, nil
}

// CurrentUserID returns the acting user for scripted commands, from the
// ANNOBENCH_USER environment variable. Empty means unset.
func CurrentUserID() string {
	return os.Getenv(EnvUser)
}
