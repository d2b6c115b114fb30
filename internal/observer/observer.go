// Package observer provides the synchronous publish/subscribe channel that
// texts and collections use to announce changes to interested parties.
//
// Delivery is synchronous and runs on the publisher's goroutine, in
// subscription order. Observers must not block or panic; the hub does not
// isolate them.
package observer

import (
	"github.com/google/uuid"
)

// EventKind identifies what happened on a subject.
type EventKind string

const (
	// AnnotationAdded is published by a text when an annotator attaches a
	// new annotation to it.
	AnnotationAdded EventKind = "annotation-added"

	// TextAdded is published by a collection when a text joins it.
	TextAdded EventKind = "text-added"
)

// Event carries the identifiers of the entities involved in a change plus a
// preformatted human-readable message.
type Event struct {
	Kind         EventKind
	TextID       string
	AnnotationID string
	AuthorID     string
	Collection   string
	Message      string
}

// Observer receives events from subjects it subscribed to.
//
// Implementations must be comparable values (typically pointers): the hub
// uses equality to keep subscriptions idempotent.
type Observer interface {
	Notify(Event)
}

// Token identifies one subscription. A caller that does not want to retain
// the observer value can unsubscribe by token instead.
type Token string

type subscription struct {
	token Token
	obs   Observer
}

// Subject is the publishing end of the hub. The zero value is ready to use,
// so entities can embed it directly.
type Subject struct {
	subs []subscription
}

// Subscribe registers obs and returns its subscription token. Subscribing
// the same observer twice is a no-op that returns the original token.
func (s *Subject) Subscribe(obs Observer) Token {
	for _, sub := range s.subs {
		if sub.obs == obs {
			return sub.token
		}
	}
	tok := Token(uuid.NewString())
	s.subs = append(s.subs, subscription{token: tok, obs: obs})
	return tok
}

// Unsubscribe removes the subscription identified by tok. Unknown tokens are
// ignored.
func (s *Subject) Unsubscribe(tok Token) {
	for i, sub := range s.subs {
		if sub.token == tok {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers e to every subscriber, in subscription order. It is meant
// to be called only by the domain operations of the entity that owns the
// subject.
func (s *Subject) Publish(e Event) {
	for _, sub := range s.subs {
		sub.obs.Notify(e)
	}
}

// Subscribers reports how many observers are currently registered.
func (s *Subject) Subscribers() int {
	return len(s.subs)
}
