package observer

import (
	"testing"
)

type recorder struct {
	events []Event
}

func (r *recorder) Notify(e Event) {
	r.events = append(r.events, e)
}

func TestSubject_SubscribeIdempotent(t *testing.T) {
	var s Subject
	rec := &recorder{}

	tok1 := s.Subscribe(rec)
	tok2 := s.Subscribe(rec)

	if tok1 != tok2 {
		t.Errorf("second subscribe returned a new token: %q vs %q", tok1, tok2)
	}
	if s.Subscribers() != 1 {
		t.Errorf("subscribers = %d, want 1", s.Subscribers())
	}

	s.Publish(Event{Kind: AnnotationAdded, TextID: "T1"})
	if len(rec.events) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(rec.events))
	}
}

func TestSubject_DeliveryOrder(t *testing.T) {
	var s Subject
	var order []string

	a := &orderedObserver{name: "a", order: &order}
	b := &orderedObserver{name: "b", order: &order}
	s.Subscribe(a)
	s.Subscribe(b)

	s.Publish(Event{Kind: AnnotationAdded})

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("delivery order = %v, want [a b]", order)
	}
}

type orderedObserver struct {
	name  string
	order *[]string
}

func (o *orderedObserver) Notify(Event) {
	*o.order = append(*o.order, o.name)
}

func TestSubject_Unsubscribe(t *testing.T) {
	var s Subject
	rec := &recorder{}

	tok := s.Subscribe(rec)
	s.Publish(Event{Kind: AnnotationAdded, AnnotationID: "A1"})

	s.Unsubscribe(tok)
	s.Publish(Event{Kind: AnnotationAdded, AnnotationID: "A2"})

	if len(rec.events) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(rec.events))
	}
	if rec.events[0].AnnotationID != "A1" {
		t.Errorf("delivered annotation = %s, want A1", rec.events[0].AnnotationID)
	}

	// Unknown token is ignored.
	s.Unsubscribe(Token("missing"))
}

func TestSubject_ResubscribeAfterUnsubscribe(t *testing.T) {
	var s Subject
	rec := &recorder{}

	tok := s.Subscribe(rec)
	s.Unsubscribe(tok)

	tok2 := s.Subscribe(rec)
	if tok2 == tok {
		t.Error("resubscribe reused a dead token")
	}

	s.Publish(Event{Kind: TextAdded})
	if len(rec.events) != 1 {
		t.Errorf("deliveries = %d, want 1", len(rec.events))
	}
}
