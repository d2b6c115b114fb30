package observer

import (
	"github.com/rs/zerolog"
)

// LogObserver forwards events to a zerolog logger. The CLI subscribes one to
// each text it mutates so annotation activity shows up in the command output.
type LogObserver struct {
	Log zerolog.Logger
}

// NewLogObserver returns a LogObserver writing through log.
func NewLogObserver(log zerolog.Logger) *LogObserver {
	return &LogObserver{Log: log}
}

// Notify implements Observer.
func (l *LogObserver) Notify(e Event) {
	l.Log.Info().
		Str("kind", string(e.Kind)).
		Str("text", e.TextID).
		Str("annotation", e.AnnotationID).
		Str("author", e.AuthorID).
		Msg(e.Message)
}
