package teardown

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Observer defines the interface for structured observability during teardown.
type Observer interface {
	// Printf emits a plain progress line.
	Printf(format string, v ...interface{})

	// Event emits a structured event.
	Event(event Event)

	// WithFields returns a new Observer with additional context fields.
	WithFields(fields map[string]string) Observer
}

// Event represents a structured teardown event.
type Event struct {
	Type      EventType // Type of event
	Resource  string    // Resource name/ID if applicable
	Message   string    // Human-readable message
	Timestamp time.Time // When the event occurred
}

// EventType represents the type of teardown event.
type EventType string

const (
	// EventRunStarted indicates the teardown sequence has started.
	EventRunStarted EventType = "run.started"
	// EventRunCompleted indicates the teardown sequence completed successfully.
	EventRunCompleted EventType = "run.completed"

	// EventResourceDeleting indicates a resource is being deleted.
	EventResourceDeleting EventType = "resource.deleting"
	// EventResourceDeleted indicates a resource was deleted successfully.
	EventResourceDeleted EventType = "resource.deleted"

	// EventWarning indicates a named non-fatal condition.
	EventWarning EventType = "warning"
)

// ConsoleObserver implements Observer using logrus.
type ConsoleObserver struct {
	entry *logrus.Entry
}

// NewConsoleObserver creates a new console-based observer on the standard logger.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	o.entry.Infof(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	entry := o.entry.WithField("event", string(event.Type))
	if event.Resource != "" {
		entry = entry.WithField("resource", event.Resource)
	}

	if event.Type == EventWarning {
		entry.Warn(event.Message)
		return
	}
	entry.Info(event.Message)
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	entry := o.entry
	for k, v := range fields {
		entry = entry.WithField(k, v)
	}
	return &ConsoleObserver{entry: entry}
}

// LogResourceDeleting logs a resource deletion start event.
func LogResourceDeleting(observer Observer, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceDeleting,
		Resource: resourceName,
		Message:  "deleting " + resourceType,
	})
}

// LogResourceDeleted logs a successful resource deletion event.
func LogResourceDeleted(observer Observer, resourceType, resourceName string) {
	observer.Event(Event{
		Type:     EventResourceDeleted,
		Resource: resourceName,
		Message:  resourceType + " deleted",
	})
}

// LogWarning logs a named non-fatal condition.
func LogWarning(observer Observer, resourceName, message string) {
	observer.Event(Event{
		Type:     EventWarning,
		Resource: resourceName,
		Message:  message,
	})
}
