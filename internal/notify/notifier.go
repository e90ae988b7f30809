// Package notify delivers user-facing notifications raised by the entity store.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Level is the severity shown to the user.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Kinds of notification raised by the store.
const (
	KindSaved          = "saved"
	KindDeleted        = "deleted"
	KindLoaded         = "loaded"
	KindRemoteFailure  = "remote_failure"
	KindCartInUse      = "cart_in_use"
	KindInventoryStock = "inventory_in_stock"
	KindWorkerInUse    = "worker_in_use"
	KindLeaveResolved  = "leave_already_resolved"
	KindRunningLow     = "running_low"
	KindPartialAbsence = "partial_absence"
)

// Notification is a transient message for the operator.
type Notification struct {
	ID       string    `json:"id"`
	Level    Level     `json:"level"`
	Kind     string    `json:"kind"`
	Message  string    `json:"message"`
	Entity   string    `json:"entity,omitempty"`
	EntityID string    `json:"entityId,omitempty"`
	At       time.Time `json:"at"`
}

// New builds a notification stamped with a fresh id and the current time.
func New(level Level, kind, entity, entityID, message string) Notification {
	return Notification{
		ID:       uuid.NewString(),
		Level:    level,
		Kind:     kind,
		Message:  message,
		Entity:   entity,
		EntityID: entityID,
		At:       time.Now().UTC(),
	}
}

// Notifier receives notifications. Implementations must not block for long
// and must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Nop discards every notification.
var Nop Notifier = NotifierFunc(func(context.Context, Notification) {})

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, n Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(ctx, n)
		}
	}
}

// LogNotifier writes notifications to a structured logger.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Notify(ctx context.Context, n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	level := slog.LevelInfo
	switch n.Level {
	case LevelWarning:
		level = slog.LevelWarn
	case LevelError:
		level = slog.LevelError
	}
	logger.Log(ctx, level, n.Message,
		slog.String("notification_kind", n.Kind),
		slog.String("entity", n.Entity),
		slog.String("entity_id", n.EntityID))
}
