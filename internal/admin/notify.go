package admin

import (
	"context"

	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is the user-facing confirmation emitted after an admin action.
type Notification struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	Log *zap.Logger
}

func (l LogNotifier) Notify(_ context.Context, n Notification) {
	if l.Log == nil {
		return
	}

	fields := []zap.Field{
		zap.String("level", string(n.Level)),
		zap.String("title", n.Title),
		zap.String("message", n.Message),
	}
	if n.Level == LevelError {
		l.Log.Warn("notification", fields...)
		return
	}
	l.Log.Info("notification", fields...)
}

func success(msg string) Notification {
	return Notification{Level: LevelSuccess, Title: "Success", Message: msg}
}

func failure(msg string) Notification {
	return Notification{Level: LevelError, Title: "Error", Message: msg}
}

func notify(ctx context.Context, n Notifier, note Notification) {
	if n != nil {
		n.Notify(ctx, note)
	}
}
