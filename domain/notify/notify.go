// Package notify posts desktop notifications after a crop is saved.
package notify

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// DefaultTitle is the notification title.
const DefaultTitle = "Image Crop"

// DefaultSaveTemplate formats the body of a save notification.
const DefaultSaveTemplate = "Saved %s"

// SendFunc delivers one notification.
type SendFunc func(title, body string) error

// Notifier sends save notifications when enabled. The zero value is disabled.
type Notifier struct {
	Title    string
	Template string
	enabled  bool
	send     SendFunc
	logger   *slog.Logger
}

// New returns a notifier using the platform sender.
func New(enabled bool, logger *slog.Logger) *Notifier {
	return NewWithSender(enabled, logger, send)
}

// NewWithSender returns a notifier that delivers through fn.
func NewWithSender(enabled bool, logger *slog.Logger, fn SendFunc) *Notifier {
	return &Notifier{Title: DefaultTitle, Template: DefaultSaveTemplate, enabled: enabled, send: fn, logger: logger}
}

// Enabled reports whether notifications are sent.
func (n *Notifier) Enabled() bool { return n != nil && n.enabled && n.send != nil }

// Saved announces that path was written. Delivery errors are logged, never returned.
func (n *Notifier) Saved(path string) {
	if !n.Enabled() {
		return
	}
	detail := strings.TrimSpace(path)
	if abs, err := filepath.Abs(detail); err == nil {
		detail = abs
	}
	tmpl := n.Template
	if strings.TrimSpace(tmpl) == "" {
		tmpl = DefaultSaveTemplate
	}
	body := fmt.Sprintf(tmpl, detail)
	if err := n.send(n.Title, body); err != nil && n.logger != nil {
		n.logger.Warn("notification failed", "error", err)
	}
}
