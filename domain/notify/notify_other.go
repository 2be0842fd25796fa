//go:build !linux

package notify

// send is a no-op where no notification backend is wired.
func send(title, body string) error { return nil }
