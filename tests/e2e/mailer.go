//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"firm-digest/internal/usecase/shared"
)

// RecordingMailer keeps every message it is handed. Addresses listed in
// FailFor are rejected instead.
type RecordingMailer struct {
	mu      sync.Mutex
	sent    []shared.Message
	failFor map[string]bool
}

func NewRecordingMailer() *RecordingMailer {
	return &RecordingMailer{failFor: map[string]bool{}}
}

func (m *RecordingMailer) Send(_ context.Context, msg shared.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failFor[msg.To] {
		return "", errors.New("provider rejected message")
	}
	m.sent = append(m.sent, msg)
	return fmt.Sprintf("rec-%d", len(m.sent)), nil
}

func (m *RecordingMailer) FailFor(addr string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failFor[addr] = true
}

func (m *RecordingMailer) Sent() []shared.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]shared.Message(nil), m.sent...)
}

func (m *RecordingMailer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failFor = map[string]bool{}
}
