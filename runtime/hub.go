package runtime

import (
	"chat-gateway/contract"
	"chat-gateway/protocol"
	"context"
	"log/slog"
	"sync"
)

// SessionHub owns every Session of the node, keyed by peer address.
// Inbound and outbound traffic share it.
type SessionHub struct {
	mu         sync.Mutex
	log        *slog.Logger
	transport  contract.Transport
	sessions   map[string]*Session
	newSession func(address string) *Session
}

func NewSessionHub(log *slog.Logger, transport contract.Transport, newSession func(address string) *Session) *SessionHub {
	return &SessionHub{
		log:        log,
		transport:  transport,
		sessions:   make(map[string]*Session),
		newSession: newSession,
	}
}

// Session returns the session bound to address, creating it on first use.
func (h *SessionHub) Session(address string) *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	session, ok := h.sessions[address]
	if !ok {
		session = h.newSession(address)
		h.sessions[address] = session
		h.log.Debug("Session created", "address", address, "session_id", session.ID)
	}
	return session
}

// SendTo pushes a notification to address. A session is created for the
// address if it has none yet. Delivery is fire-and-forget.
func (h *SessionHub) SendTo(ctx context.Context, address string, message protocol.Message) {
	session := h.Session(address)
	frame, err := protocol.EncodeMessage(message)
	if err != nil {
		h.log.Error("Failed to encode notification", "type", message.Type(), "address", address, "error", err)
		return
	}
	session.transmit(ctx, frame)
}

// Evict forgets the session of a closed connection.
func (h *SessionHub) Evict(address string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[address]; !ok {
		return false
	}
	delete(h.sessions, address)
	return true
}

func (h *SessionHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
