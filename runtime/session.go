package runtime

import (
	"chat-gateway/contract"
	"chat-gateway/domain"
	"chat-gateway/errors"
	"chat-gateway/protocol"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Session is the per-peer dispatcher. It handles at most one request at a
// time; concurrent sessions are serialized by the node's domain lock.
type Session struct {
	ID         uuid.UUID
	mu         sync.Mutex
	address    string
	log        *slog.Logger
	node       *Node
	transport  contract.Transport
	apiVersion uint32
}

func newSession(node *Node, transport contract.Transport, address string) *Session {
	id := uuid.New()
	return &Session{
		ID:        id,
		address:   address,
		log:       node.log.With("session_id", id.String(), "address", address),
		node:      node,
		transport: transport,
	}
}

func (s *Session) Address() string {
	return s.address
}

func (s *Session) ApiVersion() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiVersion
}

// OnIncoming decodes one request frame, runs its handler and answers with
// a response frame. Unknown or malformed frames are logged and dropped
// without a response.
func (s *Session) OnIncoming(ctx context.Context, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := protocol.NewReader(data)
	header, err := protocol.ReadHeader(r)
	if err != nil {
		s.log.Info("Dropping truncated frame", "size", len(data), "error", err)
		return
	}
	handler, ok := s.node.handlers[header.Type]
	if !ok {
		s.log.Info("Dropping request", "tag", uint16(header.Type), "track", header.Track, "error", errors.ErrUnknownRequest)
		return
	}
	act, err := handler(r)
	if err != nil {
		s.log.Info("Dropping malformed request", "request", header.Type.String(), "track", header.Track,
			"error", fmt.Errorf("%w: %v", errors.ErrProtocol, err))
		return
	}

	body, ok, err := s.run(ctx, header, act)
	if !ok {
		return
	}
	result := errors.ToResultCode(err)
	switch {
	case stderrors.Is(err, errors.ErrStorageFailure):
		s.log.Error("Request failed on storage", "request", header.Type.String(), "track", header.Track, "error", err)
	case err != nil:
		s.log.Debug("Request refused", "request", header.Type.String(), "track", header.Track, "result", result, "error", err)
	}
	frame, err := protocol.EncodeResponse(header.Type, header.Track, result, body)
	if err != nil {
		s.log.Error("Failed to encode response", "request", header.Type.String(), "track", header.Track, "error", err)
		return
	}
	s.transmit(ctx, frame)
}

// run executes the handler under the domain lock. A panicking handler is
// logged and its request dropped; ok is false in that case.
func (s *Session) run(ctx context.Context, header protocol.Header, act action) (body protocol.Payload, ok bool, err error) {
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Request handler panicked", "request", header.Type.String(), "track", header.Track, "panic", r)
			body, ok, err = nil, false, nil
		}
	}()
	body, err = act(ctx, s)
	return body, true, err
}

func (s *Session) transmit(ctx context.Context, frame []byte) {
	if err := s.transport.Send(ctx, s.address, frame); err != nil {
		s.log.Warn("Dropping outbound frame", "size", len(frame), "error", err)
	}
}

// avatar returns the online avatar that avatarID names, provided it logged
// in through this session. Requests may only act on behalf of such avatars.
func (s *Session) avatar(avatarID uint32) (domain.Avatar, error) {
	peer, ok := s.node.directory.GetAddress(domain.AvatarID(avatarID))
	if !ok || peer != s.address {
		return domain.Avatar{}, fmt.Errorf("%w: avatar %d is not logged in on %s", errors.ErrPermissionDenied, avatarID, s.address)
	}
	return s.node.directory.GetAvatar(domain.AvatarID(avatarID))
}
