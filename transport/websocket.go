package transport

import (
	"chat-gateway/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	websocketBufferSize   = 4096
	websocketWriteTimeout = 5 * time.Second
	handshakeTimeout      = 3 * time.Second
	shutdownTimeout       = 5 * time.Second
)

type wsPeer struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// WebsocketTransport carries one frame per binary websocket message. A peer
// is known by the remote address of its connection; the disconnect hook
// fires once the connection is gone.
type WebsocketTransport struct {
	log          *slog.Logger
	address      string
	path         string
	upgrader     websocket.Upgrader
	mu           sync.Mutex
	peers        map[string]*wsPeer
	onDisconnect func(ctx context.Context, address string)
}

func NewWebsocketTransport(log *slog.Logger, address, path string) *WebsocketTransport {
	return &WebsocketTransport{
		log:     log,
		address: address,
		path:    path,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: handshakeTimeout,
			ReadBufferSize:   websocketBufferSize,
			WriteBufferSize:  websocketBufferSize,
			CheckOrigin:      func(r *http.Request) bool { return true },
		},
		peers: make(map[string]*wsPeer),
	}
}

func (t *WebsocketTransport) OnDisconnect(fn func(ctx context.Context, address string)) {
	t.onDisconnect = fn
}

func (t *WebsocketTransport) Send(_ context.Context, address string, data []byte) error {
	t.mu.Lock()
	peer, ok := t.peers[address]
	t.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: no connection for %s", errors.ErrTransportClosed, address)
	}
	peer.mu.Lock()
	defer peer.mu.Unlock()
	if err := peer.conn.SetWriteDeadline(time.Now().Add(websocketWriteTimeout)); err != nil {
		return err
	}
	return peer.conn.WriteMessage(websocket.BinaryMessage, data)
}

// Listen serves websocket upgrades on the configured path until ctx is done.
func (t *WebsocketTransport) Listen(ctx context.Context, handle func(address string, data []byte)) error {
	mux := http.NewServeMux()
	mux.Handle(t.path, t.Handler(ctx, handle))
	server := &http.Server{Addr: t.address, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		t.log.Info("Starting websocket server", "address", t.address, "path", t.path)
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("websocket server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errChan:
		return err
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	t.closeAll()
	return server.Shutdown(shutdownCtx)
}

// Handler upgrades each request and reads its frames until the peer goes
// away.
func (t *WebsocketTransport) Handler(ctx context.Context, handle func(address string, data []byte)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := t.upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.log.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		address := r.RemoteAddr
		t.mu.Lock()
		t.peers[address] = &wsPeer{conn: conn}
		t.mu.Unlock()
		t.log.Debug("Websocket peer connected", "address", address)

		defer t.disconnect(ctx, address, conn)
		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					t.log.Warn("Websocket read error", "address", address, "error", err)
				}
				return
			}
			if messageType != websocket.BinaryMessage {
				t.log.Info("Dropping non binary websocket message", "address", address, "type", messageType)
				continue
			}
			handle(address, data)
		}
	})
}

func (t *WebsocketTransport) disconnect(ctx context.Context, address string, conn *websocket.Conn) {
	t.mu.Lock()
	delete(t.peers, address)
	t.mu.Unlock()
	_ = conn.Close()
	t.log.Debug("Websocket peer disconnected", "address", address)
	if t.onDisconnect != nil {
		t.onDisconnect(ctx, address)
	}
}

func (t *WebsocketTransport) closeAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, peer := range t.peers {
		_ = peer.conn.Close()
	}
}
