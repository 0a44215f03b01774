// Package transport carries request and notification frames between the
// node and its peers. A peer is identified by its address string.
package transport

import (
	"chat-gateway/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
)

const maxDatagramSize = 65535

// UDPTransport sends and receives one frame per datagram. The socket is
// bound at construction so the local address is known before listening.
type UDPTransport struct {
	log  *slog.Logger
	conn net.PacketConn
}

func NewUDPTransport(log *slog.Logger, address string) (*UDPTransport, error) {
	conn, err := net.ListenPacket("udp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", address, err)
	}
	return &UDPTransport{log: log, conn: conn}, nil
}

func (t *UDPTransport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

func (t *UDPTransport) Send(_ context.Context, address string, data []byte) error {
	addr, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", address, err)
	}
	if _, err = t.conn.WriteTo(data, addr); err != nil {
		if stderrors.Is(err, net.ErrClosed) {
			return errors.ErrTransportClosed
		}
		return err
	}
	return nil
}

// Listen reads datagrams until ctx is done, which also closes the socket.
func (t *UDPTransport) Listen(ctx context.Context, handle func(address string, data []byte)) error {
	stop := context.AfterFunc(ctx, func() { _ = t.conn.Close() })
	defer stop()

	t.log.Info("Listening for datagrams", "address", t.conn.LocalAddr().String())
	buf := make([]byte, maxDatagramSize)
	for {
		n, addr, err := t.conn.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if stderrors.Is(err, net.ErrClosed) {
				return errors.ErrTransportClosed
			}
			return fmt.Errorf("read datagram: %w", err)
		}
		handle(addr.String(), append([]byte(nil), buf[:n]...))
	}
}

func (t *UDPTransport) Close() error {
	return t.conn.Close()
}
