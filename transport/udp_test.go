package transport

import (
	"chat-gateway/errors"
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type datagram struct {
	address string
	data    []byte
}

func TestUDPTransport_Round_Trip(t *testing.T) {
	req := require.New(t)
	server, err := NewUDPTransport(logs.GetLoggerFromLevel(slog.LevelDebug), "127.0.0.1:0")
	req.NoError(err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan datagram, 1)
	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Listen(ctx, func(address string, data []byte) {
			received <- datagram{address: address, data: data}
		})
	}()

	client, err := net.ListenPacket("udp", "127.0.0.1:0")
	req.NoError(err)
	defer client.Close()

	// When a peer sends a frame
	_, err = client.WriteTo([]byte{0x06, 0x00, 0x01}, server.LocalAddr())
	req.NoError(err)

	// Then it is handed over with the peer's address
	var got datagram
	select {
	case got = <-received:
	case <-time.After(time.Second):
		req.Fail("no datagram received")
	}
	req.Equal(client.LocalAddr().String(), got.address)
	req.Equal([]byte{0x06, 0x00, 0x01}, got.data)

	// And the reply reaches the peer
	req.NoError(server.Send(ctx, got.address, []byte{0x06, 0x00}))
	req.NoError(client.SetReadDeadline(time.Now().Add(time.Second)))
	buf := make([]byte, 16)
	n, _, err := client.ReadFrom(buf)
	req.NoError(err)
	req.Equal([]byte{0x06, 0x00}, buf[:n])

	// And cancelling stops the listener cleanly
	cancel()
	req.NoError(<-errChan)
	req.ErrorIs(server.Send(context.Background(), got.address, []byte{0x01}), errors.ErrTransportClosed)
}

func TestUDPTransport_Bad_Address(t *testing.T) {
	req := require.New(t)
	server, err := NewUDPTransport(logs.GetLoggerFromLevel(slog.LevelDebug), "127.0.0.1:0")
	req.NoError(err)
	defer server.Close()

	req.Error(server.Send(context.Background(), "not an address", []byte{0x01}))
}

func TestUDPTransport_Listen_After_Close(t *testing.T) {
	req := require.New(t)
	server, err := NewUDPTransport(logs.GetLoggerFromLevel(slog.LevelDebug), "127.0.0.1:0")
	req.NoError(err)
	req.NoError(server.Close())

	err = server.Listen(context.Background(), func(string, []byte) {})

	req.ErrorIs(err, errors.ErrTransportClosed)
}
