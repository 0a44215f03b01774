package workers

import (
	"chat-gateway/contract"
	"chat-gateway/errors"
	"context"
	stderrors "errors"
	"log/slog"
)

// Receiver is the node side of an inbound transport.
type Receiver interface {
	Receive(ctx context.Context, address string, data []byte)
}

// ListenerWorker pumps frames from a transport listener into the node.
type ListenerWorker struct {
	log      *slog.Logger
	listener contract.Listener
	receiver Receiver
}

func NewListenerWorker(log *slog.Logger, listener contract.Listener, receiver Receiver) *ListenerWorker {
	return &ListenerWorker{log: log, listener: listener, receiver: receiver}
}

func (w *ListenerWorker) Run(ctx context.Context) error {
	w.log.Info("Starting transport listener")
	err := w.listener.Listen(ctx, func(address string, data []byte) {
		w.receiver.Receive(ctx, address, data)
	})
	if ctx.Err() != nil {
		return nil
	}
	// A closed transport never comes back, so restarting would spin.
	if stderrors.Is(err, errors.ErrTransportClosed) {
		w.log.Error("Transport closed, listener stops", "error", err)
		return nil
	}
	return err
}
