package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthWorker serves the standard gRPC health service for the gateway.
// The service reports SERVING while the worker runs.
type HealthWorker struct {
	log     *slog.Logger
	address string
	service string
}

func NewHealthWorker(log *slog.Logger, address, service string) *HealthWorker {
	return &HealthWorker{log: log, address: address, service: service}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", w.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", w.address, err)
	}

	s := grpc.NewServer()
	status := health.NewServer()
	healthpb.RegisterHealthServer(s, status)
	status.SetServingStatus(w.service, healthpb.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting health server", "address", listener.Addr().String(), "service", w.service)
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("health server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		status.Shutdown()
		s.GracefulStop()
		w.log.Info("Health server stopped")
		return nil
	case err := <-errChan:
		s.Stop()
		return err
	}
}
