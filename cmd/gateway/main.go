package main

import (
	"chat-gateway/contract"
	"chat-gateway/internal"
	"chat-gateway/repositories"
	"chat-gateway/runtime"
	"chat-gateway/runtime/workers"
	"chat-gateway/services"
	"chat-gateway/transport"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes reported to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const healthService = "chat-gateway"

// link is a transport the node both sends through and listens on.
type link interface {
	contract.Transport
	contract.Listener
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gateway terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal stops the node, so
// that deferred cleanup always runs before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	avatarRepository, err := repositories.NewAvatarRepository(db)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = avatarRepository.Close() }()
	mailRepository, err := repositories.NewPersistentMessageRepository(db, log)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = mailRepository.Close() }()

	// 3. Transport
	var node *runtime.Node
	var peers link
	switch config.Transport {
	case internal.TransportWebsocket:
		ws := transport.NewWebsocketTransport(log, config.ListenAddress(), config.WsPath)
		ws.OnDisconnect(func(ctx context.Context, address string) {
			node.Disconnect(ctx, address)
		})
		peers = ws
	default:
		udp, err := transport.NewUDPTransport(log, config.ListenAddress())
		if err != nil {
			return exitRuntime, err
		}
		peers = udp
	}

	// 4. Node & supervised workers
	node = runtime.NewNode(log, config.NodeAddress, config.ApiVersion,
		services.NewRoomRegistry(log, repositories.NewRoomRepository(db, log)),
		services.NewAvatarService(log, avatarRepository),
		services.NewPersistentMessageService(log, mailRepository),
		peers,
		workers.NewSupervisor(log, config.RestartInterval),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	node.Start(ctx,
		workers.NewListenerWorker(log, peers, node),
		workers.NewHealthWorker(log, config.HealthAddress(), healthService),
		workers.NewStatsWorker(log, node, config.StatsInterval),
	)
	log.Info("Gateway stopped cleanly")
	return exitOK, nil
}
