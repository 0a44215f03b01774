// Package runtime wires sessions, the dispatch table and supervised workers
// around the room registry. It holds no room rules of its own.
package runtime

import (
	"chat-gateway/contract"
	"chat-gateway/protocol"
	"chat-gateway/services"
	"context"
	"log/slog"
	"sync"
)

// Node is one gateway instance. Every handler runs under mu, which makes
// all room and ACL mutation of the node sequential.
type Node struct {
	mu         sync.Mutex
	log        *slog.Logger
	address    string
	apiVersion uint32
	registry   *services.RoomRegistry
	avatars    *services.AvatarService
	directory  contract.IAvatarDirectory
	mail       *services.PersistentMessageService
	hub        *SessionHub
	supervisor contract.ISupervisor
	handlers   map[protocol.RequestType]handlerFunc
}

type NodeStats struct {
	Rooms    int
	Members  int
	Sessions int
	Online   int
}

func NewNode(log *slog.Logger, address string, apiVersion uint32,
	registry *services.RoomRegistry, avatars *services.AvatarService, mail *services.PersistentMessageService,
	transport contract.Transport, supervisor contract.ISupervisor) *Node {
	n := &Node{
		log:        log,
		address:    address,
		apiVersion: apiVersion,
		registry:   registry,
		avatars:    avatars,
		directory:  avatars,
		mail:       mail,
		supervisor: supervisor,
	}
	n.hub = NewSessionHub(log, transport, func(peer string) *Session {
		return newSession(n, transport, peer)
	})
	n.handlers = n.handlerTable()
	return n
}

// Receive hands one inbound frame to the session of its peer.
func (n *Node) Receive(ctx context.Context, address string, data []byte) {
	n.hub.Session(address).OnIncoming(ctx, data)
}

// Disconnect logs out every avatar that came through address and forgets
// its session. Connection oriented transports call it when a peer goes away.
func (n *Node) Disconnect(ctx context.Context, address string) {
	n.mu.Lock()
	for _, avatar := range n.avatars.LogoutPeer(address) {
		n.leaveAllRooms(ctx, avatar.ID)
		n.notifyFriendLogout(ctx, avatar)
	}
	n.mu.Unlock()
	if n.hub.Evict(address) {
		n.log.Debug("Session evicted", "address", address)
	}
}

// Start restores the node's rooms and runs the supervised workers until ctx
// is done.
func (n *Node) Start(ctx context.Context, workers ...contract.Worker) {
	n.registry.LoadAll(n.address)
	n.supervisor.Add(workers...)
	n.log.Info("Starting node and all supervised workers", "address", n.address)
	n.supervisor.Run(ctx)
}

func (n *Node) Stop() {
	n.supervisor.Stop()
}

func (n *Node) Stats() NodeStats {
	rooms := n.registry.Stats()
	return NodeStats{
		Rooms:    rooms.Rooms,
		Members:  rooms.Members,
		Sessions: n.hub.Len(),
		Online:   len(n.directory.GetOnlineAvatars()),
	}
}
