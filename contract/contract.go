//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-gateway/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport delivers one serialized frame to a peer address.
// Delivery is unordered and unacknowledged.
type Transport interface {
	Send(ctx context.Context, address string, data []byte) error
}

// Listener pumps inbound frames into handle until ctx is done or the
// underlying socket fails.
type Listener interface {
	Listen(ctx context.Context, handle func(address string, data []byte)) error
}

// IAvatarDirectory answers identity and presence questions about avatars.
// The room layer only reads from it.
type IAvatarDirectory interface {
	GetAvatar(avatarID domain.AvatarID) (domain.Avatar, error)
	FindAvatar(name, address string) (domain.Avatar, error)
	GetOnlineAvatars() []domain.Avatar
	IsOnline(avatarID domain.AvatarID) bool
	GetAddress(avatarID domain.AvatarID) (string, bool)
	GetStatusMessage(avatarID domain.AvatarID) string
	GetFriendList(avatarID domain.AvatarID) ([]domain.Contact, error)
	IsFriend(avatarID, friendID domain.AvatarID) bool
	IsIgnoring(avatarID, ignoredID domain.AvatarID) bool
}
