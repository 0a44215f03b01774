package services

import (
	"chat-gateway/domain"
	"chat-gateway/errors"
	"chat-gateway/repositories"
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// RoomRegistry is the only owner of the node's rooms. Everything else
// borrows *domain.Room handles for the duration of a call.
type RoomRegistry struct {
	mu         sync.Mutex
	log        *slog.Logger
	repository repositories.IRoomRepository
	rooms      map[string]*domain.Room
	nextRoomID domain.RoomID
}

type RoomStats struct {
	Rooms   int
	Members int
}

func NewRoomRegistry(log *slog.Logger, repository repositories.IRoomRepository) *RoomRegistry {
	return &RoomRegistry{
		log:        log,
		repository: repository,
		rooms:      make(map[string]*domain.Room),
		nextRoomID: 1,
	}
}

// LoadAll restores the rooms created by baseAddress and returns how many
// were loaded. A failed load is logged and leaves the registry as it was.
// New ids continue after the highest id stored by any node, destroyed rooms
// included.
func (r *RoomRegistry) LoadAll(baseAddress string) int {
	records, err := r.repository.LoadRoomsByBaseAddress(baseAddress)
	if err != nil {
		r.log.Error("Failed to load rooms", "base_address", baseAddress, "error", err)
		return 0
	}
	last, err := r.repository.LastRoomID()
	if err != nil {
		r.log.Error("Failed to read last room id", "error", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if next := domain.RoomID(last) + 1; next > r.nextRoomID {
		r.nextRoomID = next
	}
	loaded := 0
	for _, record := range records {
		if _, ok := r.rooms[record.Address]; ok {
			r.log.Warn("Skipping room with duplicate address", "room", record.Address, "room_id", record.ID)
			continue
		}
		room := fromRecord(record)
		r.rooms[room.Address] = room
		if room.ID >= r.nextRoomID {
			r.nextRoomID = room.ID + 1
		}
		loaded++
	}
	r.log.Info(fmt.Sprintf("%d rooms loaded", loaded), "base_address", baseAddress)
	return loaded
}

// CreateRoom inserts and persists a new room. The creator is recorded as
// its first administrator. On any storage failure the room is removed
// again and ErrStorageFailure is returned; the id it consumed stays burnt.
func (r *RoomRegistry) CreateRoom(creatorID domain.AvatarID, params domain.RoomParams) (*domain.Room, error) {
	if err := ValidateRoomParams(params); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[params.Address]; ok {
		return nil, fmt.Errorf("%w: room %s", errors.ErrAlreadyExists, params.Address)
	}

	id := r.nextRoomID
	r.nextRoomID++
	room := domain.NewRoom(id, creatorID, params)
	r.rooms[room.Address] = room

	if err := r.repository.InsertRoom(toRecord(room)); err != nil {
		delete(r.rooms, room.Address)
		return nil, r.storageFailure("insert room", room, err)
	}
	if err := r.repository.InsertAdministrator(uint32(id), uint32(creatorID)); err != nil {
		delete(r.rooms, room.Address)
		if cleanupErr := r.repository.DeleteRoomByID(uint32(id)); cleanupErr != nil {
			r.log.Error("Failed to clean up half created room", "room", room.Address, "error", cleanupErr)
		}
		return nil, r.storageFailure("insert creator administrator", room, err)
	}
	room.AddAdministrator(creatorID)
	return room, nil
}

// DestroyRoom removes the room from memory and storage. A handle that is
// no longer registered is ignored.
func (r *RoomRegistry) DestroyRoom(room *domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.owns(room) {
		return nil
	}
	delete(r.rooms, room.Address)
	if err := r.repository.DeleteRoomByID(uint32(room.ID)); err != nil {
		r.rooms[room.Address] = room
		return r.storageFailure("delete room", room, err)
	}
	return nil
}

func (r *RoomRegistry) GetRoom(address string) (*domain.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[address]
	if !ok {
		return nil, fmt.Errorf("%w: room %s", errors.ErrNotFound, address)
	}
	return room, nil
}

func (r *RoomRegistry) RoomExists(address string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rooms[address]
	return ok
}

// ListRooms returns the rooms whose name contains filter, ignoring case.
// A non-empty startNode also restricts the result to rooms whose source
// address starts with it. Rooms are sorted by id.
func (r *RoomRegistry) ListRooms(filter, startNode string) []*domain.Room {
	return r.snapshot(func(room *domain.Room) bool {
		return room.MatchesFilter(filter) && strings.HasPrefix(room.SrcAddress, startNode)
	})
}

func (r *RoomRegistry) ListJoinedRooms(avatarID domain.AvatarID) []*domain.Room {
	return r.snapshot(func(room *domain.Room) bool {
		return room.IsMember(avatarID)
	})
}

func (r *RoomRegistry) snapshot(keep func(room *domain.Room) bool) []*domain.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	rooms := lo.Filter(lo.Values(r.rooms), func(room *domain.Room, _ int) bool {
		return keep(room)
	})
	slices.SortFunc(rooms, func(a, b *domain.Room) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return rooms
}

func (r *RoomRegistry) EnterRoom(room *domain.Room, avatarID domain.AvatarID, address, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.owns(room) {
		return fmt.Errorf("%w: room %s", errors.ErrNotFound, room.Address)
	}
	return room.Enter(avatarID, address, password)
}

func (r *RoomRegistry) LeaveRoom(room *domain.Room, avatarID domain.AvatarID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.owns(room) {
		return fmt.Errorf("%w: room %s", errors.ErrNotFound, room.Address)
	}
	return room.Leave(avatarID)
}

// KickAvatar removes a member without banning it. It returns the member
// addresses as they were just before the removal so that every one of
// them, the kicked avatar included, can be told.
func (r *RoomRegistry) KickAvatar(room *domain.Room, avatarID domain.AvatarID) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.owns(room) {
		return nil, fmt.Errorf("%w: room %s", errors.ErrNotFound, room.Address)
	}
	addresses := room.GetConnectedAddresses()
	if err := room.Leave(avatarID); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *RoomRegistry) NextMessageID(room *domain.Room) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return room.NextMessageID()
}

func (r *RoomRegistry) AddModerator(room *domain.Room, avatarID domain.AvatarID) error {
	return r.changeACL(room, avatarID, "add moderator",
		func() bool { return !room.IsModerator(avatarID) },
		r.repository.InsertModerator, func() { room.AddModerator(avatarID) })
}

func (r *RoomRegistry) RemoveModerator(room *domain.Room, avatarID domain.AvatarID) error {
	return r.changeACL(room, avatarID, "remove moderator",
		func() bool { return room.IsModerator(avatarID) },
		r.repository.DeleteModerator, func() { room.RemoveModerator(avatarID) })
}

func (r *RoomRegistry) AddAdministrator(room *domain.Room, avatarID domain.AvatarID) error {
	return r.changeACL(room, avatarID, "add administrator",
		func() bool { return !room.IsAdministrator(avatarID) },
		r.repository.InsertAdministrator, func() { room.AddAdministrator(avatarID) })
}

func (r *RoomRegistry) RemoveAdministrator(room *domain.Room, avatarID domain.AvatarID) error {
	return r.changeACL(room, avatarID, "remove administrator",
		func() bool { return room.IsAdministrator(avatarID) },
		r.repository.DeleteAdministrator, func() { room.RemoveAdministrator(avatarID) })
}

// AddBanned bans the avatar and evicts it if it is a member. The returned
// flag reports the eviction.
func (r *RoomRegistry) AddBanned(room *domain.Room, avatarID domain.AvatarID) (bool, error) {
	evicted := false
	err := r.changeACL(room, avatarID, "add banned",
		func() bool { return !room.IsBanned(avatarID) },
		r.repository.InsertBanned, func() { _, evicted = room.AddBanned(avatarID) })
	return evicted, err
}

func (r *RoomRegistry) RemoveBanned(room *domain.Room, avatarID domain.AvatarID) error {
	return r.changeACL(room, avatarID, "remove banned",
		func() bool { return room.IsBanned(avatarID) },
		r.repository.DeleteBanned, func() { room.RemoveBanned(avatarID) })
}

// Invites are not persisted.

func (r *RoomRegistry) AddInvite(room *domain.Room, avatarID domain.AvatarID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.owns(room) {
		return fmt.Errorf("%w: room %s", errors.ErrNotFound, room.Address)
	}
	room.AddInvite(avatarID)
	return nil
}

func (r *RoomRegistry) RemoveInvite(room *domain.Room, avatarID domain.AvatarID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.owns(room) {
		return fmt.Errorf("%w: room %s", errors.ErrNotFound, room.Address)
	}
	room.RemoveInvite(avatarID)
	return nil
}

func (r *RoomRegistry) Stats() RoomStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	members := lo.SumBy(lo.Values(r.rooms), func(room *domain.Room) int {
		return room.Size()
	})
	return RoomStats{Rooms: len(r.rooms), Members: members}
}

// changeACL writes to storage first and only then applies the change in
// memory, so a storage failure leaves the room untouched. An ACL change
// that would not modify the set is a successful no-op. changes is evaluated
// under the registry lock.
func (r *RoomRegistry) changeACL(room *domain.Room, avatarID domain.AvatarID, op string,
	changes func() bool, persist func(roomID, avatarID uint32) error, apply func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.owns(room) {
		return fmt.Errorf("%w: room %s", errors.ErrNotFound, room.Address)
	}
	if !changes() {
		return nil
	}
	if err := persist(uint32(room.ID), uint32(avatarID)); err != nil {
		return r.storageFailure(op, room, err)
	}
	apply()
	return nil
}

func (r *RoomRegistry) owns(room *domain.Room) bool {
	return room != nil && r.rooms[room.Address] == room
}

func (r *RoomRegistry) storageFailure(op string, room *domain.Room, err error) error {
	r.log.Error("Room storage failure", "op", op, "room", room.Address, "room_id", room.ID, "error", err)
	return fmt.Errorf("%w: %s %s: %v", errors.ErrStorageFailure, op, room.Address, err)
}

func toRecord(room *domain.Room) repositories.RoomRecord {
	return repositories.RoomRecord{
		ID:         uint32(room.ID),
		CreatorID:  uint32(room.CreatorID),
		Name:       room.Name,
		Topic:      room.Topic,
		Password:   room.Password,
		Attributes: uint32(room.Attributes),
		MaxSize:    room.MaxSize,
		Address:    room.Address,
		SrcAddress: room.SrcAddress,
	}
}

func fromRecord(record repositories.RoomRecord) *domain.Room {
	room := domain.NewRoom(domain.RoomID(record.ID), domain.AvatarID(record.CreatorID), domain.RoomParams{
		Name:       record.Name,
		Topic:      record.Topic,
		Password:   record.Password,
		Attributes: domain.RoomAttributes(record.Attributes),
		MaxSize:    record.MaxSize,
		Address:    record.Address,
		SrcAddress: record.SrcAddress,
	})
	for _, id := range record.Moderators {
		room.AddModerator(domain.AvatarID(id))
	}
	for _, id := range record.Administrators {
		room.AddAdministrator(domain.AvatarID(id))
	}
	for _, id := range record.Banned {
		room.AddBanned(domain.AvatarID(id))
	}
	return room
}
