package services

import (
	"chat-gateway/domain"
	"chat-gateway/errors"
	"chat-gateway/mocks"
	"chat-gateway/repositories"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDisk = fmt.Errorf("disk on fire")

func newBadgerRegistry(t *testing.T) (*RoomRegistry, repositories.RoomRepository) {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository := repositories.NewRoomRepository(db, log)
	return NewRoomRegistry(log, repository), repository
}

func cantina(address string) domain.RoomParams {
	return domain.RoomParams{Name: "Cantina", MaxSize: 50, Address: address, SrcAddress: "node1"}
}

func TestRoomRegistry_CreateRoom(t *testing.T) {
	req := require.New(t)
	registry, _ := newBadgerRegistry(t)

	// When
	room, err := registry.CreateRoom(100, cantina("cantina.room"))

	// Then the first room gets id 1 and the creator administers it
	req.NoError(err)
	req.Equal(domain.RoomID(1), room.ID)
	req.True(room.IsAdministrator(100))
	req.True(registry.RoomExists("cantina.room"))

	// And a second room on the same address is rejected, leaving the first untouched
	_, err = registry.CreateRoom(200, domain.RoomParams{Name: "Other", Address: "cantina.room", SrcAddress: "node1"})
	req.ErrorIs(err, errors.ErrAlreadyExists)
	existing, err := registry.GetRoom("cantina.room")
	req.NoError(err)
	req.Same(room, existing)
	req.Equal("Cantina", existing.Name)
}

func TestRoomRegistry_CreateRoom_Validates_Params(t *testing.T) {
	req := require.New(t)
	registry, _ := newBadgerRegistry(t)

	_, err := registry.CreateRoom(100, domain.RoomParams{Address: "nameless.room"})

	req.ErrorIs(err, errors.ErrInvalidArgument)
	req.False(registry.RoomExists("nameless.room"))
}

func TestRoomRegistry_Ids_Are_Never_Reused(t *testing.T) {
	req := require.New(t)
	registry, _ := newBadgerRegistry(t)

	first, err := registry.CreateRoom(100, cantina("a.room"))
	req.NoError(err)
	req.NoError(registry.DestroyRoom(first))

	second, err := registry.CreateRoom(100, cantina("a.room"))
	req.NoError(err)

	req.Greater(second.ID, first.ID)
}

func TestRoomRegistry_DestroyRoom(t *testing.T) {
	req := require.New(t)
	registry, _ := newBadgerRegistry(t)
	room, err := registry.CreateRoom(100, cantina("cantina.room"))
	req.NoError(err)

	req.NoError(registry.DestroyRoom(room))

	_, err = registry.GetRoom("cantina.room")
	req.ErrorIs(err, errors.ErrNotFound)
	// Destroying a stale handle is a no-op
	req.NoError(registry.DestroyRoom(room))
}

func TestRoomRegistry_LoadAll_Round_Trip(t *testing.T) {
	req := require.New(t)
	registry, repository := newBadgerRegistry(t)

	// Given a room with every persisted field and ACL list populated
	params := domain.RoomParams{Name: "Cantina", Topic: "drinks", Password: "secret",
		Attributes: domain.RoomModerated | domain.RoomPersistent, MaxSize: 10,
		Address: "cantina.room", SrcAddress: "node1"}
	created, err := registry.CreateRoom(100, params)
	req.NoError(err)
	req.NoError(registry.AddModerator(created, 7))
	_, err = registry.AddBanned(created, 9)
	req.NoError(err)
	_, err = registry.CreateRoom(100, domain.RoomParams{Name: "Remote", Address: "remote.room", SrcAddress: "node2"})
	req.NoError(err)

	// When a fresh registry reloads node1
	reloaded := NewRoomRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repository)
	count := reloaded.LoadAll("node1")

	// Then
	req.Equal(1, count)
	room, err := reloaded.GetRoom("cantina.room")
	req.NoError(err)
	req.Equal(created.ID, room.ID)
	req.Equal(created.CreatorID, room.CreatorID)
	req.Equal(params.Name, room.Name)
	req.Equal(params.Topic, room.Topic)
	req.Equal(params.Password, room.Password)
	req.Equal(params.Attributes, room.Attributes)
	req.Equal(params.MaxSize, room.MaxSize)
	req.Equal(params.Address, room.Address)
	req.Equal(params.SrcAddress, room.SrcAddress)
	req.Equal([]domain.AvatarID{7}, room.Moderators())
	req.Equal([]domain.AvatarID{100}, room.Administrators())
	req.Equal([]domain.AvatarID{9}, room.Banned())
	req.False(reloaded.RoomExists("remote.room"))

	// And new ids continue after the loaded ones
	next, err := reloaded.CreateRoom(100, cantina("next.room"))
	req.NoError(err)
	req.Greater(next.ID, room.ID)
}

func TestRoomRegistry_LoadAll_Skips_Ids_Stored_By_Other_Nodes(t *testing.T) {
	req := require.New(t)
	registry, repository := newBadgerRegistry(t)

	// Given node1 owns room 1, node2 owns rooms 2 and 3, and room 4 was destroyed
	_, err := registry.CreateRoom(100, cantina("a.room"))
	req.NoError(err)
	_, err = registry.CreateRoom(100, domain.RoomParams{Name: "B", Address: "b.room", SrcAddress: "node2"})
	req.NoError(err)
	_, err = registry.CreateRoom(100, domain.RoomParams{Name: "C", Address: "c.room", SrcAddress: "node2"})
	req.NoError(err)
	gone, err := registry.CreateRoom(100, cantina("gone.room"))
	req.NoError(err)
	req.NoError(registry.DestroyRoom(gone))

	// When node1 restarts and creates a room
	reloaded := NewRoomRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repository)
	req.Equal(1, reloaded.LoadAll("node1"))
	room, err := reloaded.CreateRoom(100, cantina("new.room"))

	// Then the id continues after every id ever stored
	req.NoError(err)
	req.Equal(domain.RoomID(5), room.ID)
}

func TestRoomRegistry_LoadAll_Last_Id_Failure_Keeps_Loaded_Rooms(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIRoomRepository(ctrl)
	repository.EXPECT().LoadRoomsByBaseAddress("node1").Return([]repositories.RoomRecord{
		{ID: 4, CreatorID: 100, Name: "Cantina", Address: "a.room", SrcAddress: "node1"},
	}, nil)
	repository.EXPECT().LastRoomID().Return(uint32(0), errDisk)
	repository.EXPECT().InsertRoom(gomock.Any()).Return(nil)
	repository.EXPECT().InsertAdministrator(uint32(5), uint32(100)).Return(nil)

	registry := NewRoomRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repository)

	req.Equal(1, registry.LoadAll("node1"))
	room, err := registry.CreateRoom(100, cantina("b.room"))
	req.NoError(err)
	req.Equal(domain.RoomID(5), room.ID)
}

func TestRoomRegistry_LoadAll_Failure_Leaves_Registry_Empty(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIRoomRepository(ctrl)
	repository.EXPECT().LoadRoomsByBaseAddress("node1").Return(nil, errDisk)

	registry := NewRoomRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repository)

	req.Equal(0, registry.LoadAll("node1"))
	req.Empty(registry.ListRooms("", ""))
}

func TestRoomRegistry_CreateRoom_Storage_Failure_Rolls_Back(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIRoomRepository(ctrl)
	registry := NewRoomRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repository)

	t.Run("room insert fails", func(t *testing.T) {
		req := require.New(t)
		repository.EXPECT().InsertRoom(gomock.Any()).Return(errDisk).Times(1)

		room, err := registry.CreateRoom(100, cantina("a.room"))

		req.ErrorIs(err, errors.ErrStorageFailure)
		req.Nil(room)
		req.False(registry.RoomExists("a.room"))
	})

	t.Run("creator administrator insert fails", func(t *testing.T) {
		req := require.New(t)
		repository.EXPECT().InsertRoom(gomock.Any()).Return(nil).Times(1)
		repository.EXPECT().InsertAdministrator(uint32(2), uint32(100)).Return(errDisk).Times(1)
		repository.EXPECT().DeleteRoomByID(uint32(2)).Return(nil).Times(1)

		_, err := registry.CreateRoom(100, cantina("a.room"))

		req.ErrorIs(err, errors.ErrStorageFailure)
		req.False(registry.RoomExists("a.room"))
	})

	t.Run("next create does not reuse burnt ids", func(t *testing.T) {
		req := require.New(t)
		repository.EXPECT().InsertRoom(gomock.Any()).Return(nil).Times(1)
		repository.EXPECT().InsertAdministrator(uint32(3), uint32(100)).Return(nil).Times(1)

		room, err := registry.CreateRoom(100, cantina("a.room"))

		req.NoError(err)
		req.Equal(domain.RoomID(3), room.ID)
	})
}

func TestRoomRegistry_Acl_Storage_Failure_Leaves_Room_Untouched(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIRoomRepository(ctrl)
	registry := NewRoomRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repository)

	repository.EXPECT().InsertRoom(gomock.Any()).Return(nil)
	repository.EXPECT().InsertAdministrator(uint32(1), uint32(100)).Return(nil)
	room, err := registry.CreateRoom(100, cantina("a.room"))
	req.NoError(err)
	req.NoError(registry.EnterRoom(room, 5, "peer-5", ""))

	// Given storage refuses every write
	repository.EXPECT().InsertModerator(uint32(1), uint32(5)).Return(errDisk)
	repository.EXPECT().InsertBanned(uint32(1), uint32(5)).Return(errDisk)

	// When
	errModerator := registry.AddModerator(room, 5)
	evicted, errBan := registry.AddBanned(room, 5)

	// Then
	req.ErrorIs(errModerator, errors.ErrStorageFailure)
	req.ErrorIs(errBan, errors.ErrStorageFailure)
	req.False(evicted)
	req.False(room.IsModerator(5))
	req.False(room.IsBanned(5))
	req.True(room.IsMember(5))
}

func TestRoomRegistry_Acl_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIRoomRepository(ctrl)
	registry := NewRoomRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repository)

	repository.EXPECT().InsertRoom(gomock.Any()).Return(nil)
	repository.EXPECT().InsertAdministrator(uint32(1), uint32(100)).Return(nil)
	room, err := registry.CreateRoom(100, cantina("a.room"))
	req.NoError(err)

	// Storage is only touched when the set changes
	repository.EXPECT().InsertModerator(uint32(1), uint32(5)).Return(nil).Times(1)
	req.NoError(registry.AddModerator(room, 5))
	req.NoError(registry.AddModerator(room, 5))
	req.NoError(registry.RemoveBanned(room, 5))
	req.NoError(registry.AddAdministrator(room, 100))
	req.True(room.IsModerator(5))
}

func TestRoomRegistry_Ban_Evicts_Member(t *testing.T) {
	req := require.New(t)
	registry, _ := newBadgerRegistry(t)
	room, err := registry.CreateRoom(100, cantina("cantina.room"))
	req.NoError(err)
	req.NoError(registry.EnterRoom(room, 5, "peer-5", ""))

	evicted, err := registry.AddBanned(room, 5)

	req.NoError(err)
	req.True(evicted)
	req.False(room.IsMember(5))
	req.ErrorIs(registry.EnterRoom(room, 5, "peer-5", ""), errors.ErrBanned)

	req.NoError(registry.RemoveBanned(room, 5))
	req.NoError(registry.EnterRoom(room, 5, "peer-5", ""))
}

func TestRoomRegistry_Enter_Scenarios(t *testing.T) {
	registry, _ := newBadgerRegistry(t)

	t.Run("wrong password leaves membership unchanged", func(t *testing.T) {
		req := require.New(t)
		params := cantina("secret.room")
		params.Password = "secret"
		room, err := registry.CreateRoom(100, params)
		req.NoError(err)

		err = registry.EnterRoom(room, 5, "peer-5", "wrong")

		req.ErrorIs(err, errors.ErrBadPassword)
		req.Empty(room.GetConnectedAddresses())
	})

	t.Run("second avatar cannot enter a room of one", func(t *testing.T) {
		req := require.New(t)
		params := cantina("tiny.room")
		params.MaxSize = 1
		room, err := registry.CreateRoom(100, params)
		req.NoError(err)

		req.NoError(registry.EnterRoom(room, 5, "peer-5", ""))
		err = registry.EnterRoom(room, 6, "peer-6", "")

		req.ErrorIs(err, errors.ErrRoomFull)
		req.Equal(1, room.Size())
	})
}

func TestRoomRegistry_Kick_Returns_Addresses_Before_Removal(t *testing.T) {
	req := require.New(t)
	registry, _ := newBadgerRegistry(t)
	room, err := registry.CreateRoom(100, cantina("cantina.room"))
	req.NoError(err)
	req.NoError(registry.EnterRoom(room, 100, "peer-a", ""))
	req.NoError(registry.EnterRoom(room, 5, "peer-b", ""))

	addresses, err := registry.KickAvatar(room, 5)

	req.NoError(err)
	req.Equal([]string{"peer-a", "peer-b"}, addresses)
	req.Equal([]string{"peer-a"}, room.GetConnectedAddresses())
	req.False(room.IsBanned(5))

	_, err = registry.KickAvatar(room, 5)
	req.ErrorIs(err, errors.ErrNotInRoom)
}

func TestRoomRegistry_ListRooms(t *testing.T) {
	req := require.New(t)
	registry, _ := newBadgerRegistry(t)
	for _, params := range []domain.RoomParams{
		{Name: "Cantina", Address: "a", SrcAddress: "SWG.node1"},
		{Name: "Mos Eisley Cantina", Address: "b", SrcAddress: "SWG.node2"},
		{Name: "Hangar", Address: "c", SrcAddress: "SWG.node1"},
	} {
		_, err := registry.CreateRoom(100, params)
		req.NoError(err)
	}

	names := func(rooms []*domain.Room) []string {
		var res []string
		for _, room := range rooms {
			res = append(res, room.Name)
		}
		return res
	}

	req.Equal([]string{"Cantina", "Mos Eisley Cantina", "Hangar"}, names(registry.ListRooms("", "")))
	req.Equal([]string{"Cantina", "Mos Eisley Cantina"}, names(registry.ListRooms("CANTINA", "")))
	req.Equal([]string{"Cantina"}, names(registry.ListRooms("cantina", "SWG.node1")))

	room, err := registry.GetRoom("c")
	req.NoError(err)
	req.NoError(registry.EnterRoom(room, 5, "peer-5", ""))
	req.Equal([]string{"Hangar"}, names(registry.ListJoinedRooms(5)))
	req.Equal(RoomStats{Rooms: 3, Members: 1}, registry.Stats())
}

func TestRoomRegistry_Concurrent_Acl_Changes_Persist_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIRoomRepository(ctrl)
	registry := NewRoomRegistry(logs.GetLoggerFromLevel(slog.LevelDebug), repository)
	repository.EXPECT().InsertRoom(gomock.Any()).Return(nil)
	repository.EXPECT().InsertAdministrator(uint32(1), uint32(100)).Return(nil)
	room, err := registry.CreateRoom(100, cantina("a.room"))
	req.NoError(err)

	// Only one of the racing callers may write the row
	repository.EXPECT().InsertModerator(uint32(1), uint32(7)).Return(nil).Times(1)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = registry.AddModerator(room, 7)
		}()
	}
	wg.Wait()

	req.True(room.IsModerator(7))
}
