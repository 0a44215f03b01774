package repositories

import (
	"chat-gateway/errors"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Insert_Room_And_Load_By_Base_Address(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestDB(t), slog.Default())

	// Given two rooms on node1 and one on node2
	cantina := RoomRecord{ID: 1, CreatorID: 100, Name: "cantina", Topic: "drinks", Password: "han",
		Attributes: 3, MaxSize: 10, Address: "SWG.node1.cantina", SrcAddress: "node1"}
	hangar := RoomRecord{ID: 2, CreatorID: 101, Name: "hangar", Address: "SWG.node1.hangar", SrcAddress: "node1"}
	elsewhere := RoomRecord{ID: 3, CreatorID: 102, Name: "elsewhere", Address: "SWG.node2.x", SrcAddress: "node2"}
	for _, room := range []RoomRecord{cantina, hangar, elsewhere} {
		req.NoError(repository.InsertRoom(room))
	}
	req.NoError(repository.InsertAdministrator(1, 100))
	req.NoError(repository.InsertModerator(1, 7))
	req.NoError(repository.InsertBanned(1, 9))

	// When
	rooms, err := repository.LoadRoomsByBaseAddress("node1")

	// Then only node1 rooms come back, in id order, with their ACL rows
	req.NoError(err)
	req.Len(rooms, 2)
	cantina.Administrators = []uint32{100}
	cantina.Moderators = []uint32{7}
	cantina.Banned = []uint32{9}
	req.Equal(cantina, rooms[0])
	req.Equal(hangar, rooms[1])

	all, err := repository.ListRooms()
	req.NoError(err)
	req.Len(all, 3)
}

func Test_Insert_Room_Twice_Is_Rejected(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestDB(t), slog.Default())
	room := RoomRecord{ID: 1, Name: "cantina", SrcAddress: "node1"}

	req.NoError(repository.InsertRoom(room))
	err := repository.InsertRoom(room)

	req.ErrorIs(err, errors.ErrAlreadyExists)
}

func Test_Delete_Room_Removes_Acl_Rows(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestDB(t), slog.Default())

	// Given a room with every ACL kind populated
	req.NoError(repository.InsertRoom(RoomRecord{ID: 5, Name: "cantina", SrcAddress: "node1"}))
	req.NoError(repository.InsertAdministrator(5, 1))
	req.NoError(repository.InsertModerator(5, 2))
	req.NoError(repository.InsertBanned(5, 3))

	// When
	req.NoError(repository.DeleteRoomByID(5))

	// Then recreating the same id starts from clean ACL tables
	req.NoError(repository.InsertRoom(RoomRecord{ID: 5, Name: "cantina", SrcAddress: "node1"}))
	rooms, err := repository.LoadRoomsByBaseAddress("node1")
	req.NoError(err)
	req.Len(rooms, 1)
	req.Empty(rooms[0].Administrators)
	req.Empty(rooms[0].Moderators)
	req.Empty(rooms[0].Banned)

	// And deleting an unknown id is a no-op
	req.NoError(repository.DeleteRoomByID(42))
}

func Test_Delete_Acl_Row(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestDB(t), slog.Default())
	req.NoError(repository.InsertRoom(RoomRecord{ID: 1, Name: "cantina", SrcAddress: "node1"}))
	req.NoError(repository.InsertModerator(1, 2))
	req.NoError(repository.InsertModerator(1, 3))

	req.NoError(repository.DeleteModerator(1, 2))

	rooms, err := repository.LoadRoomsByBaseAddress("node1")
	req.NoError(err)
	req.Equal([]uint32{3}, rooms[0].Moderators)
}

func Test_Load_Skips_Undecodable_Rows(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	repository := NewRoomRepository(db, slog.Default())
	req.NoError(repository.InsertRoom(RoomRecord{ID: 1, Name: "good", SrcAddress: "node1"}))

	// Given a corrupt record indexed under the same node
	req.NoError(db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(roomKey(2), []byte{0xff, 0xff, 0xff}); err != nil {
			return err
		}
		return txn.Set(roomBaseKey("node1", 2), nil)
	}))

	// When
	rooms, err := repository.LoadRoomsByBaseAddress("node1")

	// Then the bad row is skipped and the good one survives
	req.NoError(err)
	req.Len(rooms, 1)
	req.Equal("good", rooms[0].Name)
}

func Test_Last_Room_Id_Survives_Deletes(t *testing.T) {
	req := require.New(t)
	repository := NewRoomRepository(openTestDB(t), slog.Default())

	last, err := repository.LastRoomID()
	req.NoError(err)
	req.Zero(last)

	// Given rooms from two nodes, inserted out of order
	req.NoError(repository.InsertRoom(RoomRecord{ID: 3, Name: "b", SrcAddress: "node2"}))
	req.NoError(repository.InsertRoom(RoomRecord{ID: 1, Name: "a", SrcAddress: "node1"}))
	req.NoError(repository.InsertRoom(RoomRecord{ID: 7, Name: "c", SrcAddress: "node1"}))

	// When the highest one is deleted
	req.NoError(repository.DeleteRoomByID(7))

	// Then its id still counts
	last, err = repository.LastRoomID()
	req.NoError(err)
	req.Equal(uint32(7), last)
}
