//go:generate go run go.uber.org/mock/mockgen -source=room.go -destination=../mocks/mock_room_repository.go -package=mocks
package repositories

import (
	"chat-gateway/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/encoding/protowire"
)

// IRoomRepository is the persistence collaborator of the room registry.
type IRoomRepository interface {
	LoadRoomsByBaseAddress(baseAddress string) ([]RoomRecord, error)
	ListRooms() ([]RoomRecord, error)
	LastRoomID() (uint32, error)
	InsertRoom(room RoomRecord) error
	DeleteRoomByID(roomID uint32) error
	InsertModerator(roomID, avatarID uint32) error
	DeleteModerator(roomID, avatarID uint32) error
	InsertAdministrator(roomID, avatarID uint32) error
	DeleteAdministrator(roomID, avatarID uint32) error
	InsertBanned(roomID, avatarID uint32) error
	DeleteBanned(roomID, avatarID uint32) error
}

type RoomRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRoomRepository(db *badger.DB, log *slog.Logger) RoomRepository {
	return RoomRepository{db: db, log: log}
}

// RoomRecord is the stored form of a room. ACL lists are kept under their
// own keys and only filled in by the load methods.
type RoomRecord struct {
	ID             uint32
	CreatorID      uint32
	Name           string
	Topic          string
	Password       string
	Attributes     uint32
	MaxSize        uint32
	Address        string
	SrcAddress     string
	Moderators     []uint32
	Administrators []uint32
	Banned         []uint32
}

// aclKind names one of the per-room avatar lists. All three share the
// (room_id, member_id) shape.
type aclKind string

const (
	aclModerator     aclKind = "moderator"
	aclAdministrator aclKind = "administrator"
	aclBanned        aclKind = "banned"
)

var aclKinds = []aclKind{aclModerator, aclAdministrator, aclBanned}

// Key layout:
//
//	room:{id}                      -> RoomRecord
//	room_base:{src}:{id}           -> empty, index for LoadRoomsByBaseAddress
//	room_acl:{kind}:{id}:{avatar}  -> empty
//	room_last_id                   -> highest id ever inserted
//
// Ids are zero padded to ten digits so prefix scans come back in id order.
func roomKey(id uint32) []byte {
	return []byte(fmt.Sprintf("room:%010d", id))
}

var roomLastIDKey = []byte("room_last_id")

func roomBasePrefix(base string) []byte {
	return []byte(fmt.Sprintf("room_base:%s:", base))
}

func roomBaseKey(base string, id uint32) []byte {
	return append(roomBasePrefix(base), fmt.Sprintf("%010d", id)...)
}

func aclPrefix(kind aclKind, roomID uint32) []byte {
	return []byte(fmt.Sprintf("room_acl:%s:%010d:", kind, roomID))
}

func aclKey(kind aclKind, roomID, avatarID uint32) []byte {
	return append(aclPrefix(kind, roomID), fmt.Sprintf("%010d", avatarID)...)
}

// InsertRoom stores the room and its base-address index in one transaction.
func (r RoomRepository) InsertRoom(room RoomRecord) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := roomKey(room.ID)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("%w: room %d", errors.ErrAlreadyExists, room.ID)
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		last, err := lastRoomID(txn)
		if err != nil {
			return err
		}
		if room.ID > last {
			if err := txn.Set(roomLastIDKey, []byte(fmt.Sprintf("%010d", room.ID))); err != nil {
				return err
			}
		}
		if err := txn.Set(key, encodeRoom(room)); err != nil {
			return err
		}
		return txn.Set(roomBaseKey(room.SrcAddress, room.ID), nil)
	})
}

// LastRoomID returns the highest room id ever inserted, whatever node the
// room belongs to and whether or not it still exists. Zero means none.
func (r RoomRepository) LastRoomID() (uint32, error) {
	var last uint32
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		last, err = lastRoomID(txn)
		return err
	})
	return last, err
}

// lastRoomID reads the high-water mark and also checks the stored rooms,
// so rows written before the mark existed are still counted.
func lastRoomID(txn *badger.Txn) (uint32, error) {
	var last uint32
	item, err := txn.Get(roomLastIDKey)
	switch {
	case err == nil:
		if err = item.Value(func(val []byte) error {
			last, err = parseID(string(val))
			return err
		}); err != nil {
			return 0, fmt.Errorf("room last id: %w", err)
		}
	case !stderrors.Is(err, badger.ErrKeyNotFound):
		return 0, err
	}

	prefix := []byte("room:")
	for _, key := range collectKeys(txn, prefix) {
		if id, err := parseID(string(key[len(prefix):])); err == nil && id > last {
			last = id
		}
	}
	return last, nil
}

// DeleteRoomByID removes the room, its index entry and every ACL row.
// Deleting an unknown id is not an error.
func (r RoomRepository) DeleteRoomByID(roomID uint32) error {
	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(roomKey(roomID))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		var room RoomRecord
		if err = item.Value(func(val []byte) error {
			room, err = decodeRoom(val)
			return err
		}); err != nil {
			return err
		}

		keys := [][]byte{roomKey(roomID), roomBaseKey(room.SrcAddress, roomID)}
		for _, kind := range aclKinds {
			keys = append(keys, collectKeys(txn, aclPrefix(kind, roomID))...)
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadRoomsByBaseAddress returns every room created on the given node with
// its ACL lists. Rows that fail to decode are logged and skipped.
func (r RoomRepository) LoadRoomsByBaseAddress(baseAddress string) ([]RoomRecord, error) {
	var rooms []RoomRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := roomBasePrefix(baseAddress)
		for _, key := range collectKeys(txn, prefix) {
			id, err := parseID(string(key[len(prefix):]))
			if err != nil {
				r.log.Warn("Skipping malformed room index entry", "key", string(key), "error", err)
				continue
			}
			room, err := r.loadRoom(txn, id)
			if err != nil {
				r.log.Warn("Skipping room that failed to load", "room_id", id, "error", err)
				continue
			}
			if room.SrcAddress != baseAddress {
				continue
			}
			rooms = append(rooms, room)
		}
		return nil
	})
	return rooms, err
}

// ListRooms returns every stored room regardless of node.
func (r RoomRepository) ListRooms() ([]RoomRecord, error) {
	var rooms []RoomRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("room:")
		for _, key := range collectKeys(txn, prefix) {
			id, err := parseID(string(key[len(prefix):]))
			if err != nil {
				continue
			}
			room, err := r.loadRoom(txn, id)
			if err != nil {
				r.log.Warn("Skipping room that failed to load", "room_id", id, "error", err)
				continue
			}
			rooms = append(rooms, room)
		}
		return nil
	})
	return rooms, err
}

func (r RoomRepository) loadRoom(txn *badger.Txn, id uint32) (RoomRecord, error) {
	item, err := txn.Get(roomKey(id))
	if err != nil {
		return RoomRecord{}, err
	}
	var room RoomRecord
	if err = item.Value(func(val []byte) error {
		room, err = decodeRoom(val)
		return err
	}); err != nil {
		return RoomRecord{}, err
	}
	if room.Moderators, err = loadACL(txn, aclModerator, id); err != nil {
		return RoomRecord{}, err
	}
	if room.Administrators, err = loadACL(txn, aclAdministrator, id); err != nil {
		return RoomRecord{}, err
	}
	if room.Banned, err = loadACL(txn, aclBanned, id); err != nil {
		return RoomRecord{}, err
	}
	return room, nil
}

func loadACL(txn *badger.Txn, kind aclKind, roomID uint32) ([]uint32, error) {
	prefix := aclPrefix(kind, roomID)
	var ids []uint32
	for _, key := range collectKeys(txn, prefix) {
		id, err := parseID(string(key[len(prefix):]))
		if err != nil {
			return nil, fmt.Errorf("%s list of room %d: %w", kind, roomID, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r RoomRepository) InsertModerator(roomID, avatarID uint32) error {
	return r.setACL(aclModerator, roomID, avatarID)
}

func (r RoomRepository) DeleteModerator(roomID, avatarID uint32) error {
	return r.deleteACL(aclModerator, roomID, avatarID)
}

func (r RoomRepository) InsertAdministrator(roomID, avatarID uint32) error {
	return r.setACL(aclAdministrator, roomID, avatarID)
}

func (r RoomRepository) DeleteAdministrator(roomID, avatarID uint32) error {
	return r.deleteACL(aclAdministrator, roomID, avatarID)
}

func (r RoomRepository) InsertBanned(roomID, avatarID uint32) error {
	return r.setACL(aclBanned, roomID, avatarID)
}

func (r RoomRepository) DeleteBanned(roomID, avatarID uint32) error {
	return r.deleteACL(aclBanned, roomID, avatarID)
}

func (r RoomRepository) setACL(kind aclKind, roomID, avatarID uint32) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(aclKey(kind, roomID, avatarID), nil)
	})
}

func (r RoomRepository) deleteACL(kind aclKind, roomID, avatarID uint32) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(aclKey(kind, roomID, avatarID))
	})
}

// collectKeys copies every key under prefix so callers can read or delete
// them once the iterator is closed.
func collectKeys(txn *badger.Txn, prefix []byte) [][]byte {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys
}

func parseID(s string) (uint32, error) {
	s = strings.TrimPrefix(s, ":")
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

func encodeRoom(room RoomRecord) []byte {
	w := recordWriter{}
	w.uint(1, uint64(room.ID))
	w.string(2, room.Name)
	w.string(3, room.Topic)
	w.string(4, room.Password)
	w.uint(5, uint64(room.Attributes))
	w.uint(6, uint64(room.MaxSize))
	w.string(7, room.Address)
	w.string(8, room.SrcAddress)
	w.uint(9, uint64(room.CreatorID))
	return w.b
}

func decodeRoom(b []byte) (RoomRecord, error) {
	var room RoomRecord
	err := fieldVisitor{
		varint: func(num protowire.Number, v uint64) {
			switch num {
			case 1:
				room.ID = uint32(v)
			case 5:
				room.Attributes = uint32(v)
			case 6:
				room.MaxSize = uint32(v)
			case 9:
				room.CreatorID = uint32(v)
			}
		},
		bytes: func(num protowire.Number, v []byte) {
			switch num {
			case 2:
				room.Name = string(v)
			case 3:
				room.Topic = string(v)
			case 4:
				room.Password = string(v)
			case 7:
				room.Address = string(v)
			case 8:
				room.SrcAddress = string(v)
			}
		},
	}.visit(b)
	return room, err
}
