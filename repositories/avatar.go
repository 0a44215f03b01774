//go:generate go run go.uber.org/mock/mockgen -source=avatar.go -destination=../mocks/mock_avatar_repository.go -package=mocks
package repositories

import (
	"chat-gateway/errors"
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/encoding/protowire"
)

type IAvatarRepository interface {
	CreateAvatar(avatar AvatarRecord) (uint32, error)
	GetAvatar(avatarID uint32) (AvatarRecord, error)
	GetAvatarByName(name, address string) (AvatarRecord, error)
	UpdateAvatar(avatar AvatarRecord) error
	ListContacts(kind ContactKind, avatarID uint32) ([]ContactRecord, error)
	ListContactOwners(kind ContactKind, contactID uint32) ([]uint32, error)
	InsertContact(kind ContactKind, avatarID uint32, contact ContactRecord) error
	DeleteContact(kind ContactKind, avatarID, contactID uint32) error
}

type AvatarRepository struct {
	db       *badger.DB
	sequence *badger.Sequence
}

// NewAvatarRepository leases avatar ids from a badger sequence. Close must be
// called to return unused ids before the database is closed.
func NewAvatarRepository(db *badger.DB) (*AvatarRepository, error) {
	sequence, err := db.GetSequence([]byte("seq:avatar"), 64)
	if err != nil {
		return nil, fmt.Errorf("avatar sequence: %w", err)
	}
	return &AvatarRepository{db: db, sequence: sequence}, nil
}

func (a *AvatarRepository) Close() error {
	return a.sequence.Release()
}

type AvatarRecord struct {
	ID            uint32
	UserID        uint32
	Name          string
	Address       string
	LoginLocation string
	Attributes    uint32
	StatusMessage string
}

type ContactKind string

const (
	ContactFriend ContactKind = "friend"
	ContactIgnore ContactKind = "ignore"
)

type ContactRecord struct {
	AvatarID uint32
	Comment  string
}

func avatarKey(id uint32) []byte {
	return []byte(fmt.Sprintf("avatar:%010d", id))
}

// Names are matched case-insensitively within an address.
func avatarNameKey(name, address string) []byte {
	return []byte("avatar_name:" + strings.ToLower(name) + "@" + strings.ToLower(address))
}

func contactPrefix(kind ContactKind, ownerID uint32) []byte {
	return []byte(fmt.Sprintf("contact:%s:%010d:", kind, ownerID))
}

func contactOwnerPrefix(kind ContactKind, contactID uint32) []byte {
	return []byte(fmt.Sprintf("contact_rev:%s:%010d:", kind, contactID))
}

// CreateAvatar assigns the next avatar id and stores the avatar with its
// name index. A name already taken on the address is rejected.
func (a *AvatarRepository) CreateAvatar(avatar AvatarRecord) (uint32, error) {
	next, err := a.sequence.Next()
	if err != nil {
		return 0, fmt.Errorf("next avatar id: %w", err)
	}
	// Zero is never handed out
	avatar.ID = uint32(next + 1)

	err = a.db.Update(func(txn *badger.Txn) error {
		nameKey := avatarNameKey(avatar.Name, avatar.Address)
		if _, err := txn.Get(nameKey); err == nil {
			return fmt.Errorf("%w: avatar %s@%s", errors.ErrAlreadyExists, avatar.Name, avatar.Address)
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(avatarKey(avatar.ID), encodeAvatar(avatar)); err != nil {
			return err
		}
		return txn.Set(nameKey, []byte(strconv.FormatUint(uint64(avatar.ID), 10)))
	})
	if err != nil {
		return 0, err
	}
	return avatar.ID, nil
}

func (a *AvatarRepository) GetAvatar(avatarID uint32) (AvatarRecord, error) {
	var avatar AvatarRecord
	err := a.db.View(func(txn *badger.Txn) error {
		var err error
		avatar, err = getAvatar(txn, avatarID)
		return err
	})
	return avatar, err
}

func (a *AvatarRepository) GetAvatarByName(name, address string) (AvatarRecord, error) {
	var avatar AvatarRecord
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(avatarNameKey(name, address))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s@%s", errors.ErrAvatarNotFound, name, address)
		}
		if err != nil {
			return err
		}
		var id uint32
		if err = item.Value(func(val []byte) error {
			id, err = parseID(string(val))
			return err
		}); err != nil {
			return err
		}
		avatar, err = getAvatar(txn, id)
		return err
	})
	return avatar, err
}

// UpdateAvatar overwrites attributes and status of an existing avatar. The
// name and address are fixed at creation.
func (a *AvatarRepository) UpdateAvatar(avatar AvatarRecord) error {
	return a.db.Update(func(txn *badger.Txn) error {
		stored, err := getAvatar(txn, avatar.ID)
		if err != nil {
			return err
		}
		avatar.Name = stored.Name
		avatar.Address = stored.Address
		return txn.Set(avatarKey(avatar.ID), encodeAvatar(avatar))
	})
}

func getAvatar(txn *badger.Txn, avatarID uint32) (AvatarRecord, error) {
	item, err := txn.Get(avatarKey(avatarID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return AvatarRecord{}, fmt.Errorf("%w: %d", errors.ErrAvatarNotFound, avatarID)
	}
	if err != nil {
		return AvatarRecord{}, err
	}
	var avatar AvatarRecord
	err = item.Value(func(val []byte) error {
		avatar, err = decodeAvatar(val)
		return err
	})
	return avatar, err
}

// ListContacts returns the friend or ignore list of an avatar in contact id order.
func (a *AvatarRepository) ListContacts(kind ContactKind, avatarID uint32) ([]ContactRecord, error) {
	var contacts []ContactRecord
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := contactPrefix(kind, avatarID)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id, err := parseID(string(item.Key()[len(prefix):]))
			if err != nil {
				return err
			}
			err = item.Value(func(val []byte) error {
				contacts = append(contacts, ContactRecord{AvatarID: id, Comment: string(val)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return contacts, err
}

// ListContactOwners answers the reverse question: whose list holds contactID.
func (a *AvatarRepository) ListContactOwners(kind ContactKind, contactID uint32) ([]uint32, error) {
	var owners []uint32
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := contactOwnerPrefix(kind, contactID)
		for _, key := range collectKeys(txn, prefix) {
			id, err := parseID(string(key[len(prefix):]))
			if err != nil {
				return err
			}
			owners = append(owners, id)
		}
		return nil
	})
	return owners, err
}

// InsertContact adds or replaces a contact together with its reverse entry.
func (a *AvatarRepository) InsertContact(kind ContactKind, avatarID uint32, contact ContactRecord) error {
	return a.db.Update(func(txn *badger.Txn) error {
		forward := append(contactPrefix(kind, avatarID), fmt.Sprintf("%010d", contact.AvatarID)...)
		reverse := append(contactOwnerPrefix(kind, contact.AvatarID), fmt.Sprintf("%010d", avatarID)...)
		if err := txn.Set(forward, []byte(contact.Comment)); err != nil {
			return err
		}
		return txn.Set(reverse, nil)
	})
}

func (a *AvatarRepository) DeleteContact(kind ContactKind, avatarID, contactID uint32) error {
	return a.db.Update(func(txn *badger.Txn) error {
		forward := append(contactPrefix(kind, avatarID), fmt.Sprintf("%010d", contactID)...)
		if _, err := txn.Get(forward); stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s %d of %d", errors.ErrNotFound, kind, contactID, avatarID)
		} else if err != nil {
			return err
		}
		reverse := append(contactOwnerPrefix(kind, contactID), fmt.Sprintf("%010d", avatarID)...)
		if err := txn.Delete(forward); err != nil {
			return err
		}
		return txn.Delete(reverse)
	})
}

func encodeAvatar(avatar AvatarRecord) []byte {
	w := recordWriter{}
	w.uint(1, uint64(avatar.ID))
	w.uint(2, uint64(avatar.UserID))
	w.string(3, avatar.Name)
	w.string(4, avatar.Address)
	w.string(5, avatar.LoginLocation)
	w.uint(6, uint64(avatar.Attributes))
	w.string(7, avatar.StatusMessage)
	return w.b
}

func decodeAvatar(b []byte) (AvatarRecord, error) {
	var avatar AvatarRecord
	err := fieldVisitor{
		varint: func(num protowire.Number, v uint64) {
			switch num {
			case 1:
				avatar.ID = uint32(v)
			case 2:
				avatar.UserID = uint32(v)
			case 6:
				avatar.Attributes = uint32(v)
			}
		},
		bytes: func(num protowire.Number, v []byte) {
			switch num {
			case 3:
				avatar.Name = string(v)
			case 4:
				avatar.Address = string(v)
			case 5:
				avatar.LoginLocation = string(v)
			case 7:
				avatar.StatusMessage = string(v)
			}
		},
	}.visit(b)
	return avatar, err
}
