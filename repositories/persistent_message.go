//go:generate go run go.uber.org/mock/mockgen -source=persistent_message.go -destination=../mocks/mock_persistent_message_repository.go -package=mocks
package repositories

import (
	"chat-gateway/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/encoding/protowire"
)

type IPersistentMessageRepository interface {
	StoreMessage(message PersistentRecord) (uint32, error)
	GetHeaders(avatarID uint32, category string) ([]PersistentRecord, error)
	GetMessage(avatarID, messageID uint32) (PersistentRecord, error)
	UpdateStatus(avatarID, messageID, status uint32) error
	UpdateAllStatus(avatarID, currentStatus, newStatus uint32) (int, error)
}

// StatusDeleted purges the record instead of flagging it.
const StatusDeleted = 5

type PersistentMessageRepository struct {
	db       *badger.DB
	log      *slog.Logger
	sequence *badger.Sequence
}

func NewPersistentMessageRepository(db *badger.DB, log *slog.Logger) (*PersistentMessageRepository, error) {
	sequence, err := db.GetSequence([]byte("seq:pmsg"), 64)
	if err != nil {
		return nil, fmt.Errorf("persistent message sequence: %w", err)
	}
	return &PersistentMessageRepository{db: db, log: log, sequence: sequence}, nil
}

func (p *PersistentMessageRepository) Close() error {
	return p.sequence.Release()
}

type PersistentRecord struct {
	ID          uint32
	AvatarID    uint32
	FromName    string
	FromAddress string
	Subject     string
	Category    string
	SentAt      time.Time
	Status      uint32
	Message     string
	OOB         string
}

// Mailbox keys are "pmsg:{avatar_id}:{message_id}" so a prefix scan returns
// one avatar's mail oldest first.
func mailboxPrefix(avatarID uint32) []byte {
	return []byte(fmt.Sprintf("pmsg:%010d:", avatarID))
}

func mailboxKey(avatarID, messageID uint32) []byte {
	return append(mailboxPrefix(avatarID), fmt.Sprintf("%010d", messageID)...)
}

// StoreMessage assigns the message id and files it in the recipient mailbox.
func (p *PersistentMessageRepository) StoreMessage(message PersistentRecord) (uint32, error) {
	next, err := p.sequence.Next()
	if err != nil {
		return 0, fmt.Errorf("next persistent message id: %w", err)
	}
	message.ID = uint32(next + 1)
	err = p.db.Update(func(txn *badger.Txn) error {
		return txn.Set(mailboxKey(message.AvatarID, message.ID), encodePersistent(message))
	})
	if err != nil {
		return 0, err
	}
	return message.ID, nil
}

// GetHeaders lists the mailbox of an avatar. An empty category matches all.
// Bodies are cleared from the returned records.
func (p *PersistentMessageRepository) GetHeaders(avatarID uint32, category string) ([]PersistentRecord, error) {
	var headers []PersistentRecord
	err := p.db.View(func(txn *badger.Txn) error {
		prefix := mailboxPrefix(avatarID)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var message PersistentRecord
			err := item.Value(func(val []byte) error {
				var err error
				message, err = decodePersistent(val)
				return err
			})
			if err != nil {
				p.log.Warn("Skipping unreadable persistent message", "key", string(item.Key()), "error", err)
				continue
			}
			if category != "" && message.Category != category {
				continue
			}
			message.Message, message.OOB = "", ""
			headers = append(headers, message)
		}
		return nil
	})
	return headers, err
}

func (p *PersistentMessageRepository) GetMessage(avatarID, messageID uint32) (PersistentRecord, error) {
	var message PersistentRecord
	err := p.db.View(func(txn *badger.Txn) error {
		var err error
		message, err = getPersistent(txn, avatarID, messageID)
		return err
	})
	return message, err
}

// UpdateStatus changes the status of one message; StatusDeleted removes it.
func (p *PersistentMessageRepository) UpdateStatus(avatarID, messageID, status uint32) error {
	return p.db.Update(func(txn *badger.Txn) error {
		message, err := getPersistent(txn, avatarID, messageID)
		if err != nil {
			return err
		}
		return setStatus(txn, message, status)
	})
}

// UpdateAllStatus moves every message of the mailbox in currentStatus to
// newStatus and reports how many were touched.
func (p *PersistentMessageRepository) UpdateAllStatus(avatarID, currentStatus, newStatus uint32) (int, error) {
	count := 0
	err := p.db.Update(func(txn *badger.Txn) error {
		prefix := mailboxPrefix(avatarID)
		for _, key := range collectKeys(txn, prefix) {
			item, err := txn.Get(key)
			if err != nil {
				return err
			}
			var message PersistentRecord
			if err = item.Value(func(val []byte) error {
				message, err = decodePersistent(val)
				return err
			}); err != nil {
				p.log.Warn("Skipping unreadable persistent message", "key", string(key), "error", err)
				continue
			}
			if message.Status != currentStatus {
				continue
			}
			if err = setStatus(txn, message, newStatus); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	return count, err
}

func setStatus(txn *badger.Txn, message PersistentRecord, status uint32) error {
	key := mailboxKey(message.AvatarID, message.ID)
	if status == StatusDeleted {
		return txn.Delete(key)
	}
	message.Status = status
	return txn.Set(key, encodePersistent(message))
}

func getPersistent(txn *badger.Txn, avatarID, messageID uint32) (PersistentRecord, error) {
	item, err := txn.Get(mailboxKey(avatarID, messageID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return PersistentRecord{}, fmt.Errorf("%w: %d for avatar %d", errors.ErrMessageNotFound, messageID, avatarID)
	}
	if err != nil {
		return PersistentRecord{}, err
	}
	var message PersistentRecord
	err = item.Value(func(val []byte) error {
		message, err = decodePersistent(val)
		return err
	})
	return message, err
}

func encodePersistent(message PersistentRecord) []byte {
	w := recordWriter{}
	w.uint(1, uint64(message.ID))
	w.uint(2, uint64(message.AvatarID))
	w.string(3, message.FromName)
	w.string(4, message.FromAddress)
	w.string(5, message.Subject)
	w.string(6, message.Category)
	w.uint(7, uint64(message.SentAt.Unix()))
	w.uint(8, uint64(message.Status))
	w.string(9, message.Message)
	w.string(10, message.OOB)
	return w.b
}

func decodePersistent(b []byte) (PersistentRecord, error) {
	var message PersistentRecord
	err := fieldVisitor{
		varint: func(num protowire.Number, v uint64) {
			switch num {
			case 1:
				message.ID = uint32(v)
			case 2:
				message.AvatarID = uint32(v)
			case 7:
				message.SentAt = time.Unix(int64(v), 0).UTC()
			case 8:
				message.Status = uint32(v)
			}
		},
		bytes: func(num protowire.Number, v []byte) {
			switch num {
			case 3:
				message.FromName = string(v)
			case 4:
				message.FromAddress = string(v)
			case 5:
				message.Subject = string(v)
			case 6:
				message.Category = string(v)
			case 9:
				message.Message = string(v)
			case 10:
				message.OOB = string(v)
			}
		},
	}.visit(b)
	return message, err
}
