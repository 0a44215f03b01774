package domain

import "time"

type MessageStatus uint32

const (
	MessageStatusNew MessageStatus = iota + 1
	MessageStatusUnread
	MessageStatusRead
	MessageStatusTrash
	MessageStatusDeleted
)

// PersistentHeader describes a mailbox entry without its body.
type PersistentHeader struct {
	ID          uint32
	AvatarID    AvatarID
	FromName    string
	FromAddress string
	Subject     string
	Category    string
	SentAt      time.Time
	Status      MessageStatus
}

// PersistentMessage is a stored mailbox entry delivered independently of
// the recipient's connectivity.
type PersistentMessage struct {
	PersistentHeader
	Message string
	OOB     string
}
