package services

import (
	"chat-gateway/domain"
	"chat-gateway/repositories"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// PersistentMessageService files mailbox entries for avatars whether or
// not they are connected.
type PersistentMessageService struct {
	log        *slog.Logger
	repository repositories.IPersistentMessageRepository
	now        func() time.Time
}

func NewPersistentMessageService(log *slog.Logger, repository repositories.IPersistentMessageRepository) *PersistentMessageService {
	return &PersistentMessageService{log: log, repository: repository, now: time.Now}
}

// Send stores a new message in dest's mailbox and returns its header.
func (s *PersistentMessageService) Send(src, dest domain.Avatar, subject, category, message, oob string) (domain.PersistentHeader, error) {
	if err := ValidateText(message, oob); err != nil {
		return domain.PersistentHeader{}, err
	}
	if err := ValidateMail(subject, category); err != nil {
		return domain.PersistentHeader{}, err
	}
	record := repositories.PersistentRecord{
		AvatarID:    uint32(dest.ID),
		FromName:    src.Name,
		FromAddress: src.Address,
		Subject:     subject,
		Category:    category,
		SentAt:      s.now().UTC().Truncate(time.Second),
		Status:      uint32(domain.MessageStatusNew),
		Message:     message,
		OOB:         oob,
	}
	id, err := s.repository.StoreMessage(record)
	if err != nil {
		return domain.PersistentHeader{}, storageError("store persistent message", err)
	}
	record.ID = id
	s.log.Debug("Persistent message stored", "dest_avatar_id", dest.ID, "message_id", id)
	return toHeader(record), nil
}

func (s *PersistentMessageService) GetHeaders(avatarID domain.AvatarID, category string) ([]domain.PersistentHeader, error) {
	records, err := s.repository.GetHeaders(uint32(avatarID), category)
	if err != nil {
		return nil, storageError("get persistent headers", err)
	}
	return lo.Map(records, func(record repositories.PersistentRecord, _ int) domain.PersistentHeader {
		return toHeader(record)
	}), nil
}

// Get returns a full message. Reading a new or unread message marks it read.
func (s *PersistentMessageService) Get(avatarID domain.AvatarID, messageID uint32) (domain.PersistentMessage, error) {
	record, err := s.repository.GetMessage(uint32(avatarID), messageID)
	if err != nil {
		return domain.PersistentMessage{}, storageError("get persistent message", err)
	}
	status := domain.MessageStatus(record.Status)
	if status == domain.MessageStatusNew || status == domain.MessageStatusUnread {
		if err = s.repository.UpdateStatus(uint32(avatarID), messageID, uint32(domain.MessageStatusRead)); err != nil {
			return domain.PersistentMessage{}, storageError("mark persistent message read", err)
		}
		record.Status = uint32(domain.MessageStatusRead)
	}
	return domain.PersistentMessage{
		PersistentHeader: toHeader(record),
		Message:          record.Message,
		OOB:              record.OOB,
	}, nil
}

func (s *PersistentMessageService) UpdateStatus(avatarID domain.AvatarID, messageID uint32, status domain.MessageStatus) error {
	if err := s.repository.UpdateStatus(uint32(avatarID), messageID, uint32(status)); err != nil {
		return storageError("update persistent message", err)
	}
	return nil
}

// UpdateAll moves every message in current to next and reports how many moved.
func (s *PersistentMessageService) UpdateAll(avatarID domain.AvatarID, current, next domain.MessageStatus) (int, error) {
	count, err := s.repository.UpdateAllStatus(uint32(avatarID), uint32(current), uint32(next))
	if err != nil {
		return 0, storageError("update persistent messages", err)
	}
	return count, nil
}

func toHeader(record repositories.PersistentRecord) domain.PersistentHeader {
	return domain.PersistentHeader{
		ID:          record.ID,
		AvatarID:    domain.AvatarID(record.AvatarID),
		FromName:    record.FromName,
		FromAddress: record.FromAddress,
		Subject:     record.Subject,
		Category:    record.Category,
		SentAt:      record.SentAt,
		Status:      domain.MessageStatus(record.Status),
	}
}
