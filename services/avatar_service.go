package services

import (
	"chat-gateway/domain"
	"chat-gateway/errors"
	"chat-gateway/repositories"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

// LoginParams is what a client presents when an avatar comes online.
type LoginParams struct {
	UserID        uint32
	Name          string
	Address       string
	LoginLocation string
	Attributes    uint32
}

// AvatarService is the node's avatar directory. Identities, friend and
// ignore lists live in the repository; presence is kept in memory.
type AvatarService struct {
	mu         sync.Mutex
	log        *slog.Logger
	repository repositories.IAvatarRepository
	online     map[domain.AvatarID]domain.Avatar
}

func NewAvatarService(log *slog.Logger, repository repositories.IAvatarRepository) *AvatarService {
	return &AvatarService{
		log:        log,
		repository: repository,
		online:     make(map[domain.AvatarID]domain.Avatar),
	}
}

// Login resolves the avatar by name, creating it on first use, and marks
// it online at peer. An avatar that is already online is rejected.
func (s *AvatarService) Login(params LoginParams, peer string) (domain.Avatar, error) {
	record, err := s.repository.GetAvatarByName(params.Name, params.Address)
	switch {
	case stderrors.Is(err, errors.ErrAvatarNotFound):
		record = repositories.AvatarRecord{
			UserID:        params.UserID,
			Name:          params.Name,
			Address:       params.Address,
			LoginLocation: params.LoginLocation,
			Attributes:    params.Attributes,
		}
		record.ID, err = s.repository.CreateAvatar(record)
		if err != nil {
			return domain.Avatar{}, storageError("create avatar", err)
		}
	case err != nil:
		return domain.Avatar{}, storageError("get avatar", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.online[domain.AvatarID(record.ID)]; ok {
		return domain.Avatar{}, fmt.Errorf("%w: %s", errors.ErrDuplicateLogin, params.Name)
	}
	avatar := toAvatar(record)
	avatar.LoginLocation = params.LoginLocation
	avatar.Attributes = params.Attributes
	avatar.Online = true
	avatar.Peer = peer
	s.online[avatar.ID] = avatar
	return avatar, nil
}

// FailoverReLogin puts an avatar back online after its gateway restarted,
// replacing any presence it still had.
func (s *AvatarService) FailoverReLogin(avatarID domain.AvatarID, params LoginParams, peer string) (domain.Avatar, error) {
	record, err := s.repository.GetAvatar(uint32(avatarID))
	if err != nil {
		return domain.Avatar{}, storageError("get avatar", err)
	}
	avatar := toAvatar(record)
	avatar.LoginLocation = params.LoginLocation
	avatar.Attributes = params.Attributes
	avatar.Online = true
	avatar.Peer = peer

	s.mu.Lock()
	defer s.mu.Unlock()
	s.online[avatar.ID] = avatar
	return avatar, nil
}

func (s *AvatarService) Logout(avatarID domain.AvatarID) (domain.Avatar, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	avatar, ok := s.online[avatarID]
	if !ok {
		return domain.Avatar{}, fmt.Errorf("%w: %d is not online", errors.ErrAvatarNotFound, avatarID)
	}
	delete(s.online, avatarID)
	avatar.Online = false
	return avatar, nil
}

// LogoutPeer drops every avatar routed through peer, typically when its
// connection closes.
func (s *AvatarService) LogoutPeer(peer string) []domain.Avatar {
	s.mu.Lock()
	defer s.mu.Unlock()
	gone := lo.Filter(lo.Values(s.online), func(a domain.Avatar, _ int) bool {
		return a.Peer == peer
	})
	for _, avatar := range gone {
		delete(s.online, avatar.ID)
	}
	return gone
}

// SetAttributes updates the attributes of an online avatar, and of its
// stored record when persist is set.
func (s *AvatarService) SetAttributes(avatarID domain.AvatarID, attributes uint32, persist bool) error {
	if persist {
		record, err := s.repository.GetAvatar(uint32(avatarID))
		if err != nil {
			return storageError("get avatar", err)
		}
		record.Attributes = attributes
		if err = s.repository.UpdateAvatar(record); err != nil {
			return storageError("update avatar", err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	avatar, ok := s.online[avatarID]
	if !ok {
		if persist {
			return nil
		}
		return fmt.Errorf("%w: %d is not online", errors.ErrAvatarNotFound, avatarID)
	}
	avatar.Attributes = attributes
	s.online[avatarID] = avatar
	return nil
}

// GetAvatar prefers the online view, which carries presence and peer.
func (s *AvatarService) GetAvatar(avatarID domain.AvatarID) (domain.Avatar, error) {
	s.mu.Lock()
	avatar, ok := s.online[avatarID]
	s.mu.Unlock()
	if ok {
		return avatar, nil
	}
	record, err := s.repository.GetAvatar(uint32(avatarID))
	if err != nil {
		return domain.Avatar{}, storageError("get avatar", err)
	}
	return toAvatar(record), nil
}

func (s *AvatarService) FindAvatar(name, address string) (domain.Avatar, error) {
	record, err := s.repository.GetAvatarByName(name, address)
	if err != nil {
		return domain.Avatar{}, storageError("find avatar", err)
	}
	return s.GetAvatar(domain.AvatarID(record.ID))
}

func (s *AvatarService) GetOnlineAvatars() []domain.Avatar {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Values(s.online)
}

func (s *AvatarService) IsOnline(avatarID domain.AvatarID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.online[avatarID]
	return ok
}

// GetAddress returns the peer address of an online avatar.
func (s *AvatarService) GetAddress(avatarID domain.AvatarID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	avatar, ok := s.online[avatarID]
	return avatar.Peer, ok
}

func (s *AvatarService) GetStatusMessage(avatarID domain.AvatarID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.online[avatarID].StatusMessage
}

func (s *AvatarService) GetFriendList(avatarID domain.AvatarID) ([]domain.Contact, error) {
	return s.contacts(repositories.ContactFriend, avatarID)
}

func (s *AvatarService) GetIgnoreList(avatarID domain.AvatarID) ([]domain.Contact, error) {
	return s.contacts(repositories.ContactIgnore, avatarID)
}

// GetFriendOf lists the avatars that have avatarID in their friend list.
func (s *AvatarService) GetFriendOf(avatarID domain.AvatarID) ([]domain.AvatarID, error) {
	owners, err := s.repository.ListContactOwners(repositories.ContactFriend, uint32(avatarID))
	if err != nil {
		return nil, storageError("list friend owners", err)
	}
	return lo.Map(owners, func(id uint32, _ int) domain.AvatarID {
		return domain.AvatarID(id)
	}), nil
}

func (s *AvatarService) IsFriend(avatarID, friendID domain.AvatarID) bool {
	return s.hasContact(repositories.ContactFriend, avatarID, friendID)
}

func (s *AvatarService) IsIgnoring(avatarID, ignoredID domain.AvatarID) bool {
	return s.hasContact(repositories.ContactIgnore, avatarID, ignoredID)
}

func (s *AvatarService) AddFriend(avatarID domain.AvatarID, name, address, comment string) (domain.Contact, error) {
	return s.addContact(repositories.ContactFriend, avatarID, name, address, comment)
}

func (s *AvatarService) RemoveFriend(avatarID domain.AvatarID, name, address string) (domain.Contact, error) {
	return s.removeContact(repositories.ContactFriend, avatarID, name, address)
}

func (s *AvatarService) AddIgnore(avatarID domain.AvatarID, name, address, comment string) (domain.Contact, error) {
	return s.addContact(repositories.ContactIgnore, avatarID, name, address, comment)
}

func (s *AvatarService) RemoveIgnore(avatarID domain.AvatarID, name, address string) (domain.Contact, error) {
	return s.removeContact(repositories.ContactIgnore, avatarID, name, address)
}

func (s *AvatarService) addContact(kind repositories.ContactKind, avatarID domain.AvatarID, name, address, comment string) (domain.Contact, error) {
	if err := ValidateContact(name, comment); err != nil {
		return domain.Contact{}, err
	}
	target, err := s.repository.GetAvatarByName(name, address)
	if err != nil {
		return domain.Contact{}, storageError("find contact", err)
	}
	if target.ID == uint32(avatarID) {
		return domain.Contact{}, fmt.Errorf("%w: an avatar cannot list itself", errors.ErrInvalidArgument)
	}
	err = s.repository.InsertContact(kind, uint32(avatarID), repositories.ContactRecord{AvatarID: target.ID, Comment: comment})
	if err != nil {
		return domain.Contact{}, storageError("insert "+string(kind), err)
	}
	return domain.Contact{AvatarID: domain.AvatarID(target.ID), Name: target.Name, Address: target.Address, Comment: comment}, nil
}

func (s *AvatarService) removeContact(kind repositories.ContactKind, avatarID domain.AvatarID, name, address string) (domain.Contact, error) {
	target, err := s.repository.GetAvatarByName(name, address)
	if err != nil {
		return domain.Contact{}, storageError("find contact", err)
	}
	if err = s.repository.DeleteContact(kind, uint32(avatarID), target.ID); err != nil {
		return domain.Contact{}, storageError("delete "+string(kind), err)
	}
	return domain.Contact{AvatarID: domain.AvatarID(target.ID), Name: target.Name, Address: target.Address}, nil
}

func (s *AvatarService) contacts(kind repositories.ContactKind, avatarID domain.AvatarID) ([]domain.Contact, error) {
	records, err := s.repository.ListContacts(kind, uint32(avatarID))
	if err != nil {
		return nil, storageError("list "+string(kind), err)
	}
	contacts := make([]domain.Contact, 0, len(records))
	for _, record := range records {
		avatar, err := s.repository.GetAvatar(record.AvatarID)
		if err != nil {
			s.log.Warn("Skipping contact without avatar", "kind", kind, "avatar_id", avatarID, "contact_id", record.AvatarID, "error", err)
			continue
		}
		contacts = append(contacts, domain.Contact{
			AvatarID: domain.AvatarID(avatar.ID),
			Name:     avatar.Name,
			Address:  avatar.Address,
			Comment:  record.Comment,
		})
	}
	return contacts, nil
}

func (s *AvatarService) hasContact(kind repositories.ContactKind, avatarID, contactID domain.AvatarID) bool {
	records, err := s.repository.ListContacts(kind, uint32(avatarID))
	if err != nil {
		s.log.Error("Failed to read contacts", "kind", kind, "avatar_id", avatarID, "error", err)
		return false
	}
	return lo.ContainsBy(records, func(record repositories.ContactRecord) bool {
		return record.AvatarID == uint32(contactID)
	})
}

func toAvatar(record repositories.AvatarRecord) domain.Avatar {
	return domain.Avatar{
		ID:            domain.AvatarID(record.ID),
		UserID:        record.UserID,
		Name:          record.Name,
		Address:       record.Address,
		LoginLocation: record.LoginLocation,
		Attributes:    record.Attributes,
		StatusMessage: record.StatusMessage,
	}
}

// storageError keeps lookup and conflict errors as they are and folds
// everything else into ErrStorageFailure.
func storageError(op string, err error) error {
	if stderrors.Is(err, errors.ErrNotFound) || stderrors.Is(err, errors.ErrAlreadyExists) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", errors.ErrStorageFailure, op, err)
}
