// Package domain contains core concepts of the chat gateway.
// This file defines the Room entity and its ACL/membership rules.
// No persistence, network, or session logic should be added here.
package domain

import (
	"chat-gateway/errors"
	"crypto/subtle"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type RoomID uint32

type AvatarID uint32

// RoomAttributes is carried opaquely on the wire. Only RoomPrivate and
// RoomModerated change ACL behavior.
type RoomAttributes uint32

const (
	RoomPrivate    RoomAttributes = 1 << 0
	RoomModerated  RoomAttributes = 1 << 1
	RoomPersistent RoomAttributes = 1 << 2
	RoomLocalWorld RoomAttributes = 1 << 4
	RoomLocalGame  RoomAttributes = 1 << 5
)

func (a RoomAttributes) Has(flag RoomAttributes) bool {
	return a&flag == flag
}

type Set map[AvatarID]struct{}

func (s Set) Has(id AvatarID) bool {
	_, ok := s[id]
	return ok
}

// add reports whether the set changed.
func (s Set) add(id AvatarID) bool {
	if s.Has(id) {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s Set) remove(id AvatarID) bool {
	if !s.Has(id) {
		return false
	}
	delete(s, id)
	return true
}

// Member binds an avatar to the peer address it entered from.
type Member struct {
	AvatarID AvatarID
	Address  string
}

// RoomParams holds everything a caller supplies when creating a room.
type RoomParams struct {
	Name       string
	Topic      string
	Password   string
	Attributes RoomAttributes
	MaxSize    uint32
	Address    string
	SrcAddress string
}

type Room struct {
	ID         RoomID
	CreatorID  AvatarID
	Name       string
	Topic      string
	Password   string
	Attributes RoomAttributes
	MaxSize    uint32
	Address    string
	SrcAddress string

	moderators     Set
	administrators Set
	banned         Set
	invited        Set
	members        []Member
	lastMessageID  uint32
}

func NewRoom(id RoomID, creatorID AvatarID, params RoomParams) *Room {
	return &Room{
		ID:             id,
		CreatorID:      creatorID,
		Name:           params.Name,
		Topic:          params.Topic,
		Password:       params.Password,
		Attributes:     params.Attributes,
		MaxSize:        params.MaxSize,
		Address:        params.Address,
		SrcAddress:     params.SrcAddress,
		moderators:     make(Set),
		administrators: make(Set),
		banned:         make(Set),
		invited:        make(Set),
	}
}

// Enter makes the avatar a member. Checks run in a fixed order: ban,
// invite, password, capacity.
func (r *Room) Enter(avatarID AvatarID, address, password string) error {
	if r.banned.Has(avatarID) {
		return errors.ErrBanned
	}
	if r.Attributes.Has(RoomPrivate) && !r.invited.Has(avatarID) && !r.CanModerate(avatarID) {
		return errors.ErrInviteRequired
	}
	if r.Password != "" && subtle.ConstantTimeCompare([]byte(r.Password), []byte(password)) != 1 {
		return errors.ErrBadPassword
	}
	if i := r.memberIndex(avatarID); i >= 0 {
		r.members[i].Address = address
		r.invited.remove(avatarID)
		return nil
	}
	if r.MaxSize > 0 && uint32(len(r.members)) >= r.MaxSize {
		return errors.ErrRoomFull
	}
	r.members = append(r.members, Member{AvatarID: avatarID, Address: address})
	r.invited.remove(avatarID)
	return nil
}

func (r *Room) Leave(avatarID AvatarID) error {
	i := r.memberIndex(avatarID)
	if i < 0 {
		return errors.ErrNotInRoom
	}
	r.members = append(r.members[:i], r.members[i+1:]...)
	return nil
}

func (r *Room) memberIndex(avatarID AvatarID) int {
	_, i, ok := lo.FindIndexOf(r.members, func(m Member) bool {
		return m.AvatarID == avatarID
	})
	if !ok {
		return -1
	}
	return i
}

func (r *Room) IsMember(avatarID AvatarID) bool { return r.memberIndex(avatarID) >= 0 }

func (r *Room) IsModerator(avatarID AvatarID) bool { return r.moderators.Has(avatarID) }

func (r *Room) IsAdministrator(avatarID AvatarID) bool { return r.administrators.Has(avatarID) }

func (r *Room) IsBanned(avatarID AvatarID) bool { return r.banned.Has(avatarID) }

func (r *Room) IsInvited(avatarID AvatarID) bool { return r.invited.Has(avatarID) }

// CanModerate reports whether the avatar holds any room authority.
func (r *Room) CanModerate(avatarID AvatarID) bool {
	return r.IsModerator(avatarID) || r.IsAdministrator(avatarID)
}

func (r *Room) Size() int { return len(r.members) }

// The ACL mutators below only touch memory. Callers that need the change
// persisted go through the room registry.

func (r *Room) AddModerator(id AvatarID) bool        { return r.moderators.add(id) }
func (r *Room) RemoveModerator(id AvatarID) bool     { return r.moderators.remove(id) }
func (r *Room) AddAdministrator(id AvatarID) bool    { return r.administrators.add(id) }
func (r *Room) RemoveAdministrator(id AvatarID) bool { return r.administrators.remove(id) }
func (r *Room) AddInvite(id AvatarID) bool           { return r.invited.add(id) }
func (r *Room) RemoveInvite(id AvatarID) bool        { return r.invited.remove(id) }
func (r *Room) RemoveBanned(id AvatarID) bool        { return r.banned.remove(id) }

// AddBanned bans the avatar and, if it is currently a member, removes it
// from the room. It reports whether the ban set changed and whether the
// avatar was evicted.
func (r *Room) AddBanned(id AvatarID) (added, evicted bool) {
	added = r.banned.add(id)
	evicted = r.Leave(id) == nil
	return added, evicted
}

// MatchesFilter is a case-insensitive substring match on the room name.
// An empty filter matches every room.
func (r *Room) MatchesFilter(filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(filter))
}

// GetConnectedAddresses returns a snapshot of the distinct peer addresses
// of the current members, in entry order.
func (r *Room) GetConnectedAddresses() []string {
	return lo.Uniq(lo.Map(r.members, func(m Member, _ int) string {
		return m.Address
	}))
}

// GetAvatarIDs returns the member avatar ids minus the excluded one.
func (r *Room) GetAvatarIDs(excluding AvatarID) []AvatarID {
	return lo.FilterMap(r.members, func(m Member, _ int) (AvatarID, bool) {
		return m.AvatarID, m.AvatarID != excluding
	})
}

func (r *Room) Members() []Member {
	return append([]Member(nil), r.members...)
}

func (r *Room) Moderators() []AvatarID     { return sortedIDs(r.moderators) }
func (r *Room) Administrators() []AvatarID { return sortedIDs(r.administrators) }
func (r *Room) Banned() []AvatarID         { return sortedIDs(r.banned) }
func (r *Room) Invited() []AvatarID        { return sortedIDs(r.invited) }

// NextMessageID stamps an outgoing room message.
func (r *Room) NextMessageID() uint32 {
	r.lastMessageID++
	return r.lastMessageID
}

func sortedIDs(s Set) []AvatarID {
	ids := lo.Keys(s)
	slices.Sort(ids)
	return ids
}
