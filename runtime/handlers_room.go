package runtime

import (
	"chat-gateway/domain"
	"chat-gateway/errors"
	"chat-gateway/protocol"
	"context"
	"fmt"

	"github.com/samber/lo"
)

func (n *Node) createRoom(_ context.Context, s *Session, req protocol.CreateRoom) (protocol.Payload, error) {
	creator, err := s.avatar(req.CreatorID)
	if err != nil {
		return nil, err
	}
	room, err := n.registry.CreateRoom(creator.ID, domain.RoomParams{
		Name:       req.Name,
		Topic:      req.Topic,
		Password:   req.Password,
		Attributes: domain.RoomAttributes(req.Attributes),
		MaxSize:    req.MaxSize,
		Address:    req.Address,
		SrcAddress: req.SrcAddress,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Room created", "room", room.Address, "room_id", room.ID, "creator_id", creator.ID)
	return toWireRoom(room), nil
}

func (n *Node) destroyRoom(ctx context.Context, s *Session, req protocol.RoomRequest) (protocol.Payload, error) {
	avatar, room, err := n.roomAndAvatar(s, req.AvatarID, req.RoomAddress)
	if err != nil {
		return nil, err
	}
	if !room.IsAdministrator(avatar.ID) {
		return nil, notPrivileged(avatar.ID, room)
	}
	addresses := room.GetConnectedAddresses()
	if err = n.registry.DestroyRoom(room); err != nil {
		return nil, err
	}
	s.log.Info("Room destroyed", "room", room.Address, "room_id", room.ID, "avatar_id", avatar.ID)
	n.broadcast(ctx, addresses, protocol.RoomDestroyed{Src: toWireAvatar(avatar), RoomID: uint32(room.ID)})
	return nil, nil
}

func (n *Node) getRoom(_ context.Context, _ *Session, req protocol.RoomRequest) (protocol.Payload, error) {
	room, err := n.registry.GetRoom(req.RoomAddress)
	if err != nil {
		return nil, err
	}
	return toWireRoom(room), nil
}

func (n *Node) getRoomSummaries(_ context.Context, _ *Session, req protocol.GetRoomSummaries) (protocol.Payload, error) {
	rooms := n.registry.ListRooms(req.Filter, req.StartNode)
	return protocol.RoomSummaries(lo.Map(rooms, func(room *domain.Room, _ int) protocol.RoomSummary {
		return toWireSummary(room)
	})), nil
}

func (n *Node) enterRoom(ctx context.Context, s *Session, req protocol.EnterRoom) (protocol.Payload, error) {
	avatar, room, err := n.roomAndAvatar(s, req.AvatarID, req.RoomAddress)
	if err != nil {
		return nil, err
	}
	if err = n.registry.EnterRoom(room, avatar.ID, s.address, req.Password); err != nil {
		return nil, err
	}
	n.broadcast(ctx, room.GetConnectedAddresses(), protocol.RoomEntered{Src: toWireAvatar(avatar), RoomID: uint32(room.ID)})
	return protocol.ID(room.ID), nil
}

func (n *Node) leaveRoom(ctx context.Context, s *Session, req protocol.RoomRequest) (protocol.Payload, error) {
	avatar, room, err := n.roomAndAvatar(s, req.AvatarID, req.RoomAddress)
	if err != nil {
		return nil, err
	}
	addresses := room.GetConnectedAddresses()
	if err = n.registry.LeaveRoom(room, avatar.ID); err != nil {
		return nil, err
	}
	n.broadcast(ctx, addresses, protocol.RoomLeft{SrcAvatarID: uint32(avatar.ID), RoomID: uint32(room.ID)})
	return nil, nil
}

// kickAvatar removes the target without banning it. Everyone who was in
// the room just before the kick is told, the target included.
func (n *Node) kickAvatar(ctx context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	src, room, dest, err := n.moderation(s, req, (*domain.Room).CanModerate)
	if err != nil {
		return nil, err
	}
	addresses, err := n.registry.KickAvatar(room, dest.ID)
	if err != nil {
		return nil, err
	}
	s.log.Info("Avatar kicked", "room", room.Address, "avatar_id", dest.ID, "by", src.ID)
	n.broadcast(ctx, addresses, protocol.AvatarKicked{
		Src:         toWireAvatar(src),
		Dest:        toWireAvatar(dest),
		RoomName:    room.Name,
		RoomAddress: room.Address,
	})
	return nil, nil
}

func (n *Node) addModerator(_ context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	_, room, dest, err := n.moderation(s, req, (*domain.Room).IsAdministrator)
	if err != nil {
		return nil, err
	}
	return nil, n.registry.AddModerator(room, dest.ID)
}

func (n *Node) removeModerator(_ context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	_, room, dest, err := n.moderation(s, req, (*domain.Room).IsAdministrator)
	if err != nil {
		return nil, err
	}
	return nil, n.registry.RemoveModerator(room, dest.ID)
}

func (n *Node) addAdministrator(_ context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	_, room, dest, err := n.moderation(s, req, (*domain.Room).IsAdministrator)
	if err != nil {
		return nil, err
	}
	return nil, n.registry.AddAdministrator(room, dest.ID)
}

func (n *Node) removeAdministrator(_ context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	_, room, dest, err := n.moderation(s, req, (*domain.Room).IsAdministrator)
	if err != nil {
		return nil, err
	}
	return nil, n.registry.RemoveAdministrator(room, dest.ID)
}

// addBan evicts a banned member; the room sees it leave.
func (n *Node) addBan(ctx context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	_, room, dest, err := n.moderation(s, req, (*domain.Room).CanModerate)
	if err != nil {
		return nil, err
	}
	addresses := room.GetConnectedAddresses()
	evicted, err := n.registry.AddBanned(room, dest.ID)
	if err != nil {
		return nil, err
	}
	if evicted {
		n.broadcast(ctx, addresses, protocol.RoomLeft{SrcAvatarID: uint32(dest.ID), RoomID: uint32(room.ID)})
	}
	return nil, nil
}

func (n *Node) removeBan(_ context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	_, room, dest, err := n.moderation(s, req, (*domain.Room).CanModerate)
	if err != nil {
		return nil, err
	}
	return nil, n.registry.RemoveBanned(room, dest.ID)
}

func (n *Node) addInvite(_ context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	_, room, dest, err := n.moderation(s, req, (*domain.Room).CanModerate)
	if err != nil {
		return nil, err
	}
	return nil, n.registry.AddInvite(room, dest.ID)
}

func (n *Node) removeInvite(_ context.Context, s *Session, req protocol.RoomTargetRequest) (protocol.Payload, error) {
	_, room, dest, err := n.moderation(s, req, (*domain.Room).CanModerate)
	if err != nil {
		return nil, err
	}
	return nil, n.registry.RemoveInvite(room, dest.ID)
}

func (n *Node) roomAndAvatar(s *Session, avatarID uint32, roomAddress string) (domain.Avatar, *domain.Room, error) {
	avatar, err := s.avatar(avatarID)
	if err != nil {
		return domain.Avatar{}, nil, err
	}
	room, err := n.registry.GetRoom(roomAddress)
	if err != nil {
		return domain.Avatar{}, nil, err
	}
	return avatar, room, nil
}

// moderation resolves the acting avatar, the room and the target avatar of
// an ACL request, and checks that the acting avatar holds the authority
// the operation requires.
func (n *Node) moderation(s *Session, req protocol.RoomTargetRequest,
	authorized func(*domain.Room, domain.AvatarID) bool) (domain.Avatar, *domain.Room, domain.Avatar, error) {
	src, room, err := n.roomAndAvatar(s, req.SrcAvatarID, req.RoomAddress)
	if err != nil {
		return domain.Avatar{}, nil, domain.Avatar{}, err
	}
	if !authorized(room, src.ID) {
		return domain.Avatar{}, nil, domain.Avatar{}, notPrivileged(src.ID, room)
	}
	dest, err := n.directory.GetAvatar(domain.AvatarID(req.DestAvatarID))
	if err != nil {
		return domain.Avatar{}, nil, domain.Avatar{}, err
	}
	return src, room, dest, nil
}

func notPrivileged(avatarID domain.AvatarID, room *domain.Room) error {
	return fmt.Errorf("%w: avatar %d in room %s", errors.ErrPermissionDenied, avatarID, room.Address)
}
