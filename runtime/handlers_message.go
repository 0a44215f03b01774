package runtime

import (
	"chat-gateway/domain"
	"chat-gateway/errors"
	"chat-gateway/protocol"
	"chat-gateway/services"
	"context"
	"fmt"

	"github.com/samber/lo"
)

func (n *Node) sendInstantMessage(ctx context.Context, s *Session, req protocol.SendInstantMessage) (protocol.Payload, error) {
	src, err := s.avatar(req.SrcAvatarID)
	if err != nil {
		return nil, err
	}
	if err = services.ValidateText(req.Message, req.OOB); err != nil {
		return nil, err
	}
	dest, err := n.recipient(src, req.DestName, req.DestAddress)
	if err != nil {
		return nil, err
	}
	delivered := n.sendToAvatar(ctx, dest.ID, protocol.InstantMessage{
		Src:          toWireAvatar(src),
		DestAvatarID: uint32(dest.ID),
		Message:      req.Message,
		OOB:          req.OOB,
	})
	if !delivered {
		return nil, fmt.Errorf("%w: %s is not online", errors.ErrAvatarNotFound, dest.Name)
	}
	return nil, nil
}

// sendRoomMessage stamps the message with the room's next message id and
// sends it to every member address, the sender's included.
func (n *Node) sendRoomMessage(ctx context.Context, s *Session, req protocol.SendRoomMessage) (protocol.Payload, error) {
	src, room, err := n.roomAndAvatar(s, req.SrcAvatarID, req.RoomAddress)
	if err != nil {
		return nil, err
	}
	if !room.IsMember(src.ID) {
		return nil, fmt.Errorf("%w: avatar %d in room %s", errors.ErrNotInRoom, src.ID, room.Address)
	}
	if room.Attributes.Has(domain.RoomModerated) && !room.CanModerate(src.ID) {
		return nil, notPrivileged(src.ID, room)
	}
	if err = services.ValidateText(req.Message, req.OOB); err != nil {
		return nil, err
	}
	messageID := n.registry.NextMessageID(room)
	n.broadcast(ctx, room.GetConnectedAddresses(), protocol.RoomMessage{
		SrcAvatarID:   uint32(src.ID),
		RoomID:        uint32(room.ID),
		DestAvatarIDs: toWireIDs(room.GetAvatarIDs(src.ID)),
		Message:       req.Message,
		OOB:           req.OOB,
		MessageID:     messageID,
	})
	return protocol.ID(messageID), nil
}

// sendPersistentMessage files the message whether or not the recipient is
// online, and pushes an arrival notice when it is.
func (n *Node) sendPersistentMessage(ctx context.Context, s *Session, req protocol.SendPersistentMessage) (protocol.Payload, error) {
	src, err := s.avatar(req.SrcAvatarID)
	if err != nil {
		return nil, err
	}
	dest, err := n.recipient(src, req.DestName, req.DestAddress)
	if err != nil {
		return nil, err
	}
	header, err := n.mail.Send(src, dest, req.Subject, req.Category, req.Message, req.OOB)
	if err != nil {
		return nil, err
	}
	n.sendToAvatar(ctx, dest.ID, protocol.PersistentMessageArrived{
		DestAvatarID: uint32(dest.ID),
		Header:       toWireHeader(header),
	})
	return protocol.ID(header.ID), nil
}

func (n *Node) getPersistentHeaders(_ context.Context, s *Session, req protocol.GetPersistentHeaders) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	headers, err := n.mail.GetHeaders(avatar.ID, req.Category)
	if err != nil {
		return nil, err
	}
	return protocol.PersistentHeaders(lo.Map(headers, func(header domain.PersistentHeader, _ int) protocol.PersistentHeader {
		return toWireHeader(header)
	})), nil
}

func (n *Node) getPersistentMessage(_ context.Context, s *Session, req protocol.GetPersistentMessage) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	message, err := n.mail.Get(avatar.ID, req.MessageID)
	if err != nil {
		return nil, err
	}
	return protocol.PersistentMessage{
		Header:  toWireHeader(message.PersistentHeader),
		Message: message.Message,
		OOB:     message.OOB,
	}, nil
}

func (n *Node) updatePersistentMessage(_ context.Context, s *Session, req protocol.UpdatePersistentMessage) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	status, err := messageStatus(req.Status)
	if err != nil {
		return nil, err
	}
	return nil, n.mail.UpdateStatus(avatar.ID, req.MessageID, status)
}

func (n *Node) updatePersistentMessages(_ context.Context, s *Session, req protocol.UpdatePersistentMessages) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	current, err := messageStatus(req.CurrentStatus)
	if err != nil {
		return nil, err
	}
	next, err := messageStatus(req.NewStatus)
	if err != nil {
		return nil, err
	}
	count, err := n.mail.UpdateAll(avatar.ID, current, next)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Persistent messages updated", "avatar_id", avatar.ID, "count", count)
	return nil, nil
}

// recipient resolves the destination of a direct message and refuses it
// when the destination ignores the sender.
func (n *Node) recipient(src domain.Avatar, name, address string) (domain.Avatar, error) {
	dest, err := n.directory.FindAvatar(name, address)
	if err != nil {
		return domain.Avatar{}, err
	}
	if n.directory.IsIgnoring(dest.ID, src.ID) {
		return domain.Avatar{}, fmt.Errorf("%w: %s ignores %s", errors.ErrIgnored, dest.Name, src.Name)
	}
	return dest, nil
}

func messageStatus(v uint32) (domain.MessageStatus, error) {
	status := domain.MessageStatus(v)
	if status < domain.MessageStatusNew || status > domain.MessageStatusDeleted {
		return 0, fmt.Errorf("%w: message status %d", errors.ErrInvalidArgument, v)
	}
	return status, nil
}
