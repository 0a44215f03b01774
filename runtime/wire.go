package runtime

import (
	"chat-gateway/domain"
	"chat-gateway/protocol"

	"github.com/samber/lo"
)

func toWireAvatar(avatar domain.Avatar) protocol.Avatar {
	return protocol.Avatar{
		ID:            uint32(avatar.ID),
		UserID:        avatar.UserID,
		Name:          avatar.Name,
		Address:       avatar.Address,
		LoginLocation: avatar.LoginLocation,
		Attributes:    avatar.Attributes,
	}
}

func toWireIDs(ids []domain.AvatarID) []uint32 {
	return lo.Map(ids, func(id domain.AvatarID, _ int) uint32 {
		return uint32(id)
	})
}

func toWireRoom(room *domain.Room) protocol.Room {
	return protocol.Room{
		ID:          uint32(room.ID),
		CreatorID:   uint32(room.CreatorID),
		Name:        room.Name,
		Topic:       room.Topic,
		HasPassword: room.Password != "",
		Attributes:  uint32(room.Attributes),
		MaxSize:     room.MaxSize,
		Address:     room.Address,
		SrcAddress:  room.SrcAddress,
		Members: lo.Map(room.Members(), func(m domain.Member, _ int) uint32 {
			return uint32(m.AvatarID)
		}),
		Moderators:     toWireIDs(room.Moderators()),
		Administrators: toWireIDs(room.Administrators()),
		Banned:         toWireIDs(room.Banned()),
		Invited:        toWireIDs(room.Invited()),
	}
}

func toWireSummary(room *domain.Room) protocol.RoomSummary {
	return protocol.RoomSummary{
		Address:     room.Address,
		Topic:       room.Topic,
		Attributes:  uint32(room.Attributes),
		CurrentSize: uint32(room.Size()),
		MaxSize:     room.MaxSize,
	}
}

func toWireHeader(header domain.PersistentHeader) protocol.PersistentHeader {
	return protocol.PersistentHeader{
		ID:          header.ID,
		AvatarID:    uint32(header.AvatarID),
		FromName:    header.FromName,
		FromAddress: header.FromAddress,
		Subject:     header.Subject,
		Category:    header.Category,
		SentTime:    uint32(header.SentAt.Unix()),
		Status:      uint32(header.Status),
	}
}
