package runtime

import (
	"chat-gateway/domain"
	"chat-gateway/protocol"
	"context"
)

// Fan-out helpers resolve their targets once and then send to each target
// independently. Membership changes in between are not guarded against.

func (n *Node) broadcast(ctx context.Context, addresses []string, message protocol.Message) {
	for _, address := range addresses {
		n.hub.SendTo(ctx, address, message)
	}
}

// sendToAvatar delivers to the peer of an online avatar and reports
// whether it was online.
func (n *Node) sendToAvatar(ctx context.Context, avatarID domain.AvatarID, message protocol.Message) bool {
	address, ok := n.directory.GetAddress(avatarID)
	if !ok {
		return false
	}
	n.hub.SendTo(ctx, address, message)
	return true
}

// notifyFriendLogin tells every online avatar listing avatar as a friend
// that it arrived, and tells avatar which of its own friends are online.
func (n *Node) notifyFriendLogin(ctx context.Context, avatar domain.Avatar) {
	owners, err := n.avatars.GetFriendOf(avatar.ID)
	if err != nil {
		n.log.Error("Failed to resolve friend login targets", "avatar_id", avatar.ID, "error", err)
	}
	for _, owner := range owners {
		n.sendToAvatar(ctx, owner, protocol.FriendLogin{
			Friend:        toWireAvatar(avatar),
			FriendAddress: avatar.Address,
			DestAvatarID:  uint32(owner),
			StatusMessage: avatar.StatusMessage,
		})
	}

	friends, err := n.directory.GetFriendList(avatar.ID)
	if err != nil {
		n.log.Error("Failed to read friend list", "avatar_id", avatar.ID, "error", err)
		return
	}
	for _, friend := range friends {
		if !n.directory.IsOnline(friend.AvatarID) {
			continue
		}
		online, err := n.directory.GetAvatar(friend.AvatarID)
		if err != nil {
			continue
		}
		n.hub.SendTo(ctx, avatar.Peer, protocol.FriendLogin{
			Friend:        toWireAvatar(online),
			FriendAddress: online.Address,
			DestAvatarID:  uint32(avatar.ID),
			StatusMessage: n.directory.GetStatusMessage(friend.AvatarID),
		})
	}
}

func (n *Node) notifyFriendLogout(ctx context.Context, avatar domain.Avatar) {
	owners, err := n.avatars.GetFriendOf(avatar.ID)
	if err != nil {
		n.log.Error("Failed to resolve friend logout targets", "avatar_id", avatar.ID, "error", err)
		return
	}
	for _, owner := range owners {
		n.sendToAvatar(ctx, owner, protocol.FriendLogout{
			Friend:        toWireAvatar(avatar),
			FriendAddress: avatar.Address,
			DestAvatarID:  uint32(owner),
		})
	}
}

// leaveAllRooms removes the avatar from every room it is in and tells the
// remaining members.
func (n *Node) leaveAllRooms(ctx context.Context, avatarID domain.AvatarID) {
	for _, room := range n.registry.ListJoinedRooms(avatarID) {
		addresses := room.GetConnectedAddresses()
		if err := n.registry.LeaveRoom(room, avatarID); err != nil {
			n.log.Warn("Failed to leave room", "room", room.Address, "avatar_id", avatarID, "error", err)
			continue
		}
		n.broadcast(ctx, addresses, protocol.RoomLeft{SrcAvatarID: uint32(avatarID), RoomID: uint32(room.ID)})
	}
}
