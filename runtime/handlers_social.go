package runtime

import (
	"chat-gateway/domain"
	"chat-gateway/protocol"
	"context"

	"github.com/samber/lo"
)

// addFriend with Confirm set also tells the requester right away when the
// new friend is online, as a login would have.
func (n *Node) addFriend(ctx context.Context, s *Session, req protocol.ContactRequest) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	contact, err := n.avatars.AddFriend(avatar.ID, req.Name, req.Address, req.Comment)
	if err != nil {
		return nil, err
	}
	online := n.directory.IsOnline(contact.AvatarID)
	if online && req.Confirm {
		friend, err := n.directory.GetAvatar(contact.AvatarID)
		if err == nil {
			n.hub.SendTo(ctx, s.address, protocol.FriendLogin{
				Friend:        toWireAvatar(friend),
				FriendAddress: friend.Address,
				DestAvatarID:  uint32(avatar.ID),
				StatusMessage: n.directory.GetStatusMessage(friend.ID),
			})
		}
	}
	return n.toWireContact(contact), nil
}

func (n *Node) removeFriend(_ context.Context, s *Session, req protocol.ContactRequest) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	contact, err := n.avatars.RemoveFriend(avatar.ID, req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	return n.toWireContact(contact), nil
}

func (n *Node) friendStatus(_ context.Context, s *Session, req protocol.AvatarRequest) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	friends, err := n.directory.GetFriendList(avatar.ID)
	if err != nil {
		return nil, err
	}
	return n.toWireContacts(friends), nil
}

func (n *Node) addIgnore(_ context.Context, s *Session, req protocol.ContactRequest) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	contact, err := n.avatars.AddIgnore(avatar.ID, req.Name, req.Address, req.Comment)
	if err != nil {
		return nil, err
	}
	return n.toWireContact(contact), nil
}

func (n *Node) removeIgnore(_ context.Context, s *Session, req protocol.ContactRequest) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	contact, err := n.avatars.RemoveIgnore(avatar.ID, req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	return n.toWireContact(contact), nil
}

func (n *Node) ignoreStatus(_ context.Context, s *Session, req protocol.AvatarRequest) (protocol.Payload, error) {
	avatar, err := s.avatar(req.AvatarID)
	if err != nil {
		return nil, err
	}
	ignored, err := n.avatars.GetIgnoreList(avatar.ID)
	if err != nil {
		return nil, err
	}
	return n.toWireContacts(ignored), nil
}

func (n *Node) toWireContact(contact domain.Contact) protocol.Contact {
	return protocol.Contact{
		Name:    contact.Name,
		Address: contact.Address,
		Comment: contact.Comment,
		Online:  n.directory.IsOnline(contact.AvatarID),
	}
}

func (n *Node) toWireContacts(contacts []domain.Contact) protocol.Contacts {
	return lo.Map(contacts, func(contact domain.Contact, _ int) protocol.Contact {
		return n.toWireContact(contact)
	})
}
