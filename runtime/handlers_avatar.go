package runtime

import (
	"chat-gateway/domain"
	"chat-gateway/errors"
	"chat-gateway/protocol"
	"chat-gateway/services"
	"context"
	"fmt"
)

func (n *Node) loginAvatar(ctx context.Context, s *Session, req protocol.LoginAvatar) (protocol.Payload, error) {
	avatar, err := n.avatars.Login(services.LoginParams{
		UserID:        req.UserID,
		Name:          req.Name,
		Address:       req.Address,
		LoginLocation: req.LoginLocation,
		Attributes:    req.Attributes,
	}, s.address)
	if err != nil {
		return nil, err
	}
	s.log.Info("Avatar logged in", "avatar_id", avatar.ID, "name", avatar.Name)
	n.notifyFriendLogin(ctx, avatar)
	return toWireAvatar(avatar), nil
}

func (n *Node) failoverReLoginAvatar(_ context.Context, s *Session, req protocol.FailoverReLoginAvatar) (protocol.Payload, error) {
	avatar, err := n.avatars.FailoverReLogin(domain.AvatarID(req.AvatarID), services.LoginParams{
		UserID:        req.UserID,
		Name:          req.Name,
		Address:       req.Address,
		LoginLocation: req.LoginLocation,
		Attributes:    req.Attributes,
	}, s.address)
	if err != nil {
		return nil, err
	}
	s.log.Info("Avatar restored after failover", "avatar_id", avatar.ID)
	return toWireAvatar(avatar), nil
}

func (n *Node) logoutAvatar(ctx context.Context, s *Session, req protocol.AvatarRequest) (protocol.Payload, error) {
	if _, err := s.avatar(req.AvatarID); err != nil {
		return nil, err
	}
	avatar, err := n.avatars.Logout(domain.AvatarID(req.AvatarID))
	if err != nil {
		return nil, err
	}
	n.leaveAllRooms(ctx, avatar.ID)
	n.notifyFriendLogout(ctx, avatar)
	s.log.Info("Avatar logged out", "avatar_id", avatar.ID)
	return nil, nil
}

func (n *Node) getAnyAvatar(_ context.Context, _ *Session, req protocol.GetAnyAvatar) (protocol.Payload, error) {
	avatar, err := n.directory.FindAvatar(req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	return protocol.AnyAvatar{Online: n.directory.IsOnline(avatar.ID), Avatar: toWireAvatar(avatar)}, nil
}

func (n *Node) setAvatarAttributes(_ context.Context, s *Session, req protocol.SetAvatarAttributes) (protocol.Payload, error) {
	if _, err := s.avatar(req.AvatarID); err != nil {
		return nil, err
	}
	return nil, n.avatars.SetAttributes(domain.AvatarID(req.AvatarID), req.Attributes, req.Persist)
}

// setApiVersion accepts only the node's own version.
func (n *Node) setApiVersion(_ context.Context, s *Session, req protocol.SetApiVersion) (protocol.Payload, error) {
	if req.Version != n.apiVersion {
		return nil, fmt.Errorf("%w: client %d, node %d", errors.ErrUnsupportedVersion, req.Version, n.apiVersion)
	}
	s.apiVersion = req.Version
	return protocol.ApiVersion{Version: n.apiVersion}, nil
}
