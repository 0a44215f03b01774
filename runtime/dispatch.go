package runtime

import (
	"chat-gateway/protocol"
	"context"
	"fmt"
)

// action runs a decoded request under the node's domain lock and returns
// the response body.
type action func(ctx context.Context, s *Session) (protocol.Payload, error)

// handlerFunc decodes the payload of one request kind. Decoding runs
// outside the domain lock; a decode error or a payload with bytes left
// over drops the request.
type handlerFunc func(r *protocol.Reader) (action, error)

func bind[T any](decode func(*protocol.Reader) (T, error),
	handle func(ctx context.Context, s *Session, req T) (protocol.Payload, error)) handlerFunc {
	return func(r *protocol.Reader) (action, error) {
		req, err := decode(r)
		if err != nil {
			return nil, err
		}
		if r.Remaining() != 0 {
			return nil, fmt.Errorf("%w: %d", protocol.ErrTrailingBytes, r.Remaining())
		}
		return func(ctx context.Context, s *Session) (protocol.Payload, error) {
			return handle(ctx, s, req)
		}, nil
	}
}

func (n *Node) handlerTable() map[protocol.RequestType]handlerFunc {
	return map[protocol.RequestType]handlerFunc{
		protocol.RequestLoginAvatar:              bind(protocol.DecodeLoginAvatar, n.loginAvatar),
		protocol.RequestLogoutAvatar:             bind(protocol.DecodeAvatarRequest, n.logoutAvatar),
		protocol.RequestFailoverReLoginAvatar:    bind(protocol.DecodeFailoverReLoginAvatar, n.failoverReLoginAvatar),
		protocol.RequestGetAnyAvatar:             bind(protocol.DecodeGetAnyAvatar, n.getAnyAvatar),
		protocol.RequestSetAvatarAttributes:      bind(protocol.DecodeSetAvatarAttributes, n.setAvatarAttributes),
		protocol.RequestSetApiVersion:            bind(protocol.DecodeSetApiVersion, n.setApiVersion),
		protocol.RequestCreateRoom:               bind(protocol.DecodeCreateRoom, n.createRoom),
		protocol.RequestDestroyRoom:              bind(protocol.DecodeRoomRequest, n.destroyRoom),
		protocol.RequestGetRoom:                  bind(protocol.DecodeRoomRequest, n.getRoom),
		protocol.RequestGetRoomSummaries:         bind(protocol.DecodeGetRoomSummaries, n.getRoomSummaries),
		protocol.RequestEnterRoom:                bind(protocol.DecodeEnterRoom, n.enterRoom),
		protocol.RequestLeaveRoom:                bind(protocol.DecodeRoomRequest, n.leaveRoom),
		protocol.RequestKickAvatar:               bind(protocol.DecodeRoomTargetRequest, n.kickAvatar),
		protocol.RequestAddModerator:             bind(protocol.DecodeRoomTargetRequest, n.addModerator),
		protocol.RequestRemoveModerator:          bind(protocol.DecodeRoomTargetRequest, n.removeModerator),
		protocol.RequestAddAdministrator:         bind(protocol.DecodeRoomTargetRequest, n.addAdministrator),
		protocol.RequestRemoveAdministrator:      bind(protocol.DecodeRoomTargetRequest, n.removeAdministrator),
		protocol.RequestAddBan:                   bind(protocol.DecodeRoomTargetRequest, n.addBan),
		protocol.RequestRemoveBan:                bind(protocol.DecodeRoomTargetRequest, n.removeBan),
		protocol.RequestAddInvite:                bind(protocol.DecodeRoomTargetRequest, n.addInvite),
		protocol.RequestRemoveInvite:             bind(protocol.DecodeRoomTargetRequest, n.removeInvite),
		protocol.RequestSendInstantMessage:       bind(protocol.DecodeSendInstantMessage, n.sendInstantMessage),
		protocol.RequestSendRoomMessage:          bind(protocol.DecodeSendRoomMessage, n.sendRoomMessage),
		protocol.RequestSendPersistentMessage:    bind(protocol.DecodeSendPersistentMessage, n.sendPersistentMessage),
		protocol.RequestGetPersistentHeaders:     bind(protocol.DecodeGetPersistentHeaders, n.getPersistentHeaders),
		protocol.RequestGetPersistentMessage:     bind(protocol.DecodeGetPersistentMessage, n.getPersistentMessage),
		protocol.RequestUpdatePersistentMessage:  bind(protocol.DecodeUpdatePersistentMessage, n.updatePersistentMessage),
		protocol.RequestUpdatePersistentMessages: bind(protocol.DecodeUpdatePersistentMessages, n.updatePersistentMessages),
		protocol.RequestAddFriend:                bind(protocol.DecodeContactRequest, n.addFriend),
		protocol.RequestRemoveFriend:             bind(protocol.DecodeContactRequest, n.removeFriend),
		protocol.RequestFriendStatus:             bind(protocol.DecodeAvatarRequest, n.friendStatus),
		protocol.RequestAddIgnore:                bind(protocol.DecodeContactRequest, n.addIgnore),
		protocol.RequestRemoveIgnore:             bind(protocol.DecodeContactRequest, n.removeIgnore),
		protocol.RequestIgnoreStatus:             bind(protocol.DecodeAvatarRequest, n.ignoreStatus),
	}
}
