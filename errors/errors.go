package errors

import (
	"chat-gateway/protocol"
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrAlreadyExists      = fmt.Errorf("already exists")
	ErrNotFound           = fmt.Errorf("not found")
	ErrPermissionDenied   = fmt.Errorf("permission denied")
	ErrRoomFull           = fmt.Errorf("room is full")
	ErrBanned             = fmt.Errorf("avatar is banned from room")
	ErrInviteRequired     = fmt.Errorf("room requires an invite")
	ErrBadPassword        = fmt.Errorf("bad room password")
	ErrStorageFailure     = fmt.Errorf("storage failure")
	ErrProtocol           = fmt.Errorf("protocol error")
	ErrInvalidArgument    = fmt.Errorf("invalid argument")
	ErrUnsupportedVersion = fmt.Errorf("unsupported api version")

	ErrNotInRoom        = fmt.Errorf("%w: avatar is not in room", ErrNotFound)
	ErrAvatarNotFound   = fmt.Errorf("%w: avatar", ErrNotFound)
	ErrMessageNotFound  = fmt.Errorf("%w: persistent message", ErrNotFound)
	ErrIgnored          = fmt.Errorf("%w: recipient ignores sender", ErrPermissionDenied)
	ErrDuplicateLogin   = fmt.Errorf("%w: avatar already logged in", ErrAlreadyExists)
	ErrUnknownRequest   = fmt.Errorf("%w: unknown request type", ErrProtocol)
	ErrTransportClosed  = fmt.Errorf("transport closed")
	ErrUnknownTransport = fmt.Errorf("unknown transport")
)

// resultCodes is walked in order, so wrapped sentinels must come before the
// sentinel they wrap.
var resultCodes = []struct {
	err  error
	code protocol.ResultCode
}{
	{ErrNotInRoom, protocol.ResultRoomNotInRoom},
	{ErrAvatarNotFound, protocol.ResultDestAvatarDoesntExist},
	{ErrMessageNotFound, protocol.ResultPersistentMessageNotFound},
	{ErrIgnored, protocol.ResultIgnoring},
	{ErrDuplicateLogin, protocol.ResultDuplicateLogin},
	{ErrAlreadyExists, protocol.ResultRoomAlreadyExists},
	{ErrNotFound, protocol.ResultAddressDoesntExist},
	{ErrPermissionDenied, protocol.ResultRoomNoPrivileges},
	{ErrRoomFull, protocol.ResultRoomMaxAvatarsReached},
	{ErrBanned, protocol.ResultRoomBannedAvatar},
	{ErrInviteRequired, protocol.ResultRoomPrivateRoom},
	{ErrBadPassword, protocol.ResultRoomBadPassword},
	{ErrStorageFailure, protocol.ResultDatabase},
	{ErrInvalidArgument, protocol.ResultInvalidArgument},
	{ErrUnsupportedVersion, protocol.ResultUnsupportedVersion},
}

// ToResultCode maps an error returned by a handler onto the result code
// carried by the response frame. A nil error is a success.
func ToResultCode(err error) protocol.ResultCode {
	if err == nil {
		return protocol.ResultSuccess
	}
	for _, rc := range resultCodes {
		if stderrors.Is(err, rc.err) {
			return rc.code
		}
	}
	return protocol.ResultRoomUnknownFailure
}
