package protocol

// RequestType is the tag at the front of every inbound frame. Responses
// echo the request tag.
type RequestType uint16

const (
	RequestLoginAvatar RequestType = iota
	RequestLogoutAvatar
	RequestFailoverReLoginAvatar
	RequestGetAnyAvatar
	RequestSetAvatarAttributes
	RequestSetApiVersion
	RequestCreateRoom
	RequestDestroyRoom
	RequestGetRoom
	RequestGetRoomSummaries
	RequestEnterRoom
	RequestLeaveRoom
	RequestKickAvatar
	RequestAddModerator
	RequestRemoveModerator
	RequestAddAdministrator
	RequestRemoveAdministrator
	RequestAddBan
	RequestRemoveBan
	RequestAddInvite
	RequestRemoveInvite
	RequestSendInstantMessage
	RequestSendRoomMessage
	RequestSendPersistentMessage
	RequestGetPersistentHeaders
	RequestGetPersistentMessage
	RequestUpdatePersistentMessage
	RequestUpdatePersistentMessages
	RequestAddFriend
	RequestRemoveFriend
	RequestFriendStatus
	RequestAddIgnore
	RequestRemoveIgnore
	RequestIgnoreStatus
)

var requestNames = map[RequestType]string{
	RequestLoginAvatar:              "LoginAvatar",
	RequestLogoutAvatar:             "LogoutAvatar",
	RequestFailoverReLoginAvatar:    "FailoverReLoginAvatar",
	RequestGetAnyAvatar:             "GetAnyAvatar",
	RequestSetAvatarAttributes:      "SetAvatarAttributes",
	RequestSetApiVersion:            "SetApiVersion",
	RequestCreateRoom:               "CreateRoom",
	RequestDestroyRoom:              "DestroyRoom",
	RequestGetRoom:                  "GetRoom",
	RequestGetRoomSummaries:         "GetRoomSummaries",
	RequestEnterRoom:                "EnterRoom",
	RequestLeaveRoom:                "LeaveRoom",
	RequestKickAvatar:               "KickAvatar",
	RequestAddModerator:             "AddModerator",
	RequestRemoveModerator:          "RemoveModerator",
	RequestAddAdministrator:         "AddAdministrator",
	RequestRemoveAdministrator:      "RemoveAdministrator",
	RequestAddBan:                   "AddBan",
	RequestRemoveBan:                "RemoveBan",
	RequestAddInvite:                "AddInvite",
	RequestRemoveInvite:             "RemoveInvite",
	RequestSendInstantMessage:       "SendInstantMessage",
	RequestSendRoomMessage:          "SendRoomMessage",
	RequestSendPersistentMessage:    "SendPersistentMessage",
	RequestGetPersistentHeaders:     "GetPersistentHeaders",
	RequestGetPersistentMessage:     "GetPersistentMessage",
	RequestUpdatePersistentMessage:  "UpdatePersistentMessage",
	RequestUpdatePersistentMessages: "UpdatePersistentMessages",
	RequestAddFriend:                "AddFriend",
	RequestRemoveFriend:             "RemoveFriend",
	RequestFriendStatus:             "FriendStatus",
	RequestAddIgnore:                "AddIgnore",
	RequestRemoveIgnore:             "RemoveIgnore",
	RequestIgnoreStatus:             "IgnoreStatus",
}

func (t RequestType) String() string {
	if name, ok := requestNames[t]; ok {
		return name
	}
	return "Unknown"
}

// MessageType tags unsolicited notifications. The high bit keeps them apart
// from response tags.
type MessageType uint16

const (
	MessageFriendLogin MessageType = 0x8000 + iota
	MessageFriendLogout
	MessageRoomDestroyed
	MessageInstantMessage
	MessageRoomMessage
	MessageRoomEntered
	MessageRoomLeft
	MessagePersistentMessage
	MessageAvatarKicked
)

type ResultCode uint32

const (
	ResultSuccess ResultCode = iota
	ResultTimeout
	ResultDuplicateLogin
	ResultSrcAvatarDoesntExist
	ResultDestAvatarDoesntExist
	ResultAddressDoesntExist
	ResultAddressNotRoom
	ResultAddressNotAID
	ResultFriendNotFound
	ResultRoomUnknownFailure
	ResultRoomSrcNotInRoom
	ResultRoomDestNotInRoom
	ResultRoomBannedAvatar
	ResultRoomPrivateRoom
	ResultRoomModeratedRoom
	ResultRoomNotInRoom
	ResultRoomNoPrivileges
	ResultDatabase
	ResultCannotGetAvatarID
	ResultCannotGetNodeID
	ResultCannotGetPersistentMessageID
	ResultPersistentMessageNotFound
	ResultRoomMaxAvatarsReached
	ResultIgnoring
	ResultRoomAlreadyExists
	ResultNothingToDo
	ResultRoomBadPassword
	ResultInvalidArgument
	ResultUnsupportedVersion
)
