package protocol

// Notification payloads. Field order is a contract with deployed clients;
// append new fields at the end only.

type FriendLogin struct {
	Friend        Avatar
	FriendAddress string
	DestAvatarID  uint32
	StatusMessage string
}

func (FriendLogin) Type() MessageType { return MessageFriendLogin }

func (m FriendLogin) Encode(w *Writer) {
	m.Friend.Encode(w)
	w.String(m.FriendAddress)
	w.Uint32(m.DestAvatarID)
	w.String(m.StatusMessage)
}

type FriendLogout struct {
	Friend        Avatar
	FriendAddress string
	DestAvatarID  uint32
}

func (FriendLogout) Type() MessageType { return MessageFriendLogout }

func (m FriendLogout) Encode(w *Writer) {
	m.Friend.Encode(w)
	w.String(m.FriendAddress)
	w.Uint32(m.DestAvatarID)
}

type RoomDestroyed struct {
	Src    Avatar
	RoomID uint32
}

func (RoomDestroyed) Type() MessageType { return MessageRoomDestroyed }

func (m RoomDestroyed) Encode(w *Writer) {
	m.Src.Encode(w)
	w.Uint32(m.RoomID)
}

type InstantMessage struct {
	Src          Avatar
	DestAvatarID uint32
	Message      string
	OOB          string
}

func (InstantMessage) Type() MessageType { return MessageInstantMessage }

func (m InstantMessage) Encode(w *Writer) {
	m.Src.Encode(w)
	w.Uint32(m.DestAvatarID)
	w.String(m.Message)
	w.String(m.OOB)
}

type RoomMessage struct {
	SrcAvatarID   uint32
	RoomID        uint32
	DestAvatarIDs []uint32
	Message       string
	OOB           string
	MessageID     uint32
}

func (RoomMessage) Type() MessageType { return MessageRoomMessage }

func (m RoomMessage) Encode(w *Writer) {
	w.Uint32(m.SrcAvatarID)
	w.Uint32(m.RoomID)
	w.Uint32s(m.DestAvatarIDs)
	w.String(m.Message)
	w.String(m.OOB)
	w.Uint32(m.MessageID)
}

func DecodeRoomMessage(r *Reader) (RoomMessage, error) {
	m := RoomMessage{
		SrcAvatarID:   r.Uint32(),
		RoomID:        r.Uint32(),
		DestAvatarIDs: r.Uint32s(),
		Message:       r.String(),
		OOB:           r.String(),
		MessageID:     r.Uint32(),
	}
	return m, r.Err()
}

type RoomEntered struct {
	Src    Avatar
	RoomID uint32
}

func (RoomEntered) Type() MessageType { return MessageRoomEntered }

func (m RoomEntered) Encode(w *Writer) {
	m.Src.Encode(w)
	w.Uint32(m.RoomID)
}

type RoomLeft struct {
	SrcAvatarID uint32
	RoomID      uint32
}

func (RoomLeft) Type() MessageType { return MessageRoomLeft }

func (m RoomLeft) Encode(w *Writer) {
	w.Uint32(m.SrcAvatarID)
	w.Uint32(m.RoomID)
}

type PersistentMessageArrived struct {
	DestAvatarID uint32
	Header       PersistentHeader
}

func (PersistentMessageArrived) Type() MessageType { return MessagePersistentMessage }

func (m PersistentMessageArrived) Encode(w *Writer) {
	w.Uint32(m.DestAvatarID)
	m.Header.Encode(w)
}

type AvatarKicked struct {
	Src         Avatar
	Dest        Avatar
	RoomName    string
	RoomAddress string
}

func (AvatarKicked) Type() MessageType { return MessageAvatarKicked }

func (m AvatarKicked) Encode(w *Writer) {
	m.Src.Encode(w)
	m.Dest.Encode(w)
	w.String(m.RoomName)
	w.String(m.RoomAddress)
}

func DecodeAvatarKicked(r *Reader) (AvatarKicked, error) {
	src, _ := DecodeAvatar(r)
	dest, _ := DecodeAvatar(r)
	m := AvatarKicked{Src: src, Dest: dest, RoomName: r.String(), RoomAddress: r.String()}
	return m, r.Err()
}

func DecodeFriendLogin(r *Reader) (FriendLogin, error) {
	friend, _ := DecodeAvatar(r)
	m := FriendLogin{Friend: friend, FriendAddress: r.String(), DestAvatarID: r.Uint32(), StatusMessage: r.String()}
	return m, r.Err()
}
