package protocol

// Request payloads, one struct per RequestType. Each Decode function reads
// the fields in wire order; Encode is the inverse and is used by clients and
// tests.

type LoginAvatar struct {
	UserID        uint32
	Name          string
	Address       string
	LoginLocation string
	Attributes    uint32
}

func DecodeLoginAvatar(r *Reader) (LoginAvatar, error) {
	req := LoginAvatar{
		UserID:        r.Uint32(),
		Name:          r.String(),
		Address:       r.String(),
		LoginLocation: r.String(),
		Attributes:    r.Uint32(),
	}
	return req, r.Err()
}

func (req LoginAvatar) Encode(w *Writer) {
	w.Uint32(req.UserID)
	w.String(req.Name)
	w.String(req.Address)
	w.String(req.LoginLocation)
	w.Uint32(req.Attributes)
}

type FailoverReLoginAvatar struct {
	AvatarID      uint32
	UserID        uint32
	Name          string
	Address       string
	LoginLocation string
	Attributes    uint32
}

func DecodeFailoverReLoginAvatar(r *Reader) (FailoverReLoginAvatar, error) {
	req := FailoverReLoginAvatar{
		AvatarID:      r.Uint32(),
		UserID:        r.Uint32(),
		Name:          r.String(),
		Address:       r.String(),
		LoginLocation: r.String(),
		Attributes:    r.Uint32(),
	}
	return req, r.Err()
}

func (req FailoverReLoginAvatar) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.Uint32(req.UserID)
	w.String(req.Name)
	w.String(req.Address)
	w.String(req.LoginLocation)
	w.Uint32(req.Attributes)
}

type GetAnyAvatar struct {
	Name    string
	Address string
}

func DecodeGetAnyAvatar(r *Reader) (GetAnyAvatar, error) {
	req := GetAnyAvatar{Name: r.String(), Address: r.String()}
	return req, r.Err()
}

func (req GetAnyAvatar) Encode(w *Writer) {
	w.String(req.Name)
	w.String(req.Address)
}

type SetAvatarAttributes struct {
	AvatarID   uint32
	Attributes uint32
	Persist    bool
}

func DecodeSetAvatarAttributes(r *Reader) (SetAvatarAttributes, error) {
	req := SetAvatarAttributes{AvatarID: r.Uint32(), Attributes: r.Uint32(), Persist: r.Bool()}
	return req, r.Err()
}

func (req SetAvatarAttributes) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.Uint32(req.Attributes)
	w.Bool(req.Persist)
}

type SetApiVersion struct {
	Version uint32
}

func DecodeSetApiVersion(r *Reader) (SetApiVersion, error) {
	req := SetApiVersion{Version: r.Uint32()}
	return req, r.Err()
}

func (req SetApiVersion) Encode(w *Writer) {
	w.Uint32(req.Version)
}

type CreateRoom struct {
	CreatorID  uint32
	Name       string
	Topic      string
	Password   string
	Attributes uint32
	MaxSize    uint32
	Address    string
	SrcAddress string
}

func DecodeCreateRoom(r *Reader) (CreateRoom, error) {
	req := CreateRoom{
		CreatorID:  r.Uint32(),
		Name:       r.String(),
		Topic:      r.String(),
		Password:   r.String(),
		Attributes: r.Uint32(),
		MaxSize:    r.Uint32(),
		Address:    r.String(),
		SrcAddress: r.String(),
	}
	return req, r.Err()
}

func (req CreateRoom) Encode(w *Writer) {
	w.Uint32(req.CreatorID)
	w.String(req.Name)
	w.String(req.Topic)
	w.String(req.Password)
	w.Uint32(req.Attributes)
	w.Uint32(req.MaxSize)
	w.String(req.Address)
	w.String(req.SrcAddress)
}

// RoomRequest is the payload shared by DestroyRoom, GetRoom and LeaveRoom.
type RoomRequest struct {
	AvatarID    uint32
	RoomAddress string
}

func DecodeRoomRequest(r *Reader) (RoomRequest, error) {
	req := RoomRequest{AvatarID: r.Uint32(), RoomAddress: r.String()}
	return req, r.Err()
}

func (req RoomRequest) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.String(req.RoomAddress)
}

type GetRoomSummaries struct {
	StartNode string
	Filter    string
}

func DecodeGetRoomSummaries(r *Reader) (GetRoomSummaries, error) {
	req := GetRoomSummaries{StartNode: r.String(), Filter: r.String()}
	return req, r.Err()
}

func (req GetRoomSummaries) Encode(w *Writer) {
	w.String(req.StartNode)
	w.String(req.Filter)
}

type EnterRoom struct {
	AvatarID    uint32
	RoomAddress string
	Password    string
}

func DecodeEnterRoom(r *Reader) (EnterRoom, error) {
	req := EnterRoom{AvatarID: r.Uint32(), RoomAddress: r.String(), Password: r.String()}
	return req, r.Err()
}

func (req EnterRoom) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.String(req.RoomAddress)
	w.String(req.Password)
}

// RoomTargetRequest is the payload of every request where one avatar acts
// on another inside a room: kick, moderator, administrator, ban, invite.
type RoomTargetRequest struct {
	SrcAvatarID  uint32
	DestAvatarID uint32
	RoomAddress  string
}

func DecodeRoomTargetRequest(r *Reader) (RoomTargetRequest, error) {
	req := RoomTargetRequest{SrcAvatarID: r.Uint32(), DestAvatarID: r.Uint32(), RoomAddress: r.String()}
	return req, r.Err()
}

func (req RoomTargetRequest) Encode(w *Writer) {
	w.Uint32(req.SrcAvatarID)
	w.Uint32(req.DestAvatarID)
	w.String(req.RoomAddress)
}

type SendInstantMessage struct {
	SrcAvatarID uint32
	DestName    string
	DestAddress string
	Message     string
	OOB         string
}

func DecodeSendInstantMessage(r *Reader) (SendInstantMessage, error) {
	req := SendInstantMessage{
		SrcAvatarID: r.Uint32(),
		DestName:    r.String(),
		DestAddress: r.String(),
		Message:     r.String(),
		OOB:         r.String(),
	}
	return req, r.Err()
}

func (req SendInstantMessage) Encode(w *Writer) {
	w.Uint32(req.SrcAvatarID)
	w.String(req.DestName)
	w.String(req.DestAddress)
	w.String(req.Message)
	w.String(req.OOB)
}

type SendRoomMessage struct {
	SrcAvatarID uint32
	RoomAddress string
	Message     string
	OOB         string
}

func DecodeSendRoomMessage(r *Reader) (SendRoomMessage, error) {
	req := SendRoomMessage{
		SrcAvatarID: r.Uint32(),
		RoomAddress: r.String(),
		Message:     r.String(),
		OOB:         r.String(),
	}
	return req, r.Err()
}

func (req SendRoomMessage) Encode(w *Writer) {
	w.Uint32(req.SrcAvatarID)
	w.String(req.RoomAddress)
	w.String(req.Message)
	w.String(req.OOB)
}

type SendPersistentMessage struct {
	SrcAvatarID uint32
	DestName    string
	DestAddress string
	Subject     string
	Category    string
	Message     string
	OOB         string
}

func DecodeSendPersistentMessage(r *Reader) (SendPersistentMessage, error) {
	req := SendPersistentMessage{
		SrcAvatarID: r.Uint32(),
		DestName:    r.String(),
		DestAddress: r.String(),
		Subject:     r.String(),
		Category:    r.String(),
		Message:     r.String(),
		OOB:         r.String(),
	}
	return req, r.Err()
}

func (req SendPersistentMessage) Encode(w *Writer) {
	w.Uint32(req.SrcAvatarID)
	w.String(req.DestName)
	w.String(req.DestAddress)
	w.String(req.Subject)
	w.String(req.Category)
	w.String(req.Message)
	w.String(req.OOB)
}

type GetPersistentHeaders struct {
	AvatarID uint32
	Category string
}

func DecodeGetPersistentHeaders(r *Reader) (GetPersistentHeaders, error) {
	req := GetPersistentHeaders{AvatarID: r.Uint32(), Category: r.String()}
	return req, r.Err()
}

func (req GetPersistentHeaders) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.String(req.Category)
}

type GetPersistentMessage struct {
	AvatarID  uint32
	MessageID uint32
}

func DecodeGetPersistentMessage(r *Reader) (GetPersistentMessage, error) {
	req := GetPersistentMessage{AvatarID: r.Uint32(), MessageID: r.Uint32()}
	return req, r.Err()
}

func (req GetPersistentMessage) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.Uint32(req.MessageID)
}

type UpdatePersistentMessage struct {
	AvatarID  uint32
	MessageID uint32
	Status    uint32
}

func DecodeUpdatePersistentMessage(r *Reader) (UpdatePersistentMessage, error) {
	req := UpdatePersistentMessage{AvatarID: r.Uint32(), MessageID: r.Uint32(), Status: r.Uint32()}
	return req, r.Err()
}

func (req UpdatePersistentMessage) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.Uint32(req.MessageID)
	w.Uint32(req.Status)
}

type UpdatePersistentMessages struct {
	AvatarID      uint32
	CurrentStatus uint32
	NewStatus     uint32
}

func DecodeUpdatePersistentMessages(r *Reader) (UpdatePersistentMessages, error) {
	req := UpdatePersistentMessages{AvatarID: r.Uint32(), CurrentStatus: r.Uint32(), NewStatus: r.Uint32()}
	return req, r.Err()
}

func (req UpdatePersistentMessages) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.Uint32(req.CurrentStatus)
	w.Uint32(req.NewStatus)
}

// ContactRequest is the payload of the friend and ignore list mutations.
// Comment and Confirm are only meaningful for AddFriend.
type ContactRequest struct {
	AvatarID uint32
	Name     string
	Address  string
	Comment  string
	Confirm  bool
}

func DecodeContactRequest(r *Reader) (ContactRequest, error) {
	req := ContactRequest{
		AvatarID: r.Uint32(),
		Name:     r.String(),
		Address:  r.String(),
		Comment:  r.String(),
		Confirm:  r.Bool(),
	}
	return req, r.Err()
}

func (req ContactRequest) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
	w.String(req.Name)
	w.String(req.Address)
	w.String(req.Comment)
	w.Bool(req.Confirm)
}

// AvatarRequest is the payload of LogoutAvatar, FriendStatus and IgnoreStatus.
type AvatarRequest struct {
	AvatarID uint32
}

func DecodeAvatarRequest(r *Reader) (AvatarRequest, error) {
	req := AvatarRequest{AvatarID: r.Uint32()}
	return req, r.Err()
}

func (req AvatarRequest) Encode(w *Writer) {
	w.Uint32(req.AvatarID)
}
