package protocol

// Avatar is the wire form of an avatar identity.
type Avatar struct {
	ID            uint32
	UserID        uint32
	Name          string
	Address       string
	LoginLocation string
	Attributes    uint32
}

func (a Avatar) Encode(w *Writer) {
	w.Uint32(a.ID)
	w.Uint32(a.UserID)
	w.String(a.Name)
	w.String(a.Address)
	w.String(a.LoginLocation)
	w.Uint32(a.Attributes)
}

func DecodeAvatar(r *Reader) (Avatar, error) {
	a := Avatar{
		ID:            r.Uint32(),
		UserID:        r.Uint32(),
		Name:          r.String(),
		Address:       r.String(),
		LoginLocation: r.String(),
		Attributes:    r.Uint32(),
	}
	return a, r.Err()
}

type PersistentHeader struct {
	ID          uint32
	AvatarID    uint32
	FromName    string
	FromAddress string
	Subject     string
	Category    string
	SentTime    uint32
	Status      uint32
}

func (h PersistentHeader) Encode(w *Writer) {
	w.Uint32(h.ID)
	w.Uint32(h.AvatarID)
	w.String(h.FromName)
	w.String(h.FromAddress)
	w.String(h.Subject)
	w.String(h.Category)
	w.Uint32(h.SentTime)
	w.Uint32(h.Status)
}

type RoomSummary struct {
	Address     string
	Topic       string
	Attributes  uint32
	CurrentSize uint32
	MaxSize     uint32
}

func (s RoomSummary) Encode(w *Writer) {
	w.String(s.Address)
	w.String(s.Topic)
	w.Uint32(s.Attributes)
	w.Uint32(s.CurrentSize)
	w.Uint32(s.MaxSize)
}

// Room is the full description returned by CreateRoom and GetRoom. The
// password is never sent back; HasPassword tells the client to prompt.
type Room struct {
	ID             uint32
	CreatorID      uint32
	Name           string
	Topic          string
	HasPassword    bool
	Attributes     uint32
	MaxSize        uint32
	Address        string
	SrcAddress     string
	Members        []uint32
	Moderators     []uint32
	Administrators []uint32
	Banned         []uint32
	Invited        []uint32
}

func (r Room) Encode(w *Writer) {
	w.Uint32(r.ID)
	w.Uint32(r.CreatorID)
	w.String(r.Name)
	w.String(r.Topic)
	w.Bool(r.HasPassword)
	w.Uint32(r.Attributes)
	w.Uint32(r.MaxSize)
	w.String(r.Address)
	w.String(r.SrcAddress)
	w.Uint32s(r.Members)
	w.Uint32s(r.Moderators)
	w.Uint32s(r.Administrators)
	w.Uint32s(r.Banned)
	w.Uint32s(r.Invited)
}

func DecodeRoom(r *Reader) (Room, error) {
	room := Room{
		ID:             r.Uint32(),
		CreatorID:      r.Uint32(),
		Name:           r.String(),
		Topic:          r.String(),
		HasPassword:    r.Bool(),
		Attributes:     r.Uint32(),
		MaxSize:        r.Uint32(),
		Address:        r.String(),
		SrcAddress:     r.String(),
		Members:        r.Uint32s(),
		Moderators:     r.Uint32s(),
		Administrators: r.Uint32s(),
		Banned:         r.Uint32s(),
		Invited:        r.Uint32s(),
	}
	return room, r.Err()
}

type RoomSummaries []RoomSummary

func (s RoomSummaries) Encode(w *Writer) {
	w.Uint32(uint32(len(s)))
	for _, summary := range s {
		summary.Encode(w)
	}
}

type AnyAvatar struct {
	Online bool
	Avatar Avatar
}

func (a AnyAvatar) Encode(w *Writer) {
	w.Bool(a.Online)
	a.Avatar.Encode(w)
}

type ApiVersion struct {
	Version uint32
}

func (v ApiVersion) Encode(w *Writer) {
	w.Uint32(v.Version)
}

// ID is the body of responses that only report an identifier: room id for
// EnterRoom, message id for SendRoomMessage and SendPersistentMessage.
type ID uint32

func (id ID) Encode(w *Writer) {
	w.Uint32(uint32(id))
}

type PersistentHeaders []PersistentHeader

func (h PersistentHeaders) Encode(w *Writer) {
	w.Uint32(uint32(len(h)))
	for _, header := range h {
		header.Encode(w)
	}
}

type PersistentMessage struct {
	Header  PersistentHeader
	Message string
	OOB     string
}

func (m PersistentMessage) Encode(w *Writer) {
	m.Header.Encode(w)
	w.String(m.Message)
	w.String(m.OOB)
}

type Contact struct {
	Name    string
	Address string
	Comment string
	Online  bool
}

func (c Contact) Encode(w *Writer) {
	w.String(c.Name)
	w.String(c.Address)
	w.String(c.Comment)
	w.Bool(c.Online)
}

type Contacts []Contact

func (c Contacts) Encode(w *Writer) {
	w.Uint32(uint32(len(c)))
	for _, contact := range c {
		contact.Encode(w)
	}
}
