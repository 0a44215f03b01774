package domain

// Avatar is a player's chat identity as seen by the gateway.
// Address is the peer address the avatar's traffic is routed to while it
// is online.
type Avatar struct {
	ID            AvatarID
	UserID        uint32
	Name          string
	Address       string
	LoginLocation string
	Attributes    uint32
	StatusMessage string
	Online        bool
	Peer          string
}

// Contact is an entry in a friend or ignore list.
type Contact struct {
	AvatarID AvatarID
	Name     string
	Address  string
	Comment  string
}
