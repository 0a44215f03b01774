package runtime

import (
	"chat-gateway/domain"
	"chat-gateway/mocks"
	"chat-gateway/protocol"
	"chat-gateway/repositories"
	"chat-gateway/services"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testApiVersion = 3

type sentFrame struct {
	tag    uint16
	track  uint32
	result protocol.ResultCode
	body   *protocol.Reader
}

func (f sentFrame) isNotification() bool {
	return f.tag >= 0x8000
}

// recordingTransport keeps every frame sent to each address.
type recordingTransport struct {
	mu     sync.Mutex
	frames map[string][][]byte
}

func newRecordingTransport() *recordingTransport {
	return &recordingTransport{frames: make(map[string][][]byte)}
}

func (t *recordingTransport) Send(_ context.Context, address string, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames[address] = append(t.frames[address], append([]byte(nil), data...))
	return nil
}

func (t *recordingTransport) reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames = make(map[string][][]byte)
}

func (t *recordingTransport) sent(address string) []sentFrame {
	t.mu.Lock()
	defer t.mu.Unlock()
	var res []sentFrame
	for _, data := range t.frames[address] {
		r := protocol.NewReader(data)
		f := sentFrame{tag: r.Uint16()}
		if !f.isNotification() {
			f.track = r.Uint32()
			f.result = protocol.ResultCode(r.Uint32())
		}
		f.body = r
		res = append(res, f)
	}
	return res
}

func (t *recordingTransport) notifications(address string, messageType protocol.MessageType) []sentFrame {
	var res []sentFrame
	for _, f := range t.sent(address) {
		if f.tag == uint16(messageType) {
			res = append(res, f)
		}
	}
	return res
}

// lastResponse returns the most recent response frame sent to address.
func (t *recordingTransport) lastResponse(tt *testing.T, address string) sentFrame {
	tt.Helper()
	frames := t.sent(address)
	for i := len(frames) - 1; i >= 0; i-- {
		if !frames[i].isNotification() {
			return frames[i]
		}
	}
	tt.Fatalf("no response sent to %s", address)
	return sentFrame{}
}

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestNode(t *testing.T) (*Node, *recordingTransport) {
	t.Helper()
	return newTestNodeOn(t, openTestDB(t))
}

func newTestNodeOn(t *testing.T, db *badger.DB) (*Node, *recordingTransport) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	avatarRepository, err := repositories.NewAvatarRepository(db)
	require.NoError(t, err)
	mailRepository, err := repositories.NewPersistentMessageRepository(db, log)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = avatarRepository.Close()
		_ = mailRepository.Close()
	})

	transport := newRecordingTransport()
	node := NewNode(log, "node1", testApiVersion,
		services.NewRoomRegistry(log, repositories.NewRoomRepository(db, log)),
		services.NewAvatarService(log, avatarRepository),
		services.NewPersistentMessageService(log, mailRepository),
		transport, nil)
	return node, transport
}

func send(t *testing.T, node *Node, peer string, requestType protocol.RequestType, track uint32, body protocol.Payload) {
	t.Helper()
	frame, err := protocol.EncodeRequest(requestType, track, body)
	require.NoError(t, err)
	node.Receive(context.Background(), peer, frame)
}

func login(t *testing.T, node *Node, transport *recordingTransport, peer, name string) uint32 {
	t.Helper()
	send(t, node, peer, protocol.RequestLoginAvatar, 1, protocol.LoginAvatar{Name: name, Address: "SWG"})
	response := transport.lastResponse(t, peer)
	require.Equal(t, protocol.ResultSuccess, response.result)
	avatar, err := protocol.DecodeAvatar(response.body)
	require.NoError(t, err)
	return avatar.ID
}

func createRoom(t *testing.T, node *Node, transport *recordingTransport, peer string, creatorID uint32, room protocol.CreateRoom) protocol.Room {
	t.Helper()
	room.CreatorID = creatorID
	send(t, node, peer, protocol.RequestCreateRoom, 2, room)
	response := transport.lastResponse(t, peer)
	require.Equal(t, protocol.ResultSuccess, response.result)
	created, err := protocol.DecodeRoom(response.body)
	require.NoError(t, err)
	return created
}

func enter(t *testing.T, node *Node, transport *recordingTransport, peer string, avatarID uint32, address, password string) protocol.ResultCode {
	t.Helper()
	send(t, node, peer, protocol.RequestEnterRoom, 3, protocol.EnterRoom{AvatarID: avatarID, RoomAddress: address, Password: password})
	return transport.lastResponse(t, peer).result
}

func TestNode_Unknown_Or_Malformed_Requests_Are_Dropped(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)

	// Unknown tag
	send(t, node, "peer-a", protocol.RequestType(999), 1, nil)
	// Truncated header
	node.Receive(context.Background(), "peer-a", []byte{0x06})
	// CreateRoom whose payload stops halfway
	frame, err := protocol.EncodeRequest(protocol.RequestCreateRoom, 2, protocol.AvatarRequest{AvatarID: 1})
	req.NoError(err)
	node.Receive(context.Background(), "peer-a", frame)
	// Complete SetApiVersion followed by garbage
	frame, err = protocol.EncodeRequest(protocol.RequestSetApiVersion, 3, protocol.SetApiVersion{Version: testApiVersion})
	req.NoError(err)
	node.Receive(context.Background(), "peer-a", append(frame, 0xde, 0xad))

	req.Empty(transport.sent("peer-a"))
}

func TestNode_CreateRoom_Then_Duplicate_Address(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")

	// When
	room := createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Cantina", MaxSize: 50, Address: "cantina.room", SrcAddress: "node1"})

	// Then
	req.Equal(uint32(1), room.ID)
	req.Equal([]uint32{han}, room.Administrators)
	req.False(room.HasPassword)

	// And a second room on the same address is refused without a body
	send(t, node, "peer-han", protocol.RequestCreateRoom, 9, protocol.CreateRoom{
		CreatorID: han, Name: "Other", Address: "cantina.room", SrcAddress: "node1"})
	response := transport.lastResponse(t, "peer-han")
	req.Equal(uint16(protocol.RequestCreateRoom), response.tag)
	req.Equal(uint32(9), response.track)
	req.Equal(protocol.ResultRoomAlreadyExists, response.result)
	req.Zero(response.body.Remaining())
}

func TestNode_Enter_With_Bad_Password_Gets_Negative_Response(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	leia := login(t, node, transport, "peer-leia", "Leia")
	createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Vault", Password: "secret", Address: "vault.room", SrcAddress: "node1"})

	req.Equal(protocol.ResultRoomBadPassword, enter(t, node, transport, "peer-leia", leia, "vault.room", "wrong"))
	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-leia", leia, "vault.room", "secret"))
}

func TestNode_Room_Full(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	leia := login(t, node, transport, "peer-leia", "Leia")
	createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Cockpit", MaxSize: 1, Address: "cockpit.room", SrcAddress: "node1"})

	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-han", han, "cockpit.room", ""))
	req.Equal(protocol.ResultRoomMaxAvatarsReached, enter(t, node, transport, "peer-leia", leia, "cockpit.room", ""))
}

func TestNode_Kick_Notifies_Every_Member_Before_The_Kick(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	leia := login(t, node, transport, "peer-leia", "Leia")
	chewie := login(t, node, transport, "peer-chewie", "Chewie")
	createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Falcon", Address: "falcon.room", SrcAddress: "node1"})
	for peer, id := range map[string]uint32{"peer-han": han, "peer-leia": leia, "peer-chewie": chewie} {
		req.Equal(protocol.ResultSuccess, enter(t, node, transport, peer, id, "falcon.room", ""))
	}
	transport.reset()

	// When Han, the room administrator, kicks Leia
	send(t, node, "peer-han", protocol.RequestKickAvatar, 7, protocol.RoomTargetRequest{
		SrcAvatarID: han, DestAvatarID: leia, RoomAddress: "falcon.room"})

	// Then all three former members get exactly one kick notice
	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-han").result)
	for _, peer := range []string{"peer-han", "peer-leia", "peer-chewie"} {
		kicks := transport.notifications(peer, protocol.MessageAvatarKicked)
		req.Len(kicks, 1, peer)
		kicked, err := protocol.DecodeAvatarKicked(kicks[0].body)
		req.NoError(err)
		req.Equal(han, kicked.Src.ID)
		req.Equal(leia, kicked.Dest.ID)
		req.Equal("falcon.room", kicked.RoomAddress)
	}

	// And Leia is gone from the room but not banned
	send(t, node, "peer-han", protocol.RequestGetRoom, 8, protocol.RoomRequest{RoomAddress: "falcon.room"})
	room, err := protocol.DecodeRoom(transport.lastResponse(t, "peer-han").body)
	req.NoError(err)
	req.ElementsMatch([]uint32{han, chewie}, room.Members)
	req.Empty(room.Banned)
}

func TestNode_Kick_Requires_Authority(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	leia := login(t, node, transport, "peer-leia", "Leia")
	createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Falcon", Address: "falcon.room", SrcAddress: "node1"})
	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-han", han, "falcon.room", ""))
	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-leia", leia, "falcon.room", ""))

	// Leia holds no authority in the room
	send(t, node, "peer-leia", protocol.RequestKickAvatar, 1, protocol.RoomTargetRequest{
		SrcAvatarID: leia, DestAvatarID: han, RoomAddress: "falcon.room"})
	req.Equal(protocol.ResultRoomNoPrivileges, transport.lastResponse(t, "peer-leia").result)

	// Nor can she act on behalf of Han from her own peer
	send(t, node, "peer-leia", protocol.RequestDestroyRoom, 2, protocol.RoomRequest{
		AvatarID: han, RoomAddress: "falcon.room"})
	req.Equal(protocol.ResultRoomNoPrivileges, transport.lastResponse(t, "peer-leia").result)
}

func TestNode_Destroy_Room_Notifies_Members(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	leia := login(t, node, transport, "peer-leia", "Leia")
	createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Falcon", Address: "falcon.room", SrcAddress: "node1"})
	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-leia", leia, "falcon.room", ""))

	send(t, node, "peer-han", protocol.RequestDestroyRoom, 1, protocol.RoomRequest{AvatarID: han, RoomAddress: "falcon.room"})

	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-han").result)
	req.Len(transport.notifications("peer-leia", protocol.MessageRoomDestroyed), 1)
	send(t, node, "peer-han", protocol.RequestGetRoom, 2, protocol.RoomRequest{RoomAddress: "falcon.room"})
	req.Equal(protocol.ResultAddressDoesntExist, transport.lastResponse(t, "peer-han").result)
}

func TestNode_Room_Message_Fan_Out(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	leia := login(t, node, transport, "peer-leia", "Leia")
	createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Falcon", Address: "falcon.room", SrcAddress: "node1"})
	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-han", han, "falcon.room", ""))
	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-leia", leia, "falcon.room", ""))
	transport.reset()

	// When Han speaks twice
	for i := 0; i < 2; i++ {
		send(t, node, "peer-han", protocol.RequestSendRoomMessage, 1, protocol.SendRoomMessage{
			SrcAvatarID: han, RoomAddress: "falcon.room", Message: "Chewie, we're home", OOB: ""})
	}

	// Then Leia receives both, stamped in order and addressed to her
	messages := transport.notifications("peer-leia", protocol.MessageRoomMessage)
	req.Len(messages, 2)
	for i, frame := range messages {
		message, err := protocol.DecodeRoomMessage(frame.body)
		req.NoError(err)
		req.Equal(han, message.SrcAvatarID)
		req.Equal([]uint32{leia}, message.DestAvatarIDs)
		req.Equal("Chewie, we're home", message.Message)
		req.Equal(uint32(i+1), message.MessageID)
	}
	req.Len(transport.notifications("peer-han", protocol.MessageRoomMessage), 2)

	// And outsiders cannot speak
	lando := login(t, node, transport, "peer-lando", "Lando")
	send(t, node, "peer-lando", protocol.RequestSendRoomMessage, 1, protocol.SendRoomMessage{
		SrcAvatarID: lando, RoomAddress: "falcon.room", Message: "hello"})
	req.Equal(protocol.ResultRoomNotInRoom, transport.lastResponse(t, "peer-lando").result)
}

func TestNode_Friend_Login_Scenario(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)

	// Given A exists and lists B as a friend, then goes offline
	a := login(t, node, transport, "peer-a", "A")
	b := login(t, node, transport, "peer-b", "B")
	c := login(t, node, transport, "peer-c", "C")
	send(t, node, "peer-a", protocol.RequestAddFriend, 1, protocol.ContactRequest{AvatarID: a, Name: "B", Address: "SWG"})
	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-a").result)
	// And B and C list A as a friend
	send(t, node, "peer-b", protocol.RequestAddFriend, 1, protocol.ContactRequest{AvatarID: b, Name: "A", Address: "SWG"})
	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-b").result)
	send(t, node, "peer-c", protocol.RequestAddFriend, 1, protocol.ContactRequest{AvatarID: c, Name: "A", Address: "SWG"})
	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-c").result)
	send(t, node, "peer-a", protocol.RequestLogoutAvatar, 2, protocol.AvatarRequest{AvatarID: a})
	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-a").result)
	req.Len(transport.notifications("peer-b", protocol.MessageFriendLogout), 1)
	transport.reset()

	// When A logs in
	again := login(t, node, transport, "peer-a", "A")
	req.Equal(a, again)

	// Then B and C each get exactly one notice about A
	for _, peer := range []string{"peer-b", "peer-c"} {
		notices := transport.notifications(peer, protocol.MessageFriendLogin)
		req.Len(notices, 1, peer)
		notice, err := protocol.DecodeFriendLogin(notices[0].body)
		req.NoError(err)
		req.Equal(a, notice.Friend.ID)
	}
	// And A hears about its one online friend, B
	notices := transport.notifications("peer-a", protocol.MessageFriendLogin)
	req.Len(notices, 1)
	notice, err := protocol.DecodeFriendLogin(notices[0].body)
	req.NoError(err)
	req.Equal(b, notice.Friend.ID)
	req.Equal(a, notice.DestAvatarID)
}

func TestNode_Instant_Message_Respects_Ignore(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	greedo := login(t, node, transport, "peer-greedo", "Greedo")

	send(t, node, "peer-greedo", protocol.RequestSendInstantMessage, 1, protocol.SendInstantMessage{
		SrcAvatarID: greedo, DestName: "Han", DestAddress: "SWG", Message: "going somewhere?"})
	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-greedo").result)
	req.Len(transport.notifications("peer-han", protocol.MessageInstantMessage), 1)

	send(t, node, "peer-han", protocol.RequestAddIgnore, 2, protocol.ContactRequest{AvatarID: han, Name: "Greedo", Address: "SWG"})
	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-han").result)

	send(t, node, "peer-greedo", protocol.RequestSendInstantMessage, 3, protocol.SendInstantMessage{
		SrcAvatarID: greedo, DestName: "Han", DestAddress: "SWG", Message: "going somewhere?"})
	req.Equal(protocol.ResultIgnoring, transport.lastResponse(t, "peer-greedo").result)
	req.Len(transport.notifications("peer-han", protocol.MessageInstantMessage), 1)
}

func TestNode_Persistent_Message_Arrival(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	leia := login(t, node, transport, "peer-leia", "Leia")

	send(t, node, "peer-han", protocol.RequestSendPersistentMessage, 1, protocol.SendPersistentMessage{
		SrcAvatarID: han, DestName: "Leia", DestAddress: "SWG", Subject: "I know", Message: "..."})
	response := transport.lastResponse(t, "peer-han")
	req.Equal(protocol.ResultSuccess, response.result)
	messageID := response.body.Uint32()

	req.Len(transport.notifications("peer-leia", protocol.MessagePersistentMessage), 1)
	send(t, node, "peer-leia", protocol.RequestGetPersistentMessage, 2, protocol.GetPersistentMessage{AvatarID: leia, MessageID: messageID})
	req.Equal(protocol.ResultSuccess, transport.lastResponse(t, "peer-leia").result)
}

func TestNode_Api_Version(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)

	send(t, node, "peer-a", protocol.RequestSetApiVersion, 1, protocol.SetApiVersion{Version: testApiVersion + 1})
	req.Equal(protocol.ResultUnsupportedVersion, transport.lastResponse(t, "peer-a").result)

	send(t, node, "peer-a", protocol.RequestSetApiVersion, 2, protocol.SetApiVersion{Version: testApiVersion})
	response := transport.lastResponse(t, "peer-a")
	req.Equal(protocol.ResultSuccess, response.result)
	req.Equal(uint32(testApiVersion), response.body.Uint32())
	req.Equal(uint32(testApiVersion), node.hub.Session("peer-a").ApiVersion())
}

func TestNode_Disconnect_Leaves_Rooms(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	han := login(t, node, transport, "peer-han", "Han")
	leia := login(t, node, transport, "peer-leia", "Leia")
	createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Falcon", Address: "falcon.room", SrcAddress: "node1"})
	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-han", han, "falcon.room", ""))
	req.Equal(protocol.ResultSuccess, enter(t, node, transport, "peer-leia", leia, "falcon.room", ""))
	transport.reset()

	node.Disconnect(context.Background(), "peer-leia")

	req.Len(transport.notifications("peer-han", protocol.MessageRoomLeft), 1)
	req.Equal(NodeStats{Rooms: 1, Members: 1, Sessions: 1, Online: 1}, node.Stats())
}

func TestNode_Start_Loads_Rooms_And_Runs_Workers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Given a room persisted by a previous run
	db := openTestDB(t)
	node, transport := newTestNodeOn(t, db)
	han := login(t, node, transport, "peer-han", "Han")
	createRoom(t, node, transport, "peer-han", han, protocol.CreateRoom{
		Name: "Falcon", Address: "falcon.room", SrcAddress: "node1"})
	supervisor := mocks.NewMockISupervisor(ctrl)
	restarted := NewNode(node.log, "node1", testApiVersion,
		services.NewRoomRegistry(node.log, repositories.NewRoomRepository(db, node.log)), node.avatars, node.mail,
		transport, supervisor)
	worker := mocks.NewMockWorker(ctrl)
	supervisor.EXPECT().Add(worker).Return(supervisor)
	supervisor.EXPECT().Run(gomock.Any())

	// When
	restarted.Start(context.Background(), worker)

	// Then
	req.True(restarted.registry.RoomExists("falcon.room"))
}

func TestSessionHub_Creates_Sessions_Lazily(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	transport := mocks.NewMockTransport(ctrl)
	node := &Node{log: logs.GetLoggerFromLevel(slog.LevelDebug)}
	hub := NewSessionHub(node.log, transport, func(address string) *Session {
		return newSession(node, transport, address)
	})

	transport.EXPECT().Send(gomock.Any(), "peer-a", gomock.Any()).Return(nil).Times(2)

	// When two notifications go to an address nobody talked to yet
	hub.SendTo(context.Background(), "peer-a", protocol.RoomLeft{SrcAvatarID: 1, RoomID: 2})
	first := hub.Session("peer-a")
	hub.SendTo(context.Background(), "peer-a", protocol.RoomLeft{SrcAvatarID: 1, RoomID: 2})

	// Then exactly one session exists for it
	req.Equal(1, hub.Len())
	req.Same(first, hub.Session("peer-a"))
	req.Equal("peer-a", first.Address())

	req.True(hub.Evict("peer-a"))
	req.False(hub.Evict("peer-a"))
	req.Zero(hub.Len())
}

func TestNode_SendToAvatar_Resolves_Through_Directory(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	node, transport := newTestNode(t)
	directory := mocks.NewMockIAvatarDirectory(ctrl)
	node.directory = directory

	directory.EXPECT().GetAddress(domain.AvatarID(7)).Return("peer-x", true)
	directory.EXPECT().GetAddress(domain.AvatarID(8)).Return("", false)

	req.True(node.sendToAvatar(context.Background(), 7, protocol.RoomLeft{SrcAvatarID: 1, RoomID: 2}))
	req.False(node.sendToAvatar(context.Background(), 8, protocol.RoomLeft{SrcAvatarID: 1, RoomID: 2}))
	req.Len(transport.notifications("peer-x", protocol.MessageRoomLeft), 1)
}

func TestNode_Concurrent_Requests_Respect_Room_Capacity(t *testing.T) {
	req := require.New(t)
	node, transport := newTestNode(t)
	owner := login(t, node, transport, "peer-owner", "Owner")
	createRoom(t, node, transport, "peer-owner", owner, protocol.CreateRoom{
		Name: "Booth", MaxSize: 5, Address: "booth.room", SrcAddress: "node1"})

	const visitors = 40
	peers := make([]string, visitors)
	avatars := make([]uint32, visitors)
	for i := range visitors {
		peers[i] = fmt.Sprintf("peer-%d", i)
		avatars[i] = login(t, node, transport, peers[i], fmt.Sprintf("Visitor%d", i))
	}
	transport.reset()

	concurrently := func(do func(i int)) {
		var wg sync.WaitGroup
		for i := range visitors {
			wg.Add(1)
			go func() {
				defer wg.Done()
				do(i)
			}()
		}
		wg.Wait()
	}

	// When every visitor tries to enter at once
	concurrently(func(i int) {
		frame, _ := protocol.EncodeRequest(protocol.RequestEnterRoom, 3,
			protocol.EnterRoom{AvatarID: avatars[i], RoomAddress: "booth.room"})
		node.Receive(context.Background(), peers[i], frame)
	})

	// Then exactly five get in and the rest are told the room is full
	var members []string
	for i, peer := range peers {
		response := transport.lastResponse(t, peer)
		switch response.result {
		case protocol.ResultSuccess:
			members = append(members, peers[i])
		default:
			req.Equal(protocol.ResultRoomMaxAvatarsReached, response.result)
		}
	}
	req.Len(members, 5)
	room, err := node.registry.GetRoom("booth.room")
	req.NoError(err)
	req.Equal(5, room.Size())

	// When everyone talks at once
	transport.reset()
	concurrently(func(i int) {
		for range 3 {
			frame, _ := protocol.EncodeRequest(protocol.RequestSendRoomMessage, 1,
				protocol.SendRoomMessage{SrcAvatarID: avatars[i], RoomAddress: "booth.room", Message: "hi"})
			node.Receive(context.Background(), peers[i], frame)
		}
	})

	// Then each member hears the fifteen member messages with distinct ids
	for _, peer := range members {
		var ids []uint32
		for _, frame := range transport.notifications(peer, protocol.MessageRoomMessage) {
			message, err := protocol.DecodeRoomMessage(frame.body)
			req.NoError(err)
			ids = append(ids, message.MessageID)
		}
		slices.Sort(ids)
		req.Equal([]uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, ids)
	}
}
