package protocol

// Payload is anything that can be appended to a frame body.
type Payload interface {
	Encode(w *Writer)
}

// Message is an unsolicited notification pushed to a peer.
type Message interface {
	Payload
	Type() MessageType
}

// Header is the fixed prefix of every inbound frame.
type Header struct {
	Type  RequestType
	Track uint32
}

func ReadHeader(r *Reader) (Header, error) {
	h := Header{Type: RequestType(r.Uint16()), Track: r.Uint32()}
	return h, r.Err()
}

// EncodeRequest builds an inbound frame. Used by clients and tests.
func EncodeRequest(t RequestType, track uint32, body Payload) ([]byte, error) {
	w := NewWriter()
	w.Uint16(uint16(t))
	w.Uint32(track)
	if body != nil {
		body.Encode(w)
	}
	return w.Bytes(), w.Err()
}

// EncodeResponse builds the reply to a request. A failed request carries
// its result code and no body.
func EncodeResponse(t RequestType, track uint32, result ResultCode, body Payload) ([]byte, error) {
	w := NewWriter()
	w.Uint16(uint16(t))
	w.Uint32(track)
	w.Uint32(uint32(result))
	if result == ResultSuccess && body != nil {
		body.Encode(w)
	}
	return w.Bytes(), w.Err()
}

func EncodeMessage(m Message) ([]byte, error) {
	w := NewWriter()
	w.Uint16(uint16(m.Type()))
	m.Encode(w)
	return w.Bytes(), w.Err()
}
