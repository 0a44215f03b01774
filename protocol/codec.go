// Package protocol implements the gateway wire format: little-endian
// integers, length-prefixed UTF-16LE text, and the request, response and
// notification frames built from them.
package protocol

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var (
	ErrTruncated     = errors.New("payload truncated")
	ErrTextTooLong   = errors.New("text field exceeds payload")
	ErrTrailingBytes = errors.New("bytes left after payload")
)

// MaxListLength bounds decoded list counts so a corrupt header cannot make
// the decoder allocate unbounded memory.
const MaxListLength = 1 << 16

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Writer accumulates a payload. The first error is kept and reported by Err.
type Writer struct {
	buf bytes.Buffer
	err error
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) Uint8(v uint8) {
	w.buf.WriteByte(v)
}

func (w *Writer) Bool(v bool) {
	if v {
		w.Uint8(1)
		return
	}
	w.Uint8(0)
}

func (w *Writer) Uint16(v uint16) {
	w.buf.Write(binary.LittleEndian.AppendUint16(nil, v))
}

func (w *Writer) Uint32(v uint32) {
	w.buf.Write(binary.LittleEndian.AppendUint32(nil, v))
}

func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

// String writes the number of UTF-16 code units followed by the units.
func (w *Writer) String(s string) {
	encoded, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		if w.err == nil {
			w.err = fmt.Errorf("encode %q: %w", s, err)
		}
		return
	}
	w.Uint32(uint32(len(encoded) / 2))
	w.buf.Write(encoded)
}

func (w *Writer) Uint32s(values []uint32) {
	w.Uint32(uint32(len(values)))
	for _, v := range values {
		w.Uint32(v)
	}
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Reader consumes a payload. Once a read fails every later read returns a
// zero value and Err reports the first failure.
type Reader struct {
	data []byte
	off  int
	err  error
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || len(r.data)-r.off < n {
		r.err = ErrTruncated
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b
}

func (r *Reader) Uint8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (r *Reader) Bool() bool {
	return r.Uint8() != 0
}

func (r *Reader) Uint16() uint16 {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) Uint32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) Int32() int32 {
	return int32(r.Uint32())
}

func (r *Reader) String() string {
	n := r.Uint32()
	if r.err != nil {
		return ""
	}
	if uint64(n)*2 > uint64(r.Remaining()) {
		r.err = ErrTextTooLong
		return ""
	}
	raw := r.take(int(n) * 2)
	decoded, err := utf16LE.NewDecoder().Bytes(raw)
	if err != nil {
		r.err = err
		return ""
	}
	return string(decoded)
}

func (r *Reader) Uint32s() []uint32 {
	n := r.Uint32()
	if r.err != nil {
		return nil
	}
	if n > MaxListLength || uint64(n)*4 > uint64(r.Remaining()) {
		r.err = ErrTruncated
		return nil
	}
	values := make([]uint32, n)
	for i := range values {
		values[i] = r.Uint32()
	}
	return values
}

func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

func (r *Reader) Err() error {
	return r.err
}
