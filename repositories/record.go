package repositories

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Records are stored as protobuf wire messages written field by field, so
// older values stay readable when fields are appended.

type recordWriter struct {
	b []byte
}

func (w *recordWriter) uint(num protowire.Number, v uint64) {
	if v == 0 {
		return
	}
	w.b = protowire.AppendTag(w.b, num, protowire.VarintType)
	w.b = protowire.AppendVarint(w.b, v)
}

func (w *recordWriter) string(num protowire.Number, s string) {
	if s == "" {
		return
	}
	w.b = protowire.AppendTag(w.b, num, protowire.BytesType)
	w.b = protowire.AppendString(w.b, s)
}

// fieldVisitor receives every decoded field. Unknown numbers are ignored by
// the callbacks; unknown wire types are skipped.
type fieldVisitor struct {
	varint func(num protowire.Number, v uint64)
	bytes  func(num protowire.Number, v []byte)
}

func (fv fieldVisitor) visit(b []byte) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("record tag: %w", protowire.ParseError(n))
		}
		b = b[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return fmt.Errorf("record field %d: %w", num, protowire.ParseError(n))
			}
			if fv.varint != nil {
				fv.varint(num, v)
			}
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return fmt.Errorf("record field %d: %w", num, protowire.ParseError(n))
			}
			if fv.bytes != nil {
				fv.bytes(num, v)
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return fmt.Errorf("record field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	return nil
}
