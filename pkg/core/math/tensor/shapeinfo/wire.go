package shapeinfo

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// wireWordsField is the field number a descriptor's words are packed under
// on the wire: message Descriptor { repeated sint64 words = 1; }. sint64
// rather than int64 because the raw setters (SetEwsRaw, SetExtra) accept
// any int64, and zigzag keeps a negative word small instead of expanding it
// to the 10-byte two's-complement form a plain varint would use.
const wireWordsField = protowire.Number(1)

// MarshalBinary encodes a descriptor as a single packed `repeated sint64`
// protobuf field, the wire form described on wireWordsField above: a flat
// sequence of the descriptor's own words,
// no separate length prefix beyond what the wire format itself carries.
func (s ShapeInfo) MarshalBinary() ([]byte, error) {
	if len(s) < 4 {
		return nil, fmt.Errorf("shapeinfo: descriptor too short to marshal")
	}

	inner := make([]byte, 0, len(s)*2)
	for _, w := range s {
		inner = protowire.AppendVarint(inner, protowire.EncodeZigZag(w))
	}

	out := protowire.AppendTag(nil, wireWordsField, protowire.BytesType)
	out = protowire.AppendBytes(out, inner)
	return out, nil
}

// UnmarshalBinary decodes a descriptor previously produced by MarshalBinary.
// The receiver's backing array is replaced; callers that need the old
// buffer retained should DetachShape it first.
func (s *ShapeInfo) UnmarshalBinary(data []byte) error {
	num, typ, tagLen := protowire.ConsumeTag(data)
	if tagLen < 0 {
		return fmt.Errorf("shapeinfo: malformed descriptor wire tag: %w", protowire.ParseError(tagLen))
	}
	if num != wireWordsField || typ != protowire.BytesType {
		return fmt.Errorf("shapeinfo: unexpected field %d type %d, want field %d bytes", num, typ, wireWordsField)
	}
	data = data[tagLen:]

	inner, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return fmt.Errorf("shapeinfo: malformed descriptor payload: %w", protowire.ParseError(n))
	}

	words := make(ShapeInfo, 0, len(inner)/2)
	for len(inner) > 0 {
		zz, vn := protowire.ConsumeVarint(inner)
		if vn < 0 {
			return fmt.Errorf("shapeinfo: malformed descriptor word: %w", protowire.ParseError(vn))
		}
		words = append(words, protowire.DecodeZigZag(zz))
		inner = inner[vn:]
	}

	if len(words) < 4 {
		return fmt.Errorf("shapeinfo: decoded descriptor too short")
	}
	rank := int(words[0])
	assertRank(rank)
	if len(words) != ShapeInfoLength(rank) {
		return fmt.Errorf("shapeinfo: decoded descriptor length %d does not match rank %d (want %d)", len(words), rank, ShapeInfoLength(rank))
	}

	*s = words
	return nil
}
