package flo

import (
	"encoding"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/tinylib/msgp/msgp"
)

// ErrInvalidLength is returned by UnmarshalBinary when given anything other
// than a single byte.
var ErrInvalidLength = errors.New("flo: E4M3 binary encoding must be exactly 1 byte")

var (
	_ encoding.BinaryMarshaler   = E4M3(0)
	_ encoding.BinaryUnmarshaler = (*E4M3)(nil)
	_ cbor.Marshaler             = E4M3(0)
	_ cbor.Unmarshaler           = (*E4M3)(nil)
	_ msgp.Marshaler             = E4M3(0)
	_ msgp.Unmarshaler           = (*E4M3)(nil)
	_ msgp.Encodable             = E4M3(0)
	_ msgp.Decodable             = (*E4M3)(nil)
	_ msgp.Sizer                 = E4M3(0)
)

// MarshalBinary returns the raw encoding.
func (f E4M3) MarshalBinary() ([]byte, error) {
	return []byte{byte(f)}, nil
}

// UnmarshalBinary reads the raw encoding.
func (f *E4M3) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, len(data))
	}
	*f = E4M3(data[0])
	return nil
}

// halfMode writes floats in the shortest form that keeps their value, which
// for anything widened from an E4M3 is always a 3 byte half-precision float.
var halfMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{
		ShortestFloat: cbor.ShortestFloat16,
		NaNConvert:    cbor.NaNConvert7e00,
	}.EncMode()
	if err != nil {
		panic(fmt.Errorf("flo: building CBOR encoding mode: %w", err))
	}
	return em
}()

// MarshalCBOR encodes f as a CBOR half-precision float. Both NaNs are written
// as the canonical 0xf97e00, so the sign of a NaN does not survive.
func (f E4M3) MarshalCBOR() ([]byte, error) {
	return halfMode.Marshal(f.Float32())
}

// UnmarshalCBOR accepts any CBOR float and narrows it to the nearest E4M3.
func (f *E4M3) UnmarshalCBOR(data []byte) error {
	var x float64
	if err := cbor.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("flo: decoding E4M3 from CBOR: %w", err)
	}
	*f = FromFloat64(x)
	return nil
}

// MarshalMsg appends f to b as a MessagePack unsigned integer holding the raw
// encoding.
func (f E4M3) MarshalMsg(b []byte) ([]byte, error) {
	return msgp.AppendUint8(b, uint8(f)), nil
}

// UnmarshalMsg reads a raw encoding written by MarshalMsg.
func (f *E4M3) UnmarshalMsg(bts []byte) ([]byte, error) {
	v, o, err := msgp.ReadUint8Bytes(bts)
	if err != nil {
		return bts, msgp.WrapError(err, "E4M3")
	}
	*f = E4M3(v)
	return o, nil
}

// EncodeMsg writes f to en.
func (f E4M3) EncodeMsg(en *msgp.Writer) error {
	return en.WriteUint8(uint8(f))
}

// DecodeMsg reads f from dc.
func (f *E4M3) DecodeMsg(dc *msgp.Reader) error {
	v, err := dc.ReadUint8()
	if err != nil {
		return msgp.WrapError(err, "E4M3")
	}
	*f = E4M3(v)
	return nil
}

// Msgsize is an upper bound on the size of the MessagePack encoding.
func (f E4M3) Msgsize() int { return msgp.Uint8Size }
