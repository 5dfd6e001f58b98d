package layers

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// OrdinalRecord carries an ordinal together with the fingerprint of the
// layout it was encoded against, so a reader built from a different
// declaration order refuses it instead of decoding the wrong value.
type OrdinalRecord struct {
	Layout  []byte `cbor:"1,keyasint"`
	Ordinal uint64 `cbor:"2,keyasint"`
}

var ordinalEncMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// MarshalOrdinal encodes v as a deterministic CBOR OrdinalRecord.
func (c *Codec) MarshalOrdinal(v Value) ([]byte, error) {
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: zero value", ErrInvalidValue)
	}
	if v.codec.decl != c.decl {
		return nil, fmt.Errorf("%w: %s value for %s codec", ErrCategoryMismatch, v.codec.name, c.name)
	}
	return ordinalEncMode.Marshal(OrdinalRecord{
		Layout:  c.fingerprint[:],
		Ordinal: v.Ordinal(),
	})
}

// UnmarshalOrdinal decodes a CBOR OrdinalRecord produced by MarshalOrdinal on
// a codec with the same layout.
func (c *Codec) UnmarshalOrdinal(data []byte) (Value, error) {
	var rec OrdinalRecord
	if err := cbor.Unmarshal(data, &rec); err != nil {
		return Value{}, err
	}
	layout, err := uuid.FromBytes(rec.Layout)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrLayoutMismatch, err)
	}
	if layout != c.fingerprint {
		return Value{}, fmt.Errorf("%w: record %s, codec %s %s", ErrLayoutMismatch, layout, c.name, c.fingerprint)
	}
	v, ok := c.Decode(rec.Ordinal)
	if !ok {
		return Value{}, fmt.Errorf("%w: %d not below %d", ErrOrdinalRange, rec.Ordinal, c.count)
	}
	return v, nil
}
