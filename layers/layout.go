package layers

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// layoutNamespace is the name space for layout fingerprints. Changing it
// changes every fingerprint.
var layoutNamespace = uuid.MustParse("6f0d8c2e-93a4-4b1c-8e57-2d41a9b7c310")

// LayoutEntry pairs an ordinal with the value it decodes to.
type LayoutEntry struct {
	Ordinal uint64
	Value   Value
}

// Layout lists every ordinal of the category. It materialises Count entries,
// so it is meant for debugging and tests on small hierarchies.
func (c *Codec) Layout() []LayoutEntry {
	entries := make([]LayoutEntry, 0, c.count)
	for n, v := range c.All() {
		entries = append(entries, LayoutEntry{Ordinal: n, Value: v})
	}
	return entries
}

// LayoutString prints the layout one "ordinal: value" line at a time.
func (c *Codec) LayoutString() string {
	var sb strings.Builder
	for n, v := range c.All() {
		fmt.Fprintf(&sb, "%d: %s\n", n, v)
	}
	return sb.String()
}

// Fingerprint identifies the ordinal layout of the category. It is derived
// from category names, variant names and declaration order, and changes
// whenever any of those change. The Root tag does not affect it.
func (c *Codec) Fingerprint() uuid.UUID { return c.fingerprint }

// layoutFingerprint hashes the codec's own names with the fingerprints of its
// nested codecs, so it is computed once per category and is linear in the
// size of the declaration.
func layoutFingerprint(c *Codec) uuid.UUID {
	var buf []byte
	buf = appendName(buf, c.name)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(c.variants)))
	for _, e := range c.variants {
		buf = appendName(buf, e.name)
		if e.sub == nil {
			buf = append(buf, 0)
			continue
		}
		buf = append(buf, 1)
		buf = append(buf, e.sub.fingerprint[:]...)
	}
	return uuid.NewSHA1(layoutNamespace, buf)
}

func appendName(buf []byte, name string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(name)))
	return append(buf, name...)
}
