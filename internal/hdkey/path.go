package hdkey

import (
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset is the bit that marks a child index hardened (spec.md §3).
const HardenedOffset uint32 = 0x80000000

// Path is an ordered sequence of 32-bit child indices.
type Path []uint32

// ParsePath parses strings like "m/44'/0'/0'/0/0" into a Path.
func ParsePath(s string) (Path, error) {
	segments := strings.Split(s, "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, fmt.Errorf("hdkey: path must start with \"m\": %q", s)
	}

	path := make(Path, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		hardened := strings.HasSuffix(seg, "'")
		seg = strings.TrimSuffix(seg, "'")
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("hdkey: invalid path segment %q: %w", seg, err)
		}
		idx := uint32(n)
		if hardened {
			idx += HardenedOffset
		}
		path = append(path, idx)
	}
	return path, nil
}

// String renders the path back into "m/44'/0'/0'/0/0" form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('m')
	for _, idx := range p {
		b.WriteByte('/')
		if idx >= HardenedOffset {
			b.WriteString(strconv.FormatUint(uint64(idx-HardenedOffset), 10))
			b.WriteByte('\'')
		} else {
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	}
	return b.String()
}

// WithIndex returns a copy of the path with its final component replaced
// by i, used to step through an address-count loop without reparsing the
// base path string each time.
func (p Path) WithIndex(i uint32) Path {
	out := make(Path, len(p))
	copy(out, p)
	if len(out) > 0 {
		out[len(out)-1] = i
	}
	return out
}
