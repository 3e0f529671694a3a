package wire

import (
	"fmt"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bankofai/agent-wallet/internal/domain"
)

const (
	entriesField protowire.Number = 1
	keyField     protowire.Number = 1
	valueField   protowire.Number = 2

	// maxVarintLen bounds tags and lengths to 32 bits.
	maxVarintLen = 5
)

// Encode serialises data. Entries are emitted in key order so equal maps
// always produce equal bytes; an empty map encodes to zero bytes.
func Encode(data domain.KeystoreData) []byte {
	var out []byte
	for _, k := range data.SortedKeys() {
		out = protowire.AppendTag(out, entriesField, protowire.BytesType)
		out = protowire.AppendBytes(out, appendEntry(nil, k, data[k]))
	}
	return out
}

func appendEntry(b []byte, key, value string) []byte {
	b = protowire.AppendTag(b, keyField, protowire.BytesType)
	b = protowire.AppendString(b, key)
	b = protowire.AppendTag(b, valueField, protowire.BytesType)
	return protowire.AppendString(b, value)
}

// Decode parses b. Unknown fields are skipped; when a key repeats the last
// entry wins. Empty input yields an empty map.
func Decode(b []byte) (domain.KeystoreData, error) {
	out := make(domain.KeystoreData)
	d := &decoder{buf: b}
	for !d.done() {
		num, typ, err := d.tag()
		if err != nil {
			return nil, err
		}
		if num != entriesField || typ != protowire.BytesType {
			if err := d.skip(typ); err != nil {
				return nil, err
			}
			continue
		}
		raw, err := d.bytes()
		if err != nil {
			return nil, err
		}
		key, value, err := decodeEntry(raw, d.off-len(raw))
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}

// decodeEntry parses one map entry. base is the entry's offset in the outer
// buffer so errors point at the right byte. Absent key or value fields
// decode as empty strings, as protobuf does for map entries.
func decodeEntry(raw []byte, base int) (key, value string, err error) {
	d := &decoder{buf: raw, base: base}
	for !d.done() {
		num, typ, err := d.tag()
		if err != nil {
			return "", "", err
		}
		if typ != protowire.BytesType || (num != keyField && num != valueField) {
			if err := d.skip(typ); err != nil {
				return "", "", err
			}
			continue
		}
		at := d.off
		s, err := d.bytes()
		if err != nil {
			return "", "", err
		}
		if !utf8.Valid(s) {
			return "", "", d.fail(at, "string field %d is not valid UTF-8", num)
		}
		if num == keyField {
			key = string(s)
		} else {
			value = string(s)
		}
	}
	return key, value, nil
}

type decoder struct {
	buf  []byte
	off  int
	base int
}

func (d *decoder) done() bool { return d.off >= len(d.buf) }

func (d *decoder) fail(at int, format string, args ...any) error {
	return &DecodeError{Offset: d.base + at, Reason: fmt.Sprintf(format, args...)}
}

// varint reads an unsigned LEB128 value of at most maxVarintLen bytes. The
// fifth byte may only carry the top 4 bits of a uint32.
func (d *decoder) varint() (uint32, error) {
	start := d.off
	var v uint32
	for i := 0; i < maxVarintLen; i++ {
		if d.done() {
			return 0, d.fail(start, "truncated varint")
		}
		c := d.buf[d.off]
		d.off++
		if i == maxVarintLen-1 && c < 0x80 && c > 0x0f {
			return 0, d.fail(start, "varint overflows 32 bits")
		}
		v |= uint32(c&0x7f) << (7 * i)
		if c < 0x80 {
			return v, nil
		}
	}
	return 0, d.fail(start, "varint longer than %d bytes", maxVarintLen)
}

func (d *decoder) tag() (protowire.Number, protowire.Type, error) {
	start := d.off
	v, err := d.varint()
	if err != nil {
		return 0, 0, err
	}
	num := protowire.Number(v >> 3)
	if num < protowire.MinValidNumber {
		return 0, 0, d.fail(start, "invalid field number %d", num)
	}
	return num, protowire.Type(v & 7), nil
}

// bytes reads a length prefix and returns the slice it covers.
func (d *decoder) bytes() ([]byte, error) {
	start := d.off
	n, err := d.varint()
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(len(d.buf)-d.off) {
		return nil, d.fail(start, "length %d exceeds remaining %d bytes", n, len(d.buf)-d.off)
	}
	b := d.buf[d.off : d.off+int(n)]
	d.off += int(n)
	return b, nil
}

func (d *decoder) fixed(n int) error {
	if len(d.buf)-d.off < n {
		return d.fail(d.off, "truncated %d-byte fixed field", n)
	}
	d.off += n
	return nil
}

func (d *decoder) skip(typ protowire.Type) error {
	switch typ {
	case protowire.VarintType:
		_, err := d.varint()
		return err
	case protowire.Fixed64Type:
		return d.fixed(8)
	case protowire.BytesType:
		_, err := d.bytes()
		return err
	case protowire.Fixed32Type:
		return d.fixed(4)
	default:
		return d.fail(d.off, "unsupported wire type %d", typ)
	}
}
