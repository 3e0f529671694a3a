package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/bankofai/agent-wallet/internal/crypto"
	"github.com/bankofai/agent-wallet/internal/domain"
	"github.com/bankofai/agent-wallet/internal/wire"
)

// Format identifies the on-disk layout of a keystore file.
type Format uint8

const (
	// FormatNone means no file has been read yet or the file does not exist.
	FormatNone Format = iota
	// FormatBinary is raw wire-encoded data.
	FormatBinary
	// FormatEncrypted is an EncryptedPayload around base64 wire-encoded data.
	FormatEncrypted
	// FormatEncryptedJSON is an EncryptedPayload around a JSON object. Read only.
	FormatEncryptedJSON
	// FormatLegacyJSON is a bare JSON object. Read only.
	FormatLegacyJSON
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatBinary:
		return "binary"
	case FormatEncrypted:
		return "encrypted"
	case FormatEncryptedJSON:
		return "encrypted-json"
	case FormatLegacyJSON:
		return "legacy-json"
	default:
		return "unknown"
	}
}

// Legacy reports whether writing would upgrade the file to a newer format.
func (f Format) Legacy() bool {
	return f == FormatEncryptedJSON || f == FormatLegacyJSON
}

// document is a keystore file as seen by the format rules. value is only
// meaningful when isJSON is set.
type document struct {
	raw    []byte
	value  any
	isJSON bool
}

func parseDocument(raw []byte) document {
	doc := document{raw: raw}
	if utf8.Valid(raw) && json.Unmarshal(raw, &doc.value) == nil {
		doc.isJSON = true
	}
	return doc
}

type formatRule struct {
	match  func(doc document) bool
	decode func(doc document, password string) (domain.KeystoreData, Format, error)
}

// formatRules are tried in order and the first match commits: its error is
// returned as is, without trying later rules. Files no rule claims are
// decoded as binary.
var formatRules = []formatRule{
	{match: isEnvelope, decode: decodeEnvelope},
	{match: isPlainObject, decode: decodeLegacyJSON},
}

func decodeFile(raw []byte, password string) (domain.KeystoreData, Format, error) {
	doc := parseDocument(raw)
	for _, rule := range formatRules {
		if rule.match(doc) {
			return rule.decode(doc, password)
		}
	}
	data, err := wire.Decode(raw)
	if err != nil {
		return nil, FormatNone, err
	}
	return data, FormatBinary, nil
}

func isEnvelope(doc document) bool {
	return doc.isJSON && crypto.IsEncryptedPayload(doc.value)
}

func isPlainObject(doc document) bool {
	if !doc.isJSON {
		return false
	}
	_, ok := doc.value.(map[string]any)
	return ok
}

func decodeEnvelope(doc document, password string) (domain.KeystoreData, Format, error) {
	if password == "" {
		return nil, FormatNone, ErrMissingPassword
	}
	payload, _ := crypto.PayloadFromJSON(doc.value)
	plain, err := crypto.Decrypt(payload, password)
	if err != nil {
		return nil, FormatNone, err
	}
	defer crypto.Wipe(plain)

	// Very old writers encrypted the JSON object itself.
	if obj, ok := parseObject(plain); ok {
		return objectData(obj), FormatEncryptedJSON, nil
	}

	bin, err := crypto.FromB64(string(bytes.TrimSpace(plain)))
	if err != nil {
		return nil, FormatNone, fmt.Errorf("%w: decrypted keystore is neither a JSON object nor base64: %v", wire.ErrDecode, err)
	}
	data, err := wire.Decode(bin)
	if err != nil {
		return nil, FormatNone, err
	}
	return data, FormatEncrypted, nil
}

func decodeLegacyJSON(doc document, _ string) (domain.KeystoreData, Format, error) {
	return objectData(doc.value.(map[string]any)), FormatLegacyJSON, nil
}

func parseObject(b []byte) (map[string]any, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// objectData converts a JSON object to KeystoreData. Non-string values are
// kept as their JSON text.
func objectData(obj map[string]any) domain.KeystoreData {
	out := make(domain.KeystoreData, len(obj))
	for k, v := range obj {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		text, _ := json.Marshal(v)
		out[k] = string(text)
	}
	return out
}
