package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	// PayloadVersion is the only envelope version written and accepted.
	PayloadVersion = 1

	SaltSize = 16
	IVSize   = 12
	TagSize  = 16
	KeySize  = 32
)

// scrypt cost parameters shared with every other keystore implementation.
const (
	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1
)

// EncryptedPayload is the JSON envelope stored on disk. Salt, IV and Tag are
// hex; Data is the base64 ciphertext with the GCM tag split off into Tag.
type EncryptedPayload struct {
	Version int    `json:"version"`
	Salt    string `json:"salt"`
	IV      string `json:"iv"`
	Tag     string `json:"tag"`
	Data    string `json:"data"`
}

// Encrypt seals plaintext under a key derived from password. Every call draws
// a fresh salt and IV.
func Encrypt(plaintext []byte, password string) (EncryptedPayload, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return EncryptedPayload{}, err
	}
	iv := make([]byte, IVSize)
	if _, err := rand.Read(iv); err != nil {
		return EncryptedPayload{}, err
	}
	aead, err := newAEAD(password, salt)
	if err != nil {
		return EncryptedPayload{}, err
	}
	sealed := aead.Seal(nil, iv, plaintext, nil)
	ct, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	return EncryptedPayload{
		Version: PayloadVersion,
		Salt:    hex.EncodeToString(salt),
		IV:      hex.EncodeToString(iv),
		Tag:     hex.EncodeToString(tag),
		Data:    B64(ct),
	}, nil
}

// Decrypt opens p with a key derived from password. Malformed fields yield a
// *FormatError; a failed tag check yields ErrAuthentication.
func Decrypt(p EncryptedPayload, password string) ([]byte, error) {
	if p.Version != PayloadVersion {
		return nil, &FormatError{Field: "version", Err: fmt.Errorf("unsupported version %d", p.Version)}
	}
	salt, err := decodeHexField("salt", p.Salt, SaltSize)
	if err != nil {
		return nil, err
	}
	iv, err := decodeHexField("iv", p.IV, IVSize)
	if err != nil {
		return nil, err
	}
	tag, err := decodeHexField("tag", p.Tag, TagSize)
	if err != nil {
		return nil, err
	}
	ct, err := FromB64(p.Data)
	if err != nil {
		return nil, &FormatError{Field: "data", Err: err}
	}

	aead, err := newAEAD(password, salt)
	if err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, len(ct)+len(tag))
	sealed = append(append(sealed, ct...), tag...)
	pt, err := aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return pt, nil
}

// IsEncryptedPayload reports whether v, a value produced by json.Unmarshal
// into an interface{}, has the envelope shape: version 1 and string salt,
// iv, tag and data.
func IsEncryptedPayload(v any) bool {
	_, ok := PayloadFromJSON(v)
	return ok
}

// PayloadFromJSON converts a generic JSON object into an EncryptedPayload
// when it has the envelope shape.
func PayloadFromJSON(v any) (EncryptedPayload, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return EncryptedPayload{}, false
	}
	if version, ok := m["version"].(float64); !ok || version != PayloadVersion {
		return EncryptedPayload{}, false
	}
	var p EncryptedPayload
	for field, dst := range map[string]*string{"salt": &p.Salt, "iv": &p.IV, "tag": &p.Tag, "data": &p.Data} {
		s, ok := m[field].(string)
		if !ok {
			return EncryptedPayload{}, false
		}
		*dst = s
	}
	p.Version = PayloadVersion
	return p, true
}

func newAEAD(password string, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, KeySize)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func decodeHexField(field, s string, size int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &FormatError{Field: field, Err: err}
	}
	if len(b) != size {
		return nil, &FormatError{Field: field, Want: size, Got: len(b)}
	}
	return b, nil
}
