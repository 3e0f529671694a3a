package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bankofai/agent-wallet/internal/crypto"
	"github.com/bankofai/agent-wallet/internal/domain"
	"github.com/bankofai/agent-wallet/internal/wire"
)

// DefaultFilename is the keystore file name used when no path is configured.
const DefaultFilename = ".keystore.json"

type loadState uint8

const (
	unloaded loadState = iota
	loaded
)

// FileStore is a keystore backed by a single file. The file is read lazily on
// first access and only written by Write.
type FileStore struct {
	path     string
	password string
	log      *zap.Logger

	mu     sync.Mutex
	state  loadState
	data   domain.KeystoreData
	format Format
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *FileStore) {
		if l != nil {
			s.log = l
		}
	}
}

// NewFileStore returns a FileStore for path. An empty password means the
// file is written unencrypted and encrypted files cannot be read.
func NewFileStore(path, password string, opts ...Option) *FileStore {
	s := &FileStore{
		path:     path,
		password: password,
		log:      zap.NewNop(),
		data:     domain.KeystoreData{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("path", path))
	return s
}

func (s *FileStore) Path() string { return s.path }

// Format returns the layout seen by the last Read or produced by the last Write.
func (s *FileStore) Format() Format {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.format
}

// Read (re)loads the file, replacing the in-memory view. A missing file is an
// empty keystore.
func (s *FileStore) Read() (domain.KeystoreData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	return s.data.Clone(), nil
}

// load reads the file into memory. On error the previous state is kept.
func (s *FileStore) load() error {
	raw, ok, err := readFile(s.path)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Debug("keystore file not found, starting empty")
		s.data, s.format, s.state = domain.KeystoreData{}, FormatNone, loaded
		return nil
	}

	data, format, err := decodeFile(raw, s.password)
	if err != nil {
		return err
	}
	s.data, s.format, s.state = data, format, loaded

	s.log.Debug("keystore loaded", zap.Stringer("format", format), zap.Int("entries", len(data)))
	if format.Legacy() {
		s.log.Info("keystore uses a legacy format; the next write upgrades it", zap.Stringer("format", format))
	}
	return nil
}

// ensureLoaded is called first by every accessor.
func (s *FileStore) ensureLoaded() error {
	if s.state == loaded {
		return nil
	}
	return s.load()
}

func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return "", false, err
	}
	v, ok := s.data[key]
	return v, ok, nil
}

// Set updates the in-memory view; call Write to persist.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.data[key] = value
	return nil
}

// Delete removes key from the in-memory view and reports whether it existed.
func (s *FileStore) Delete(key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return false, err
	}
	_, ok := s.data[key]
	delete(s.data, key)
	return ok, nil
}

// Keys returns the keys in lexical order.
func (s *FileStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.data.SortedKeys(), nil
}

func (s *FileStore) GetAll() (domain.KeystoreData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.data.Clone(), nil
}

// Write persists the in-memory view, encrypted when a password is set. It
// does not load the file first: writing an unloaded store writes whatever
// has been Set since construction.
func (s *FileStore) Write() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, format, err := s.encode()
	if err != nil {
		return err
	}
	if err := writeFile(s.path, raw, filePerm); err != nil {
		return err
	}
	s.format = format

	s.log.Debug("keystore written", zap.Stringer("format", format), zap.Int("entries", len(s.data)), zap.Int("bytes", len(raw)))
	return nil
}

func (s *FileStore) encode() ([]byte, Format, error) {
	bin := wire.Encode(s.data)
	if s.password == "" {
		return bin, FormatBinary, nil
	}
	payload, err := crypto.Encrypt([]byte(crypto.B64(bin)), s.password)
	if err != nil {
		return nil, FormatNone, fmt.Errorf("encrypt keystore: %w", err)
	}
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, FormatNone, err
	}
	return out, FormatEncrypted, nil
}

// FromFile reads the keystore at path once.
func FromFile(path, password string, opts ...Option) (domain.KeystoreData, error) {
	return NewFileStore(path, password, opts...).Read()
}

// ToFile replaces the keystore at path with data.
func ToFile(path string, data domain.KeystoreData, password string, opts ...Option) error {
	s := NewFileStore(path, password, opts...)
	s.data, s.state = data.Clone(), loaded
	return s.Write()
}

// Compile-time assertion that FileStore implements domain.Keystore.
var _ domain.Keystore = (*FileStore)(nil)
