package binstore

import (
	"fmt"
	"io"
	"os"

	"github.com/yyc12345/YYCCommonplace-sub000/internal/buf"
	"github.com/yyc12345/YYCCommonplace-sub000/internal/format"
)

// LoadStrategy controls which file versions a load accepts.
type LoadStrategy int

const (
	// OnlyCurrent accepts a file iff its version equals the current
	// configuration version. Convenient for callers that drive migration
	// themselves, loading version by version from older to newer.
	OnlyCurrent LoadStrategy = iota

	// MigrateOld accepts the current version and any older one. Records
	// match by setting name; unknown names are ignored and unmentioned
	// settings stay at their defaults.
	MigrateOld

	// AcceptAll performs no version check. Only suitable for quick demos.
	AcceptAll
)

// Save writes the storage to dst: the configuration version, then one
// record per stored setting in registration order.
func (s *Storage) Save(dst io.Writer) error {
	out := format.AppendU64(nil, s.cfg.Version())
	for token, setting := range s.cfg.Settings().All() {
		raw, ok := s.raws[token]
		if !ok {
			continue
		}
		name := setting.Name()
		out = format.AppendU64(out, uint64(len(name)))
		out = append(out, name...)
		out = format.AppendU64(out, uint64(len(raw)))
		out = append(out, raw...)
	}
	if _, err := dst.Write(out); err != nil {
		return fmt.Errorf("%w: %w", ErrIo, err)
	}
	return nil
}

// Load reads a storage file from src under the given strategy. On any
// error the stored values are left unchanged.
func (s *Storage) Load(src io.Reader, strategy LoadStrategy) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIo, err)
	}

	if !buf.Has(data, 0, format.HeaderSize) {
		return fmt.Errorf("%w: missing version header", ErrIo)
	}
	version := format.ReadU64(data, 0)
	if err := checkVersion(version, s.cfg.Version(), strategy); err != nil {
		return err
	}

	// Stage records and commit only when the whole file parsed.
	pending := make(map[Token][]byte)
	seen := make(map[string]bool)
	off := format.HeaderSize
	for off < len(data) {
		name, next, err := readField(data, off)
		if err != nil {
			return err
		}
		payload, next, err := readField(data, next)
		if err != nil {
			return err
		}
		off = next

		if seen[string(name)] {
			return ErrDuplicatedAssign
		}
		seen[string(name)] = true

		// Unknown names are ignored; they may belong to an older or
		// newer schema.
		if token, ok := s.cfg.Settings().FindName(string(name)); ok {
			pending[token] = append([]byte(nil), payload...)
		}
	}

	for token, raw := range pending {
		s.raws[token] = raw
	}
	return nil
}

func checkVersion(got, current VersionIdentifier, strategy LoadStrategy) error {
	switch strategy {
	case OnlyCurrent:
		if got != current {
			return ErrBadVersion
		}
	case MigrateOld:
		if got > current {
			return ErrBadVersion
		}
	case AcceptAll:
	}
	return nil
}

// readField reads one length-prefixed field at off and returns the field
// bytes plus the offset just past it.
func readField(data []byte, off int) ([]byte, int, error) {
	if !buf.Has(data, off, format.U64Size) {
		return nil, 0, fmt.Errorf("%w: truncated record", ErrIo)
	}
	length := format.ReadU64(data, off)
	if length > format.MaxFieldLen {
		return nil, 0, fmt.Errorf("%w: %w", ErrIo, format.ErrSanityLimit)
	}
	field, ok := buf.Slice(data, off+format.U64Size, int(length))
	if !ok {
		return nil, 0, fmt.Errorf("%w: %w", ErrIo, format.ErrTruncated)
	}
	return field, off + format.U64Size + int(length), nil
}

// SaveIntoFile writes the storage to the file at path, creating or
// truncating it.
func (s *Storage) SaveIntoFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIo, err)
	}
	defer f.Close()
	if err := s.Save(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrIo, err)
	}
	return nil
}

// LoadFromFile reads the file at path under the given strategy.
func (s *Storage) LoadFromFile(path string, strategy LoadStrategy) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIo, err)
	}
	defer f.Close()
	return s.Load(f, strategy)
}
