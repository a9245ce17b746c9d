// Package binstore is a versioned, token-addressed binary settings
// store. Settings are registered into a collection, addressed by dense
// tokens, encoded by per-value codecs and persisted in a host-order
// binary file keyed by setting name.
package binstore

import "github.com/yyc12345/YYCCommonplace-sub000/carton/panics"

// Storage owns a configuration plus the raw persisted bytes of each
// populated setting.
type Storage struct {
	cfg Configuration
	// Key is the token of a registered setting, value its raw encoding.
	// A token may be absent, meaning "not stored".
	raws map[Token][]byte
}

// NewStorage creates a storage for the given configuration.
func NewStorage(cfg Configuration) *Storage {
	return &Storage{cfg: cfg, raws: make(map[Token][]byte)}
}

// Configuration returns the associated configuration.
func (s *Storage) Configuration() Configuration { return s.cfg }

// Clear drops every stored raw value. Every setting reads as its default
// afterwards.
func (s *Storage) Clear() {
	s.raws = make(map[Token][]byte)
}

// checkSetting validates the token against the owned configuration.
func (s *Storage) checkSetting(token Token) {
	if !s.cfg.Settings().Has(token) {
		panics.Panicf("binstore: invalid setting token %d", token)
	}
}

// IsStored reports whether the setting has a stored raw value.
// An invalid token is a caller bug.
func (s *Storage) IsStored(token Token) bool {
	s.checkSetting(token)
	_, ok := s.raws[token]
	return ok
}

// ResetValue sets the setting back to the codec's default.
// An invalid token is a caller bug.
func ResetValue[V any](s *Storage, token Token, sd SerDes[V]) {
	s.checkSetting(token)
	s.raws[token] = sd.Reset()
}

// GetValue fetches the setting's value. A missing or undecodable raw
// value is replaced by the codec's default before returning.
func GetValue[V any](s *Storage, token Token, sd SerDes[V]) V {
	s.checkSetting(token)

	if raw, ok := s.raws[token]; ok {
		if value, ok := sd.Deserialize(raw); ok {
			return value
		}
		// Undecodable; fall through and reset to default.
	}

	ResetValue(s, token, sd)
	value, ok := sd.Deserialize(s.raws[token])
	if !ok {
		panics.Panicf("binstore: default value must deserialize")
	}
	return value
}

// SetValue stores the value for the setting. When the value is outside
// the codec's range the default is stored instead and false is returned.
func SetValue[V any](s *Storage, token Token, value V, sd SerDes[V]) bool {
	s.checkSetting(token)

	raw, ok := sd.Serialize(value)
	if !ok {
		raw = sd.Reset()
	}
	s.raws[token] = raw
	return ok
}
