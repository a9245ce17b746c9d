package binstore

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yyc12345/YYCCommonplace-sub000/internal/format"
)

func TestSettingCollection(t *testing.T) {
	settings := NewSettingCollection()
	first := settings.Add(NewSetting("setting1"))
	second := settings.Add(NewSetting("setting2"))

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 2, settings.Len())
	assert.False(t, settings.Empty())

	token, ok := settings.FindName("setting2")
	require.True(t, ok)
	assert.Equal(t, second, token)
	_, ok = settings.FindName("missing")
	assert.False(t, ok)

	assert.True(t, settings.Has(first))
	assert.False(t, settings.Has(2))
	assert.False(t, settings.Has(-1))
	assert.Equal(t, "setting1", settings.Get(first).Name())
}

type fruit int8

const (
	fruitApple fruit = iota
	fruitPear
	fruitPlum
)

// fixture mirrors a typical mixed-type configuration.
type fixture struct {
	intSetting          Token
	floatSetting        Token
	stringSetting       Token
	boolSetting         Token
	clampedFloatSetting Token
	enumSetting         Token

	intSerDes          IntSerDes[int32]
	floatSerDes        FloatSerDes[float32]
	stringSerDes       StringSerDes
	boolSerDes         BoolSerDes
	clampedFloatSerDes FloatSerDes[float32]
	enumSerDes         IntSerDes[fruit]
}

func newFixture() (*fixture, *SettingCollection) {
	settings := NewSettingCollection()
	f := &fixture{
		intSetting:          settings.Add(NewSetting("int-setting")),
		floatSetting:        settings.Add(NewSetting("float-setting")),
		stringSetting:       settings.Add(NewSetting("string-setting")),
		boolSetting:         settings.Add(NewSetting("bool-setting")),
		clampedFloatSetting: settings.Add(NewSetting("clamped-float-setting")),
		enumSetting:         settings.Add(NewSetting("enum-setting")),

		intSerDes:          NewDefaultIntSerDes[int32](),
		floatSerDes:        NewDefaultFloatSerDes[float32](),
		stringSerDes:       NewStringSerDes(""),
		boolSerDes:         NewBoolSerDes(false),
		clampedFloatSerDes: NewFloatSerDes[float32](-1.0, 1.0, 0.0),
		enumSerDes:         NewEnumSerDes(fruitApple),
	}
	return f, settings
}

func (f *fixture) storage(version VersionIdentifier, settings *SettingCollection) *Storage {
	return NewStorage(NewConfiguration(version, settings))
}

func TestConfiguration(t *testing.T) {
	f, settings := newFixture()
	cfg := NewConfiguration(0, settings)

	assert.EqualValues(t, 0, cfg.Version())
	assert.Equal(t, 6, cfg.Settings().Len())
	for _, token := range []Token{
		f.intSetting, f.floatSetting, f.stringSetting,
		f.boolSetting, f.clampedFloatSetting, f.enumSetting,
	} {
		assert.True(t, cfg.Settings().Has(token))
	}
}

func TestStorageResetValue(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(0, settings)

	assert.False(t, storage.IsStored(f.intSetting))
	ResetValue(storage, f.intSetting, f.intSerDes)
	assert.True(t, storage.IsStored(f.intSetting))
	assert.EqualValues(t, 0, GetValue(storage, f.intSetting, f.intSerDes))
}

func TestStorageSetGet(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(0, settings)

	assert.True(t, SetValue(storage, f.intSetting, int32(114), f.intSerDes))
	assert.EqualValues(t, 114, GetValue(storage, f.intSetting, f.intSerDes))

	assert.True(t, SetValue(storage, f.floatSetting, float32(2.0), f.floatSerDes))
	assert.EqualValues(t, 2.0, GetValue(storage, f.floatSetting, f.floatSerDes))

	assert.True(t, SetValue(storage, f.stringSetting, "test", f.stringSerDes))
	assert.Equal(t, "test", GetValue(storage, f.stringSetting, f.stringSerDes))

	assert.True(t, SetValue(storage, f.boolSetting, true, f.boolSerDes))
	assert.True(t, GetValue(storage, f.boolSetting, f.boolSerDes))

	assert.True(t, SetValue(storage, f.clampedFloatSetting, float32(0.5), f.clampedFloatSerDes))
	assert.EqualValues(t, 0.5, GetValue(storage, f.clampedFloatSetting, f.clampedFloatSerDes))

	assert.True(t, SetValue(storage, f.enumSetting, fruitPear, f.enumSerDes))
	assert.Equal(t, fruitPear, GetValue(storage, f.enumSetting, f.enumSerDes))
}

func TestStorageClampRejection(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(0, settings)

	// Out of [-1, 1]: the set fails and the default is stored instead.
	assert.False(t, SetValue(storage, f.clampedFloatSetting, float32(2.0), f.clampedFloatSerDes))
	assert.EqualValues(t, 0.0, GetValue(storage, f.clampedFloatSetting, f.clampedFloatSerDes))
}

func TestStorageDefaultWhenUnstored(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(0, settings)

	// Nothing stored: the default surfaces and gets materialized.
	assert.Equal(t, "", GetValue(storage, f.stringSetting, f.stringSerDes))
	assert.True(t, storage.IsStored(f.stringSetting))
}

func TestStorageUndecodableResets(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(0, settings)

	// Store raw bytes of the wrong width, then read through the int codec.
	storage.raws[f.intSetting] = []byte{0x01}
	assert.EqualValues(t, 0, GetValue(storage, f.intSetting, f.intSerDes))
}

func TestStorageClear(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(0, settings)

	SetValue(storage, f.intSetting, int32(114), f.intSerDes)
	storage.Clear()
	assert.False(t, storage.IsStored(f.intSetting))
}

func TestPersistenceRoundTrip(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(0, settings)

	require.True(t, SetValue(storage, f.intSetting, int32(114), f.intSerDes))
	require.True(t, SetValue(storage, f.floatSetting, float32(2.0), f.floatSerDes))
	require.True(t, SetValue(storage, f.stringSetting, "test", f.stringSerDes))
	require.True(t, SetValue(storage, f.boolSetting, true, f.boolSerDes))
	require.True(t, SetValue(storage, f.clampedFloatSetting, float32(0.5), f.clampedFloatSerDes))
	require.True(t, SetValue(storage, f.enumSetting, fruitPear, f.enumSerDes))

	var buf bytes.Buffer
	require.NoError(t, storage.Save(&buf))

	storage.Clear()
	require.NoError(t, storage.Load(&buf, OnlyCurrent))

	assert.EqualValues(t, 114, GetValue(storage, f.intSetting, f.intSerDes))
	assert.EqualValues(t, 2.0, GetValue(storage, f.floatSetting, f.floatSerDes))
	assert.Equal(t, "test", GetValue(storage, f.stringSetting, f.stringSerDes))
	assert.True(t, GetValue(storage, f.boolSetting, f.boolSerDes))
	assert.EqualValues(t, 0.5, GetValue(storage, f.clampedFloatSetting, f.clampedFloatSerDes))
	assert.Equal(t, fruitPear, GetValue(storage, f.enumSetting, f.enumSerDes))
}

func TestPersistenceFile(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(0, settings)
	require.True(t, SetValue(storage, f.intSetting, int32(61), f.intSerDes))

	path := t.TempDir() + "/settings.bin"
	require.NoError(t, storage.SaveIntoFile(path))

	storage.Clear()
	require.NoError(t, storage.LoadFromFile(path, OnlyCurrent))
	assert.EqualValues(t, 61, GetValue(storage, f.intSetting, f.intSerDes))
}

func TestLoadStrategyMatrix(t *testing.T) {
	const (
		oldVersion VersionIdentifier = 16
		midVersion VersionIdentifier = 32
		newVersion VersionIdentifier = 61
	)

	save := func(version VersionIdentifier) []byte {
		settings := NewSettingCollection()
		token := settings.Add(NewSetting("int-setting"))
		storage := NewStorage(NewConfiguration(version, settings))
		SetValue(storage, token, int32(42), NewDefaultIntSerDes[int32]())
		var buf bytes.Buffer
		require.NoError(t, storage.Save(&buf))
		return buf.Bytes()
	}
	oldFile, midFile, newFile := save(oldVersion), save(midVersion), save(newVersion)

	load := func(data []byte, strategy LoadStrategy) (*Storage, Token, error) {
		settings := NewSettingCollection()
		token := settings.Add(NewSetting("int-setting"))
		storage := NewStorage(NewConfiguration(midVersion, settings))
		err := storage.Load(bytes.NewReader(data), strategy)
		return storage, token, err
	}

	// OnlyCurrent: only the matching version loads.
	_, _, err := load(oldFile, OnlyCurrent)
	assert.ErrorIs(t, err, ErrBadVersion)
	storage, token, err := load(midFile, OnlyCurrent)
	require.NoError(t, err)
	assert.EqualValues(t, 42, GetValue(storage, token, NewDefaultIntSerDes[int32]()))
	_, _, err = load(newFile, OnlyCurrent)
	assert.ErrorIs(t, err, ErrBadVersion)

	// MigrateOld: current and older load, newer is rejected.
	storage, token, err = load(oldFile, MigrateOld)
	require.NoError(t, err)
	assert.EqualValues(t, 42, GetValue(storage, token, NewDefaultIntSerDes[int32]()))
	_, _, err = load(midFile, MigrateOld)
	assert.NoError(t, err)
	_, _, err = load(newFile, MigrateOld)
	assert.ErrorIs(t, err, ErrBadVersion)

	// AcceptAll: everything loads.
	for _, data := range [][]byte{oldFile, midFile, newFile} {
		_, _, err = load(data, AcceptAll)
		assert.NoError(t, err)
	}
}

func TestLoadLeavesRawsOnBadVersion(t *testing.T) {
	f, settings := newFixture()
	storage := f.storage(1, settings)
	require.True(t, SetValue(storage, f.intSetting, int32(7), f.intSerDes))

	// A version-2 file must not disturb the stored values under
	// OnlyCurrent.
	other := f.storage(2, settings)
	SetValue(other, f.intSetting, int32(99), f.intSerDes)
	var buf bytes.Buffer
	require.NoError(t, other.Save(&buf))

	assert.ErrorIs(t, storage.Load(&buf, OnlyCurrent), ErrBadVersion)
	assert.EqualValues(t, 7, GetValue(storage, f.intSetting, f.intSerDes))
}

func TestLoadIgnoresUnknownNames(t *testing.T) {
	// Save from a wider schema, load into a narrower one.
	wide := NewSettingCollection()
	known := wide.Add(NewSetting("known"))
	unknown := wide.Add(NewSetting("unknown"))
	src := NewStorage(NewConfiguration(0, wide))
	SetValue(src, known, int32(5), NewDefaultIntSerDes[int32]())
	SetValue(src, unknown, int32(6), NewDefaultIntSerDes[int32]())
	var buf bytes.Buffer
	require.NoError(t, src.Save(&buf))

	narrow := NewSettingCollection()
	token := narrow.Add(NewSetting("known"))
	dst := NewStorage(NewConfiguration(0, narrow))
	require.NoError(t, dst.Load(&buf, OnlyCurrent))
	assert.EqualValues(t, 5, GetValue(dst, token, NewDefaultIntSerDes[int32]()))
}

func TestLoadDuplicatedAssign(t *testing.T) {
	settings := NewSettingCollection()
	token := settings.Add(NewSetting("dup"))
	storage := NewStorage(NewConfiguration(0, settings))
	SetValue(storage, token, int32(1), NewDefaultIntSerDes[int32]())

	var buf bytes.Buffer
	require.NoError(t, storage.Save(&buf))
	// Append the record section a second time.
	data := buf.Bytes()
	doubled := append(append([]byte{}, data...), data[format.HeaderSize:]...)

	err := storage.Load(bytes.NewReader(doubled), OnlyCurrent)
	assert.ErrorIs(t, err, ErrDuplicatedAssign)
}

func TestLoadTruncated(t *testing.T) {
	settings := NewSettingCollection()
	token := settings.Add(NewSetting("x"))
	storage := NewStorage(NewConfiguration(0, settings))
	SetValue(storage, token, int32(1), NewDefaultIntSerDes[int32]())

	var buf bytes.Buffer
	require.NoError(t, storage.Save(&buf))
	data := buf.Bytes()

	err := storage.Load(bytes.NewReader(data[:len(data)-1]), OnlyCurrent)
	assert.ErrorIs(t, err, ErrIo)
	err = storage.Load(bytes.NewReader(data[:4]), OnlyCurrent)
	assert.ErrorIs(t, err, ErrIo)
}

func TestSerDesEncodings(t *testing.T) {
	intSD := NewDefaultIntSerDes[int32]()
	data, ok := intSD.Serialize(114)
	require.True(t, ok)
	assert.Len(t, data, 4)
	_, ok = intSD.Deserialize([]byte{1, 2})
	assert.False(t, ok)

	boolSD := NewBoolSerDes(false)
	data, ok = boolSD.Serialize(true)
	require.True(t, ok)
	assert.Equal(t, []byte{1}, data)
	v, ok := boolSD.Deserialize([]byte{0x2C})
	require.True(t, ok)
	assert.True(t, v)
	_, ok = boolSD.Deserialize([]byte{1, 0})
	assert.False(t, ok)

	strSD := NewStringSerDes("")
	data, ok = strSD.Serialize("hi")
	require.True(t, ok)
	assert.Len(t, data, format.U64Size+2)
	_, ok = strSD.Deserialize(data[:len(data)-1])
	assert.False(t, ok)
	_, ok = strSD.Serialize("bad\xff")
	assert.False(t, ok)

	bounded := NewIntSerDes[int32](0, 100, 50)
	_, ok = bounded.Serialize(101)
	assert.False(t, ok)
	assert.EqualValues(t, 50, mustDeserialize[int32](t, bounded, bounded.Reset()))

	negative := NewIntSerDes[int8](-10, 10, -5)
	assert.EqualValues(t, -5, mustDeserialize[int8](t, negative, negative.Reset()))
}

func mustDeserialize[V any](t *testing.T, sd SerDes[V], data []byte) V {
	t.Helper()
	v, ok := sd.Deserialize(data)
	require.True(t, ok)
	return v
}

func TestResetContract(t *testing.T) {
	// Deserialize(Reset()) must succeed for every codec.
	f, _ := newFixture()
	mustDeserialize[int32](t, f.intSerDes, f.intSerDes.Reset())
	mustDeserialize[float32](t, f.floatSerDes, f.floatSerDes.Reset())
	mustDeserialize[string](t, f.stringSerDes, f.stringSerDes.Reset())
	mustDeserialize[bool](t, f.boolSerDes, f.boolSerDes.Reset())
	mustDeserialize[float32](t, f.clampedFloatSerDes, f.clampedFloatSerDes.Reset())
	mustDeserialize[fruit](t, f.enumSerDes, f.enumSerDes.Reset())
}
