package catalog_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lstrings/core/catalog"
)

func sampleIndex(t *testing.T) *catalog.Index {
	t.Helper()
	ix, err := catalog.NewIndex(
		[]catalog.SimpleEntry{
			{ID: 0, Key: "Conversation.Search", HasArguments: false},
			{ID: 1, Key: "Conversation.Typing", HasArguments: true},
			{ID: 2, Key: "Чат.Заголовок", HasArguments: false},
			{ID: 7, Key: "Notification.Joined", HasArguments: true},
		},
		[]catalog.PluralEntry{
			{ID: 0, Key: "Conversation.StatusMembers"},
			{ID: 3, Key: "ForwardedMessages"},
		},
	)
	require.NoError(t, err)
	return ix
}

func encode(t *testing.T, ix *catalog.Index) []byte {
	t.Helper()
	data, err := catalog.Encode(ix)
	require.NoError(t, err)
	return data
}

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	ix := sampleIndex(t)
	decoded, err := catalog.Decode(encode(t, ix))
	require.NoError(t, err)

	assert.Equal(t, ix.Simple, decoded.Simple)
	assert.Equal(t, ix.Plural, decoded.Plural)
	assert.True(t, decoded.HasArguments(1))
	assert.True(t, decoded.HasArguments(7))
	assert.False(t, decoded.HasArguments(0))
	assert.False(t, decoded.HasArguments(42))
	assert.Equal(t, 6, decoded.Len())
	assert.Equal(t, 8, decoded.SimpleIDLimit())
	assert.Equal(t, 4, decoded.PluralIDLimit())
}

func TestDecode_Layout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := func(v uint32) { _ = binary.Write(&buf, binary.LittleEndian, v) }
	w(1)
	w(5)
	w(3)
	buf.WriteString("Key")
	w(1)
	w(1)
	w(9)
	w(2)
	buf.WriteString("Pl")

	ix, err := catalog.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []catalog.SimpleEntry{{ID: 5, Key: "Key", HasArguments: true}}, ix.Simple)
	assert.Equal(t, []catalog.PluralEntry{{ID: 9, Key: "Pl"}}, ix.Plural)
	assert.Equal(t, buf.Bytes(), encode(t, ix))
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	ix, err := catalog.Decode(make([]byte, 8))
	require.NoError(t, err)
	assert.Empty(t, ix.Simple)
	assert.Empty(t, ix.Plural)
	assert.Equal(t, 0, ix.SimpleIDLimit())
	assert.Equal(t, 0, ix.PluralIDLimit())
}

func TestDecode_Truncated(t *testing.T) {
	t.Parallel()

	data := encode(t, sampleIndex(t))
	for n := 0; n < len(data); n++ {
		_, err := catalog.Decode(data[:n])
		require.Error(t, err, "prefix of %d bytes", n)
		assert.True(t, errors.Is(err, catalog.ErrTruncated), "prefix of %d bytes: %v", n, err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		data := append(encode(t, sampleIndex(t)), 0x00)
		_, err := catalog.Decode(data)
		assert.ErrorIs(t, err, catalog.ErrTrailingData)
	})

	t.Run("huge count", func(t *testing.T) {
		t.Parallel()
		data := []byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0}
		_, err := catalog.Decode(data)
		assert.ErrorIs(t, err, catalog.ErrTruncated)
	})

	t.Run("invalid utf8 key", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w := func(v uint32) { _ = binary.Write(&buf, binary.LittleEndian, v) }
		w(1)
		w(0)
		w(2)
		buf.Write([]byte{0xff, 0xfe})
		w(0)
		w(0)
		_, err := catalog.Decode(buf.Bytes())
		assert.ErrorIs(t, err, catalog.ErrInvalidKey)
	})

	t.Run("id above limit", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w := func(v uint32) { _ = binary.Write(&buf, binary.LittleEndian, v) }
		w(0)
		w(1)
		w(catalog.MaxID + 1)
		w(1)
		buf.WriteString("k")
		_, err := catalog.Decode(buf.Bytes())
		assert.ErrorIs(t, err, catalog.ErrInvalidID)
	})
}

func TestEncode_InvalidID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ix   *catalog.Index
	}{
		{"simple id above limit", &catalog.Index{Simple: []catalog.SimpleEntry{{ID: catalog.MaxID + 1, Key: "A"}}}},
		{"plural id at max int", &catalog.Index{Plural: []catalog.PluralEntry{{ID: math.MaxInt, Key: "B"}}}},
		{"negative id", &catalog.Index{Simple: []catalog.SimpleEntry{{ID: -1, Key: "C"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := catalog.Encode(tt.ix)
			require.ErrorIs(t, err, catalog.ErrInvalidID)
			assert.Nil(t, data)

			_, err = catalog.EncodeCompressed(tt.ix, catalog.CompressionZstd)
			assert.ErrorIs(t, err, catalog.ErrInvalidID)
		})
	}
}

func TestMustDecode(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { catalog.MustDecode([]byte{1, 0}) })
	assert.NotPanics(t, func() { catalog.MustDecode(make([]byte, 8)) })
}

func TestNewIndex(t *testing.T) {
	t.Parallel()

	t.Run("duplicate id in section", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.NewIndex([]catalog.SimpleEntry{
			{ID: 1, Key: "A"},
			{ID: 1, Key: "B"},
		}, nil)
		assert.ErrorIs(t, err, catalog.ErrDuplicateID)
	})

	t.Run("same id in different sections", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.NewIndex(
			[]catalog.SimpleEntry{{ID: 1, Key: "A"}},
			[]catalog.PluralEntry{{ID: 1, Key: "B"}},
		)
		assert.NoError(t, err)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.NewIndex(nil, []catalog.PluralEntry{{ID: 0, Key: ""}})
		assert.ErrorIs(t, err, catalog.ErrInvalidKey)
	})

	t.Run("negative id", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.NewIndex([]catalog.SimpleEntry{{ID: -1, Key: "A"}}, nil)
		assert.ErrorIs(t, err, catalog.ErrInvalidID)
	})

	t.Run("lookup by key", func(t *testing.T) {
		t.Parallel()
		ix := sampleIndex(t)

		e, ok := ix.LookupSimple("Conversation.Typing")
		require.True(t, ok)
		assert.Equal(t, 1, e.ID)
		assert.True(t, e.HasArguments)

		p, ok := ix.LookupPlural("ForwardedMessages")
		require.True(t, ok)
		assert.Equal(t, 3, p.ID)

		_, ok = ix.LookupSimple("ForwardedMessages")
		assert.False(t, ok)
	})
}
