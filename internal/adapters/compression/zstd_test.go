package compression

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
)

func TestZstdRoundTrip(t *testing.T) {
	defer goleak.VerifyNone(t)

	codec, err := NewZstdCompression(nil)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, codec.Close())
	}()

	payloads := [][]byte{
		[]byte("794"),
		[]byte("0794\n79927398710\n000000021825009\n"),
		bytes.Repeat([]byte("0000000218250097\n"), 1024),
	}

	for _, payload := range payloads {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		assert.Equal(t, payload, decompressed)
	}
}

func TestZstdShrinksRepetitiveData(t *testing.T) {
	codec, err := NewZstdCompression(nil)
	require.NoError(t, err)
	defer codec.Close()

	payload := bytes.Repeat([]byte("79444\n"), 4096)
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(payload))
}

func TestZstdSmallPayloadStaysDecodable(t *testing.T) {
	codec, err := NewZstdCompression(nil)
	require.NoError(t, err)
	defer codec.Close()

	// Even a payload the codec cannot shrink must come back as a frame,
	// never as the raw input.
	compressed, err := codec.Compress([]byte("X"))
	require.NoError(t, err)
	assert.NotEqual(t, []byte("X"), compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, []byte("X"), decompressed)
}

func TestZstdExplicitOptions(t *testing.T) {
	defer goleak.VerifyNone(t)

	codec, err := NewZstdCompression(&domain.CompressionOptions{
		Level:              FastestLevel,
		EncoderConcurrency: 1,
		DecoderConcurrency: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, FastestLevel, codec.Level())
	require.NoError(t, codec.Close())
}

func TestZstdLevelValidation(t *testing.T) {
	for _, level := range []uint8{0, 5, 9} {
		_, err := NewZstdCompression(&domain.CompressionOptions{
			Level:              level,
			EncoderConcurrency: 1,
			DecoderConcurrency: 1,
		})
		assert.Error(t, err)
	}
}

func TestZstdDecompressGarbage(t *testing.T) {
	codec, err := NewZstdCompression(nil)
	require.NoError(t, err)
	defer codec.Close()

	_, err = codec.Decompress([]byte("not a zstd frame"))
	assert.Error(t, err)
}
