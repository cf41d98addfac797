package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GiantZOC/ISO-7064/internal/core/domain"
)

// The CRC rows are the standard check values for "123456789", the SHA rows
// the FIPS test vectors for "abc".
func TestKnownDigests(t *testing.T) {
	tests := []struct {
		algorithm domain.ChecksumAlgorithm
		data      string
		expected  string
	}{
		{CRC32IEEE, "123456789", "cbf43926"},
		{CRC64ISO, "123456789", "b90956c775a41001"},
		{CRC64ECMA, "123456789", "995dc9bbdf1939fa"},
		{SHA1, "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{SHA256, "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, tc := range tests {
		t.Run(string(tc.algorithm), func(t *testing.T) {
			digest, err := New(tc.algorithm)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, digest.Sum([]byte(tc.data)))
			assert.Equal(t, string(tc.algorithm), digest.Name())
		})
	}
}

func TestNewDefaultsToCRC32(t *testing.T) {
	digest, err := New("")
	require.NoError(t, err)
	assert.Equal(t, string(CRC32IEEE), digest.Name())
}

func TestNewUnknownAlgorithm(t *testing.T) {
	_, err := New("md5")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))
	assert.NoError(t, Validate(&domain.ChecksumOptions{Enable: false, Algorithm: "md5"}))
	assert.Error(t, Validate(&domain.ChecksumOptions{Enable: true, Algorithm: "md5"}))
}
