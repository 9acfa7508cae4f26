package substitution

import (
	"strings"
	"sync"
	"testing"

	"github.com/opd-ai/purecipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherInPlaceMatchesByteMethods(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.RotateRange('a', 'z', 13))
	c := build(t, b)

	input := []byte("these are some bytes\x00\xff")
	buf := append([]byte(nil), input...)
	c.EncipherInPlace(buf)
	for i := range input {
		assert.Equal(t, c.Encipher(input[i]), buf[i])
	}

	c.DecipherInPlace(buf)
	assert.Equal(t, input, buf)

	c.EncipherInPlace(nil)
	c.DecipherInPlace([]byte{})
}

func TestCipherThroughInterfaceHelpers(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.RotateRange('A', 'Z', 3))
	require.NoError(t, b.RotateRange('a', 'z', 3))
	c := build(t, b)

	var pc purecipher.Cipher = c
	assert.Equal(t, "Zh dwwdfn dw gdzq.", purecipher.EncipherString(pc, "We attack at dawn."))
	assert.Equal(t, "We attack at dawn.", purecipher.DecipherString(pc, "Zh dwwdfn dw gdzq."))
}

func TestFromTableUnchecked(t *testing.T) {
	tbl := Identity()
	tbl.Set('a', 'b') // 'a' and 'b' now both encipher to 'b'
	c := FromTable(tbl)

	assert.False(t, c.Reversible())
	assert.Equal(t, byte('b'), c.Encipher('a'))
	assert.Equal(t, byte('b'), c.Encipher('b'))
	// 'b' was written last, so deciphering 'b' yields 'b' and 'a' is lost.
	assert.Equal(t, byte('b'), c.Decipher(c.Encipher('a')))
}

func TestFromTableCopiesInput(t *testing.T) {
	tbl := Identity()
	tbl.Set('a', 'b')
	tbl.Set('b', 'a')
	c := FromTable(tbl)

	tbl.Set('a', 'a')
	assert.Equal(t, byte('b'), c.Encipher('a'))
}

func TestForwardInverseAreCopies(t *testing.T) {
	c := IdentityCipher()
	fwd := c.Forward()
	fwd.Set(0, 1)
	assert.Equal(t, byte(0), c.Encipher(0))

	inv := c.Inverse()
	inv.Set(0, 1)
	assert.Equal(t, byte(0), c.Decipher(0))
}

func TestFingerprint(t *testing.T) {
	a := IdentityCipher().Fingerprint()
	assert.Len(t, a, 64)
	assert.Equal(t, a, build(t, NewBuilder()).Fingerprint())

	b := NewBuilder()
	require.NoError(t, b.Swap('x', 'y'))
	assert.NotEqual(t, a, build(t, b).Fingerprint())
}

func TestCipherString(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Swap('A', 'B'))
	c := build(t, b)
	assert.Equal(t, "Cipher[A => B, B => A]", c.String())
	assert.True(t, strings.HasPrefix(IdentityCipher().String(), "Cipher["))
}

func TestCipherConcurrentReads(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.RotateRange(0, 0xff, 42))
	c := build(t, b)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			buf := make([]byte, TableSize)
			for i := range buf {
				buf[i] = byte(i)
			}
			c.EncipherInPlace(buf)
			c.DecipherInPlace(buf)
			for i := range buf {
				if buf[i] != byte(i) {
					t.Errorf("round trip mismatch at %d", i)
					return
				}
			}
		}()
	}
	wg.Wait()
}
