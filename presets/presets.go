// Package presets provides the classic named substitution ciphers and a
// registry that resolves cipher names to constructors.
package presets

import (
	"github.com/opd-ai/purecipher"
	"github.com/opd-ai/purecipher/substitution"
)

// Built-in preset names.
const (
	NameCaesar = "caesar"
	NameRot13  = "rot13"
	NameLeet   = "leet"
	NameNull   = "null"
)

// leetSubstitutions are applied as successive swaps.
var leetSubstitutions = [][2]byte{
	{'a', '@'},
	{'e', '3'},
	{'A', '4'},
	{'S', '5'},
	{'i', '!'},
	{'t', '1'},
}

// Caesar builds the classic Caesar cipher: ASCII letters shift three ahead.
//
//	presets.Caesar() // "We attack at dawn." -> "Zh dwwdfn dw gdzq."
func Caesar() *substitution.Cipher {
	return alphaRotation(3)
}

// Rot13 builds the rot13 cipher over ASCII letters.
//
//	presets.Rot13() // "Lovely plumage, the Norwegian Blue." -> "Ybiryl cyhzntr, gur Abejrtvna Oyhr."
func Rot13() *substitution.Cipher {
	return alphaRotation(13)
}

// Leet builds a rough cipher to stereotypical "leet" speak.
//
//	presets.Leet() // "Pure ciphers are the BEST!" -> "Pur3 c!ph3rs @r3 1h3 BE5Ti"
func Leet() *substitution.Cipher {
	b := substitution.NewBuilder()
	for _, s := range leetSubstitutions {
		must(b.Swap(s[0], s[1]))
	}
	return finalize(b)
}

// Null returns the cipher that performs no ciphering. It stores no tables.
func Null() purecipher.Cipher {
	return purecipher.NullCipher{}
}

func alphaRotation(offset int) *substitution.Cipher {
	b := substitution.NewBuilder()
	must(b.RotateRange('A', 'Z', offset))
	must(b.RotateRange('a', 'z', offset))
	return finalize(b)
}

func finalize(b *substitution.Builder) *substitution.Cipher {
	c, err := b.Cipher()
	must(err)
	return c
}

// must panics on errors that the fixed edit sequences above cannot produce.
func must(err error) {
	if err != nil {
		panic("presets: " + err.Error())
	}
}
