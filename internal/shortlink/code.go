package shortlink

import "github.com/jaevor/go-nanoid"

// codeAlphabet excludes ambiguous characters: 0, O, I, l, 1.
const codeAlphabet = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// DefaultCodeLength is the length of generated short codes.
const DefaultCodeLength = 6

// CodeGenerator generates random short codes.
type CodeGenerator func() string

// NewCodeGenerator creates a generator producing random codes of the given
// length drawn from the unambiguous alphanumeric alphabet.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	generate, err := nanoid.CustomASCII(codeAlphabet, length)
	if err != nil {
		return nil, err
	}

	return CodeGenerator(generate), nil
}
