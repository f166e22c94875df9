package names

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"Ada Lovelace", nil},
		{"Ada King Lovelace", nil},
		{"Ada  Lovelace", nil},
		{" Ada", nil},
		{"Ada", ErrTooFewParts},
		{"", ErrTooFewParts},
		{"Augusta Ada King Lovelace", ErrTooManyParts},
		{"a b c d e", ErrTooManyParts},
	}
	for _, tc := range tests {
		name, err := Parse(tc.input)
		if tc.err == nil {
			assert.NoError(t, err, tc.input)
			assert.Equal(t, tc.input, name.String())
			continue
		}
		assert.ErrorIs(t, err, tc.err, tc.input)
		assert.True(t, errors.Is(err, ErrInvalidName), tc.input)
		assert.Empty(t, name)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("Grace Hopper"))
	assert.ErrorIs(t, Validate("Grace"), ErrInvalidName)
}
