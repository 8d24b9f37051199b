package passphrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "h3ll0"},
		{"banana", "b@n@n@"},
		{"umbrella", "µmbr3ll@"},
		{"Apple", "@ppl3"},
		{"OUTSIDE", "0µTS1D3"},
		{"rhythm", "rhythm"},
		{"MiXeD", "M1X3D"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.in))
		})
	}
}

func TestSubstituteIsIdempotent(t *testing.T) {
	for _, w := range []string{"aeiou", "AEIOU", "education", "Sequoia", "queue"} {
		once := Substitute(w)
		assert.Equal(t, once, Substitute(once), w)
	}
}
