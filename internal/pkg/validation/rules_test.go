package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUSN(t *testing.T) {
	cases := []struct {
		usn  string
		want bool
	}{
		{"4VV21CS042", true},
		{"4vv21cs042", true},  // normalized to uppercase
		{" 4VV21CS042 ", true},
		{"4VV21CS04", false},  // too short
		{"4VV21CS0421", false}, // too long
		{"4VV21CS-42", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidUSN(tc.usn), "usn %q", tc.usn)
	}
}

func TestNormalizeUSN(t *testing.T) {
	assert.Equal(t, "4VV21CS042", NormalizeUSN(" 4vv21cs042 "))
}

func TestIsValidSemester(t *testing.T) {
	assert.False(t, IsValidSemester(0))
	assert.True(t, IsValidSemester(1))
	assert.True(t, IsValidSemester(8))
	assert.False(t, IsValidSemester(9))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Ananya Rao"))
	assert.False(t, IsValidName("A"))
	assert.False(t, IsValidName("   "))
}
