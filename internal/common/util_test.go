package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandByteArray(t *testing.T) {
	size := 32
	data1 := GenerateRandByteArray(size)
	data2 := GenerateRandByteArray(size)
	assert.NotEqual(t, data1, data2)
	assert.Equal(t, size, len(data1))
	assert.Equal(t, size, len(data2))
}

func TestMakeRandHexString(t *testing.T) {
	s, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.Equal(t, 32, len(s))
}

func TestNewRecordID(t *testing.T) {
	id1 := NewRecordID("project")
	id2 := NewRecordID("project")

	assert.True(t, strings.HasPrefix(id1, "project_"))
	assert.NotEqual(t, id1, id2)

	parts := strings.Split(id1, "_")
	require.Len(t, parts, 3)
	assert.NotEmpty(t, parts[1])
	assert.NotEmpty(t, parts[2])
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("sensitive")
	WipeByteArray(b)
	for _, v := range b {
		assert.Zero(t, v)
	}
	WipeByteArray(nil) // must not panic
}
