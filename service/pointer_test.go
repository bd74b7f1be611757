package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	s := "hello"
	p := Ptr(s)
	require.NotNil(t, p)
	assert.Equal(t, s, *p)
}

func TestValue(t *testing.T) {
	x := int64(42)
	assert.Equal(t, int64(42), Value(&x))
}

func TestValue_Nil(t *testing.T) {
	assert.Equal(t, int64(0), Value[int64](nil))
	assert.Equal(t, "", Value[string](nil))
}
