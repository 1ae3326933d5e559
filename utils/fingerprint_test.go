package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintString(t *testing.T) {
	assert.Equal(t, FingerprintString("col:users.id"), FingerprintString("col:users.id"))
	assert.NotEqual(t, FingerprintString("col:users.id"), FingerprintString("col:users.age"))
	assert.NotEqual(t, FingerprintString(""), FingerprintString("a"))
}

func TestMix64Order(t *testing.T) {
	a, b := FingerprintString("a"), FingerprintString("b")
	assert.Equal(t, Mix64(a, b), Mix64(a, b))
	assert.NotEqual(t, Mix64(a, b), Mix64(b, a))
}
