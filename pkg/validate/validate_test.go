package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("jamie@example.com"))
	assert.True(t, IsEmail("jamie+tag@sub.example.com"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("missing@domain@twice.com"))
	assert.False(t, IsEmail(""))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+60123456789"))
	assert.True(t, IsPhone("012-345 6789"))
	assert.False(t, IsPhone("12345"))
	assert.False(t, IsPhone("call me maybe"))
	assert.False(t, IsPhone(""))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.org"))
	assert.True(t, IsURL("http://example.org/path?q=1"))
	assert.False(t, IsURL("example.org"))
	assert.False(t, IsURL("/relative/path"))
	assert.False(t, IsURL(""))
}
