package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModal_OpenWithThenClose(t *testing.T) {
	m := New[string]()
	assert.False(t, m.Visible())

	m.OpenWith("pet-1")
	assert.True(t, m.Visible())
	data, ok := m.Data()
	assert.True(t, ok)
	assert.Equal(t, "pet-1", data)

	m.Close()
	assert.False(t, m.Visible())
	data, ok = m.Data()
	assert.False(t, ok)
	assert.Empty(t, data)
}

func TestModal_OpenKeepsPayload(t *testing.T) {
	m := New[int]()

	m.OpenWith(7)
	m.Open()

	data, ok := m.Data()
	assert.True(t, ok)
	assert.Equal(t, 7, data)
}

func TestModal_OpenWithoutPayload(t *testing.T) {
	m := New[*struct{}]()

	m.Open()

	assert.True(t, m.Visible())
	_, ok := m.Data()
	assert.False(t, ok)
}
