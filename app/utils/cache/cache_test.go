package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("key", 42)
	value, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := New(10 * time.Millisecond)
	defer c.Close()

	c.Set("key", "value")
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestDeleteAndClear(t *testing.T) {
	c := New(time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Clear()
	_, ok = c.Get("b")
	assert.False(t, ok)
}

func TestCloseIsIdempotent(t *testing.T) {
	c := New(time.Minute)

	c.Set("key", 1)
	c.Close()
	c.Close()

	// Entries remain readable after the sweeper stops.
	value, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 1, value)
}
