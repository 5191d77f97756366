package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmFlow(t *testing.T) {
	m := NewConfirm()
	assert.Equal(t, ConfirmIdle, m.State())
	assert.Empty(t, m.Target())

	m.Request("u-2")
	assert.Equal(t, ConfirmPending, m.State())
	assert.Equal(t, "u-2", m.Target())

	m.Accept()
	assert.Equal(t, Confirmed, m.State())
}

func TestConfirmDecline(t *testing.T) {
	m := NewConfirm()
	m.Request("u-2")
	m.Decline()
	assert.Equal(t, Cancelled, m.State())

	// a declined confirmation cannot be accepted afterwards
	m.Accept()
	assert.Equal(t, Cancelled, m.State())
}

func TestConfirmIgnoresBadTransitions(t *testing.T) {
	m := NewConfirm()

	// accepting or declining without a request stays idle
	m.Accept()
	m.Decline()
	assert.Equal(t, ConfirmIdle, m.State())

	// an empty target is not a request
	m.Request("")
	assert.Equal(t, ConfirmIdle, m.State())

	m.Request("a-1")
	m.Request("a-2")
	assert.Equal(t, "a-1", m.Target())
}
