package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContiguousAdmitAndRelease(t *testing.T) {
	c := NewContiguous(1000)
	id := uuid.New()

	assert.True(t, c.Admit(id, 400))
	assert.EqualValues(t, 600, c.Available())

	c.Release(id, 400)
	assert.EqualValues(t, 1000, c.Available())
}

func TestContiguousRejectsOversizedRequest(t *testing.T) {
	c := NewContiguous(100)
	assert.False(t, c.Admit(uuid.New(), 101))
	assert.EqualValues(t, 100, c.Available())
}

func TestContiguousReleaseClampsAtTotal(t *testing.T) {
	c := NewContiguous(100)
	c.Release(uuid.New(), 50)
	assert.EqualValues(t, 100, c.Available())
}

func TestContiguousName(t *testing.T) {
	assert.Equal(t, "Contiguous", NewContiguous(10).Name())
}
