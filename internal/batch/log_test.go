package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinishedLogAppendAndSnapshot(t *testing.T) {
	l := NewFinishedLog()
	assert.Equal(t, 0, l.Len())

	j1 := &FinishedJob{Cmd: "a"}
	j2 := &FinishedJob{Cmd: "b"}
	l.Append(j1)
	l.Append(j2)

	assert.Equal(t, 2, l.Len())
	snap := l.Snapshot()
	assert.Equal(t, []*FinishedJob{j1, j2}, snap)
}

func TestFinishedLogSnapshotIsCopy(t *testing.T) {
	l := NewFinishedLog()
	l.Append(&FinishedJob{Cmd: "a"})

	snap := l.Snapshot()
	snap[0] = &FinishedJob{Cmd: "mutated"}

	assert.Equal(t, "a", l.Snapshot()[0].Cmd)
}

func TestFinishedLogClear(t *testing.T) {
	l := NewFinishedLog()
	l.Append(&FinishedJob{Cmd: "a"})
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Snapshot())
}
