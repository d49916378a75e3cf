package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelayLedger_Append_PreservesOrderPerUser(t *testing.T) {
	l := NewDelayLedger()
	l.Append("Alice", 3)
	l.Append("Bob", 1)
	l.Append("Alice", 5)

	assert.Equal(t, []int64{3, 5}, l.Delays("Alice"))
	assert.Equal(t, []int64{1}, l.Delays("Bob"))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"Alice", "Bob"}, l.Users())
}

func TestDelayLedger_Delays_UnknownUser_Nil(t *testing.T) {
	assert.Nil(t, NewDelayLedger().Delays("nobody"))
}

func TestDelayLedger_CopiesDoNotAlias(t *testing.T) {
	l := NewDelayLedger()
	l.Append("Alice", 2)

	d := l.Delays("Alice")
	d[0] = 99
	snap := l.Snapshot()
	snap["Alice"][0] = 77

	assert.Equal(t, []int64{2}, l.Delays("Alice"))
}
