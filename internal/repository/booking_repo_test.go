package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookingCreateAndLookup(t *testing.T) {
	r := NewBookingRepo()

	b1 := r.Create(1, 10, 2, 200)
	b2 := r.Create(2, 10, 1, 150)
	b3 := r.Create(1, 11, 3, 300)

	require.Equal(t, int64(1), b1.ID)
	require.Equal(t, int64(2), b2.ID)
	require.Equal(t, int64(3), b3.ID)

	byUser := r.ByUser(10)
	require.Len(t, byUser, 2)
	require.Equal(t, []int64{b1.ID, b2.ID}, []int64{byUser[0].ID, byUser[1].ID})

	inShow := r.ByUserAndShow(10, 1)
	require.Len(t, inShow, 1)
	require.Equal(t, b1, inShow[0])

	require.Len(t, r.All(), 3)
}

func TestBookingEmptyListsAreNotNil(t *testing.T) {
	r := NewBookingRepo()
	require.NotNil(t, r.ByUser(5))
	require.Empty(t, r.ByUser(5))
	require.NotNil(t, r.ByUserAndShow(5, 1))
}

func TestBookingRemove(t *testing.T) {
	r := NewBookingRepo()
	b := r.Create(1, 10, 2, 200)
	r.Remove(b.ID)
	require.Empty(t, r.ByUser(10))
	r.Remove(b.ID) // removing twice is harmless
}
