package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "playo/internal/domain/bookings"
)

func TestBookingsRepo_PutAndGet(t *testing.T) {
	repo := NewBookingsRepo()
	ctx := context.Background()

	booking := domain.Booking{ID: "BK11111111", UserEmail: "a@example.com", Status: domain.StatusCreated}
	require.NoError(t, repo.Put(ctx, booking))

	got, err := repo.Get(ctx, "BK11111111")
	require.NoError(t, err)
	assert.Equal(t, booking, got)
}

func TestBookingsRepo_PutReplaces(t *testing.T) {
	repo := NewBookingsRepo()
	ctx := context.Background()

	booking := domain.Booking{ID: "BK11111111", Status: domain.StatusCreated}
	require.NoError(t, repo.Put(ctx, booking))

	booking.Status = domain.StatusConfirmed
	require.NoError(t, repo.Put(ctx, booking))

	got, err := repo.Get(ctx, "BK11111111")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestBookingsRepo_PutEmptyID(t *testing.T) {
	repo := NewBookingsRepo()

	err := repo.Put(context.Background(), domain.Booking{})
	require.Error(t, err)
}

func TestBookingsRepo_GetNotFound(t *testing.T) {
	repo := NewBookingsRepo()

	_, err := repo.Get(context.Background(), "BK00000000")
	require.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingsRepo_ListByUserEmail(t *testing.T) {
	repo := NewBookingsRepo()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, domain.Booking{ID: "BK1", UserEmail: "a@example.com"}))
	require.NoError(t, repo.Put(ctx, domain.Booking{ID: "BK2", UserEmail: "b@example.com"}))
	require.NoError(t, repo.Put(ctx, domain.Booking{ID: "BK3", UserEmail: "a@example.com"}))

	got, err := repo.ListByUserEmail(ctx, "a@example.com")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "BK1", got[0].ID)
	assert.Equal(t, "BK3", got[1].ID)
}

func TestBookingsRepo_ListByUserEmail_Empty(t *testing.T) {
	repo := NewBookingsRepo()

	got, err := repo.ListByUserEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}
