package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	bookingserrors "tourenzo/internal/bookings/errors"
	catalogrepository "tourenzo/internal/catalog/repository"
	"tourenzo/pkg/db/mongo/mongotest"
	"tourenzo/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFindByUser_JoinsPackagesInCreationOrder(t *testing.T) {
	h := mongotest.New(t, os.Getenv(mongotest.EnvMongoURI))
	ctx := context.Background()

	packages := catalogrepository.NewMongoPackageRepository(h.Config)
	_, err := packages.InsertMany(ctx, []model.Package{
		{Title: "Bali Bliss", Location: "Indonesia", Price: 100000},
	})
	require.NoError(t, err)
	all, err := packages.FindAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	pkgID, err := primitive.ObjectIDFromHex(all[0].ID)
	require.NoError(t, err)

	repo := NewMongoBookingRepository(h.Config)
	user := primitive.NewObjectID()
	other := primitive.NewObjectID()

	first := &model.Booking{UserID: user, PackageID: pkgID, TravelDate: "2099-01-01", Travelers: 1, TotalCost: 100000, PaymentMethod: "UPI", Status: model.StatusConfirmed}
	orphan := &model.Booking{UserID: user, PackageID: primitive.NewObjectID(), TravelDate: "2099-02-01", Travelers: 2, TotalCost: 1, PaymentMethod: "UPI", Status: model.StatusConfirmed}
	foreign := &model.Booking{UserID: other, PackageID: pkgID, TravelDate: "2099-03-01", Travelers: 1, TotalCost: 100000, PaymentMethod: "UPI", Status: model.StatusConfirmed}
	for _, b := range []*model.Booking{first, orphan, foreign} {
		require.NoError(t, repo.Create(ctx, b))
		assert.NotEmpty(t, b.ID)
	}

	got, err := repo.FindByUser(ctx, user.Hex())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, first.ID, got[0].ID)
	require.NotNil(t, got[0].Package)
	assert.Equal(t, "Bali Bliss", got[0].Package.Title)

	assert.Equal(t, orphan.ID, got[1].ID)
	assert.Nil(t, got[1].Package)
}

func TestFindByUser_NoBookingsIsEmptySlice(t *testing.T) {
	h := mongotest.New(t, os.Getenv(mongotest.EnvMongoURI))

	got, err := NewMongoBookingRepository(h.Config).FindByUser(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindByUser_InvalidID(t *testing.T) {
	h := mongotest.New(t, os.Getenv(mongotest.EnvMongoURI))

	_, err := NewMongoBookingRepository(h.Config).FindByUser(context.Background(), "nope")
	assert.True(t, errors.Is(err, bookingserrors.ErrInvalidUserID))
}
