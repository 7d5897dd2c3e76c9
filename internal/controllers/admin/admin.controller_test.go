package adminController

import (
	"context"
	"testing"
	"time"

	"rewear/config"
	"rewear/internal/database"
	. "rewear/internal/models"
	"rewear/internal/repositories"
	"rewear/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         database.DB
	repos      repositories.Repository
	controller AdminControllerInterface
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	db := database.NewTestDB(t)
	cfg := config.Config{
		JWTSecret:       "test-secret",
		SessionTTLHours: 1,
		CommissionRate:  0.10,
	}

	repos := repositories.New(db)
	svcs, err := services.New(db, cfg)
	require.NoError(t, err)

	return testEnv{
		db:         db,
		repos:      repos,
		controller: New(repos, svcs, cfg, db),
	}
}

func (e testEnv) seedRental(t *testing.T, status RentalStatus) (*Rental, *ClothingItem) {
	t.Helper()

	owner := &User{Email: "owner@dtu.ac.in", PasswordHash: "x", FullName: "Owner"}
	renter := &User{Email: "renter@dtu.ac.in", PasswordHash: "x", FullName: "Renter"}
	require.NoError(t, e.db.SQL.Create(owner).Error)
	require.NoError(t, e.db.SQL.Create(renter).Error)

	item := &ClothingItem{
		OwnerID:    owner.ID,
		Title:      "Kurta",
		Category:   CategoryKurta,
		Size:       SizeL,
		Condition:  ConditionLikeNew,
		RentPerDay: 60,
		Status:     status.MirrorForItem(),
	}
	require.NoError(t, e.db.SQL.Create(item).Error)

	rental := &Rental{
		ClothID:     item.ID,
		RenterID:    renter.ID,
		OwnerID:     owner.ID,
		StartDate:   time.Now().UTC().AddDate(0, 0, 1),
		EndDate:     time.Now().UTC().AddDate(0, 0, 3),
		TotalAmount: 198,
		Status:      status,
	}
	require.NoError(t, e.db.SQL.Create(rental).Error)

	return rental, item
}

func TestUpdateRentalStatusHandOver(t *testing.T) {
	env := newTestEnv(t)
	rental, item := env.seedRental(t, StatusReserved)

	updated, err := env.controller.UpdateRentalStatus(
		context.Background(),
		rental.ID,
		&UpdateRentalStatusRequest{Status: StatusRented},
	)
	require.NoError(t, err)
	assert.Equal(t, StatusRented, updated.Status)

	var reloaded ClothingItem
	require.NoError(t, env.db.SQL.First(&reloaded, "id = ?", item.ID).Error)
	assert.Equal(t, StatusRented, reloaded.Status)
}

func TestUpdateRentalStatusReturnReleasesItem(t *testing.T) {
	env := newTestEnv(t)
	rental, item := env.seedRental(t, StatusRented)

	notes := "returned in good shape"
	updated, err := env.controller.UpdateRentalStatus(
		context.Background(),
		rental.ID,
		&UpdateRentalStatusRequest{Status: StatusReturned, AdminNotes: &notes},
	)
	require.NoError(t, err)
	assert.Equal(t, StatusReturned, updated.Status)
	require.NotNil(t, updated.AdminNotes)
	assert.Equal(t, notes, *updated.AdminNotes)

	var reloaded ClothingItem
	require.NoError(t, env.db.SQL.First(&reloaded, "id = ?", item.ID).Error)
	assert.Equal(t, StatusAvailable, reloaded.Status)
}

func TestUpdateRentalStatusIllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from RentalStatus
		to   RentalStatus
	}{
		{name: "returned is terminal", from: StatusReturned, to: StatusRented},
		{name: "rented cannot revert", from: StatusRented, to: StatusReserved},
		{name: "reserved cannot repeat", from: StatusReserved, to: StatusReserved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rental, _ := env.seedRental(t, tt.from)

			_, err := env.controller.UpdateRentalStatus(
				context.Background(),
				rental.ID,
				&UpdateRentalStatusRequest{Status: tt.to},
			)
			assert.ErrorIs(t, err, ErrIllegalTransition)
		})
	}
}

func TestUpdateRentalStatusRejectsAvailable(t *testing.T) {
	env := newTestEnv(t)
	rental, _ := env.seedRental(t, StatusReserved)

	_, err := env.controller.UpdateRentalStatus(
		context.Background(),
		rental.ID,
		&UpdateRentalStatusRequest{Status: StatusAvailable},
	)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGrantAndRevokeRole(t *testing.T) {
	env := newTestEnv(t)

	user := &User{Email: "user@dtu.ac.in", PasswordHash: "x", FullName: "User"}
	require.NoError(t, env.db.SQL.Create(user).Error)

	require.NoError(t, env.controller.GrantRole(context.Background(), user.ID, RoleAdmin))

	// repeating a grant is a no-op, not a unique-constraint failure
	require.NoError(t, env.controller.GrantRole(context.Background(), user.ID, RoleAdmin))

	isAdmin, err := env.repos.Role.HasRole(context.Background(), user.ID, RoleAdmin)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	var grants int64
	require.NoError(t, env.db.SQL.Model(&UserRole{}).
		Where("user_id = ?", user.ID).Count(&grants).Error)
	assert.EqualValues(t, 1, grants, "duplicate grant must not insert a second row")

	require.NoError(t, env.controller.RevokeRole(context.Background(), user.ID, RoleAdmin))

	isAdmin, err = env.repos.Role.HasRole(context.Background(), user.ID, RoleAdmin)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestRevokeRoleMissingGrant(t *testing.T) {
	env := newTestEnv(t)

	user := &User{Email: "user@dtu.ac.in", PasswordHash: "x", FullName: "User"}
	require.NoError(t, env.db.SQL.Create(user).Error)

	err := env.controller.RevokeRole(context.Background(), user.ID, RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteItem(t *testing.T) {
	env := newTestEnv(t)
	rental, item := env.seedRental(t, StatusReserved)

	err := env.controller.DeleteItem(context.Background(), item.ID)
	assert.ErrorIs(t, err, ErrItemHasRentals)

	require.NoError(t, env.db.SQL.Model(&Rental{}).
		Where("id = ?", rental.ID).
		Update("status", StatusReturned).Error)

	require.NoError(t, env.controller.DeleteItem(context.Background(), item.ID))

	err = env.controller.DeleteItem(context.Background(), item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListRentalsAndItems(t *testing.T) {
	env := newTestEnv(t)
	env.seedRental(t, StatusReserved)

	rentals, err := env.controller.ListRentals(context.Background())
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.NotNil(t, rentals[0].Cloth)
	assert.NotNil(t, rentals[0].Renter)

	items, err := env.controller.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
