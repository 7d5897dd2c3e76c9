package rentalController

import (
	"context"
	"testing"
	"time"

	"rewear/config"
	"rewear/internal/database"
	. "rewear/internal/models"
	"rewear/internal/repositories"
	"rewear/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         database.DB
	repos      repositories.Repository
	controller RentalControllerInterface
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

func (e testEnv) createUser(t *testing.T, email string) *User {
	t.Helper()

	user := &User{Email: email, PasswordHash: "x", FullName: "Test User"}
	require.NoError(t, e.db.SQL.Create(user).Error)
	return user
}

func (e testEnv) createItem(t *testing.T, ownerID uuid.UUID, rentPerDay int) *ClothingItem {
	t.Helper()

	item := &ClothingItem{
		OwnerID:    ownerID,
		Title:      "Denim Jacket",
		Category:   CategoryJacket,
		Size:       SizeM,
		Condition:  ConditionGood,
		RentPerDay: rentPerDay,
		Status:     StatusAvailable,
	}
	require.NoError(t, e.db.SQL.Create(item).Error)
	return item
}

func futureDate(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, days)
}

func TestCreateRental(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@dtu.ac.in")
	renter := env.createUser(t, "renter@dtu.ac.in")
	item := env.createItem(t, owner.ID, 100)

	rental, err := env.controller.CreateRental(context.Background(), renter.ID, &CreateRentalRequest{
		ClothID:   item.ID,
		StartDate: futureDate(1),
		EndDate:   futureDate(3),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusReserved, rental.Status)
	assert.Equal(t, item.ID, rental.ClothID)
	assert.Equal(t, owner.ID, rental.OwnerID)
	assert.Equal(t, renter.ID, rental.RenterID)
	// 3 inclusive days at 100/day plus 10% fee
	assert.Equal(t, 330, rental.TotalAmount)

	var reloaded ClothingItem
	require.NoError(t, env.db.SQL.First(&reloaded, "id = ?", item.ID).Error)
	assert.Equal(t, StatusReserved, reloaded.Status)
}

func TestCreateRentalItemAlreadyTaken(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@dtu.ac.in")
	first := env.createUser(t, "first@dtu.ac.in")
	second := env.createUser(t, "second@dtu.ac.in")
	item := env.createItem(t, owner.ID, 50)

	request := &CreateRentalRequest{
		ClothID:   item.ID,
		StartDate: futureDate(1),
		EndDate:   futureDate(2),
	}

	_, err := env.controller.CreateRental(context.Background(), first.ID, request)
	require.NoError(t, err)

	_, err = env.controller.CreateRental(context.Background(), second.ID, request)
	assert.ErrorIs(t, err, ErrItemUnavailable)

	var count int64
	require.NoError(t, env.db.SQL.Model(&Rental{}).
		Where("cloth_id = ?", item.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateRentalOwnItem(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@dtu.ac.in")
	item := env.createItem(t, owner.ID, 50)

	_, err := env.controller.CreateRental(context.Background(), owner.ID, &CreateRentalRequest{
		ClothID:   item.ID,
		StartDate: futureDate(1),
		EndDate:   futureDate(2),
	})
	assert.ErrorIs(t, err, ErrOwnItem)

	var reloaded ClothingItem
	require.NoError(t, env.db.SQL.First(&reloaded, "id = ?", item.ID).Error)
	assert.Equal(t, StatusAvailable, reloaded.Status)
}

func TestCreateRentalPastStart(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@dtu.ac.in")
	renter := env.createUser(t, "renter@dtu.ac.in")
	item := env.createItem(t, owner.ID, 50)

	_, err := env.controller.CreateRental(context.Background(), renter.ID, &CreateRentalRequest{
		ClothID:   item.ID,
		StartDate: futureDate(-2),
		EndDate:   futureDate(1),
	})
	assert.ErrorIs(t, err, ErrStartInPast)
}

func TestCreateRentalUnknownItem(t *testing.T) {
	env := newTestEnv(t)
	renter := env.createUser(t, "renter@dtu.ac.in")

	_, err := env.controller.CreateRental(context.Background(), renter.ID, &CreateRentalRequest{
		ClothID:   uuid.New(),
		StartDate: futureDate(1),
		EndDate:   futureDate(2),
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestQuote(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@dtu.ac.in")
	item := env.createItem(t, owner.ID, 100)

	breakdown, err := env.controller.Quote(context.Background(), &QuoteRequest{
		ClothID:   item.ID,
		StartDate: futureDate(1),
		EndDate:   futureDate(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, breakdown.Days)
	assert.Equal(t, 300, breakdown.BaseRent)
	assert.Equal(t, 30, breakdown.ServiceFee)
	assert.Equal(t, 330, breakdown.Total)

	// Quoting reserves nothing
	var reloaded ClothingItem
	require.NoError(t, env.db.SQL.First(&reloaded, "id = ?", item.ID).Error)
	assert.Equal(t, StatusAvailable, reloaded.Status)
}

func TestListAsRenterAndOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createUser(t, "owner@dtu.ac.in")
	renter := env.createUser(t, "renter@dtu.ac.in")
	item := env.createItem(t, owner.ID, 40)

	_, err := env.controller.CreateRental(context.Background(), renter.ID, &CreateRentalRequest{
		ClothID:   item.ID,
		StartDate: futureDate(1),
		EndDate:   futureDate(2),
	})
	require.NoError(t, err)

	asRenter, err := env.controller.ListAsRenter(context.Background(), renter.ID)
	require.NoError(t, err)
	require.Len(t, asRenter, 1)
	require.NotNil(t, asRenter[0].Cloth)
	assert.Equal(t, item.ID, asRenter[0].Cloth.ID)

	asOwner, err := env.controller.ListAsOwner(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, asOwner, 1)

	other, err := env.controller.ListAsRenter(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, other)
}
