package jobs

import (
	"context"
	"testing"
	"time"

	"rewear/internal/database"
	. "rewear/internal/models"
	"rewear/internal/repositories"
	"rewear/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRentalEndingOn(
	t *testing.T,
	db database.DB,
	status RentalStatus,
	endDate time.Time,
) *Rental {
	t.Helper()

	owner := &User{Email: "owner-" + endDate.Format("20060102") + "@dtu.ac.in", PasswordHash: "x", FullName: "Owner"}
	renter := &User{Email: "renter-" + endDate.Format("20060102") + "@dtu.ac.in", PasswordHash: "x", FullName: "Renter"}
	require.NoError(t, db.SQL.Create(owner).Error)
	require.NoError(t, db.SQL.Create(renter).Error)

	item := &ClothingItem{
		OwnerID:    owner.ID,
		Title:      "Jacket",
		Category:   CategoryJacket,
		Size:       SizeM,
		Condition:  ConditionGood,
		RentPerDay: 50,
		Status:     status.MirrorForItem(),
	}
	require.NoError(t, db.SQL.Create(item).Error)

	rental := &Rental{
		ClothID:     item.ID,
		RenterID:    renter.ID,
		OwnerID:     owner.ID,
		StartDate:   endDate.AddDate(0, 0, -2),
		EndDate:     endDate,
		TotalAmount: 165,
		Status:      status,
	}
	require.NoError(t, db.SQL.Create(rental).Error)

	return rental
}

func TestOverdueRentalSweep(t *testing.T) {
	db := database.NewTestDB(t)
	repos := repositories.New(db)
	transaction := services.NewTransactionService(db)

	pastEnd := time.Now().UTC().AddDate(0, 0, -3)
	futureEnd := time.Now().UTC().AddDate(0, 0, 3)

	lateRented := seedRentalEndingOn(t, db, StatusRented, pastEnd)
	onTimeRented := seedRentalEndingOn(t, db, StatusRented, futureEnd)
	lateButReturned := seedRentalEndingOn(t, db, StatusReturned, pastEnd.AddDate(0, 0, -1))

	job := NewOverdueRentalJob(transaction, repos.Rental, db, services.Daily)
	require.NoError(t, job.Execute(context.Background()))

	var late Rental
	require.NoError(t, db.SQL.First(&late, "id = ?", lateRented.ID).Error)
	assert.True(t, late.Overdue)

	var onTime Rental
	require.NoError(t, db.SQL.First(&onTime, "id = ?", onTimeRented.ID).Error)
	assert.False(t, onTime.Overdue)

	var returned Rental
	require.NoError(t, db.SQL.First(&returned, "id = ?", lateButReturned.ID).Error)
	assert.False(t, returned.Overdue)
}

func TestOverdueRentalSweepIdempotent(t *testing.T) {
	db := database.NewTestDB(t)
	repos := repositories.New(db)
	transaction := services.NewTransactionService(db)

	seedRentalEndingOn(t, db, StatusRented, time.Now().UTC().AddDate(0, 0, -3))

	job := NewOverdueRentalJob(transaction, repos.Rental, db, services.Daily)
	require.NoError(t, job.Execute(context.Background()))
	require.NoError(t, job.Execute(context.Background()))

	var count int64
	require.NoError(t, db.SQL.Model(&Rental{}).Where("overdue = ?", true).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
