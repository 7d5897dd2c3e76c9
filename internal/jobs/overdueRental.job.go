package jobs

import (
	"context"
	"time"

	"rewear/internal/database"
	"rewear/internal/repositories"
	"rewear/internal/services"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OverdueRentalJob flags rented rentals whose end date has passed so
// admins can chase late returns.
type OverdueRentalJob struct {
	transaction *services.TransactionService
	rentalRepo  repositories.RentalRepository
	db          database.DB
	log         logger.Logger
	schedule    services.Schedule
}

func NewOverdueRentalJob(
	transaction *services.TransactionService,
	rentalRepo repositories.RentalRepository,
	db database.DB,
	schedule services.Schedule,
) *OverdueRentalJob {
	return &OverdueRentalJob{
		transaction: transaction,
		rentalRepo:  rentalRepo,
		db:          db,
		log:         logger.New("overdueRentalJob"),
		schedule:    schedule,
	}
}

func (j *OverdueRentalJob) Name() string {
	return "OverdueRentalSweep"
}

func (j *OverdueRentalJob) Schedule() services.Schedule {
	return j.schedule
}

func (j *OverdueRentalJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	var flagged int64
	err := j.transaction.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		rentals, err := j.rentalRepo.ListOverdue(ctx, tx, time.Now())
		if err != nil {
			return err
		}

		if len(rentals) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, 0, len(rentals))
		for _, rental := range rentals {
			ids = append(ids, rental.ID)
		}

		flagged, err = j.rentalRepo.MarkOverdue(ctx, tx, ids)
		return err
	})
	if err != nil {
		return log.Err("overdue sweep failed", err)
	}

	if flagged > 0 {
		log.Info("Flagged overdue rentals", "count", flagged)
	}

	return nil
}
