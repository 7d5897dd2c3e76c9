package services

import (
	"rewear/config"
	"rewear/internal/database"
)

type Service struct {
	Transaction *TransactionService
	Session     *SessionService
	Scheduler   *SchedulerService
	Storage     *StorageService
}

func New(db database.DB, config config.Config) (Service, error) {
	transactionService := NewTransactionService(db)
	sessionService := NewSessionService(db, config)
	schedulerService := NewSchedulerService()

	storageService, err := NewStorageService(config)
	if err != nil {
		return Service{}, err
	}

	return Service{
		Transaction: transactionService,
		Session:     sessionService,
		Scheduler:   schedulerService,
		Storage:     storageService,
	}, nil
}
