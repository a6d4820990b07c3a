package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "machinehub/internal/errors"
)

// Repositories groups the repositories bound to one connection or transaction.
type Repositories struct {
	Users     UserRepository
	Machines  MachineRepository
	Enquiries EnquiryRepository
}

// NewRepositories builds every repository on db.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:     NewUserRepository(db),
		Machines:  NewMachineRepository(db),
		Enquiries: NewEnquiryRepository(db),
	}
}

// TxManager runs a unit of work atomically.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager on db.
func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

// WithTransaction executes fn within a database transaction. Any error from fn
// rolls the whole unit back and is returned unchanged.
func (m *txManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(ctx, NewRepositories(tx))
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	return apperrors.Persistence("commit transaction", err)
}
