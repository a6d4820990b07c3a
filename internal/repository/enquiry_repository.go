package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "machinehub/internal/errors"
	"machinehub/internal/model"
)

// EnquiryRepository defines enquiry persistence operations.
// List methods preload the enquiry's machine and buyer.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *model.Enquiry) error
	UpdateStatus(ctx context.Context, id uint, status model.EnquiryStatus) error
	FindByID(ctx context.Context, id uint) (*model.Enquiry, error)
	ListByMachineIDs(ctx context.Context, machineIDs []uint) ([]model.Enquiry, error)
	ListByBuyer(ctx context.Context, buyerID uint) ([]model.Enquiry, error)
	ListByMachine(ctx context.Context, machineID uint) ([]model.Enquiry, error)
	Recent(ctx context.Context, limit int) ([]model.Enquiry, error)
	CountByMachineIDs(ctx context.Context, machineIDs []uint) (int64, error)
	CountByBuyer(ctx context.Context, buyerID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository creates a new enquiry repository.
func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *model.Enquiry) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(enquiry).Error
	return apperrors.Persistence("create enquiry", err)
}

func (r *enquiryRepository) UpdateStatus(ctx context.Context, id uint, status model.EnquiryStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Enquiry{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return apperrors.Persistence("update enquiry status", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound("enquiry", id)
	}
	return nil
}

// FindByID loads an enquiry with its machine.
func (r *enquiryRepository) FindByID(ctx context.Context, id uint) (*model.Enquiry, error) {
	var enquiry model.Enquiry
	if err := r.db.WithContext(ctx).Preload("Machine").First(&enquiry, id).Error; err != nil {
		return nil, notFoundOr(err, "enquiry", id, "find enquiry")
	}
	return &enquiry, nil
}

// ListByMachineIDs returns enquiries on any of the given machines, newest first.
func (r *enquiryRepository) ListByMachineIDs(ctx context.Context, machineIDs []uint) ([]model.Enquiry, error) {
	if len(machineIDs) == 0 {
		return []model.Enquiry{}, nil
	}
	return r.list("list enquiries by machines", r.withRelations(ctx).Where("machine_id IN ?", machineIDs))
}

func (r *enquiryRepository) ListByBuyer(ctx context.Context, buyerID uint) ([]model.Enquiry, error) {
	return r.list("list buyer enquiries", r.withRelations(ctx).Where("buyer_id = ?", buyerID))
}

func (r *enquiryRepository) ListByMachine(ctx context.Context, machineID uint) ([]model.Enquiry, error) {
	return r.list("list machine enquiries", r.withRelations(ctx).Where("machine_id = ?", machineID))
}

func (r *enquiryRepository) Recent(ctx context.Context, limit int) ([]model.Enquiry, error) {
	return r.list("recent enquiries", r.withRelations(ctx).Limit(limit))
}

func (r *enquiryRepository) CountByMachineIDs(ctx context.Context, machineIDs []uint) (int64, error) {
	if len(machineIDs) == 0 {
		return 0, nil
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Enquiry{}).Where("machine_id IN ?", machineIDs).Count(&n).Error
	if err != nil {
		return 0, apperrors.Persistence("count enquiries by machines", err)
	}
	return n, nil
}

func (r *enquiryRepository) CountByBuyer(ctx context.Context, buyerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Enquiry{}).Where("buyer_id = ?", buyerID).Count(&n).Error
	if err != nil {
		return 0, apperrors.Persistence("count buyer enquiries", err)
	}
	return n, nil
}

func (r *enquiryRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Enquiry{}).Count(&n).Error; err != nil {
		return 0, apperrors.Persistence("count enquiries", err)
	}
	return n, nil
}

func (r *enquiryRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Machine").Preload("Buyer")
}

func (r *enquiryRepository) list(op string, q *gorm.DB) ([]model.Enquiry, error) {
	enquiries := []model.Enquiry{}
	if err := q.Order(newestFirst).Find(&enquiries).Error; err != nil {
		return nil, apperrors.Persistence(op, err)
	}
	return enquiries, nil
}
