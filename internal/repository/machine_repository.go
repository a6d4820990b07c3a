package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "machinehub/internal/errors"
	"machinehub/internal/model"
)

const newestFirst = "created_at DESC, id DESC"

// MachineFilter narrows a machine listing. Empty fields do not filter.
type MachineFilter struct {
	Category string
	Search   string
}

// MachineRepository defines machine persistence operations.
type MachineRepository interface {
	Create(ctx context.Context, machine *model.Machine) error
	Update(ctx context.Context, machine *model.Machine) error
	FindByID(ctx context.Context, id uint) (*model.Machine, error)
	List(ctx context.Context, filter MachineFilter) ([]model.Machine, error)
	Recent(ctx context.Context, limit int) ([]model.Machine, error)
	ListBySupplier(ctx context.Context, supplierID uint) ([]model.Machine, error)
	IDsBySupplier(ctx context.Context, supplierID uint) ([]uint, error)
	CountBySupplier(ctx context.Context, supplierID uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	Categories(ctx context.Context) ([]string, error)
}

type machineRepository struct {
	db *gorm.DB
}

// NewMachineRepository creates a new machine repository.
func NewMachineRepository(db *gorm.DB) MachineRepository {
	return &machineRepository{db: db}
}

func (r *machineRepository) Create(ctx context.Context, machine *model.Machine) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(machine).Error
	return apperrors.Persistence("create machine", err)
}

func (r *machineRepository) Update(ctx context.Context, machine *model.Machine) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(machine).Error
	return apperrors.Persistence("update machine", err)
}

// FindByID loads a machine together with its supplier.
func (r *machineRepository) FindByID(ctx context.Context, id uint) (*model.Machine, error) {
	var machine model.Machine
	if err := r.db.WithContext(ctx).Preload("Supplier").First(&machine, id).Error; err != nil {
		return nil, notFoundOr(err, "machine", id, "find machine")
	}
	return &machine, nil
}

// List returns machines newest first. Category matches exactly; search is a
// case-insensitive substring match on name or description.
func (r *machineRepository) List(ctx context.Context, filter MachineFilter) ([]model.Machine, error) {
	q := r.db.WithContext(ctx).Model(&model.Machine{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		q = q.Where("(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!')", pattern, pattern)
	}

	var machines []model.Machine
	if err := q.Order(newestFirst).Find(&machines).Error; err != nil {
		return nil, apperrors.Persistence("list machines", err)
	}
	return machines, nil
}

func (r *machineRepository) Recent(ctx context.Context, limit int) ([]model.Machine, error) {
	var machines []model.Machine
	if err := r.db.WithContext(ctx).Order(newestFirst).Limit(limit).Find(&machines).Error; err != nil {
		return nil, apperrors.Persistence("recent machines", err)
	}
	return machines, nil
}

func (r *machineRepository) ListBySupplier(ctx context.Context, supplierID uint) ([]model.Machine, error) {
	var machines []model.Machine
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order(newestFirst).
		Find(&machines).Error
	if err != nil {
		return nil, apperrors.Persistence("list supplier machines", err)
	}
	return machines, nil
}

// IDsBySupplier returns the ids of every machine owned by the supplier.
func (r *machineRepository) IDsBySupplier(ctx context.Context, supplierID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Machine{}).
		Where("supplier_id = ?", supplierID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, apperrors.Persistence("supplier machine ids", err)
	}
	return ids, nil
}

func (r *machineRepository) CountBySupplier(ctx context.Context, supplierID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Machine{}).Where("supplier_id = ?", supplierID).Count(&n).Error
	if err != nil {
		return 0, apperrors.Persistence("count supplier machines", err)
	}
	return n, nil
}

func (r *machineRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Machine{}).Count(&n).Error; err != nil {
		return 0, apperrors.Persistence("count machines", err)
	}
	return n, nil
}

// Categories returns the distinct non-empty categories in alphabetical order.
func (r *machineRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Machine{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperrors.Persistence("list categories", err)
	}
	return categories, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
