package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"machinehub/internal/cache"
	apperrors "machinehub/internal/errors"
	"machinehub/internal/model"
	"machinehub/internal/repository"
)

const (
	categoriesCacheKey = "machines:categories"
	categoriesCacheTTL = 5 * time.Minute
	featuredLimit      = 6
)

// MachineInput carries the editable fields of a machine listing.
type MachineInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category" validate:"required,max=100"`
	UseCase     string `json:"use_case" validate:"required"`
	PriceRange  string `json:"price_range" validate:"required,max=100"`
	Description string `json:"description" validate:"required"`

	ImageFront   string `json:"image_front" validate:"max=500"`
	ImageSide    string `json:"image_side" validate:"max=500"`
	ImageWorking string `json:"image_working" validate:"max=500"`
	ImageCloseup string `json:"image_closeup" validate:"max=500"`

	ProductionCapacity  string `json:"production_capacity" validate:"max=200"`
	AutomationLevel     string `json:"automation_level" validate:"max=50"`
	PowerRequirement    string `json:"power_requirement" validate:"max=100"`
	MachineDimensions   string `json:"machine_dimensions" validate:"max=200"`
	RawMaterial         string `json:"raw_material" validate:"max=200"`
	OperatorSkill       string `json:"operator_skill" validate:"max=50"`
	WarrantyInfo        string `json:"warranty_info" validate:"max=200"`
	IdealIndustry       string `json:"ideal_industry" validate:"max=200"`
	BusinessSizeFit     string `json:"business_size_fit" validate:"max=100"`
	InstallationSupport bool   `json:"installation_support"`
}

func (in *MachineInput) normalize() {
	trimAll(
		&in.Name, &in.Category, &in.UseCase, &in.PriceRange, &in.Description,
		&in.ImageFront, &in.ImageSide, &in.ImageWorking, &in.ImageCloseup,
		&in.ProductionCapacity, &in.AutomationLevel, &in.PowerRequirement, &in.MachineDimensions,
		&in.RawMaterial, &in.OperatorSkill, &in.WarrantyInfo, &in.IdealIndustry, &in.BusinessSizeFit,
	)
}

func (in *MachineInput) apply(m *model.Machine) {
	m.Name = in.Name
	m.Category = in.Category
	m.UseCase = in.UseCase
	m.PriceRange = in.PriceRange
	m.Description = in.Description
	m.ImageFront = in.ImageFront
	m.ImageSide = in.ImageSide
	m.ImageWorking = in.ImageWorking
	m.ImageCloseup = in.ImageCloseup
	m.ProductionCapacity = in.ProductionCapacity
	m.AutomationLevel = in.AutomationLevel
	m.PowerRequirement = in.PowerRequirement
	m.MachineDimensions = in.MachineDimensions
	m.RawMaterial = in.RawMaterial
	m.OperatorSkill = in.OperatorSkill
	m.WarrantyInfo = in.WarrantyInfo
	m.IdealIndustry = in.IdealIndustry
	m.BusinessSizeFit = in.BusinessSizeFit
	m.InstallationSupport = in.InstallationSupport
}

// MachineListing is a filtered machine list plus the category facet.
type MachineListing struct {
	Machines         []model.Machine `json:"machines"`
	Categories       []string        `json:"categories"`
	SelectedCategory string          `json:"selected_category,omitempty"`
	Search           string          `json:"search,omitempty"`
}

// MachineDetail is a machine with its supplier and enquiry activity. Enquiries
// are only filled in for the owning supplier; everyone else sees the count.
type MachineDetail struct {
	Machine              *model.Machine       `json:"machine"`
	Images               []model.MachineImage `json:"images"`
	Supplier             *model.User          `json:"supplier"`
	SupplierMachineCount int64                `json:"supplier_machine_count"`
	EnquiryCount         int                  `json:"enquiry_count"`
	Enquiries            []model.Enquiry      `json:"enquiries,omitempty"`
}

// MachineService handles machine listings.
type MachineService interface {
	Create(ctx context.Context, supplierID uint, in MachineInput) (*model.Machine, error)
	Update(ctx context.Context, supplierID, machineID uint, in MachineInput) (*model.Machine, error)
	List(ctx context.Context, filter repository.MachineFilter) (*MachineListing, error)
	Featured(ctx context.Context) ([]model.Machine, error)
	Get(ctx context.Context, id uint, viewer *model.User) (*MachineDetail, error)
	Categories(ctx context.Context) ([]string, error)
}

type machineService struct {
	repos     repository.Repositories
	tx        repository.TxManager
	cache     *cache.Client
	validator *InputValidator
	log       *zap.Logger
}

// NewMachineService creates a new machine service.
func NewMachineService(repos repository.Repositories, tx repository.TxManager, cache *cache.Client, log *zap.Logger) MachineService {
	if log == nil {
		log = zap.NewNop()
	}
	return &machineService{
		repos:     repos,
		tx:        tx,
		cache:     cache,
		validator: NewInputValidator(),
		log:       log,
	}
}

func (s *machineService) validate(in *MachineInput) error {
	in.normalize()
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	if in.ImageFront == "" && in.ImageSide == "" && in.ImageWorking == "" && in.ImageCloseup == "" {
		return &apperrors.ValidationError{
			Fields:  map[string]string{"images": "at least one image is required"},
			Message: "At least one machine image is required",
		}
	}
	return nil
}

// Create lists a new machine for the supplier. The supplier's role is checked
// inside the same transaction as the insert.
func (s *machineService) Create(ctx context.Context, supplierID uint, in MachineInput) (*model.Machine, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	machine := &model.Machine{SupplierID: supplierID, Status: model.MachineActive}
	in.apply(machine)

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		supplier, err := repos.Users.FindByID(ctx, supplierID)
		if err != nil {
			return err
		}
		if supplier.Role != model.RoleSupplier {
			return apperrors.ErrForbidden
		}
		return repos.Machines.Create(ctx, machine)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx)
	return machine, nil
}

// Update replaces the editable fields of a machine owned by the supplier.
func (s *machineService) Update(ctx context.Context, supplierID, machineID uint, in MachineInput) (*model.Machine, error) {
	if err := s.validate(&in); err != nil {
		return nil, err
	}

	var machine *model.Machine
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		machine, err = repos.Machines.FindByID(ctx, machineID)
		if err != nil {
			return err
		}
		if machine.SupplierID != supplierID {
			return apperrors.ErrForbidden
		}
		if !machine.Status.CanTransitionTo(model.MachineActive) {
			return apperrors.NewValidationError("status", "retired machines cannot be edited")
		}
		in.apply(machine)
		machine.Supplier = nil
		return repos.Machines.Update(ctx, machine)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCategories(ctx)
	return machine, nil
}

func (s *machineService) List(ctx context.Context, filter repository.MachineFilter) (*MachineListing, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)

	machines, err := s.repos.Machines.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return &MachineListing{
		Machines:         machines,
		Categories:       categories,
		SelectedCategory: filter.Category,
		Search:           filter.Search,
	}, nil
}

func (s *machineService) Featured(ctx context.Context) ([]model.Machine, error) {
	return s.repos.Machines.Recent(ctx, featuredLimit)
}

// Get loads a machine for viewer, who is nil for anonymous callers.
func (s *machineService) Get(ctx context.Context, id uint, viewer *model.User) (*MachineDetail, error) {
	machine, err := s.repos.Machines.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.repos.Machines.CountBySupplier(ctx, machine.SupplierID)
	if err != nil {
		return nil, err
	}
	enquiries, err := s.repos.Enquiries.ListByMachine(ctx, machine.ID)
	if err != nil {
		return nil, err
	}
	detail := &MachineDetail{
		Machine:              machine,
		Images:               machine.AllImages(),
		Supplier:             machine.Supplier,
		SupplierMachineCount: count,
		EnquiryCount:         len(enquiries),
	}
	if viewer != nil && viewer.ID == machine.SupplierID {
		detail.Enquiries = enquiries
	}
	return detail, nil
}

// Categories returns the category facet, served from Redis when warm.
func (s *machineService) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if s.cache.GetJSON(ctx, categoriesCacheKey, &categories) {
		return categories, nil
	}

	categories, err := s.repos.Machines.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	_ = s.cache.SetJSON(ctx, categoriesCacheKey, categories, categoriesCacheTTL)
	return categories, nil
}

func (s *machineService) invalidateCategories(ctx context.Context) {
	if err := s.cache.Delete(ctx, categoriesCacheKey); err != nil {
		s.log.Warn("invalidate category cache", zap.Error(err))
	}
}
