package service

import (
	"context"

	"go.uber.org/zap"

	apperrors "machinehub/internal/errors"
	"machinehub/internal/model"
	"machinehub/internal/notify"
	"machinehub/internal/repository"
)

// EnquiryInput is a buyer's enquiry form.
type EnquiryInput struct {
	Message        string `json:"message" validate:"required"`
	Budget         string `json:"budget" validate:"required,max=100"`
	Location       string `json:"location" validate:"required,max=200"`
	ProductionNeed string `json:"production_need" validate:"required,max=200"`
	Timeline       string `json:"timeline" validate:"max=100"`
}

// EnquiryService handles buyer enquiries.
type EnquiryService interface {
	Create(ctx context.Context, buyerID, machineID uint, in EnquiryInput) (*model.Enquiry, error)
	ListForSupplier(ctx context.Context, supplierID uint) ([]model.Enquiry, error)
	ListForBuyer(ctx context.Context, buyerID uint) ([]model.Enquiry, error)
	TransitionStatus(ctx context.Context, supplierID, enquiryID uint, to model.EnquiryStatus) (*model.Enquiry, error)
}

type enquiryService struct {
	repos     repository.Repositories
	tx        repository.TxManager
	notifier  notify.EnquiryNotifier
	validator *InputValidator
	log       *zap.Logger
}

// NewEnquiryService creates a new enquiry service.
func NewEnquiryService(repos repository.Repositories, tx repository.TxManager, notifier notify.EnquiryNotifier, log *zap.Logger) EnquiryService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &enquiryService{
		repos:     repos,
		tx:        tx,
		notifier:  notifier,
		validator: NewInputValidator(),
		log:       log,
	}
}

// Create records an enquiry from buyer on machine. A missing machine fails
// before anything is written; the supplier is notified after commit.
func (s *enquiryService) Create(ctx context.Context, buyerID, machineID uint, in EnquiryInput) (*model.Enquiry, error) {
	trimAll(&in.Message, &in.Budget, &in.Location, &in.ProductionNeed, &in.Timeline)
	if in.Timeline == "" {
		in.Timeline = model.DefaultTimeline
	}

	var (
		enquiry *model.Enquiry
		buyer   *model.User
		machine *model.Machine
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		buyer, err = repos.Users.FindByID(ctx, buyerID)
		if err != nil {
			return err
		}
		if buyer.Role != model.RoleBuyer {
			return apperrors.ErrForbidden
		}

		machine, err = repos.Machines.FindByID(ctx, machineID)
		if err != nil {
			return err
		}

		if err := s.validator.Validate(in); err != nil {
			return err
		}

		enquiry = &model.Enquiry{
			BuyerID:        buyer.ID,
			MachineID:      machine.ID,
			Message:        in.Message,
			Budget:         in.Budget,
			Location:       in.Location,
			ProductionNeed: in.ProductionNeed,
			Timeline:       in.Timeline,
			Status:         model.EnquiryPending,
		}
		return repos.Enquiries.Create(ctx, enquiry)
	})
	if err != nil {
		return nil, err
	}

	if machine.Supplier != nil {
		if err := s.notifier.EnquiryCreated(ctx, machine.Supplier, buyer, machine, enquiry); err != nil {
			s.log.Warn("notify supplier of enquiry",
				zap.Uint("enquiry_id", enquiry.ID),
				zap.Uint("supplier_id", machine.SupplierID),
				zap.Error(err),
			)
		}
	}
	return enquiry, nil
}

// ListForSupplier returns every enquiry on the supplier's machines, newest first.
func (s *enquiryService) ListForSupplier(ctx context.Context, supplierID uint) ([]model.Enquiry, error) {
	ids, err := s.repos.Machines.IDsBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return s.repos.Enquiries.ListByMachineIDs(ctx, ids)
}

func (s *enquiryService) ListForBuyer(ctx context.Context, buyerID uint) ([]model.Enquiry, error) {
	return s.repos.Enquiries.ListByBuyer(ctx, buyerID)
}

// TransitionStatus moves an enquiry on one of the supplier's machines to a new status.
func (s *enquiryService) TransitionStatus(ctx context.Context, supplierID, enquiryID uint, to model.EnquiryStatus) (*model.Enquiry, error) {
	if !to.Valid() {
		return nil, apperrors.NewValidationError("status", "must be one of: pending responded closed")
	}

	var enquiry *model.Enquiry
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		var err error
		enquiry, err = repos.Enquiries.FindByID(ctx, enquiryID)
		if err != nil {
			return err
		}
		if enquiry.Machine == nil || enquiry.Machine.SupplierID != supplierID {
			return apperrors.ErrForbidden
		}
		if !enquiry.Status.CanTransitionTo(to) {
			return apperrors.NewValidationError("status", "cannot move from "+string(enquiry.Status)+" to "+string(to))
		}
		if err := repos.Enquiries.UpdateStatus(ctx, enquiry.ID, to); err != nil {
			return err
		}
		enquiry.Status = to
		return nil
	})
	if err != nil {
		return nil, err
	}
	return enquiry, nil
}
