package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"machinehub/internal/auth"
	"machinehub/internal/model"
	"machinehub/internal/repository"
	"machinehub/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in service.RegisterInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*model.User, *auth.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.User), args.Get(1).(*auth.Session), args.Error(2)
}

func (m *MockAuthService) StartSession(user *model.User) (*auth.Session, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) CurrentSession(ctx context.Context, token string) (*auth.SessionClaims, bool) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*auth.SessionClaims), args.Bool(1)
}

func (m *MockAuthService) LoadActor(ctx context.Context, claims *auth.SessionClaims) (*auth.Actor, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Actor), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockMachineService is a mock implementation of service.MachineService.
type MockMachineService struct {
	mock.Mock
}

func (m *MockMachineService) Create(ctx context.Context, supplierID uint, in service.MachineInput) (*model.Machine, error) {
	args := m.Called(ctx, supplierID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Machine), args.Error(1)
}

func (m *MockMachineService) Update(ctx context.Context, supplierID, machineID uint, in service.MachineInput) (*model.Machine, error) {
	args := m.Called(ctx, supplierID, machineID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Machine), args.Error(1)
}

func (m *MockMachineService) List(ctx context.Context, filter repository.MachineFilter) (*service.MachineListing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MachineListing), args.Error(1)
}

func (m *MockMachineService) Featured(ctx context.Context) ([]model.Machine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Machine), args.Error(1)
}

func (m *MockMachineService) Get(ctx context.Context, id uint, viewer *model.User) (*service.MachineDetail, error) {
	args := m.Called(ctx, id, viewer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MachineDetail), args.Error(1)
}

func (m *MockMachineService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockEnquiryService is a mock implementation of service.EnquiryService.
type MockEnquiryService struct {
	mock.Mock
}

func (m *MockEnquiryService) Create(ctx context.Context, buyerID, machineID uint, in service.EnquiryInput) (*model.Enquiry, error) {
	args := m.Called(ctx, buyerID, machineID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) ListForSupplier(ctx context.Context, supplierID uint) ([]model.Enquiry, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) ListForBuyer(ctx context.Context, buyerID uint) ([]model.Enquiry, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryService) TransitionStatus(ctx context.Context, supplierID, enquiryID uint, to model.EnquiryStatus) (*model.Enquiry, error) {
	args := m.Called(ctx, supplierID, enquiryID, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

// MockProfileService is a mock implementation of service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, userID uint) (*service.ProfileView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, userID uint, upd service.ProfileUpdate, image *service.ImageUpload) (*model.User, error) {
	args := m.Called(ctx, userID, upd, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockDashboardService is a mock implementation of service.DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) ForUser(ctx context.Context, user *model.User) (*service.Dashboard, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *MockDashboardService) Stats(ctx context.Context) (*service.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Stats), args.Error(1)
}
