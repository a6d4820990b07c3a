package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"machinehub/internal/model"
	"machinehub/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMachineRepository is a mock implementation of MachineRepository.
type MockMachineRepository struct {
	mock.Mock
}

func (m *MockMachineRepository) Create(ctx context.Context, machine *model.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MockMachineRepository) Update(ctx context.Context, machine *model.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MockMachineRepository) FindByID(ctx context.Context, id uint) (*model.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Machine), args.Error(1)
}

func (m *MockMachineRepository) List(ctx context.Context, filter repository.MachineFilter) ([]model.Machine, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Machine), args.Error(1)
}

func (m *MockMachineRepository) Recent(ctx context.Context, limit int) ([]model.Machine, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Machine), args.Error(1)
}

func (m *MockMachineRepository) ListBySupplier(ctx context.Context, supplierID uint) ([]model.Machine, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Machine), args.Error(1)
}

func (m *MockMachineRepository) IDsBySupplier(ctx context.Context, supplierID uint) ([]uint, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockMachineRepository) CountBySupplier(ctx context.Context, supplierID uint) (int64, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMachineRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMachineRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockEnquiryRepository is a mock implementation of EnquiryRepository.
type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) Create(ctx context.Context, enquiry *model.Enquiry) error {
	args := m.Called(ctx, enquiry)
	return args.Error(0)
}

func (m *MockEnquiryRepository) UpdateStatus(ctx context.Context, id uint, status model.EnquiryStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockEnquiryRepository) FindByID(ctx context.Context, id uint) (*model.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) ListByMachineIDs(ctx context.Context, machineIDs []uint) ([]model.Enquiry, error) {
	args := m.Called(ctx, machineIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) ListByBuyer(ctx context.Context, buyerID uint) ([]model.Enquiry, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) ListByMachine(ctx context.Context, machineID uint) ([]model.Enquiry, error) {
	args := m.Called(ctx, machineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Recent(ctx context.Context, limit int) ([]model.Enquiry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) CountByMachineIDs(ctx context.Context, machineIDs []uint) (int64, error) {
	args := m.Called(ctx, machineIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnquiryRepository) CountByBuyer(ctx context.Context, buyerID uint) (int64, error) {
	args := m.Called(ctx, buyerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnquiryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTxManager runs the unit of work directly against the mock repositories.
type MockTxManager struct {
	mock.Mock
	repos repository.Repositories
}

func (m *MockTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	m.Called(ctx)
	return fn(ctx, m.repos)
}

// MockSessionStore is a mock implementation of auth.SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	args := m.Called(ctx, sessionID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	args := m.Called(ctx, sessionID)
	return args.Bool(0), args.Error(1)
}

// MockNotifier is a mock implementation of notify.EnquiryNotifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) EnquiryCreated(ctx context.Context, supplier *model.User, buyer *model.User, machine *model.Machine, enquiry *model.Enquiry) error {
	args := m.Called(ctx, supplier, buyer, machine, enquiry)
	return args.Error(0)
}

// MockImageStore is a mock implementation of storage.ImageStore.
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, key string, r io.Reader) (string, error) {
	args := m.Called(ctx, key, r)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type mockSet struct {
	users     *MockUserRepository
	machines  *MockMachineRepository
	enquiries *MockEnquiryRepository
	tx        *MockTxManager
}

func newMockSet() *mockSet {
	s := &mockSet{
		users:     new(MockUserRepository),
		machines:  new(MockMachineRepository),
		enquiries: new(MockEnquiryRepository),
	}
	s.tx = &MockTxManager{repos: s.repos()}
	return s
}

func (s *mockSet) repos() repository.Repositories {
	return repository.Repositories{Users: s.users, Machines: s.machines, Enquiries: s.enquiries}
}
