package service

import (
	"context"

	"machinehub/internal/model"
	"machinehub/internal/repository"
)

const recentEnquiriesLimit = 10

// Stats is the admin overview.
type Stats struct {
	TotalUsers      int64           `json:"total_users"`
	TotalMachines   int64           `json:"total_machines"`
	TotalEnquiries  int64           `json:"total_enquiries"`
	RecentEnquiries []model.Enquiry `json:"recent_enquiries"`
}

// Dashboard is the role-specific landing view.
type Dashboard struct {
	Role      model.Role      `json:"role"`
	Machines  []model.Machine `json:"machines,omitempty"`
	Enquiries []model.Enquiry `json:"enquiries,omitempty"`
	Stats     *Stats          `json:"stats,omitempty"`
}

// DashboardService builds per-role dashboards.
type DashboardService interface {
	ForUser(ctx context.Context, user *model.User) (*Dashboard, error)
	Stats(ctx context.Context) (*Stats, error)
}

type dashboardService struct {
	repos     repository.Repositories
	enquiries EnquiryService
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repos repository.Repositories, enquiries EnquiryService) DashboardService {
	return &dashboardService{repos: repos, enquiries: enquiries}
}

func (s *dashboardService) ForUser(ctx context.Context, user *model.User) (*Dashboard, error) {
	d := &Dashboard{Role: user.Role}

	switch user.Role {
	case model.RoleSupplier:
		machines, err := s.repos.Machines.ListBySupplier(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		enquiries, err := s.enquiries.ListForSupplier(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		d.Machines, d.Enquiries = machines, enquiries
	case model.RoleBuyer:
		enquiries, err := s.enquiries.ListForBuyer(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		d.Enquiries = enquiries
	case model.RoleAdmin:
		stats, err := s.Stats(ctx)
		if err != nil {
			return nil, err
		}
		d.Stats = stats
	}
	return d, nil
}

// Stats counts users, machines and enquiries and lists the ten newest enquiries.
func (s *dashboardService) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.repos.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	machines, err := s.repos.Machines.Count(ctx)
	if err != nil {
		return nil, err
	}
	enquiries, err := s.repos.Enquiries.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repos.Enquiries.Recent(ctx, recentEnquiriesLimit)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalUsers:      users,
		TotalMachines:   machines,
		TotalEnquiries:  enquiries,
		RecentEnquiries: recent,
	}, nil
}
