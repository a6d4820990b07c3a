package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machinehub/internal/db/dbtest"
	apperrors "machinehub/internal/errors"
	"machinehub/internal/model"
)

type fixture struct {
	repos    Repositories
	tx       TxManager
	supplier *model.User
	other    *model.User
	buyer    *model.User
}

var base = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gormDB := dbtest.New(t)
	f := &fixture{repos: NewRepositories(gormDB), tx: NewTxManager(gormDB)}

	f.supplier = f.user(t, "Sam Supplier", "sam@example.com", model.RoleSupplier)
	f.other = f.user(t, "Olga Other", "olga@example.com", model.RoleSupplier)
	f.buyer = f.user(t, "Bea Buyer", "bea@example.com", model.RoleBuyer)
	return f
}

func (f *fixture) user(t *testing.T, name, email string, role model.Role) *model.User {
	t.Helper()
	u := &model.User{Name: name, Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, f.repos.Users.Create(context.Background(), u))
	return u
}

func (f *fixture) machine(t *testing.T, supplier *model.User, name, category, description string, age int) *model.Machine {
	t.Helper()
	m := &model.Machine{
		SupplierID:  supplier.ID,
		Name:        name,
		Category:    category,
		UseCase:     "general",
		PriceRange:  "₹1,00,000 - ₹2,00,000",
		Description: description,
		ImageFront:  "https://img/" + name,
		Status:      model.MachineActive,
		CreatedAt:   base.Add(time.Duration(age) * time.Hour),
	}
	require.NoError(t, f.repos.Machines.Create(context.Background(), m))
	return m
}

func (f *fixture) enquiry(t *testing.T, machine *model.Machine, age int) *model.Enquiry {
	t.Helper()
	e := &model.Enquiry{
		BuyerID:        f.buyer.ID,
		MachineID:      machine.ID,
		Message:        "interested",
		Budget:         "₹5,00,000",
		Location:       "Pune",
		ProductionNeed: "500 units/day",
		Timeline:       model.DefaultTimeline,
		Status:         model.EnquiryPending,
		CreatedAt:      base.Add(time.Duration(age) * time.Hour),
	}
	require.NoError(t, f.repos.Enquiries.Create(context.Background(), e))
	return e
}

func names(machines []model.Machine) []string {
	out := make([]string, 0, len(machines))
	for _, m := range machines {
		out = append(out, m.Name)
	}
	return out
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("duplicate email is rejected by the store", func(t *testing.T) {
		err := f.repos.Users.Create(ctx, &model.User{Name: "Dup", Email: "sam@example.com", PasswordHash: "x", Role: model.RoleBuyer})
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
	})

	t.Run("find by email", func(t *testing.T) {
		u, err := f.repos.Users.FindByEmail(ctx, "bea@example.com")
		require.NoError(t, err)
		assert.Equal(t, f.buyer.ID, u.ID)
		assert.Equal(t, model.RoleBuyer, u.Role)
	})

	t.Run("missing user is NotFound", func(t *testing.T) {
		_, err := f.repos.Users.FindByID(ctx, 999)
		var nf *apperrors.NotFoundError
		assert.True(t, errors.As(err, &nf))

		_, err = f.repos.Users.FindByEmail(ctx, "nobody@example.com")
		assert.True(t, errors.As(err, &nf))
	})

	t.Run("count", func(t *testing.T) {
		n, err := f.repos.Users.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestMachineRepositoryList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.machine(t, f.supplier, "CNC Lathe", "CNC", "Precision turning", 1)
	f.machine(t, f.supplier, "Hydraulic Press", "Press", "Heavy duty cnc-ready frame", 2)
	f.machine(t, f.other, "Packing Unit", "Packaging", "Seals 100% of pouches", 3)
	f.machine(t, f.other, "Mill_2000", "CNC", "Vertical milling", 4)

	tests := []struct {
		name   string
		filter MachineFilter
		want   []string
	}{
		{"no filter newest first", MachineFilter{}, []string{"Mill_2000", "Packing Unit", "Hydraulic Press", "CNC Lathe"}},
		{"category exact", MachineFilter{Category: "CNC"}, []string{"Mill_2000", "CNC Lathe"}},
		{"category is not a prefix match", MachineFilter{Category: "CN"}, []string{}},
		{"search name or description, case-insensitive", MachineFilter{Search: "cnc"}, []string{"Hydraulic Press", "CNC Lathe"}},
		{"search and category both apply", MachineFilter{Category: "Press", Search: "CNC"}, []string{"Hydraulic Press"}},
		{"percent is literal", MachineFilter{Search: "100%"}, []string{"Packing Unit"}},
		{"underscore is literal", MachineFilter{Search: "l_2"}, []string{"Mill_2000"}},
		{"underscore does not act as wildcard", MachineFilter{Search: "e_l"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.repos.Machines.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestMachineRepositoryQueries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	lathe := f.machine(t, f.supplier, "CNC Lathe", "CNC", "turning", 1)
	press := f.machine(t, f.supplier, "Press", "Press", "pressing", 2)
	f.machine(t, f.other, "Mixer", "Food", "mixing", 3)

	t.Run("categories are distinct and sorted", func(t *testing.T) {
		cats, err := f.repos.Machines.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"CNC", "Food", "Press"}, cats)
	})

	t.Run("supplier scoped", func(t *testing.T) {
		ids, err := f.repos.Machines.IDsBySupplier(ctx, f.supplier.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{lathe.ID, press.ID}, ids)

		n, err := f.repos.Machines.CountBySupplier(ctx, f.supplier.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		list, err := f.repos.Machines.ListBySupplier(ctx, f.supplier.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Press", "CNC Lathe"}, names(list))
	})

	t.Run("recent honours limit", func(t *testing.T) {
		recent, err := f.repos.Machines.Recent(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"Mixer", "Press"}, names(recent))
	})

	t.Run("find preloads supplier", func(t *testing.T) {
		m, err := f.repos.Machines.FindByID(ctx, lathe.ID)
		require.NoError(t, err)
		require.NotNil(t, m.Supplier)
		assert.Equal(t, "Sam Supplier", m.Supplier.Name)
	})

	t.Run("missing machine is NotFound", func(t *testing.T) {
		_, err := f.repos.Machines.FindByID(ctx, 4242)
		var nf *apperrors.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, uint(4242), nf.ID)
	})
}

func TestEnquiryRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	mine1 := f.machine(t, f.supplier, "A", "CNC", "a", 1)
	mine2 := f.machine(t, f.supplier, "B", "CNC", "b", 2)
	theirs := f.machine(t, f.other, "C", "CNC", "c", 3)

	e1 := f.enquiry(t, mine1, 10)
	e2 := f.enquiry(t, mine2, 11)
	f.enquiry(t, theirs, 12)

	t.Run("supplier sees only enquiries on own machines", func(t *testing.T) {
		ids, err := f.repos.Machines.IDsBySupplier(ctx, f.supplier.ID)
		require.NoError(t, err)

		got, err := f.repos.Enquiries.ListByMachineIDs(ctx, ids)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, e2.ID, got[0].ID)
		assert.Equal(t, e1.ID, got[1].ID)
		require.NotNil(t, got[0].Machine)
		require.NotNil(t, got[0].Buyer)
		assert.Equal(t, "B", got[0].Machine.Name)
		assert.Equal(t, "Bea Buyer", got[0].Buyer.Name)

		n, err := f.repos.Enquiries.CountByMachineIDs(ctx, ids)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("empty machine set yields empty list", func(t *testing.T) {
		got, err := f.repos.Enquiries.ListByMachineIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("buyer and recent", func(t *testing.T) {
		got, err := f.repos.Enquiries.ListByBuyer(ctx, f.buyer.ID)
		require.NoError(t, err)
		assert.Len(t, got, 3)

		recent, err := f.repos.Enquiries.Recent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, theirs.ID, recent[0].MachineID)
	})

	t.Run("status update", func(t *testing.T) {
		require.NoError(t, f.repos.Enquiries.UpdateStatus(ctx, e1.ID, model.EnquiryResponded))
		got, err := f.repos.Enquiries.FindByID(ctx, e1.ID)
		require.NoError(t, err)
		assert.Equal(t, model.EnquiryResponded, got.Status)

		var nf *apperrors.NotFoundError
		assert.True(t, errors.As(f.repos.Enquiries.UpdateStatus(ctx, 999, model.EnquiryClosed), &nf))
	})
}

func TestTxManagerRollsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	boom := errors.New("boom")

	err := f.tx.WithTransaction(ctx, func(ctx context.Context, repos Repositories) error {
		m := &model.Machine{
			SupplierID: f.supplier.ID, Name: "Ghost", Category: "X", UseCase: "x",
			PriceRange: "x", Description: "x", ImageFront: "x", Status: model.MachineActive,
		}
		if err := repos.Machines.Create(ctx, m); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := f.repos.Machines.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
