package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machinehub/internal/model"
)

func sample() (*model.User, *model.User, *model.Machine, *model.Enquiry) {
	supplier := &model.User{ID: 1, Name: "Bob", Email: "bob@example.com", Role: model.RoleSupplier}
	buyer := &model.User{ID: 2, Name: "Alice <Acme>", Email: "alice@example.com", Role: model.RoleBuyer}
	machine := &model.Machine{ID: 3, Name: "Press X"}
	enquiry := &model.Enquiry{
		Message: "Need it soon", Budget: "₹5,00,000", Location: "Pune",
		ProductionNeed: "500 units/day", Timeline: "planning",
	}
	return supplier, buyer, machine, enquiry
}

func TestBuildEnquiryEmail(t *testing.T) {
	supplier, buyer, machine, enquiry := sample()

	msg := BuildEnquiryEmail(mail.NewEmail("MachineHub", "noreply@example.com"), supplier, buyer, machine, enquiry)

	assert.Equal(t, "New enquiry for Press X", msg.Subject)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "bob@example.com", msg.Personalizations[0].To[0].Address)
	require.Len(t, msg.Content, 2)
	assert.Contains(t, msg.Content[0].Value, "₹5,00,000")
	assert.Contains(t, msg.Content[1].Value, "Alice &lt;Acme&gt;")
}

func TestSendGridNotifier(t *testing.T) {
	supplier, buyer, machine, enquiry := sample()
	ctx := context.Background()

	t.Run("accepted", func(t *testing.T) {
		n := NewSendGridNotifier("key", "noreply@example.com")
		var sent *mail.SGMailV3
		n.send = func(_ context.Context, msg *mail.SGMailV3) (int, error) {
			sent = msg
			return 202, nil
		}
		require.NoError(t, n.EnquiryCreated(ctx, supplier, buyer, machine, enquiry))
		require.NotNil(t, sent)
		assert.Equal(t, "noreply@example.com", sent.From.Address)
	})

	t.Run("rejected status", func(t *testing.T) {
		n := NewSendGridNotifier("key", "noreply@example.com")
		n.send = func(context.Context, *mail.SGMailV3) (int, error) { return 401, nil }
		assert.Error(t, n.EnquiryCreated(ctx, supplier, buyer, machine, enquiry))
	})

	t.Run("transport error", func(t *testing.T) {
		n := NewSendGridNotifier("key", "noreply@example.com")
		n.send = func(context.Context, *mail.SGMailV3) (int, error) { return 0, errors.New("dial") }
		assert.Error(t, n.EnquiryCreated(ctx, supplier, buyer, machine, enquiry))
	})
}

func TestNoop(t *testing.T) {
	supplier, buyer, machine, enquiry := sample()
	assert.NoError(t, Noop{}.EnquiryCreated(context.Background(), supplier, buyer, machine, enquiry))
}
