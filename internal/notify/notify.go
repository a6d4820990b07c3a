package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"machinehub/internal/model"
)

// EnquiryNotifier tells a supplier about a new enquiry on one of their machines.
type EnquiryNotifier interface {
	EnquiryCreated(ctx context.Context, supplier *model.User, buyer *model.User, machine *model.Machine, enquiry *model.Enquiry) error
}

// Noop discards notifications.
type Noop struct{}

func (Noop) EnquiryCreated(context.Context, *model.User, *model.User, *model.Machine, *model.Enquiry) error {
	return nil
}

// SendGridNotifier delivers notifications by email through SendGrid.
type SendGridNotifier struct {
	send func(ctx context.Context, msg *mail.SGMailV3) (int, error)
	from *mail.Email
}

// NewSendGridNotifier creates a notifier sending from fromEmail.
func NewSendGridNotifier(apiKey, fromEmail string) *SendGridNotifier {
	client := sendgrid.NewSendClient(apiKey)
	return &SendGridNotifier{
		from: mail.NewEmail("MachineHub", fromEmail),
		send: func(ctx context.Context, msg *mail.SGMailV3) (int, error) {
			resp, err := client.SendWithContext(ctx, msg)
			if err != nil {
				return 0, err
			}
			return resp.StatusCode, nil
		},
	}
}

func (n *SendGridNotifier) EnquiryCreated(ctx context.Context, supplier *model.User, buyer *model.User, machine *model.Machine, enquiry *model.Enquiry) error {
	msg := BuildEnquiryEmail(n.from, supplier, buyer, machine, enquiry)
	status, err := n.send(ctx, msg)
	if err != nil {
		return fmt.Errorf("send enquiry email: %w", err)
	}
	if status >= 300 {
		return fmt.Errorf("send enquiry email: sendgrid status %d", status)
	}
	return nil
}

// BuildEnquiryEmail renders the supplier notification for a new enquiry.
func BuildEnquiryEmail(from *mail.Email, supplier, buyer *model.User, machine *model.Machine, enquiry *model.Enquiry) *mail.SGMailV3 {
	subject := fmt.Sprintf("New enquiry for %s", machine.Name)
	to := mail.NewEmail(supplier.Name, supplier.Email)

	plain := fmt.Sprintf(
		"Hello %s,\n\n%s sent an enquiry about %s.\n\nBudget: %s\nLocation: %s\nProduction need: %s\nTimeline: %s\n\n%s\n",
		supplier.Name, buyer.Name, machine.Name,
		enquiry.Budget, enquiry.Location, enquiry.ProductionNeed, enquiry.Timeline, enquiry.Message,
	)
	htmlContent := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
			<h2>New enquiry for %s</h2>
			<p><strong>%s</strong> is interested in your machine.</p>
			<ul>
				<li>Budget: %s</li>
				<li>Location: %s</li>
				<li>Production need: %s</li>
				<li>Timeline: %s</li>
			</ul>
			<p>%s</p>
		</div>`,
		html.EscapeString(machine.Name), html.EscapeString(buyer.Name),
		html.EscapeString(enquiry.Budget), html.EscapeString(enquiry.Location),
		html.EscapeString(enquiry.ProductionNeed), html.EscapeString(enquiry.Timeline),
		html.EscapeString(enquiry.Message),
	)
	return mail.NewSingleEmail(from, subject, to, plain, htmlContent)
}
