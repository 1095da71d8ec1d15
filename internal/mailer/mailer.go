package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/ladwig/studio-booking-tool/internal/config"
	"github.com/ladwig/studio-booking-tool/internal/domain"
	"github.com/ladwig/studio-booking-tool/internal/pkg/money"
)

// Mailer sends the admin notification and the customer confirmation over
// SMTP. It implements the booking NotificationSender interface.
type Mailer struct {
	dialer      *gomail.Dialer
	from        string
	adminEmails []string
	subject     string
	log         *zap.Logger
}

func New(smtp config.SMTPSettings, email config.EmailSettings, log *zap.Logger) *Mailer {
	from := email.From
	if from == "" && len(email.AdminEmails) > 0 {
		from = email.AdminEmails[0]
	}
	return &Mailer{
		dialer:      gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password),
		from:        from,
		adminEmails: email.AdminEmails,
		subject:     email.NotificationSubject,
		log:         log,
	}
}

// SendBookingNotification delivers both messages in a single SMTP session.
// Reply-To on the admin mail points at the customer so the studio can answer
// directly.
func (m *Mailer) SendBookingNotification(_ context.Context, b *domain.Booking) error {
	view := newBookingView(b)

	adminBody, err := render(adminTemplate, view)
	if err != nil {
		return fmt.Errorf("render admin notification: %w", err)
	}
	customerBody, err := render(customerTemplate, view)
	if err != nil {
		return fmt.Errorf("render customer confirmation: %w", err)
	}

	admin := gomail.NewMessage()
	admin.SetHeader("From", m.from)
	admin.SetHeader("To", m.adminEmails...)
	admin.SetHeader("Reply-To", b.PersonalInfo.Email)
	admin.SetHeader("Subject", fmt.Sprintf("%s [%s]", m.subject, b.Reference))
	admin.SetBody("text/html", adminBody)

	customer := gomail.NewMessage()
	customer.SetHeader("From", m.from)
	customer.SetHeader("To", b.PersonalInfo.Email)
	customer.SetHeader("Subject", "Your studio booking request")
	customer.SetBody("text/html", customerBody)

	if err := m.dialer.DialAndSend(admin, customer); err != nil {
		return fmt.Errorf("send booking mails: %w", err)
	}

	m.log.Info("booking notification sent",
		zap.String("reference", b.Reference),
		zap.Strings("admin_to", m.adminEmails),
	)
	return nil
}

func render(tpl *template.Template, view bookingView) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type itemView struct {
	Name        string
	Description string
	Quantity    int
	UnitPrice   string
	LineTotal   string
}

type bookingView struct {
	Reference string
	Date      string
	TimeSlot  string

	Product   itemView
	Extras    []itemView
	Mandatory []itemView

	FirstName string
	LastName  string
	Email     string
	Phone     string
	Note      string

	Total      string
	Savings    string
	HasSavings bool
}

func newBookingView(b *domain.Booking) bookingView {
	// Savings are exactly the applied discount amount, so a positive value
	// means the line items were charged at their discount price.
	discounted := b.Savings > 0
	v := bookingView{
		Reference:  b.Reference,
		Date:       b.Date.Format("Monday, January 2, 2006"),
		TimeSlot:   b.Slot.Label,
		Product:    newItemView(b.Product, discounted),
		FirstName:  b.PersonalInfo.FirstName,
		LastName:   b.PersonalInfo.LastName,
		Email:      b.PersonalInfo.Email,
		Phone:      b.PersonalInfo.Phone,
		Note:       b.Note,
		Total:      money.FormatEUR(b.TotalPrice),
		Savings:    money.FormatEUR(b.Savings),
		HasSavings: b.Savings > 0,
	}
	for _, e := range b.Extras {
		v.Extras = append(v.Extras, newItemView(e, discounted))
	}
	for _, mi := range b.MandatoryItems {
		v.Mandatory = append(v.Mandatory, itemView{
			Name:        mi.Name,
			Description: mi.Description,
			Quantity:    1,
			UnitPrice:   money.FormatEUR(mi.Price),
			LineTotal:   money.FormatEUR(mi.Price),
		})
	}
	return v
}

func newItemView(sel domain.SelectedItem, discounted bool) itemView {
	unit := sel.Item.Price
	if discounted && sel.Item.DiscountPrice != nil {
		unit = *sel.Item.DiscountPrice
	}
	return itemView{
		Name:        sel.Item.Name,
		Description: sel.Item.Description,
		Quantity:    sel.Quantity,
		UnitPrice:   money.FormatEUR(unit),
		LineTotal:   money.FormatEUR(unit * float64(sel.Quantity)),
	}
}
