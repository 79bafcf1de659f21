package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/home-affordability/internal/affordability"
	"github.com/Dan9191/home-affordability/internal/config"
	"github.com/Dan9191/home-affordability/internal/models"
	"github.com/Dan9191/home-affordability/internal/utils"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

const reportSubject = "Your Home Affordability Report"

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email, addr string, auth smtp.Auth) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, auth smtp.Auth) error {
			return e.Send(addr, auth)
		},
	}
}

// SendAffordabilityReport mails the calculation inputs and result to to
func (s *Sender) SendAffordabilityReport(to string, in models.PolicyInputs, res models.AffordabilityResult) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = reportSubject
	e.Text = []byte(BuildReport(in, res))

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send affordability report to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

// BuildReport renders the plain-text report body
func BuildReport(in models.PolicyInputs, res models.AffordabilityResult) string {
	var b strings.Builder

	b.WriteString("Hello,\n\n")
	if res.PurchasePrice <= 0 {
		b.WriteString("Based on the figures you entered, no purchase price currently fits within the lending policy.\n" +
			"Lowering monthly debts or increasing savings will improve the result.\n")
	} else {
		fmt.Fprintf(&b, "You can afford a home priced up to %s.\n\n", utils.FormatWhole(res.PurchasePrice))
		fmt.Fprintf(&b, "Down payment:        %s\n", utils.FormatMoney(res.DownPayment))
		fmt.Fprintf(&b, "Loan amount:         %s\n", utils.FormatMoney(res.LoanAmount))
		fmt.Fprintf(&b, "Reserved assets:     %s\n", utils.FormatMoney(res.ReservedAssets))
		fmt.Fprintf(&b, "Loan-to-value:       %s\n", utils.FormatPercent(res.LTVRatio))
		fmt.Fprintf(&b, "Debt-to-income:      %s\n\n", utils.FormatPercent(res.DebtToIncomeRatio))

		fmt.Fprintf(&b, "Monthly payment:     %s\n", utils.FormatMoney(res.MonthlyPayment))
		for _, part := range affordability.Breakdown(res) {
			fmt.Fprintf(&b, "  %-22s %s (%s)\n", part.Label+":", utils.FormatMoney(part.Amount), utils.FormatPercent(part.Share))
		}
	}

	b.WriteString("\nAssumptions:\n")
	fmt.Fprintf(&b, "  Interest rate:      %s\n", utils.FormatPercent(in.InterestRate))
	fmt.Fprintf(&b, "  Maximum LTV:        %s\n", utils.FormatPercent(in.MaxLTV))
	fmt.Fprintf(&b, "  Maximum DTI:        %s\n", utils.FormatPercent(in.MaxDTI))
	fmt.Fprintf(&b, "  Reserves:           %g months\n", in.RequiredReserves)

	b.WriteString("\nBest regards,\nHome Affordability Service")
	return b.String()
}
