package service

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// StatementFields holds the header-level values recovered from the text.
// Every field carries its documented default when no pattern matched.
type StatementFields struct {
	Bank            string
	CardHolder      string
	CardNumber      string
	CardVariant     string
	StatementPeriod string
	PaymentDueDate  string
	TotalDue        string
	MinimumDue      string
	CreditLimit     string
	AvailableCredit string
}

// fieldRule is one labeled pattern; the first capture group is the value.
// Currency rules render the capture with the rupee symbol prepended, and
// their fallback is the literal "0.00", not a numeric zero.
type fieldRule struct {
	name     string
	pattern  *regexp.Regexp
	currency bool
	fallback string
}

var fieldRules = []fieldRule{
	{"statement_period", regexp.MustCompile(`Statement\s*(?:Date|Period)[:\s]+([A-Za-z0-9 –\-]+)`), false, "Unknown"},
	{"payment_due_date", regexp.MustCompile(`Payment\s+Due\s+Date[:\s]+([\d/\-A-Za-z]+)`), false, "Unknown"},
	{"total_due", regexp.MustCompile(`Total\s+(?:Due|Dues)[:\s]+₹?\s*([\d,]+\.\d{2})`), true, "0.00"},
	{"minimum_due", regexp.MustCompile(`Minimum\s+Amount\s+Due[:\s]+₹?\s*([\d,]+\.\d{2})`), true, "0.00"},
	{"credit_limit", regexp.MustCompile(`Credit\s+Limit[:\s]+₹?\s*([\d,]+\.?\d*)`), true, "0.00"},
	{"available_credit", regexp.MustCompile(`Available\s+Credit[:\s]+₹?\s*([\d,]+\.?\d*)`), true, "0.00"},
}

var (
	namePattern    = regexp.MustCompile(`Name[:\s]+([A-Za-z ]+)`)
	cardNoPattern  = regexp.MustCompile(`Card\s*No[:\s]+([\dX ]{8,})`)
	variantPattern = regexp.MustCompile(`(?i)(Regalia|Millennia|Coral|Platinum|Gold|Signature|Select)`)
)

// bankNames are matched case-sensitively against the uppercased text, in
// priority order.
var bankNames = []struct {
	token string
	name  string
}{
	{"HDFC", "HDFC Bank"},
	{"ICICI", "ICICI Bank"},
	{"SBI", "SBI Card"},
	{"AXIS", "Axis Bank"},
}

type FieldService struct {
	logger *zap.Logger
}

func NewFieldService(logger *zap.Logger) *FieldService {
	return &FieldService{logger: logger}
}

// Extract runs every field heuristic over the recovered text. Absence of a
// match is never an error; the field degrades to its default.
func (s *FieldService) Extract(text string) StatementFields {
	fields := StatementFields{
		Bank:       extractBank(text),
		CardHolder: "Unknown",
		CardNumber: maskCardNumber(""),
	}

	if m := namePattern.FindStringSubmatch(text); m != nil {
		fields.CardHolder = strings.TrimSpace(m[1])
	}
	if m := cardNoPattern.FindStringSubmatch(text); m != nil {
		fields.CardNumber = maskCardNumber(strings.TrimSpace(m[1]))
	}

	fields.CardVariant = fields.Bank + " Credit Card"
	if m := variantPattern.FindStringSubmatch(text); m != nil {
		fields.CardVariant = fields.Bank + " " + m[1]
	}

	values := make(map[string]string, len(fieldRules))
	for _, rule := range fieldRules {
		value := rule.fallback
		if m := rule.pattern.FindStringSubmatch(text); m != nil {
			value = m[1]
		}
		if rule.currency {
			value = currencySymbol + value
		}
		values[rule.name] = value
	}
	fields.StatementPeriod = values["statement_period"]
	fields.PaymentDueDate = values["payment_due_date"]
	fields.TotalDue = values["total_due"]
	fields.MinimumDue = values["minimum_due"]
	fields.CreditLimit = values["credit_limit"]
	fields.AvailableCredit = values["available_credit"]

	s.logger.Debug("statement fields extracted",
		zap.String("bank", fields.Bank),
		zap.String("variant", fields.CardVariant),
	)

	return fields
}

// extractBank returns the first bank whose token appears in the uppercased
// text, or "Unknown Bank".
func extractBank(text string) string {
	upper := strings.ToUpper(text)
	for _, bank := range bankNames {
		if strings.Contains(upper, bank.token) {
			return bank.name
		}
	}
	return "Unknown Bank"
}

// maskCardNumber keeps only the last four characters of the captured card
// number. The full number is never retained.
func maskCardNumber(number string) string {
	last4 := "0000"
	if len(number) >= 4 {
		last4 = number[len(number)-4:]
	}
	return "XXXX-XXXX-XXXX-" + last4
}
