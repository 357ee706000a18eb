package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const sampleHeader = `HDFC Bank Credit Card Statement
Name: John Doe
Card No: 1234 5678 9012 3456
Regalia
Statement Period: 01 May 2025 - 31 May 2025
Payment Due Date: 18-06-2025
Total Due: ₹ 12,345.67
Minimum Amount Due: ₹ 617.28
Credit Limit: 200000
Available Credit: ₹ 1,87,654.33
`

func TestFieldServiceExtract(t *testing.T) {
	fields := NewFieldService(zap.NewNop()).Extract(sampleHeader)

	assert.Equal(t, "HDFC Bank", fields.Bank)
	assert.Equal(t, "John Doe", fields.CardHolder)
	assert.Equal(t, "XXXX-XXXX-XXXX-3456", fields.CardNumber)
	assert.Equal(t, "HDFC Bank Regalia", fields.CardVariant)
	assert.Equal(t, "01 May 2025 - 31 May 2025", fields.StatementPeriod)
	assert.Equal(t, "18-06-2025", fields.PaymentDueDate)
	assert.Equal(t, "₹12,345.67", fields.TotalDue)
	assert.Equal(t, "₹617.28", fields.MinimumDue)
	// The loose numeric rules keep the capture verbatim.
	assert.Equal(t, "₹200000", fields.CreditLimit)
	assert.Equal(t, "₹1,87,654.33", fields.AvailableCredit)
}

func TestFieldServiceDefaults(t *testing.T) {
	fields := NewFieldService(zap.NewNop()).Extract("")

	assert.Equal(t, "Unknown Bank", fields.Bank)
	assert.Equal(t, "Unknown", fields.CardHolder)
	assert.Equal(t, "XXXX-XXXX-XXXX-0000", fields.CardNumber)
	assert.Equal(t, "Unknown Bank Credit Card", fields.CardVariant)
	assert.Equal(t, "Unknown", fields.StatementPeriod)
	assert.Equal(t, "Unknown", fields.PaymentDueDate)
	assert.Equal(t, "₹0.00", fields.TotalDue)
	assert.Equal(t, "₹0.00", fields.MinimumDue)
	assert.Equal(t, "₹0.00", fields.CreditLimit)
	assert.Equal(t, "₹0.00", fields.AvailableCredit)
}

func TestFieldServiceMissingDueDate(t *testing.T) {
	fields := NewFieldService(zap.NewNop()).Extract("HDFC statement with no due date label")
	assert.Equal(t, "Unknown", fields.PaymentDueDate)
}

func TestExtractBank(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"hdfc", "your HDFC card", "HDFC Bank"},
		{"icici", "icici netbanking", "ICICI Bank"},
		{"sbi", "SBI Card services", "SBI Card"},
		{"axis", "Axis statement", "Axis Bank"},
		{"lowercase matched via uppercasing", "hdfc bank", "HDFC Bank"},
		{"priority order on multiple", "ICICI and HDFC both appear", "HDFC Bank"},
		{"no match", "some other bank", "Unknown Bank"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractBank(tc.text))
		})
	}
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "XXXX-XXXX-XXXX-3456", maskCardNumber("1234 5678 9012 3456"))
	assert.Equal(t, "XXXX-XXXX-XXXX-1111", maskCardNumber("XXXX XXXX XXXX 1111"))
	assert.Equal(t, "XXXX-XXXX-XXXX-0000", maskCardNumber(""))
}

func TestCardVariantDefault(t *testing.T) {
	fields := NewFieldService(zap.NewNop()).Extract("SBI Card statement, no product token")
	assert.Equal(t, "SBI Card Credit Card", fields.CardVariant)
}
