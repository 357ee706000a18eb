package service

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cardsight/internal/models"
)

var (
	// dateShape matches DD-MM-YYYY or DD/MM/YYYY tokens anywhere in a cell.
	dateShape = regexp.MustCompile(`\d{2}[-/]\d{2}[-/]\d{4}`)
	// txnPattern captures date, non-greedy description and a signed
	// two-decimal amount from free-flowing statement text.
	txnPattern = regexp.MustCompile(`(\d{2}[-/]\d{2}[-/]\d{4})\s+(.+?)\s+(-?\s*[\d,]+\.\d{2})`)
	// nonAmountChars strips everything but digits, sign, decimal point and
	// thousands separators from a table cell.
	nonAmountChars = regexp.MustCompile(`[^\d\-.,]`)
)

// transactionStrategy produces transaction candidates from one document
// signal. Strategies are alternatives, never combined: text-flow statements
// feed the pattern strategy, tabular statements the row strategy.
type transactionStrategy interface {
	Name() string
	Extract() []models.Transaction
}

type TransactionService struct {
	logger *zap.Logger
}

func NewTransactionService(logger *zap.Logger) *TransactionService {
	return &TransactionService{logger: logger}
}

// Extract parses transactions from the recovered text, falling back to the
// recovered table rows only when the text pattern yields nothing. Running
// the fallback only on zero primary results avoids double counting
// statements that expose both signals.
func (t *TransactionService) Extract(text string, rows []models.TableRow) []models.Transaction {
	strategies := []transactionStrategy{
		&textPatternStrategy{text: text},
	}
	if len(rows) > 0 {
		strategies = append(strategies, &tableRowStrategy{rows: rows, logger: t.logger})
	}

	for _, strategy := range strategies {
		if txns := strategy.Extract(); len(txns) > 0 {
			t.logger.Debug("transactions extracted",
				zap.String("strategy", strategy.Name()),
				zap.Int("count", len(txns)),
			)
			return txns
		}
	}
	return []models.Transaction{}
}

type textPatternStrategy struct {
	text string
}

func (s *textPatternStrategy) Name() string { return "text-pattern" }

func (s *textPatternStrategy) Extract() []models.Transaction {
	var txns []models.Transaction
	for _, m := range txnPattern.FindAllStringSubmatch(s.text, -1) {
		amount, err := parseAmount(m[3])
		if err != nil {
			continue
		}
		txns = append(txns, newTransaction(m[1], m[2], amount))
	}
	return txns
}

type tableRowStrategy struct {
	rows   []models.TableRow
	logger *zap.Logger
}

func (s *tableRowStrategy) Name() string { return "table-rows" }

func (s *tableRowStrategy) Extract() []models.Transaction {
	var txns []models.Transaction
	for _, row := range s.rows {
		var parts []string
		for _, cell := range row {
			if cell != "" {
				parts = append(parts, cell)
			}
		}
		if len(parts) < 3 || !dateShape.MatchString(parts[0]) {
			continue
		}

		cleaned := nonAmountChars.ReplaceAllString(parts[len(parts)-1], "")
		if cleaned == "" {
			continue
		}
		amount, err := parseAmount(cleaned)
		if err != nil {
			s.logger.Warn("skipping table row with unparseable amount",
				zap.String("cell", parts[len(parts)-1]),
			)
			continue
		}

		merchant := strings.Join(parts[1:len(parts)-1], " ")
		txns = append(txns, newTransaction(parts[0], merchant, amount))
	}
	return txns
}

// newTransaction derives the type from the amount sign (negative means a
// repayment or refund) and stores the absolute value formatted with the
// currency symbol.
func newTransaction(date, merchant string, amount decimal.Decimal) models.Transaction {
	txnType := models.TypeDebit
	if amount.IsNegative() {
		txnType = models.TypeCredit
	}
	return models.Transaction{
		Date:     strings.TrimSpace(date),
		Merchant: strings.TrimSpace(merchant),
		Amount:   formatINR(amount),
		Type:     txnType,
		Category: Categorize(merchant),
	}
}
