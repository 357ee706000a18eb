package service

import (
	"context"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"cardsight/internal/models"
)

// historyMonths labels the synthetic spend trend; see estimateMonthlyHistory.
var historyMonths = []string{"May 2025", "Jun 2025", "Jul 2025", "Aug 2025", "Sep 2025", "Oct 2025"}

// StatementService sequences recovery, field extraction, transaction
// parsing, categorization and aggregation into one statement record.
type StatementService struct {
	pdfService   *PDFService
	fieldService *FieldService
	txService    *TransactionService
	faker        *gofakeit.Faker
	logger       *zap.Logger
}

func NewStatementService(pdf *PDFService, fields *FieldService, txs *TransactionService, logger *zap.Logger) *StatementService {
	return &StatementService{
		pdfService:   pdf,
		fieldService: fields,
		txService:    txs,
		faker:        gofakeit.New(0),
		logger:       logger,
	}
}

// ParseFile runs the full pipeline over one statement document. Text and
// table recovery run unconditionally and independently; failing to open the
// document is fatal, everything below that degrades to defaults.
func (s *StatementService) ParseFile(ctx context.Context, path string) (*models.Statement, error) {
	text, err := s.pdfService.RecoverText(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.pdfService.RecoverTables(path)
	if err != nil {
		return nil, err
	}

	st := s.BuildStatement(text, rows)
	s.logger.Info("statement parsed",
		zap.String("bank", st.Bank),
		zap.Int("transactions", len(st.Transactions)),
	)
	return st, nil
}

// BuildStatement assembles the record from recovered text and table rows.
// Deterministic except for the estimated monthly trend.
func (s *StatementService) BuildStatement(text string, rows []models.TableRow) *models.Statement {
	fields := s.fieldService.Extract(text)
	txns := s.txService.Extract(text, rows)
	summary, topMerchants := Aggregate(txns)

	return &models.Statement{
		Bank:            fields.Bank,
		CardHolder:      fields.CardHolder,
		CardNumber:      fields.CardNumber,
		CardVariant:     fields.CardVariant,
		StatementPeriod: fields.StatementPeriod,
		PaymentDueDate:  fields.PaymentDueDate,
		TotalDue:        fields.TotalDue,
		MinimumDue:      fields.MinimumDue,
		CreditLimit:     fields.CreditLimit,
		AvailableCredit: fields.AvailableCredit,
		Transactions:    txns,
		MonthlyHistory:  s.estimateMonthlyHistory(),
		CategorySummary: summary,
		TopMerchants:    topMerchants,
	}
}

// estimateMonthlyHistory fabricates a six-month spend trend. The figures are
// placeholders until real per-month aggregation exists; the response labels
// them as estimated.
func (s *StatementService) estimateMonthlyHistory() []models.MonthlySpend {
	history := make([]models.MonthlySpend, len(historyMonths))
	for i, month := range historyMonths {
		history[i] = models.MonthlySpend{Month: month, Spend: s.faker.Number(7000, 13000)}
	}
	return history
}
