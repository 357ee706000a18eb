package dto

import (
	"cardsight/internal/models"
)

type TransactionResponse struct {
	Date     string `json:"date"`
	Merchant string `json:"merchant"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

type MonthlySpendResponse struct {
	Month string `json:"month"`
	Spend int    `json:"spend"`
}

type MerchantSpendResponse struct {
	Merchant string  `json:"merchant"`
	Spent    float64 `json:"spent"`
}

// StatementResponse is the JSON shape returned by the parse endpoint.
type StatementResponse struct {
	Bank            string                  `json:"bank"`
	CardHolder      string                  `json:"card_holder"`
	CardNumber      string                  `json:"card_number"`
	CardVariant     string                  `json:"card_variant"`
	StatementPeriod string                  `json:"statement_period"`
	PaymentDueDate  string                  `json:"payment_due_date"`
	TotalDue        string                  `json:"total_due"`
	MinimumDue      string                  `json:"minimum_due"`
	CreditLimit     string                  `json:"credit_limit"`
	AvailableCredit string                  `json:"available_credit"`
	Transactions    []TransactionResponse   `json:"transactions"`
	MonthlyHistory  []MonthlySpendResponse  `json:"monthly_history"`
	// The monthly trend is synthetic until real history is aggregated.
	MonthlyHistoryEstimated bool                    `json:"monthly_history_estimated"`
	CategorySummary         map[string]float64      `json:"category_summary"`
	TopMerchants            []MerchantSpendResponse `json:"top_merchants"`
}

// NewStatementResponse maps a parsed statement to its response shape.
func NewStatementResponse(st *models.Statement) *StatementResponse {
	txns := make([]TransactionResponse, len(st.Transactions))
	for i, tx := range st.Transactions {
		txns[i] = TransactionResponse{
			Date:     tx.Date,
			Merchant: tx.Merchant,
			Amount:   tx.Amount,
			Type:     string(tx.Type),
			Category: string(tx.Category),
		}
	}

	history := make([]MonthlySpendResponse, len(st.MonthlyHistory))
	for i, m := range st.MonthlyHistory {
		history[i] = MonthlySpendResponse{Month: m.Month, Spend: m.Spend}
	}

	summary := make(map[string]float64, len(st.CategorySummary))
	for _, ct := range st.CategorySummary {
		summary[string(ct.Category)] = ct.Total
	}

	merchants := make([]MerchantSpendResponse, len(st.TopMerchants))
	for i, m := range st.TopMerchants {
		merchants[i] = MerchantSpendResponse{Merchant: m.Merchant, Spent: m.Spent}
	}

	return &StatementResponse{
		Bank:                    st.Bank,
		CardHolder:              st.CardHolder,
		CardNumber:              st.CardNumber,
		CardVariant:             st.CardVariant,
		StatementPeriod:         st.StatementPeriod,
		PaymentDueDate:          st.PaymentDueDate,
		TotalDue:                st.TotalDue,
		MinimumDue:              st.MinimumDue,
		CreditLimit:             st.CreditLimit,
		AvailableCredit:         st.AvailableCredit,
		Transactions:            txns,
		MonthlyHistory:          history,
		MonthlyHistoryEstimated: true,
		CategorySummary:         summary,
		TopMerchants:            merchants,
	}
}
