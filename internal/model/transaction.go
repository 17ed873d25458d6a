package model

import "github.com/shopspring/decimal"

type Transaction struct {
	ID          string          `json:"id"`
	User        User            `json:"user,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method,omitempty"`
	ReferenceID string          `json:"reference_id,omitempty"`
	Status      string          `json:"status"`
	Reason      string          `json:"reason,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
}

type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	ReferenceID string          `json:"reference_id"`
}

type DepositResponse struct {
	ID string `json:"id"`
}

type GetMyTransactionsRequest struct{}

type GetMyTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

type AdminGetDepositsRequest struct{}

type AdminGetDepositsResponse struct {
	Deposits []Transaction `json:"deposits"`
}

type AdminReviewDepositRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type AdminReviewDepositResponse struct{}
