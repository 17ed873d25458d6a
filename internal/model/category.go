package model

import "github.com/shopspring/decimal"

type Category struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Icon                string          `json:"icon,omitempty"`
	RewardPerCompletion decimal.Decimal `json:"reward_per_completion"`
	CostPerCompletion   decimal.Decimal `json:"cost_per_completion"`
}

type GetCategoriesRequest struct{}

type GetCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type AdminCreateCategoryRequest struct {
	Name                string          `json:"name"`
	Icon                string          `json:"icon"`
	RewardPerCompletion decimal.Decimal `json:"reward_per_completion"`
	CostPerCompletion   decimal.Decimal `json:"cost_per_completion"`
}

type AdminCreateCategoryResponse struct {
	ID string `json:"id"`
}

type AdminUpdateCategoryRequest struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Icon                string          `json:"icon"`
	RewardPerCompletion decimal.Decimal `json:"reward_per_completion"`
	CostPerCompletion   decimal.Decimal `json:"cost_per_completion"`
}

type AdminUpdateCategoryResponse struct{}

type AdminDeleteCategoryRequest struct {
	ID string `json:"id"`
}

type AdminDeleteCategoryResponse struct{}
