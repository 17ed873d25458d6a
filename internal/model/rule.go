package model

type Rule struct {
	ID          string `json:"id"`
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
}

type GetRulesRequest struct{}

type GetRulesResponse struct {
	Rules []Rule `json:"rules"`
}

type AdminCreateRuleRequest struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type AdminCreateRuleResponse struct {
	ID string `json:"id"`
}

type AdminUpdateRuleRequest struct {
	ID          string `json:"id"`
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type AdminUpdateRuleResponse struct{}

type AdminDeleteRuleRequest struct {
	ID string `json:"id"`
}

type AdminDeleteRuleResponse struct{}
