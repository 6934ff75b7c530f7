package models

// Balance holds the balance of a user
// swagger:model Balance
type Balance struct {
	// example: 0
	Balance float64 `json:"balance"`
}

// BalanceResponse represents a successful balance lookup
// swagger:model BalanceResponse
type BalanceResponse struct {
	// example: true
	Success bool    `json:"success"`
	Data    Balance `json:"data"`
}
