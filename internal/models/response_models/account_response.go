package response_models

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AdminStats struct {
	TotalAccounts int64 `json:"total_accounts"`
	TotalTrips    int64 `json:"total_trips"`
	CachedPlans   int64 `json:"cached_plans"`
}
