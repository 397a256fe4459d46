package model

type UserProfile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LastName1   string `json:"lastName1"`
	LastName2   string `json:"lastName2"`
	DocumentID  string `json:"documentId"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	CreatedAt   string `json:"createdAt"`
}

type AdminUser struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LastName1   string `json:"lastName1"`
	DocumentID  string `json:"documentId"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
	IsBlocked   bool   `json:"isBlocked"`
	CreatedAt   string `json:"createdAt"`
}

type BlockedUserSummary struct {
	Name       string `json:"name"`
	DocumentID string `json:"documentId"`
	BlockedAt  string `json:"blockedAt"`
}

type ChartDataPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type AdminDashboard struct {
	RetainedUsersCount     int64                       `json:"retainedUsersCount"`
	TotalUsers             int64                       `json:"totalUsers"`
	TotalBlockedUsersCount int64                       `json:"totalBlockedUsersCount"`
	LastUsersBlocked       []BlockedUserSummary        `json:"lastUsersBlocked"`
	TransactionCurve       map[string][]ChartDataPoint `json:"transactionCurve"`
}
