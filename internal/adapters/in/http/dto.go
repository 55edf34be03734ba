package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type createOrderRequest struct {
	ID          string `json:"id"`
	ClientID    string `json:"clientId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	ScheduledAt string `json:"scheduledAt"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type assignExecutorRequest struct {
	ExecutorID string `json:"executorId"`
}

type createClientRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

type createExecutorRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
}

type assistantChatRequest struct {
	Prompt  string `json:"prompt"`
	History []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"history"`
}

type assistantChatResponse struct {
	Reply string `json:"reply"`
}

type voucherResponse struct {
	Token       string    `json:"token"`
	IsActive    bool      `json:"isActive"`
	GeneratedAt time.Time `json:"generatedAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type historyEntryResponse struct {
	From   string    `json:"from,omitempty"`
	To     string    `json:"to"`
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
	Reason string    `json:"reason,omitempty"`
}

type orderResponse struct {
	ID          string                 `json:"id"`
	ClientID    string                 `json:"clientId"`
	ExecutorID  string                 `json:"executorId,omitempty"`
	Amount      int64                  `json:"amount"`
	Currency    string                 `json:"currency"`
	Status      string                 `json:"status"`
	ScheduledAt time.Time              `json:"scheduledAt"`
	Origin      string                 `json:"origin"`
	Destination string                 `json:"destination"`
	Voucher     *voucherResponse       `json:"voucher,omitempty"`
	History     []historyEntryResponse `json:"history"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

type clientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	TotalOrders int    `json:"totalOrders"`
}

type executorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Vehicle      string `json:"vehicle"`
	Availability string `json:"availability"`
}

type dashboardStatsResponse struct {
	TotalOrders      int    `json:"totalOrders"`
	ActiveOrders     int    `json:"activeOrders"`
	CompletedToday   int    `json:"completedToday"`
	GrossBookedValue int64  `json:"grossBookedValue"`
	Currency         string `json:"currency"`
}

type dailyRevenueResponse struct {
	Day     string `json:"day"`
	Revenue int64  `json:"revenue"`
}

type revenueReportResponse struct {
	RecognizedRevenue int64                  `json:"recognizedRevenue"`
	Currency          string                 `json:"currency"`
	RevenueByDay      []dailyRevenueResponse `json:"revenueByDay"`
	OrdersByStatus    map[string]int         `json:"ordersByStatus"`
	AverageOrderValue int64                  `json:"averageOrderValue"`
}

type auditEntryResponse struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurredAt"`
	Actor      string    `json:"actor"`
	Details    string    `json:"details,omitempty"`
}

type voucherCheckResponse struct {
	Verdict string `json:"verdict"`
}
