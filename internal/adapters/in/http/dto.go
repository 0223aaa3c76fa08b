package http

import "time"

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ShiftPayload carries a daily working window as "HH:MM" strings.
type ShiftPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PartnerMetricsPayload carries a partner's performance figures.
type PartnerMetricsPayload struct {
	Rating          float64 `json:"rating"`
	CompletedOrders int     `json:"completedOrders"`
	CancelledOrders int     `json:"cancelledOrders"`
}

// PartnerResponse represents a delivery partner on the wire.
type PartnerResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Email       string                `json:"email"`
	Phone       string                `json:"phone"`
	Status      string                `json:"status"`
	CurrentLoad int                   `json:"currentLoad"`
	Areas       []string              `json:"areas"`
	Shift       ShiftPayload          `json:"shift"`
	Metrics     PartnerMetricsPayload `json:"metrics"`
}

// CreatePartnerRequest is the payload for registering a partner.
type CreatePartnerRequest struct {
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Phone string       `json:"phone"`
	Areas []string     `json:"areas"`
	Shift ShiftPayload `json:"shift"`
}

// UpdatePartnerRequest is the payload for updating a partner's profile.
type UpdatePartnerRequest struct {
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Phone  string       `json:"phone"`
	Status string       `json:"status"`
	Areas  []string     `json:"areas"`
	Shift  ShiftPayload `json:"shift"`
}

// OrderItemPayload carries one order line item.
type OrderItemPayload struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderResponse represents an order on the wire.
type OrderResponse struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	CustomerName string    `json:"customerName"`
	Area         string    `json:"area"`
	Status       string    `json:"status"`
	ScheduledFor time.Time `json:"scheduledFor"`
	AssignedTo   *string   `json:"assignedTo,omitempty"`
	TotalAmount  float64   `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateOrderRequest is the payload for registering an order.
type CreateOrderRequest struct {
	OrderNumber string `json:"orderNumber"`
	Customer    struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	} `json:"customer"`
	Area         string             `json:"area"`
	Items        []OrderItemPayload `json:"items"`
	ScheduledFor time.Time          `json:"scheduledFor"`
}

// UpdateOrderStatusRequest is the payload for progressing an order's status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignmentResponse represents one dispatch ledger entry on the wire.
type AssignmentResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	PartnerID *string   `json:"partnerId,omitempty"`
	Status    string    `json:"status"`
	Reason    *string   `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DispatchRunResponse reports the attempts of one dispatch run.
type DispatchRunResponse struct {
	Results []AssignmentResponse `json:"results"`
}

// FailureReasonCountPayload is one bucket of the failure histogram.
type FailureReasonCountPayload struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// MetricsResponse carries the computed dispatch figures.
type MetricsResponse struct {
	TotalAssigned  int                         `json:"totalAssigned"`
	SuccessRate    float64                     `json:"successRate"`
	AverageTime    float64                     `json:"averageTime"`
	FailureReasons []FailureReasonCountPayload `json:"failureReasons"`
}
