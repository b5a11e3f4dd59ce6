package http

import "time"

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCargoRequest registers a new cargo. ClientID may be omitted when the
// calling actor is the client.
type CreateCargoRequest struct {
	ClientID    string  `json:"client_id,omitempty"`
	Priority    string  `json:"priority"`
	WeightKg    float64 `json:"weight_kg"`
	DistanceKm  float64 `json:"distance_km"`
	ClientPhone string  `json:"client_phone"`
}

// CreateCargoResponse returns the identifier of the registered cargo.
type CreateCargoResponse struct {
	ID string `json:"id"`
}

// TransitionRequest names the requested target status.
type TransitionRequest struct {
	Target string `json:"target"`
}

// ProposeAssignmentRequest offers a cargo to a driver with a response
// deadline.
type ProposeAssignmentRequest struct {
	DriverID    string    `json:"driver_id"`
	VehicleID   string    `json:"vehicle_id"`
	DriverPhone string    `json:"driver_phone"`
	ExpiresAt   time.Time `json:"expires_at"`
	Notes       string    `json:"notes,omitempty"`
}

// ProposeAssignmentResponse returns the identifier of the opened negotiation
// window.
type ProposeAssignmentResponse struct {
	AssignmentID string `json:"assignment_id"`
}

// DriverRespondRequest carries the driver's decision on the current
// assignment. Reason is required when the decision is reject.
type DriverRespondRequest struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

// ActionResponse is one entry of the resolved action list.
type ActionResponse struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// ActiveCargoResponse is one row of the active cargo listing.
type ActiveCargoResponse struct {
	ID         string  `json:"id"`
	ClientID   string  `json:"client_id"`
	Status     string  `json:"status"`
	Priority   string  `json:"priority"`
	WeightKg   float64 `json:"weight_kg"`
	DistanceKm float64 `json:"distance_km"`
	HasCarrier bool    `json:"has_carrier"`
}

// AssignmentHistoryResponse is one negotiation window of a cargo's history.
type AssignmentHistoryResponse struct {
	ID              string     `json:"id"`
	DriverID        string     `json:"driver_id"`
	VehicleID       string     `json:"vehicle_id"`
	Status          string     `json:"status"`
	AssignedAt      time.Time  `json:"assigned_at"`
	ExpiresAt       time.Time  `json:"expires_at"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// ReceiptResponse is the priced receipt for a delivered cargo.
type ReceiptResponse struct {
	CargoID    string  `json:"cargo_id"`
	Priority   string  `json:"priority"`
	WeightKg   float64 `json:"weight_kg"`
	DistanceKm float64 `json:"distance_km"`
	Amount     float64 `json:"amount"`
}

// PositionResponse is the carrier's last reported position.
type PositionResponse struct {
	DriverID  string  `json:"driver_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ReportPositionRequest is a position report from a driver device.
type ReportPositionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
