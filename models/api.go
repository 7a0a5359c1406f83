package models

import "time"

// WriteResponse es el sobre de las operaciones de escritura.
type WriteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type InfoResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type PingResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Error     string     `json:"error,omitempty"`
}
