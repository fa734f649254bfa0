// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SuccessResponse is the envelope of every successful HTTP response.
// Data is null when the operation has nothing to return.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse is the envelope of every failed HTTP response.
// Errors usually carries the message of the underlying error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}

// NewSuccessResponse builds a successful envelope.
func NewSuccessResponse(message string, data any) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds a failed envelope.
func NewErrorResponse(message string, errors any) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Errors: errors}
}
