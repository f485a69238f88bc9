// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client for the third-party chat-completion API
// (OpenRouter or any endpoint speaking the same JSON contract).
//
// The primary abstraction is [CompletionClient], which decouples the chat
// service from the transport. The package ships an HTTP implementation built
// on resty ([NewCompletionClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrTooManyRequests] for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/visa-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/completion_client_mock.go -package=mock

// CompletionClient sends a single, stateless completion request.
type CompletionClient interface {
	// Complete posts messages to the completion endpoint and returns the
	// decoded answer. Model, token limit and temperature come from the client
	// configuration. A transport failure, a timeout or a non-2xx status is
	// returned as an error; an answer without choices is not an error here.
	Complete(ctx context.Context, messages []models.ChatMessage) (models.CompletionResponse, error)
}
