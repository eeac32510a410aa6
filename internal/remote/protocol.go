// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     remote
// Description: JSON message protocol of the remote board console
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package remote

import (
	"encoding/json"

	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
	"github.com/msto63/pawnboard/internal/board"
)

// Message types
const (
	TypeHello   = "hello"
	TypeCommand = "command"
	TypeResult  = "result"
	TypePing    = "ping"
	TypePong    = "pong"
	TypeState   = "state"
	TypeLog     = "log"
	TypeError   = "error"
)

// Protocol error codes
const (
	ErrCodeInvalidPayload = "invalid_payload"
	ErrCodeUnknownType    = "unknown_type"
)

// Message is a client request
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is a server message
type Response struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// HelloPayload is sent once after the connection is established
type HelloPayload struct {
	SessionID string `json:"session_id"`
	Version   string `json:"version"`
	Protocol  int    `json:"protocol"`
}

// CommandPayload carries one line of input
type CommandPayload struct {
	Input string `json:"input"`
}

// ErrorPayload describes one failure
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ResultPayload answers a command
type ResultPayload struct {
	Command string         `json:"command"`
	OK      bool           `json:"ok"`
	Status  string         `json:"status,omitempty"`
	Errors  []ErrorPayload `json:"errors,omitempty"`
	// Log holds the lines appended by this command
	Log   []string    `json:"log"`
	State board.State `json:"state"`
}

// StatePayload answers a state request
type StatePayload struct {
	State  board.State `json:"state"`
	Board  string      `json:"board"`
	LogLen int         `json:"log_len"`
}

// LogPayload answers a log request
type LogPayload struct {
	Lines []string `json:"lines"`
}

func newResult(o board.Outcome, appended []string) ResultPayload {
	result := ResultPayload{
		Command: o.Command,
		OK:      o.OK(),
		Status:  o.Status,
		Log:     appended,
		State:   o.State,
	}
	if result.Log == nil {
		result.Log = []string{}
	}

	if o.Err != nil {
		for _, e := range mdwerror.Flatten(o.Err) {
			result.Errors = append(result.Errors, ErrorPayload{
				Code:    e.Code().String(),
				Message: e.Message(),
			})
		}
		if len(result.Errors) == 0 {
			result.Errors = []ErrorPayload{{Code: mdwerror.CodeInternal.String(), Message: o.Err.Error()}}
		}
	}

	return result
}
