package remote

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
	mdwlog "github.com/msto63/pawnboard/foundation/core/log"
	"github.com/msto63/pawnboard/internal/board"
	"github.com/msto63/pawnboard/pkg/core/version"
)

// session is one connection with its own board. Only the read loop writes
// to the connection.
type session struct {
	id     string
	conn   *websocket.Conn
	ctrl   *board.Controller
	logger *mdwlog.Logger
	config Config
}

func newSession(s *Server, conn *websocket.Conn) *session {
	id := uuid.NewString()
	logger := s.logger.WithSessionID(id).WithFields(mdwlog.Fields{
		"remote": conn.RemoteAddr().String(),
	})

	return &session{
		id:     id,
		conn:   conn,
		ctrl:   board.NewController(board.Options{Logger: logger}),
		logger: logger,
		config: s.config,
	}
}

func (s *session) run() {
	defer s.conn.Close()

	s.logger.Info("WebSocket connection established")

	if s.config.MaxMessageBytes > 0 {
		s.conn.SetReadLimit(s.config.MaxMessageBytes)
	}
	s.extendReadDeadline()
	s.conn.SetPongHandler(func(string) error {
		s.extendReadDeadline()
		return nil
	})

	if !s.send(TypeHello, HelloPayload{
		SessionID: s.id,
		Version:   version.Platform,
		Protocol:  version.Protocol,
	}) {
		return
	}

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.closed(err)
			return
		}
		s.extendReadDeadline()

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			if !s.sendError(ErrCodeInvalidPayload, "Invalid message") {
				return
			}
			continue
		}

		if !s.handle(msg) {
			return
		}
	}
}

// handle answers one message and reports whether the connection is still usable
func (s *session) handle(msg Message) bool {
	s.logger.Trace("WebSocket message", mdwlog.Fields{"type": msg.Type})

	switch msg.Type {
	case TypePing:
		return s.send(TypePong, nil)

	case TypeCommand:
		var payload CommandPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return s.sendError(ErrCodeInvalidPayload, "Invalid command payload")
		}

		before := s.ctrl.LogLen()
		outcome := s.ctrl.Run(payload.Input)
		return s.send(TypeResult, newResult(outcome, s.ctrl.LogSince(before)))

	case TypeState:
		state := s.ctrl.State()
		return s.send(TypeState, StatePayload{
			State:  state,
			Board:  board.Render(state),
			LogLen: s.ctrl.LogLen(),
		})

	case TypeLog:
		return s.send(TypeLog, LogPayload{Lines: s.ctrl.Log()})

	default:
		return s.sendError(ErrCodeUnknownType, "Unknown message type: "+msg.Type)
	}
}

func (s *session) send(typ string, payload interface{}) bool {
	if s.config.WriteTimeout > 0 {
		s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	}
	if err := s.conn.WriteJSON(Response{Type: typ, Payload: payload}); err != nil {
		s.logger.LogError(transportError(err, "WebSocket send failed", "send", s.id),
			mdwlog.Fields{"type": typ})
		return false
	}
	return true
}

func (s *session) sendError(code, message string) bool {
	return s.send(TypeError, ErrorPayload{Code: code, Message: message})
}

func (s *session) extendReadDeadline() {
	if s.config.ReadTimeout > 0 {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))
	}
}

// closed logs the end of the read loop. A peer that vanishes is low
// severity, it only ends its own session.
func (s *session) closed(err error) {
	fields := mdwlog.Fields{"log_lines": s.ctrl.LogLen()}
	if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
		s.logger.LogError(transportError(err, "WebSocket read failed", "read", s.id).
			WithSeverity(mdwerror.SeverityLow), fields)
		return
	}
	s.logger.Info("WebSocket connection closed", fields)
}

func transportError(err error, message, operation, sessionID string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeTransportError).
		WithOperation(operation).
		WithSessionID(sessionID)
}
