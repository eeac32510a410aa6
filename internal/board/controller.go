// ============================================================================
// pawnboard - Bauern-Simulator auf dem 8x8 Brett
// ============================================================================
//
// Package:     board
// Description: BoardController - dispatch, validation and state transitions
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package board

import (
	"fmt"

	mdwerror "github.com/msto63/pawnboard/foundation/core/error"
	mdwlog "github.com/msto63/pawnboard/foundation/core/log"
)

// Options configures a Controller
type Options struct {
	// Logger receives one entry per executed command. Defaults to the
	// foundation default logger.
	Logger *mdwlog.Logger
}

// Outcome describes one executed command
type Outcome struct {
	// Command is the normalized input as echoed to the log
	Command string
	Kind    Kind
	// Status is the announcement of a successful command
	Status string
	// Err is nil on success. Several PLACE failures are joined.
	Err   error
	State State
}

// OK reports whether the command was applied
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Codes returns the error codes of a failed command
func (o Outcome) Codes() []mdwerror.Code {
	return mdwerror.Codes(o.Err)
}

// Controller owns the pawn state, the pending input and the log. It is
// not safe for concurrent use; each shell owns its own instance.
type Controller struct {
	state   State
	pending string
	log     []string
	logger  *mdwlog.Logger
}

// NewController creates a controller with an unplaced pawn
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	return &Controller{
		logger: logger.WithName("board"),
	}
}

// Submit stores the normalized input for the next Execute
func (c *Controller) Submit(raw string) {
	c.pending = Normalize(raw)
}

// Pending returns the normalized input Execute will run
func (c *Controller) Pending() string {
	return c.pending
}

// Execute runs the last submitted input. Executing again without a new
// Submit runs the same input again.
func (c *Controller) Execute() Outcome {
	input := c.pending
	c.announce(input)

	kind := Classify(input)
	status, err := c.dispatch(kind, input)

	outcome := Outcome{
		Command: input,
		Kind:    kind,
		Status:  status,
		Err:     err,
		State:   c.state,
	}
	c.report(outcome)

	return outcome
}

// Run submits raw and executes it
func (c *Controller) Run(raw string) Outcome {
	c.Submit(raw)
	return c.Execute()
}

// State returns a snapshot of the pawn state
func (c *Controller) State() State {
	return c.state
}

// Log returns a copy of the log
func (c *Controller) Log() []string {
	out := make([]string, len(c.log))
	copy(out, c.log)
	return out
}

// LogSince returns the log lines appended after the first n
func (c *Controller) LogSince(n int) []string {
	if n < 0 {
		n = 0
	}
	if n >= len(c.log) {
		return nil
	}
	out := make([]string, len(c.log)-n)
	copy(out, c.log[n:])
	return out
}

// LogLen returns the number of log lines
func (c *Controller) LogLen() int {
	return len(c.log)
}

func (c *Controller) dispatch(kind Kind, input string) (string, error) {
	placed := c.state.Placed

	switch {
	case kind == KindPlace:
		return c.place(input)
	case placed && kind == KindMove:
		return c.move(input)
	case placed && kind == KindRotate:
		return c.rotate(input)
	case placed && kind == KindReport:
		return c.reportStatus(), nil
	case !placed:
		return "", placementRequired(input)
	default:
		return "", unrecognizedCommand(input)
	}
}

func (c *Controller) place(input string) (string, error) {
	p, err := parsePlacement(input)
	if err != nil {
		return "", err
	}

	c.state = State{
		Position:         p.Position,
		Direction:        p.Direction,
		Color:            p.Color,
		Placed:           true,
		FirstMovePending: true,
	}

	return fmt.Sprintf("POSITION AFTER PAWN PLACED %s", c.state), nil
}

func (c *Controller) move(input string) (string, error) {
	distance, err := parseDistance(input)
	if err != nil {
		return "", err
	}

	if distance < 1 || distance > 2 || (distance == 2 && !c.state.FirstMovePending) {
		return "", invalidMove(distance, c.state.FirstMovePending)
	}

	next, ok := c.state.Position.Step(c.state.Direction, distance)
	if !ok {
		return "", moveOutOfBounds(next)
	}

	c.state.Position = next
	c.state.FirstMovePending = false
	if distance == 1 {
		c.state.Color = c.state.Color.Toggle()
	}

	return fmt.Sprintf("POSITION AFTER PAWN MOVE %s", next), nil
}

func (c *Controller) rotate(input string) (string, error) {
	turn, err := parseTurn(input)
	if err != nil {
		return "", err
	}

	c.state.Direction = turn.Apply(c.state.Direction)

	return fmt.Sprintf("POSITION AFTER PAWN ROTATED TO %s is %s and direction is %s",
		input, c.state.Position, c.state.Direction), nil
}

func (c *Controller) reportStatus() string {
	line := "PAWN REPORT: " + c.state.String()
	c.announce(line)
	return line
}

// announce appends a user facing line to the log
func (c *Controller) announce(line string) {
	c.log = append(c.log, line)
}

func (c *Controller) report(o Outcome) {
	fields := mdwlog.Fields{
		"command": o.Command,
		"kind":    o.Kind.String(),
	}

	if o.Err != nil {
		c.logger.LogError(o.Err, fields)
		return
	}

	fields["state"] = o.State.String()
	c.logger.Info(o.Status, fields)
}
