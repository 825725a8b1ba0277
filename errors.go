package ansimd

import "errors"

// Sentinel errors for the render engine's failure modes (§7).
var (
	// ErrUnsupportedConstruct indicates the Markdown source contained a
	// construct the event producer (package mdevents) rejects: a parse-tree
	// node kind with no counterpart in the closed Tag/Event set.
	ErrUnsupportedConstruct = errors.New("ansimd: unsupported markdown construct")

	// ErrImpossibleTransition indicates the driver received an event that
	// cannot occur in the current state for any well-formed input. This
	// signals a bug in the upstream event producer, not a recoverable
	// rendering condition.
	ErrImpossibleTransition = errors.New("ansimd: impossible state/event pair")

	// ErrUnbalancedStream indicates the event stream ended while frames
	// remained open — the producer violated the LIFO Start/End contract in
	// §3. A mismatched End is reported as ErrImpossibleTransition instead.
	ErrUnbalancedStream = errors.New("ansimd: unbalanced event stream")
)
