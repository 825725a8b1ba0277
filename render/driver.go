package render

import (
	"fmt"

	"github.com/ansimd/ansimd"
)

// Driver pulls one event at a time from a producer and threads it through
// the transition function, the concrete counterpart to §3's Driver
// entity. It owns the link registry for the document's whole lifetime
// (§4.3) and recovers a step panic into a returned error at Run's
// boundary, which is where the original renderer's fatal semantics (it
// panics on any impossible transition or unsupported construct) get
// translated into idiomatic Go error handling without losing the
// fail-fast intent (§7, §9).
type Driver struct {
	Sink     ansimd.Sink
	Settings ansimd.Settings
	Bridge   ansimd.HighlightBridge
}

// New returns a Driver writing to sink under settings, using bridge for
// fenced code blocks (bridge may be nil, in which case every highlighted
// code block falls back to a literal block).
func New(sink ansimd.Sink, settings ansimd.Settings, bridge ansimd.HighlightBridge) *Driver {
	return &Driver{Sink: sink, Settings: settings, Bridge: bridge}
}

// Run drives events to completion, returning the first error encountered
// (an impossible transition, an unbalanced stream, or a write failure from
// the sink) or nil once every event has
// been consumed and the stream finished cleanly at TopLevel (§4.1, §7).
func (d *Driver) Run(events []ansimd.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverToError(r)
		}
	}()

	state := NewState()
	links := ansimd.NewLinkRegistry()

	for _, event := range events {
		state = step(d.Sink, d.Settings, d.Bridge, links, state, event)
	}

	return d.finish(state, links)
}

// finish implements the original renderer's finish(): the stream must end
// back at TopLevel, at which point any links still pending are flushed
// one last time (§4.3).
func (d *Driver) finish(state State, links *ansimd.LinkRegistry) error {
	if !IsTopLevel(state) {
		return fmt.Errorf("%w: stream ended inside an open construct", ansimd.ErrUnbalancedStream)
	}
	return writeLinkRefs(d.Sink, d.Settings.Capabilities, links.Drain())
}

func recoverToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", ansimd.ErrImpossibleTransition, r)
}
