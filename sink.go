package ansimd

import "io"

// Sink is the abstract output the render engine writes to. It is exactly
// an io.Writer — the engine never seeks, never reads back, and propagates
// any write error to its caller unchanged (§5: "terminal output is not
// recoverable").
type Sink = io.Writer
