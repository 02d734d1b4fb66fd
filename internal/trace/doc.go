// Package trace records where xdoc spends its time while scanning.
//
// Enable tracing from the command line:
//
//	xdoc scan --trace=- --trace-level=phase ./src
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only failures
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything
//
// # Context propagation
//
// The tracer and the active span travel through context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopePass, "scan")
//	defer span.End("")
package trace
