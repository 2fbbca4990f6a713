// Package processor defines the common capability contracts shared by all
// sample processors in this module.
//
// A [Processor] owns a fixed-length coefficient vector and mutates
// caller-supplied sample buffers in place. A [Filter] additionally keeps
// internal history across calls and exposes a single-sample operation;
// [ProcessBuffer] turns any Filter's single-sample operation into
// buffer-at-a-time processing, so concrete filters implement only
// ProcessSample.
//
// Processors are not safe for concurrent use: each instance assumes one
// logical stream of Process calls at a time. Use independent instances per
// stream or serialize access externally.
package processor
