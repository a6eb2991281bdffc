// Package simulate implements the failure-simulation core: one handler per
// fault family (status echo, malformed JSON, delay, hang, rate limiting,
// random faults, network errors) plus the HTTP glue that maps query
// parameters onto them.
//
// Handlers are functions of their inputs; the only shared mutable state is
// the injected rate-limit store and the mutex-guarded RNG. Every path
// terminates in a well-formed Response or a deliberate validation rejection —
// there is no internal-fault category here, because producing faults is the
// product.
package simulate
