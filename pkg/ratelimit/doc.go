// Package ratelimit provides the fixed-window request counter store used by
// the rate-limit simulation endpoint.
//
// Unlike a production limiter, the store intentionally keeps counters for the
// process lifetime: entries are created lazily per client key and are only
// removed by an explicit reset. Unbounded growth across many distinct clients
// is a documented limitation of the simulator, not something the store papers
// over with background eviction.
package ratelimit
