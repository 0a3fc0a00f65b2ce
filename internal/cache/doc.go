// Package cache provides the per-query report cache with in-memory and
// Redis backends. The memory backend serves single-instance deployments;
// Redis lets multiple instances share results and adds metrics and circuit
// breaker hooks on every operation.
package cache
