// Package twitter implements the external search collaborator: a thin
// client for the recent-search API with bearer auth and a client-side
// rate limiter. Retry policy is owned by the caller, not this package.
package twitter
