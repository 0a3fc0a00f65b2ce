package domain

import "errors"

var (
	ErrEmptyQuery         = errors.New("query is empty")
	ErrScoreCountMismatch = errors.New("scorer returned mismatched result count")
	ErrUnlabeledPost      = errors.New("post has no sentiment label")
	ErrReportNotCached    = errors.New("report not cached")
	ErrSearchRateLimited  = errors.New("search API rate limit exhausted")
	ErrSearchUnauthorized = errors.New("search API rejected credentials")
)
