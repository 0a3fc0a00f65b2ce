// Package aggregate derives the dashboard views from an enriched sample:
// minute-bucketed sentiment counts, the raw score time series, hashtag
// frequencies, total tweets per minute, and descriptive insights.
//
// All functions are pure over the sample; an empty sample yields empty
// tables, never an error.
package aggregate
