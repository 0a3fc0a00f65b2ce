// Package domain holds the core model types (Post, Sample, Report), the
// fixed sentiment and interaction category sets, and the interfaces that
// decouple the pipeline from its collaborators (Searcher, Scorer, ReportCache).
package domain
