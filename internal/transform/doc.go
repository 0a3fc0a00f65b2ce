// Package transform converts raw search records into the normalized Sample
// shape and provides the pure per-post transformations: text cleaning,
// sentiment label mapping, and interaction-level rating.
package transform
