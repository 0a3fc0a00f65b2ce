// Package sentiment implements the analysis pipeline engine and the VADER
// reference scorer.
//
// Engine.Analyze runs search, normalization, cleaning, batch scoring,
// labeling, and aggregation synchronously for one query. The scorer is an
// injected capability so lexicon, model, or test scorers swap freely.
package sentiment
