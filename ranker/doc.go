// Package ranker answers top-N similarity queries over a document source.
// Every query embeds the query text, scores all stored documents with
// cosine similarity and returns the best matches first.
package ranker
