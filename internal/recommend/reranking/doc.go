// Cinematch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package reranking reorders a ranked neighbour list to trade some
// similarity for variety.
//
// Reranking runs after the similarity lookup:
//
//	Neighbors(row, pool) -> MMR.Rerank(candidates, k) -> results
//
// # Maximal Marginal Relevance
//
// MMR greedily picks the candidate maximising
//
//	lambda * score(i) - (1-lambda) * max(sim(i, s)) for s in selected
//
// where score is the cosine similarity to the source movie and sim is the
// Jaccard similarity of the two candidates' genre sets. lambda 1 keeps the
// similarity order; lower values push repeated genre mixes down the list.
//
//	mmr := reranking.NewMMR(0.7)
//	diverse := mmr.Rerank(candidates, 5)
package reranking
