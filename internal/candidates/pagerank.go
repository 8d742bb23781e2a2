// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package candidates

import (
	"math"
)

const (
	defaultDamping    = 0.85
	defaultMaxIter    = 100
	defaultTolerance  = 1e-6
	personalizeFactor = 100.0
)

// rankConfig configures the PageRank pass over the type graph.
type rankConfig struct {
	damping   float64
	maxIter   int
	tolerance float64
	focus     []string // types that receive 100x personalization weight
}

// rank runs weighted PageRank on the type graph and returns the score
// per type name. Types that attract references from many methods score
// high; they are the natural destinations for moves.
func rank(g *Graph, cfg rankConfig) map[string]float64 {
	damping := cfg.damping
	if damping == 0 {
		damping = defaultDamping
	}
	maxIter := cfg.maxIter
	if maxIter == 0 {
		maxIter = defaultMaxIter
	}
	tolerance := cfg.tolerance
	if tolerance == 0 {
		tolerance = defaultTolerance
	}

	n := len(g.Nodes)
	if n == 0 {
		return nil
	}

	idx := make(map[string]int, n)
	for i, node := range g.Nodes {
		idx[node] = i
	}

	focusSet := make(map[string]bool, len(cfg.focus))
	for _, t := range cfg.focus {
		focusSet[t] = true
	}

	personalization := make([]float64, n)
	total := 0.0
	for i, node := range g.Nodes {
		if focusSet[node] {
			personalization[i] = personalizeFactor
		} else {
			personalization[i] = 1.0
		}
		total += personalization[i]
	}
	for i := range personalization {
		personalization[i] /= total
	}

	type outEdge struct {
		to     int
		weight float64
	}
	outEdges := make([][]outEdge, n)
	outWeight := make([]float64, n)
	for _, e := range g.Edges {
		fromIdx, okF := idx[e.From]
		toIdx, okT := idx[e.To]
		if !okF || !okT {
			continue
		}
		outEdges[fromIdx] = append(outEdges[fromIdx], outEdge{to: toIdx, weight: e.Weight})
		outWeight[fromIdx] += e.Weight
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	next := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		for i := range next {
			next[i] = (1.0 - damping) * personalization[i]
		}

		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				// Dangling type: redistribute via personalization.
				for j := range next {
					next[j] += damping * scores[i] * personalization[j]
				}
				continue
			}
			for _, e := range outEdges[i] {
				next[e.to] += damping * scores[i] * (e.weight / outWeight[i])
			}
		}

		diff := 0.0
		for i := range scores {
			diff += math.Abs(next[i] - scores[i])
		}
		copy(scores, next)
		if diff < tolerance {
			break
		}
	}

	out := make(map[string]float64, n)
	for i, node := range g.Nodes {
		out[node] = scores[i]
	}
	return out
}
