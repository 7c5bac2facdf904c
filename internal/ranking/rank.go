package ranking

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Candidate is one resume submitted for batch ranking.
type Candidate struct {
	Source string
	Text   string
	Name   string
	Email  string
}

// RankCandidates scores every candidate against job and returns them sorted
// by composite score, highest first. Ties keep input order. At most limit
// candidates are scored at once; limit <= 0 means no bound.
func RankCandidates(ctx context.Context, n *parsing.Normalizer, job types.JobSpec, candidates []Candidate, limit int) (*types.RankedCandidates, error) {
	ranked := make([]types.RankedCandidate, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, c := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			ranked[i] = types.RankedCandidate{
				Source:  c.Source,
				Contact: parsing.ResolveContact(c.Text, c.Name, c.Email),
				Result:  Score(n, c.Text, job.Description, job.Skills),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ranking candidates: %w", err)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.CompositeScore > ranked[j].Result.CompositeScore
	})

	return &types.RankedCandidates{JobTitle: job.Title, Ranked: ranked}, nil
}
