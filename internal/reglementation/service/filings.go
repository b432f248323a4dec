package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"portail-rse/internal/reglementation/rules"
)

const filingsTimeout = 3 * time.Second

// gatherFilings looks up every filing concurrently. GHG and gender index
// failures are kept in the result for the rules to render; a BDESE failure
// degrades to "none". Only a CSRD failure aborts, since that lookup is
// in-process.
func (s *Service) gatherFilings(ctx context.Context, siren string, today time.Time) (rules.Filings, error) {
	ctx, cancel := context.WithTimeout(ctx, filingsTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	var filings rules.Filings

	g.Go(func() error {
		start := time.Now()
		state, err := s.registry.BDESEState(ctx, siren, today.Year()-1)
		s.metrics.ObserveFilingsLatency("bdese", time.Since(start))
		if err != nil {
			s.logger.WarnContext(ctx, "bdese lookup failed",
				"siren", siren,
				"error", err,
			)
			return nil
		}
		filings.BDESE = state
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		filings.GHGLastYear, filings.GHGErr = s.registry.LastGHGYear(ctx, siren)
		s.metrics.ObserveFilingsLatency("bges", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		filings.GenderIndexPublished, filings.GenderIndexErr = s.registry.GenderIndexPublished(ctx, siren, today.Year()-1)
		s.metrics.ObserveFilingsLatency("index_egapro", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		summary, err := s.csrd.Summary(ctx, siren)
		s.metrics.ObserveFilingsLatency("csrd", time.Since(start))
		if err != nil {
			return err
		}
		filings.CSRD = summary
		return nil
	})

	if err := g.Wait(); err != nil {
		return rules.Filings{}, err
	}
	return filings, nil
}
