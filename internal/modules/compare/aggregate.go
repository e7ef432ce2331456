// README: Parallel provider fan-out with fault isolation.
package compare

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"farecast/internal/modules/fare"
	"farecast/internal/modules/provider"
)

// aggregate fans the query out to every provider and flattens the batch
// results. It is a fan-out/fan-in barrier with three guarantees:
//   - fan-out width is bounded by MaxConcurrent;
//   - each provider gets its own deadline, and a provider that errors,
//     panics or misses the deadline contributes zero offers;
//   - no provider failure ever aborts the others or the barrier.
//
// Output order across providers is unspecified; ranking downstream
// imposes the only ordering that matters.
func (s *Service) aggregate(ctx context.Context, origin, destination string, distanceKm float64, opts map[string]string) []fare.Offer {
	var (
		mu     sync.Mutex
		offers []fare.Offer
	)

	g := new(errgroup.Group)
	if s.cfg.MaxConcurrent > 0 {
		g.SetLimit(s.cfg.MaxConcurrent)
	}

	for _, p := range s.providers {
		p := p
		g.Go(func() error {
			batch := s.queryProvider(ctx, p, origin, destination, distanceKm, opts)
			if len(batch) == 0 {
				return nil
			}
			mu.Lock()
			offers = append(offers, batch...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return offers
}

type providerResult struct {
	offers []fare.Offer
	err    error
}

// queryProvider runs one provider call under its deadline. The call runs
// in its own goroutine so a provider that ignores cancellation still
// cannot hold up the barrier; on timeout its eventual result is dropped.
func (s *Service) queryProvider(ctx context.Context, p provider.Client, origin, destination string, distanceKm float64, opts map[string]string) []fare.Offer {
	cctx := ctx
	if s.cfg.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		cctx, cancel = context.WithTimeout(ctx, s.cfg.ProviderTimeout)
		defer cancel()
	}

	ch := make(chan providerResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("provider %s panicked: %v", p.ProviderID(), r)
				ch <- providerResult{}
			}
		}()
		offers, err := p.FaresBatch(cctx, origin, destination, distanceKm, opts)
		ch <- providerResult{offers: offers, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			log.Printf("provider %s failed: %v", p.ProviderID(), res.err)
			return nil
		}
		return res.offers
	case <-cctx.Done():
		log.Printf("provider %s timed out: %v", p.ProviderID(), cctx.Err())
		return nil
	}
}
