// Package route chooses which extraction strategy handles a statement.
package route

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/cleared-dev/passbook/internal/extract"
	"github.com/cleared-dev/passbook/internal/model"
)

// dedicated maps banks with a known layout to the one strategy that reads it.
var dedicated = map[model.Bank]extract.Kind{
	model.BankSBI:   extract.KindStructured,
	model.BankHDFC:  extract.KindTextLayout,
	model.BankICICI: extract.KindStream,
}

// Result is the output of one strategy.
type Result struct {
	Kind  extract.Kind
	Table model.RawTable
}

// Router runs strategies from a registry.
type Router struct {
	registry *extract.Registry
}

// New creates a Router over registry.
func New(registry *extract.Registry) *Router {
	return &Router{registry: registry}
}

// Route extracts the statement at path. Banks with a dedicated strategy use
// only that strategy, even when it finds nothing. Every other bank runs all
// strategies in priority order and keeps the largest table.
func (r *Router) Route(bank model.Bank, path string) (Result, error) {
	if kind, ok := dedicated[bank]; ok {
		res, err := r.run(kind, path)
		if err != nil {
			return Result{}, err
		}
		log.Info().Str("bank", string(bank)).Str("strategy", string(kind)).Int("rows", res.Table.Len()).Msg("dedicated strategy")
		return res, nil
	}

	results := make([]Result, 0, len(extract.Priority))
	for _, kind := range extract.Priority {
		res, err := r.run(kind, path)
		if err != nil {
			return Result{}, err
		}
		log.Debug().Str("strategy", string(kind)).Int("rows", res.Table.Len()).Msg("candidate")
		results = append(results, res)
	}

	best := Pick(results)
	log.Info().Str("bank", string(bank)).Str("strategy", string(best.Kind)).Int("rows", best.Table.Len()).Msg("picked strategy")
	return best, nil
}

func (r *Router) run(kind extract.Kind, path string) (Result, error) {
	s := r.registry.Get(kind)
	if s == nil {
		return Result{}, fmt.Errorf("no %s strategy registered", kind)
	}
	t, err := s.Extract(path)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: kind, Table: t}, nil
}

// Pick returns the result with the most rows. Ties go to the earliest
// result. An empty input yields the zero Result.
func Pick(results []Result) Result {
	var best Result
	for i, res := range results {
		if i == 0 || res.Table.Len() > best.Table.Len() {
			best = res
		}
	}
	return best
}
