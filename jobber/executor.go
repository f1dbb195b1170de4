package jobber

import (
	"context"
	"sync"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
	"github.com/lukaszraczylo/go-jobber-graphql/utils/concurrency"
)

type RunOptions struct {
	// ContinueOnFail records a failing item as {error, pairedItem} instead of aborting.
	ContinueOnFail bool
	// Concurrency bounds how many items run at once. Zero or one runs them in order.
	Concurrency int
}

type itemResult struct {
	err     error
	records []gql.Record
}

// RunItems executes one operation per input item and flattens the results in item
// order. Without ContinueOnFail the first failure aborts the run and is returned.
func (n *Node) RunItems(ctx context.Context, resource Resource, verb Verb, items []Params, opts RunOptions) ([]gql.Record, error) {
	if _, ok := operations[Operation{resource, verb}]; !ok {
		return n.Execute(ctx, resource, verb, nil)
	}
	results := make([]itemResult, len(items))

	if opts.Concurrency <= 1 {
		for i, params := range items {
			recs, err := n.Execute(ctx, resource, verb, params)
			results[i] = itemResult{records: recs, err: err}
			if err != nil && !opts.ContinueOnFail {
				return nil, err
			}
		}
	} else {
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		var (
			once     sync.Once
			firstErr error
		)
		pool := concurrency.NewPool(opts.Concurrency)
		for i, params := range items {
			pool.Enqueue(func(args ...any) {
				idx := args[0].(int)
				if runCtx.Err() != nil {
					results[idx] = itemResult{err: runCtx.Err()}
					return
				}
				recs, err := n.Execute(runCtx, resource, verb, args[1].(Params))
				results[idx] = itemResult{records: recs, err: err}
				if err != nil && !opts.ContinueOnFail {
					once.Do(func() {
						firstErr = err
						cancel()
					})
				}
			}, i, params)
		}
		pool.Wait()
		if firstErr != nil {
			return nil, firstErr
		}
	}

	out := make([]gql.Record, 0, len(items))
	for i, r := range results {
		if r.err != nil {
			n.Logger.Warn(&logging.LogMessage{
				Message: "Item failed",
				Pairs:   map[string]any{"operation": describe(resource, verb), "item": i, "error": r.err.Error()},
			})
			out = append(out, gql.Record{"error": r.err.Error(), "pairedItem": i})
			continue
		}
		out = append(out, r.records...)
	}
	return out, nil
}
