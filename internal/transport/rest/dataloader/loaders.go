package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
)

func newByIDBatchFn[T any](
	fetch func(ctx context.Context, ids []string) ([]T, error),
	key func(T) string,
) dataloader.BatchFunc[string, *T] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*T] {
		rows, err := fetch(ctx, keys)
		if err != nil {
			return errorResults[*T](len(keys), err)
		}

		byID := make(map[string]*T, len(rows))
		for i := range rows {
			row := rows[i]
			byID[key(row)] = &row
		}

		results := make([]*dataloader.Result[*T], len(keys))
		for i, k := range keys {
			results[i] = &dataloader.Result[*T]{Data: byID[k]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
