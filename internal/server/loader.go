// Copyright 2026 The AISI Dashboard Authors
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"sync"

	"github.com/aisi-dashboard/aisi/internal/dataset"
)

// Loader returns the dataset for one request along with the path shown to
// the user.
type Loader interface {
	Load(ctx context.Context) (*dataset.Table, string, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) (*dataset.Table, string, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context) (*dataset.Table, string, error) { return f(ctx) }

// ReloadingLoader locates and parses the dataset on every call, so edits to
// the CSV show up on the next page load.
func ReloadingLoader(opts dataset.LocateOptions) Loader {
	return LoaderFunc(func(_ context.Context) (*dataset.Table, string, error) {
		loc, t, err := dataset.Resolve(opts)
		if err != nil {
			return nil, "", err
		}
		return t, loc.Base(), nil
	})
}

// CachedLoader resolves the dataset on first use and serves that table for
// the lifetime of the server. A failed load is retried on the next call.
func CachedLoader(opts dataset.LocateOptions) Loader {
	var (
		mu     sync.Mutex
		table  *dataset.Table
		source string
	)
	return LoaderFunc(func(_ context.Context) (*dataset.Table, string, error) {
		mu.Lock()
		defer mu.Unlock()
		if table != nil {
			return table, source, nil
		}
		loc, t, err := dataset.Resolve(opts)
		if err != nil {
			return nil, "", err
		}
		table, source = t, loc.Base()
		return table, source, nil
	})
}
