// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package bootfs

import (
	"context"
	"errors"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ResolveLibraries collects the shared objects required by the given ELF
// executables.
//
// Resolution runs concurrently per executable. The result is deduplicated
// and sorted so archive builds are deterministic. Statically linked
// executables contribute nothing but must not fail the resolution, so an
// [LDDError] for one of the paths is ignored for that path.
func ResolveLibraries(
	ctx context.Context,
	resolver Resolver,
	paths ...string,
) ([]string, error) {
	var (
		mu   sync.Mutex
		libs []string
	)

	group, ctx := errgroup.WithContext(ctx)

	for _, path := range paths {
		group.Go(func() error {
			resolved, err := resolver(ctx, path)
			if err != nil {
				if isStaticBinary(err) {
					return nil
				}

				return err
			}

			mu.Lock()
			libs = append(libs, resolved...)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(libs)

	return slices.Compact(libs), nil
}

// Resolver resolves the shared objects of a single executable. The real one
// is [Ldd].
type Resolver func(ctx context.Context, path string) ([]string, error)

// isStaticBinary reports whether the resolver failed because the binary is
// not dynamically linked. ldd exits non-zero for those, which is not an
// error for archive building.
func isStaticBinary(err error) bool {
	return errors.Is(err, &LDDError{})
}
