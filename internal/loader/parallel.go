package loader

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"collisions/internal/collision"
	"collisions/internal/datasource/archive"
)

// groupArchives partitions paths (in discovery order) into groups whose
// extraction directories do not overlap. An archive whose directory lies
// under another archive's directory joins that ancestor's group, because
// loading the ancestor reads every table below it. Each group keeps the
// discovery order of its members; groups are ordered by first member.
func groupArchives(paths []string) [][]int {
	dirs := make([]string, len(paths))
	for i, p := range paths {
		dirs[i] = filepath.Clean(archive.Dir(p))
	}

	root := func(d string) string {
		best := d
		for _, a := range dirs {
			if len(a) < len(best) && within(d, a) {
				best = a
			}
		}
		return best
	}

	index := map[string]int{}
	var groups [][]int
	for i, d := range dirs {
		r := root(d)
		g, ok := index[r]
		if !ok {
			g = len(groups)
			index[r] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}

// within reports whether d equals dir or lies below it.
func within(d, dir string) bool {
	if d == dir {
		return true
	}
	if dir == "." {
		return !filepath.IsAbs(d) && d != ".." && !strings.HasPrefix(d, ".."+string(filepath.Separator))
	}
	return strings.HasPrefix(d, dir+string(filepath.Separator))
}

// loadParallel loads independent archive groups concurrently, at most
// Workers at a time. Archives inside a group load sequentially. Results are
// stored per archive and concatenated in discovery order, so the outcome
// matches loadSequential. The first error cancels the remaining groups.
func (l *Loader) loadParallel(ctx context.Context, paths []string) (*Collisions, error) {
	groups := groupArchives(paths)
	parts := make([]*Collisions, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.Workers)
	for _, members := range groups {
		members := members
		g.Go(func() error {
			for _, i := range members {
				c, err := l.FromArchive(gctx, paths[i])
				if err != nil {
					return err
				}
				parts[i] = c
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := collision.NewCollection[*collision.Collision]()
	for _, p := range parts {
		out.Extend(p)
	}
	debugf("loader: groups=%d archives=%d rows=%d", len(groups), len(paths), out.Len())
	return out, nil
}
