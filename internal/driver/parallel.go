package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RenderAll рендерит несколько файлов параллельно. Результаты возвращаются
// в порядке paths. Первая ошибка отменяет оставшуюся работу.
func RenderAll(ctx context.Context, paths []string, maxDiagnostics, jobs int) ([]*RenderResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*RenderResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := RenderFile(path, maxDiagnostics)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
