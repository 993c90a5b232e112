package render

import "sync"

// task fans the processing of items out to parallel workers, each worker
// taking one contiguous chunk.
func task[T any](workersCount int, items []T, fn func(T)) {
	if len(items) == 0 {
		return
	}

	workers := min(workersCount, len(items))
	chunkSize := (len(items) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(items); start += chunkSize {
		end := min(start+chunkSize, len(items))

		wg.Add(1)
		go func(chunk []T) {
			defer wg.Done()
			for _, item := range chunk {
				fn(item)
			}
		}(items[start:end])
	}
	wg.Wait()
}

// band is a horizontal slice of the framebuffer, rows [yMin, yMax).
type band struct {
	yMin int
	yMax int
}

// splitBands cuts the framebuffer rows into one band per worker. Bands
// are disjoint, so workers never write the same pixel.
func splitBands(height, workersCount int) []band {
	workers := min(workersCount, height)
	if workers < 1 {
		return nil
	}
	chunkSize := (height + workers - 1) / workers

	var bands []band
	for start := 0; start < height; start += chunkSize {
		bands = append(bands, band{yMin: start, yMax: min(start+chunkSize, height)})
	}

	return bands
}
