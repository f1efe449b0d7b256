package transition

import "sync"

// task applies fn to every item of data, split in contiguous chunks over
// workersCount goroutines. It returns once every chunk is done.
func task[T any](workersCount int, data []T, fn func(item *T)) {
	dataSize := len(data)
	if workersCount <= 1 || dataSize < workersCount {
		for i := range data {
			fn(&data[i])
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(&data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
