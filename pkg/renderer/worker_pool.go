package renderer

import (
	"image"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int         // For deterministic ordering
	Image  *image.RGBA // Shared output image to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Bounds image.Rectangle
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering. Workers share one read-only
// tile renderer and write disjoint tile regions of the output image, so no
// locking is needed.
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	tiles       *TileRenderer
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(tiles *TileRenderer, width, height, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer for every tile in the dispatch grid
	maxTiles := ((width + TileSize - 1) / TileSize) * ((height + TileSize - 1) / TileSize)

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
		tiles:       tiles,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := wp.tiles.RenderBounds(task.Tile.Bounds, task.Image)

		wp.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Bounds: task.Tile.Bounds,
			Stats:  stats,
		}
	}
}
