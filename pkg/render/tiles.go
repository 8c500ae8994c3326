package render

import (
	"runtime"
	"sync"

	"github.com/nelsonogbuigwe/ascii-renderer/pkg/models"
)

// DrawMeshParallel rasterizes the mesh across workers goroutines, each
// owning a disjoint band of framebuffer rows. Culling, shading, and
// transforms run once up front; every worker then scans all prepared
// triangles but writes only cells inside its band, so no cell is touched
// by two goroutines and the output matches DrawMesh exactly.
//
// workers <= 0 uses GOMAXPROCS.
func (r *Rasterizer) DrawMeshParallel(mesh *models.Mesh, workers int) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > r.fb.Height {
		workers = r.fb.Height
	}
	if workers <= 1 {
		r.DrawMesh(mesh)
		return
	}

	prepared := make([]shadedTriangle, 0, len(mesh.Triangles))
	for _, tri := range mesh.Triangles {
		if st, ok := r.prepare(tri); ok {
			prepared = append(prepared, st)
		}
	}
	if len(prepared) == 0 {
		return
	}

	// Split rows into near-equal bands, the first (height mod workers)
	// bands one row taller.
	band := r.fb.Height / workers
	extra := r.fb.Height % workers

	var wg sync.WaitGroup
	rowMin := 0
	for w := range workers {
		rows := band
		if w < extra {
			rows++
		}
		rowMax := rowMin + rows - 1

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for _, st := range prepared {
				if st.maxY < lo || st.minY > hi {
					continue
				}
				r.fill(st, lo, hi)
			}
		}(rowMin, rowMax)

		rowMin = rowMax + 1
	}
	wg.Wait()
}
