// SPDX-License-Identifier: MIT

// Benchmarks for Engine.Solve on hemispheres of growing resolution, cold
// (solvers rebuilt every call) and warm (cached factorisation/eigenvector).
package texcoord_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/conformal/meshgen"
	"github.com/katalvlaran/conformal/texcoord"
)

// benchRings are the hemisphere resolutions; segments = 4·rings.
var benchRings = []int{4, 8, 16}

// sink to defeat dead-code elimination
var sinkRes texcoord.Result

func benchRequest(b *testing.B, rings int, m texcoord.Method) texcoord.Request {
	b.Helper()
	segs := 4 * rings
	h, err := meshgen.Hemisphere(rings, segs)
	if err != nil {
		b.Fatal(err)
	}
	boundary, err := h.Boundary()
	if err != nil {
		b.Fatal(err)
	}

	return texcoord.Request{
		Mesh:     h,
		Boundary: boundary,
		RefVerts: [2]int{meshgen.RingVertex(segs, rings, 0), meshgen.RingVertex(segs, rings, segs/2)},
		Method:   m,
	}
}

func benchSolve(b *testing.B, m texcoord.Method, cold bool) {
	b.ReportAllocs()
	ctx := context.Background()
	for _, rings := range benchRings {
		b.Run(fmt.Sprintf("rings=%d", rings), func(b *testing.B) {
			req := benchRequest(b, rings, m)
			eng := texcoord.NewEngine()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if cold {
					eng.Invalidate()
				}
				res, err := eng.Solve(ctx, req)
				if err != nil {
					b.Fatal(err)
				}
				sinkRes = res
			}
		})
	}
}

func BenchmarkSolve_LSCM_Cold(b *testing.B) { benchSolve(b, texcoord.LeastSquaresConformal, true) }
func BenchmarkSolve_LSCM_Warm(b *testing.B) { benchSolve(b, texcoord.LeastSquaresConformal, false) }
func BenchmarkSolve_SCM_Cold(b *testing.B)  { benchSolve(b, texcoord.SpectralConformal, true) }
func BenchmarkSolve_SCM_Warm(b *testing.B)  { benchSolve(b, texcoord.SpectralConformal, false) }
