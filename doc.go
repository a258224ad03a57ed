// Package polydual computes polygonal duals of vertex-weighted plane graphs
// and relaxes them into cartograms, where every region's area tracks its
// weight while the topology stays editable.
//
// What is a polygonal dual?
//
//	Every vertex of the source graph becomes a named region (a simple
//	polygon), and every source edge becomes a shared boundary between two
//	regions. The regions tile a simply connected area with no gaps.
//
// Packages:
//
//	geometry/  - vectors (gonum r2), angles in turns, segments, polygons,
//	             convex hull, smallest enclosing circle, affine transforms
//	planar/    - plane straight-line graph, rotation system, face tracing,
//	             crossing detection, weighted (labeled) input graphs
//	dual/      - the polygonal dual, its five invariants, the seven
//	             topology operations and the fair random sampler
//	transform/ - builds the initial dual from a weighted plane graph
//	force/     - force terms (repulsion, attraction, pressure, angle) and the
//	             crossing-free PrEd applicator
//	quality/   - cartographic error and polygon complexity scores
//	builder/   - deterministic source fixtures (diamond, wheel, grids)
//	engine/    - serialized owner: optimization loop, edits, YAML config,
//	             zap logging, Prometheus metrics
//
// Quick example:
//
//	    A
//	   / \          builder.Diamond() → transform.Transform → engine.New
//	  B───C         then engine.Step() until the cartographic error settles.
//	   \ /
//	    D
//
// Dive into examples/ for runnable scenarios.
package polydual
