package ink

import "github.com/google/uuid"

// eraserSampleSteps is the number of segment-interior samples (beyond t=0)
// used for the hit test, i.e. t in {0, 1/20, ..., 1}. A precision/cost
// tradeoff; not currently exposed as a tunable.
const eraserSampleSteps = 20

// FindStrokesToErase returns the IDs of the strokes in candidates that
// intersect a disk of the given radius centered at point, in first-hit
// order with no duplicates. Erasure is stroke-level: a single touched
// stroke is reported once and removed in full by the caller.
func FindStrokesToErase(candidates []Stroke, point Point, radius float64) []uuid.UUID {
	eraserBB := BoundingBox{
		MinX: point.X - radius, MinY: point.Y - radius,
		MaxX: point.X + radius, MaxY: point.Y + radius,
	}

	var hits []uuid.UUID
	for _, stroke := range candidates {
		if stroke.IsEraser {
			continue
		}
		if !stroke.BoundingBox.IsValid() {
			continue
		}
		if !stroke.BoundingBox.Intersects(eraserBB) {
			continue
		}
		if strokeHitByDisk(stroke, point, radius) {
			hits = append(hits, stroke.ID)
		}
	}
	return hits
}

// strokeHitByDisk reports whether any sampled point along stroke's segments
// falls within radius (plus that sample's half-width) of point.
func strokeHitByDisk(stroke Stroke, point Point, radius float64) bool {
	for _, seg := range stroke.Segments {
		for i := 0; i <= eraserSampleSteps; i++ {
			t := float64(i) / float64(eraserSampleSteps)
			sample := Evaluate(seg, t)
			threshold := radius + WidthAt(seg, t)/2
			if sample.Dist(point) <= threshold {
				return true
			}
		}
	}
	return false
}

// dedupeUUIDs returns ids with duplicates removed, preserving the order of
// first occurrence.
func dedupeUUIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
