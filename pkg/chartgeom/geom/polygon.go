package geom

import "math"

// Point is a 2D pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Polar is a radar vertex in polar form around the chart center.
type Polar struct {
	Angle  float64 `json:"angle"`
	Radius float64 `json:"radius"`
}

// Point converts the polar vertex to a cartesian point around center.
func (v Polar) Point(center Point) Point {
	return Point{
		X: center.X + v.Radius*math.Cos(v.Angle),
		Y: center.Y + v.Radius*math.Sin(v.Angle),
	}
}

// AxisAngle returns the angle of axis i out of n. Axis 0 points up.
func AxisAngle(i, n int) float64 {
	if n <= 0 {
		return -math.Pi / 2
	}
	return float64(i)*(2*math.Pi/float64(n)) - math.Pi/2
}

// NormalizeScore converts a raw score to [0, 1] given the score maximum.
func NormalizeScore(raw, max float64) float64 {
	if max <= 0 || math.IsNaN(max) {
		return 0
	}
	return clamp01(raw / max)
}

// PolarVertices returns one vertex per score. Scores are clamped to [0, 1].
func PolarVertices(scores []float64, radius float64) []Polar {
	if len(scores) == 0 {
		return nil
	}
	if radius < 0 || math.IsNaN(radius) {
		radius = 0
	}
	out := make([]Polar, len(scores))
	for i, s := range scores {
		out[i] = Polar{Angle: AxisAngle(i, len(scores)), Radius: radius * clamp01(s)}
	}
	return out
}

// PolygonVertices returns the closed radar polygon for scores: one point
// per axis followed by the first point again.
func PolygonVertices(scores []float64, radius float64, center Point) []Point {
	polar := PolarVertices(scores, radius)
	if len(polar) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(polar)+1)
	for _, v := range polar {
		pts = append(pts, v.Point(center))
	}
	return append(pts, pts[0])
}

// GridRings returns rings closed regular polygons with n corners, ring r
// having radius*r/rings.
func GridRings(n, rings int, radius float64, center Point) [][]Point {
	if n <= 0 || rings <= 0 {
		return nil
	}
	full := make([]float64, n)
	for i := range full {
		full[i] = 1
	}
	out := make([][]Point, 0, rings)
	for r := 1; r <= rings; r++ {
		out = append(out, PolygonVertices(full, radius*float64(r)/float64(rings), center))
	}
	return out
}

// AxisSpokes returns the outer end point of each of the n axes.
func AxisSpokes(n int, radius float64, center Point) []Point {
	return LabelAnchors(n, radius, 0, center)
}

// LabelAnchors returns positions offset pixels beyond the end of each axis.
func LabelAnchors(n int, radius, offset float64, center Point) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	for i := range out {
		out[i] = Polar{Angle: AxisAngle(i, n), Radius: radius + offset}.Point(center)
	}
	return out
}
