package grid

import (
	"image"
)

// SqrDist is the squared euclidean distance between a & b.
// We only ever compare distances so there's no need for a sqrt.
func SqrDist(a, b image.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
