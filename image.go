package jumpflood

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Scheme defines how a diagram should be drawn.
type Scheme struct {
	// Undefined is used for cells that no seed reached.
	// If nil the Config Undefined colour is used.
	Undefined color.Color

	// Marker is used for marker dots (see MarkerRadius).
	// If nil the Config Marker colour is used.
	Marker color.Color

	// MarkerRadius, if > 0 & markers are showing, draws a dot of this radius
	// over each seed. Otherwise markers are only the single seed cell.
	MarkerRadius float64
}

// DefaultScheme returns a reasonable default Scheme; unreached cells are
// drawn in a colour that stands out & seeds get small black dots.
func DefaultScheme() *Scheme {
	return &Scheme{
		Undefined:    colornames.Magenta,
		Marker:       colornames.Black,
		MarkerRadius: 2,
	}
}

// Image returns the current grid as an image, cell (x, y) is pixel (x, y).
// The top byte of cell colours is ignored, every pixel is opaque.
func (d *Diagram) Image(scheme *Scheme) image.Image {
	if scheme == nil {
		scheme = &Scheme{}
	}

	bnds := d.grid.Bounds()
	im := image.NewRGBA(bnds)

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		row := d.grid.Row(dy)
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			c := row[dx]
			if !c.Assigned() && scheme.Undefined != nil {
				im.Set(dx, dy, scheme.Undefined)
				continue
			}
			im.SetRGBA(dx, dy, c.Colour.Color())
		}
	}

	if !d.markers || scheme.MarkerRadius <= 0 || d.seeds == nil {
		return im
	}

	var marker color.Color = d.cfg.Marker.Color()
	if scheme.Marker != nil {
		marker = scheme.Marker
	}

	ctx := gg.NewContextForRGBA(im)
	ctx.SetColor(marker)
	for _, p := range d.seeds.Points {
		ctx.DrawCircle(float64(p.X)+0.5, float64(p.Y)+0.5, scheme.MarkerRadius)
	}
	ctx.Fill()

	return im
}
