package artgen

import (
	"fmt"
	"math"
	"strings"
)

// 2D styles with dedicated shape sets. Any other style draws circles.
const (
	StyleAbstract   = "abstract"
	StylePixel      = "pixel"
	StyleWatercolor = "watercolor"
)

const (
	shapesPerLevel = 5
	pixelSize      = 20
)

// Art2DOptions describes one 2D artwork.
type Art2DOptions struct {
	Prompt      string
	Style       string
	AspectRatio string
	ColorScheme string
	Complexity  int
}

// Art2D renders a single 2D artwork.
func (g *Generator) Art2D(opts Art2DOptions) Image {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.art2D(opts)
}

// Art2DBatch renders count independent artworks for the same options.
// count is clamped to 1..MaxImagesPerRun.
func (g *Generator) Art2DBatch(opts Art2DOptions, count int) []Image {
	if count < 1 {
		count = 1
	}
	if count > MaxImagesPerRun {
		count = MaxImagesPerRun
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	images := make([]Image, 0, count)
	for i := 0; i < count; i++ {
		images = append(images, g.art2D(opts))
	}
	return images
}

func (g *Generator) art2D(opts Art2DOptions) Image {
	primary, secondary := Palette2D(opts.ColorScheme)
	width, height := Canvas(opts.AspectRatio)
	complexity := clampLevel(opts.Complexity)
	style := normalize(opts.Style)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, width, height, width, height)
	b.WriteString(`<rect width="100%" height="100%" fill="#f8f8f8"/>`)
	if style == StyleWatercolor {
		b.WriteString(`<defs><filter id="watercolor" x="-50%" y="-50%" width="200%" height="200%"><feGaussianBlur stdDeviation="10"/></filter></defs>`)
	}

	for i := 0; i < complexity*shapesPerLevel; i++ {
		x := g.rnd.Intn(width)
		y := g.rnd.Intn(height)
		size := g.rnd.Intn(100+complexity*20) + 20

		switch style {
		case StyleAbstract:
			g.abstractShape(&b, x, y, size, primary, secondary)
		case StylePixel:
			fmt.Fprintf(&b, `<rect class="shape" x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
				x/pixelSize*pixelSize, y/pixelSize*pixelSize, pixelSize, pixelSize, g.pick(primary, secondary))
		case StyleWatercolor:
			fmt.Fprintf(&b, `<circle class="shape" cx="%d" cy="%d" r="%d" fill="%s" opacity="%s" filter="url(#watercolor)"/>`,
				x, y, size, g.pick(primary, secondary), num(0.1+g.rnd.Float64()*0.4))
		default:
			fmt.Fprintf(&b, `<circle class="shape" cx="%d" cy="%d" r="%s" fill="%s" opacity="%s"/>`,
				x, y, num(float64(size)/2), g.pick(primary, secondary), num(0.2+g.rnd.Float64()*0.8))
		}
	}

	fmt.Fprintf(&b, `<text x="%s" y="%d" text-anchor="middle" font-family="Arial" font-size="14" fill="#333333">%s</text>`,
		num(float64(width)/2), height-20, promptLabel(opts.Prompt))
	b.WriteString(`</svg>`)

	return Image{SVG: b.String(), Width: width, Height: height, Template: style}
}

func (g *Generator) abstractShape(b *strings.Builder, x, y, size int, primary, secondary string) {
	switch g.rnd.Intn(3) {
	case 0:
		fmt.Fprintf(b, `<circle class="shape" cx="%d" cy="%d" r="%s" fill="%s" opacity="%s"/>`,
			x, y, num(float64(size)/2), g.pick(primary, secondary), num(0.2+g.rnd.Float64()*0.8))
	case 1:
		fmt.Fprintf(b, `<rect class="shape" x="%d" y="%d" width="%d" height="%d" fill="%s" opacity="%s"/>`,
			x, y, size, size, g.pick(primary, secondary), num(0.2+g.rnd.Float64()*0.8))
	default:
		points := make([]string, 0, 6)
		for j := 0; j < 6; j++ {
			angle := float64(j) / 6 * math.Pi * 2
			points = append(points, num(float64(x)+math.Cos(angle)*float64(size))+","+num(float64(y)+math.Sin(angle)*float64(size)))
		}
		fmt.Fprintf(b, `<polygon class="shape" points="%s" fill="%s" opacity="%s"/>`,
			strings.Join(points, " "), g.pick(primary, secondary), num(0.2+g.rnd.Float64()*0.8))
	}
}
