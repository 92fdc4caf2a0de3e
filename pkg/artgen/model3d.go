package artgen

import (
	"fmt"
	"strings"
)

// 3D rendering styles with an overlay. Other styles draw the bare model.
const (
	StyleRealistic = "realistic"
	StyleLowPoly   = "lowpoly"
)

const (
	modelCanvas     = 500
	textureMinLevel = 4
)

// Model3DOptions describes one 3D model placeholder.
type Model3DOptions struct {
	Prompt         string
	ModelType      string
	Style          string
	DetailLevel    int
	TextureQuality int
}

type modelTemplate func(g *Generator, c []string, detail int) string

var modelTemplates = map[string]modelTemplate{
	ModelCharacter:    characterModel,
	ModelEnvironment:  environmentModel,
	ModelArchitecture: architectureModel,
	ModelObject:       objectModel,
	ModelAbstract:     abstractModel,
	ModelVehicle:      vehicleModel,
	ModelBuilding:     buildingModel,
	ModelFurniture:    furnitureModel,
	ModelCube:         cubeModel,
}

// Model3D renders a schematic model for the given options. Unknown model
// types use the cube template and unknown styles get no overlay.
func (g *Generator) Model3D(opts Model3DOptions) Image {
	g.mu.Lock()
	defer g.mu.Unlock()

	template := TemplateFor(opts.ModelType)
	colors := Palette3D(opts.ModelType)
	detail := clampLevel(opts.DetailLevel)
	texture := clampLevel(opts.TextureQuality)

	model := modelTemplates[template](g, colors, detail)
	model = applyModelStyle(normalize(opts.Style), model, colors)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		modelCanvas, modelCanvas, modelCanvas, modelCanvas)
	b.WriteString(`<rect width="100%" height="100%" fill="#f8f8f8"/>`)

	groupAttrs := fmt.Sprintf(`class="model model-%s"`, template)
	if texture >= textureMinLevel {
		fmt.Fprintf(&b, `<defs><filter id="texture"><feTurbulence type="fractalNoise" baseFrequency="0.04" numOctaves="%d" result="noise"/><feDisplacementMap in="SourceGraphic" in2="noise" scale="5"/></filter></defs>`, texture)
		groupAttrs += ` filter="url(#texture)"`
	}
	fmt.Fprintf(&b, `<g %s>%s</g>`, groupAttrs, model)

	fmt.Fprintf(&b, `<text x="250" y="470" text-anchor="middle" font-family="Arial" font-size="14" fill="#333333">%s</text>`,
		promptLabel(opts.Prompt))
	b.WriteString(`</svg>`)

	return Image{SVG: b.String(), Width: modelCanvas, Height: modelCanvas, Template: template}
}

func applyModelStyle(style, model string, c []string) string {
	switch style {
	case StyleRealistic:
		return `<defs>` +
			`<filter id="shadow" x="-20%" y="-20%" width="140%" height="140%"><feDropShadow dx="5" dy="5" stdDeviation="5" flood-opacity="0.3"/></filter>` +
			fmt.Sprintf(`<linearGradient id="grad1" x1="0%%" y1="0%%" x2="100%%" y2="100%%"><stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/></linearGradient>`, c[0], c[1]) +
			`</defs>` +
			`<ellipse cx="250" cy="440" rx="140" ry="18" fill="url(#grad1)" opacity="0.35"/>` +
			`<g filter="url(#shadow)">` + model + `</g>`
	case StyleLowPoly:
		return `<defs>` +
			`<pattern id="polygonPattern" width="30" height="30" patternUnits="userSpaceOnUse">` +
			fmt.Sprintf(`<polygon points="0,0 15,30 30,0" fill="%s" fill-opacity="0.1"/><polygon points="0,30 30,30 15,0" fill="%s" fill-opacity="0.1"/>`, c[0], c[1]) +
			`</pattern></defs>` +
			`<rect x="0" y="0" width="500" height="500" fill="url(#polygonPattern)"/>` +
			model
	default:
		return model
	}
}

func detailFactor(detail int) float64 {
	return float64(detail) / maxLevel
}

func characterModel(_ *Generator, c []string, detail int) string {
	df := detailFactor(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="150" y="100" width="200" height="300" rx="20" fill="%s"/>`, c[0])
	fmt.Fprintf(&b, `<circle cx="250" cy="100" r="60" fill="%s"/>`, c[1])
	fmt.Fprintf(&b, `<rect x="175" y="400" width="50" height="100" fill="%s"/>`, c[2])
	fmt.Fprintf(&b, `<rect x="275" y="400" width="50" height="100" fill="%s"/>`, c[2])
	for _, cx := range []int{215, 285} {
		fmt.Fprintf(&b, `<circle cx="%d" cy="90" r="%s" fill="white"/>`, cx, num(10+df*5))
		fmt.Fprintf(&b, `<circle cx="%d" cy="90" r="%s" fill="black"/>`, cx, num(5+df*3))
	}
	fmt.Fprintf(&b, `<path d="M 220 130 Q 250 %s 280 130" fill="none" stroke="%s" stroke-width="%s"/>`, num(150+df*10), c[2], num(2+df*2))
	if detail > 3 {
		fmt.Fprintf(&b, `<path d="M 180 60 Q 200 40 220 60" fill="none" stroke="%s" stroke-width="2"/>`, c[2])
		fmt.Fprintf(&b, `<path d="M 320 60 Q 300 40 280 60" fill="none" stroke="%s" stroke-width="2"/>`, c[2])
	}
	return b.String()
}

func environmentModel(g *Generator, c []string, detail int) string {
	df := detailFactor(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="50" y="300" width="400" height="100" fill="%s"/>`, c[0])
	fmt.Fprintf(&b, `<path d="M 100 300 L 150 200 L 200 300 Z" fill="%s"/>`, c[1])
	fmt.Fprintf(&b, `<path d="M 220 300 L 270 150 L 320 300 Z" fill="%s"/>`, c[1])
	fmt.Fprintf(&b, `<path d="M 340 300 L 390 220 L 440 300 Z" fill="%s"/>`, c[1])
	fmt.Fprintf(&b, `<circle cx="350" cy="100" r="%s" fill="%s"/>`, num(30+df*10), c[2])
	if detail > 2 {
		for i := 0; i < int(5*df); i++ {
			fmt.Fprintf(&b, `<circle cx="%d" cy="%s" r="%s" fill="%s"/>`,
				100+i*80, num(280-g.rnd.Float64()*20), num(5+g.rnd.Float64()*5), c[2])
		}
	}
	if detail > 3 {
		fmt.Fprintf(&b, `<path d="M 50 320 Q 250 %s 450 320" fill="none" stroke="%s" stroke-width="2"/>`, num(340+df*10), c[2])
	}
	return b.String()
}

func architectureModel(g *Generator, c []string, detail int) string {
	df := detailFactor(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="150" y="150" width="200" height="250" fill="%s"/>`, c[0])
	for _, w := range [][2]int{{175, 175}, {275, 175}, {175, 250}, {275, 250}} {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="50" height="50" fill="%s"/>`, w[0], w[1], c[1])
	}
	fmt.Fprintf(&b, `<rect x="200" y="325" width="100" height="75" fill="%s"/>`, c[2])
	fmt.Fprintf(&b, `<polygon points="150,150 250,50 350,150" fill="%s"/>`, c[2])
	if detail > 3 {
		for i := 0; i < int(10*df); i++ {
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="20" height="20" fill="%s" opacity="%s"/>`,
				160+(i%5)*40, 200+(i/5)*30, c[i%3], num(0.5+g.rnd.Float64()*0.5))
		}
	}
	return b.String()
}

func objectModel(_ *Generator, c []string, detail int) string {
	df := detailFactor(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="175" y="175" width="150" height="150" rx="%s" fill="%s"/>`, num(10*df), c[0])
	fmt.Fprintf(&b, `<circle cx="250" cy="250" r="%s" fill="%s"/>`, num(50*df), c[1])
	fmt.Fprintf(&b, `<rect x="200" y="175" width="100" height="%s" fill="%s"/>`, num(20+10*df), c[2])
	if detail > 2 {
		fmt.Fprintf(&b, `<circle cx="220" cy="220" r="%s" fill="%s"/>`, num(10+5*df), c[2])
		fmt.Fprintf(&b, `<circle cx="280" cy="220" r="%s" fill="%s"/>`, num(10+5*df), c[2])
	}
	if detail > 3 {
		fmt.Fprintf(&b, `<path d="M 220 270 Q 250 %s 280 270" fill="none" stroke="%s" stroke-width="%s"/>`, num(290+df*10), c[2], num(2+df*2))
	}
	return b.String()
}

func abstractModel(g *Generator, c []string, detail int) string {
	df := detailFactor(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<polygon points="250,100 350,200 300,300 200,300 150,200" fill="%s"/>`, c[0])
	fmt.Fprintf(&b, `<circle cx="250" cy="200" r="%s" fill="%s"/>`, num(30+df*20), c[1])
	if detail > 2 {
		for i := 0; i < int(20*df); i++ {
			fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" fill="%s" opacity="%s"/>`,
				num(150+g.rnd.Float64()*200), num(150+g.rnd.Float64()*200), num(2+g.rnd.Float64()*10),
				c[i%3], num(0.3+g.rnd.Float64()*0.7))
		}
	}
	if detail > 3 {
		fmt.Fprintf(&b, `<path d="M 150 %s Q 250 %s 350 %s" fill="none" stroke="%s" stroke-width="%s"/>`,
			num(230+df*20), num(330-df*30), num(230+df*20), c[2], num(1+df*3))
	}
	return b.String()
}

// The remaining templates are drawn around the origin and centered on the
// canvas.
func centered(body string) string {
	return `<g transform="translate(250 230)">` + body + `</g>`
}

func stroke(detail int) string {
	return num(1 + detailFactor(detail))
}

func vehicleModel(_ *Generator, c []string, detail int) string {
	sw := stroke(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="-100" y="-30" width="200" height="60" rx="10" fill="%s" stroke="#333" stroke-width="%s"/>`, c[0], sw)
	fmt.Fprintf(&b, `<rect x="-70" y="-60" width="140" height="40" rx="5" fill="%s" stroke="#333" stroke-width="%s"/>`, c[1], sw)
	fmt.Fprintf(&b, `<circle cx="-60" cy="40" r="20" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	fmt.Fprintf(&b, `<circle cx="60" cy="40" r="20" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	fmt.Fprintf(&b, `<rect x="-90" y="0" width="30" height="10" fill="%s"/>`, c[1])
	fmt.Fprintf(&b, `<rect x="60" y="0" width="30" height="10" fill="%s"/>`, c[1])
	if detail > 3 {
		fmt.Fprintf(&b, `<circle cx="-60" cy="40" r="8" fill="%s"/><circle cx="60" cy="40" r="8" fill="%s"/>`, c[0], c[0])
		fmt.Fprintf(&b, `<line x1="0" y1="-58" x2="0" y2="-22" stroke="#333" stroke-width="%s"/>`, sw)
	}
	return centered(b.String())
}

func buildingModel(_ *Generator, c []string, detail int) string {
	sw := stroke(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="-100" y="-120" width="200" height="240" fill="%s" stroke="#333" stroke-width="%s"/>`, c[0], sw)
	for _, y := range []int{-100, -40, 20} {
		for _, x := range []int{-80, 40} {
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="40" height="40" fill="%s" stroke="#333" stroke-width="%s"/>`, x, y, c[1], sw)
			if detail > 3 {
				fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#333"/>`, x+20, y, x+20, y+40)
			}
		}
	}
	fmt.Fprintf(&b, `<rect x="-20" y="60" width="40" height="60" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	if detail > 2 {
		fmt.Fprintf(&b, `<rect x="-110" y="-130" width="220" height="10" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	}
	return centered(b.String())
}

func furnitureModel(_ *Generator, c []string, detail int) string {
	sw := stroke(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<rect x="-60" y="-80" width="120" height="20" fill="%s" stroke="#333" stroke-width="%s"/>`, c[0], sw)
	fmt.Fprintf(&b, `<rect x="-60" y="-60" width="120" height="20" fill="%s" stroke="#333" stroke-width="%s"/>`, c[1], sw)
	fmt.Fprintf(&b, `<rect x="-60" y="-40" width="10" height="80" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	fmt.Fprintf(&b, `<rect x="50" y="-40" width="10" height="80" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	fmt.Fprintf(&b, `<rect x="-50" y="30" width="10" height="10" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	fmt.Fprintf(&b, `<rect x="40" y="30" width="10" height="10" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	if detail > 3 {
		fmt.Fprintf(&b, `<rect x="-50" y="-56" width="100" height="12" rx="6" fill="%s" opacity="0.6"/>`, c[0])
	}
	return centered(b.String())
}

func cubeModel(_ *Generator, c []string, detail int) string {
	sw := stroke(detail)
	var b strings.Builder
	fmt.Fprintf(&b, `<polygon points="0,-80 80,0 0,80 -80,0" fill="%s" stroke="#333" stroke-width="%s"/>`, c[0], sw)
	fmt.Fprintf(&b, `<polygon points="0,-80 80,0 80,-80" fill="%s" stroke="#333" stroke-width="%s"/>`, c[1], sw)
	fmt.Fprintf(&b, `<polygon points="80,0 0,80 80,80" fill="%s" stroke="#333" stroke-width="%s"/>`, c[2], sw)
	if detail > 3 {
		b.WriteString(`<line x1="0" y1="-80" x2="0" y2="80" stroke="#333" stroke-opacity="0.4"/>`)
		b.WriteString(`<line x1="-80" y1="0" x2="80" y2="0" stroke="#333" stroke-opacity="0.4"/>`)
	}
	return centered(b.String())
}
