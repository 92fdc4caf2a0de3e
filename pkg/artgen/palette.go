package artgen

import "strings"

// Color schemes understood by the 2D generator.
const (
	SchemeRed    = "red"
	SchemeBlue   = "blue"
	SchemeGreen  = "green"
	SchemeYellow = "yellow"
	SchemePurple = "purple"
)

// 2D aspect ratios.
const (
	AspectSquare     = "1:1"
	AspectLandscape  = "4:3"
	AspectWidescreen = "16:9"
)

// Model types understood by the 3D generator. ModelCube is the fallback template.
const (
	ModelCharacter    = "character"
	ModelEnvironment  = "environment"
	ModelArchitecture = "architecture"
	ModelObject       = "object"
	ModelAbstract     = "abstract"
	ModelVehicle      = "vehicle"
	ModelBuilding     = "building"
	ModelFurniture    = "furniture"
	ModelCube         = "cube"
)

var palettes2D = map[string][2]string{
	SchemeRed:    {"#FF5555", "#AA2222"},
	SchemeBlue:   {"#5555FF", "#2222AA"},
	SchemeGreen:  {"#55FF55", "#22AA22"},
	SchemeYellow: {"#FFFF55", "#AAAA22"},
	SchemePurple: {"#FF55FF", "#AA22AA"},
}

var palettes3D = map[string][]string{
	ModelCharacter:    {"#6E4AFF", "#47A0FF", "#65DFFF"},
	ModelEnvironment:  {"#4CAF50", "#8BC34A", "#CDDC39"},
	ModelArchitecture: {"#9C27B0", "#673AB7", "#3F51B5"},
	ModelObject:       {"#FF5722", "#FF9800", "#FFC107"},
	ModelAbstract:     {"#F44336", "#E91E63", "#9C27B0"},
	ModelVehicle:      {"#cccccc", "#999999", "#666666"},
	ModelBuilding:     {"#f2d9d9", "#d9b3b3", "#bf8c8c"},
	ModelFurniture:    {"#f2e6d9", "#d9c2a6", "#bf9f73"},
}

var defaultPalette3D = []string{"#e6f2ff", "#b3d9ff", "#80bfff"}

// Palette2D returns the primary and secondary color for a color scheme.
// Unknown schemes get the purple palette.
func Palette2D(colorScheme string) (primary, secondary string) {
	p, ok := palettes2D[strings.ToLower(strings.TrimSpace(colorScheme))]
	if !ok {
		p = palettes2D[SchemePurple]
	}
	return p[0], p[1]
}

// Canvas returns the canvas dimensions for an aspect ratio. Unknown ratios
// are rendered as 4:3.
func Canvas(aspectRatio string) (width, height int) {
	switch strings.TrimSpace(aspectRatio) {
	case AspectSquare:
		return 800, 800
	case AspectWidescreen:
		return 800, 450
	default:
		return 800, 600
	}
}

// Palette3D returns the three model colors for a model type.
func Palette3D(modelType string) []string {
	p, ok := palettes3D[normalize(modelType)]
	if !ok {
		p = defaultPalette3D
	}
	out := make([]string, len(p))
	copy(out, p)
	return out
}

// TemplateFor returns the drawing template used for a model type.
func TemplateFor(modelType string) string {
	t := normalize(modelType)
	if _, ok := modelTemplates[t]; ok {
		return t
	}
	return ModelCube
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
