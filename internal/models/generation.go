package models

const (
	DefaultAspectRatio = "4:3"
	DefaultColorScheme = "purple"
	DefaultModelStyle  = "stylized"
	DefaultModelFormat = "svg"
)

type Art2DGenerationRequest struct {
	Prompt      string `json:"prompt" validate:"required,notblank,min=3,max=1000"`
	Style       string `json:"style" validate:"required,max=32"`
	AspectRatio string `json:"aspectRatio" validate:"omitempty,max=16"`
	ColorScheme string `json:"colorScheme" validate:"omitempty,max=32"`
	Complexity  int    `json:"complexity" validate:"min=1,max=5"`
	NumImages   int    `json:"numImages" validate:"min=1,max=4"`
}

// ApplyDefaults fills the optional presentation fields.
func (r *Art2DGenerationRequest) ApplyDefaults() {
	if r.AspectRatio == "" {
		r.AspectRatio = DefaultAspectRatio
	}
	if r.ColorScheme == "" {
		r.ColorScheme = DefaultColorScheme
	}
}

func (r Art2DGenerationRequest) Settings() Settings {
	return Settings{
		"style":       r.Style,
		"aspectRatio": r.AspectRatio,
		"colorScheme": r.ColorScheme,
		"complexity":  r.Complexity,
	}
}

type Model3DGenerationRequest struct {
	Prompt         string `json:"prompt" validate:"required,notblank,min=3,max=1000"`
	ModelType      string `json:"modelType" validate:"required,max=32"`
	DetailLevel    int    `json:"detailLevel" validate:"min=1,max=5"`
	TextureQuality int    `json:"textureQuality" validate:"min=1,max=5"`
	Style          string `json:"style" validate:"omitempty,max=32"`
	Format         string `json:"format" validate:"omitempty,max=16"`
}

func (r *Model3DGenerationRequest) ApplyDefaults() {
	if r.Style == "" {
		r.Style = DefaultModelStyle
	}
	if r.Format == "" {
		r.Format = DefaultModelFormat
	}
}

func (r Model3DGenerationRequest) Settings() Settings {
	return Settings{
		"modelType":      r.ModelType,
		"detailLevel":    r.DetailLevel,
		"textureQuality": r.TextureQuality,
		"style":          r.Style,
		"format":         r.Format,
	}
}

// PreviewResponse carries rendered images that were not persisted.
type PreviewResponse struct {
	Images   []string `json:"images"`
	Settings Settings `json:"settings"`
}

// QuotaResponse summarises what a user may still generate.
type QuotaResponse struct {
	IsPremium            bool  `json:"isPremium"`
	Unlimited            bool  `json:"unlimited"`
	GenerationsRemaining int   `json:"generationsRemaining"`
	Creations            int64 `json:"creations"`
}
