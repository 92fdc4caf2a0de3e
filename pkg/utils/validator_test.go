package utils

import (
	"errors"
	"testing"

	"github.com/sefazor/galbi-backend/internal/models"
)

func validArt2D() models.Art2DGenerationRequest {
	return models.Art2DGenerationRequest{
		Prompt:      "a red sunset",
		Style:       "abstract",
		AspectRatio: "4:3",
		ColorScheme: "red",
		Complexity:  3,
		NumImages:   2,
	}
}

func TestValidator_Art2DRequest(t *testing.T) {
	v := NewValidator()
	if err := v.Struct(validArt2D()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := validArt2D()
	req.Complexity = 6
	req.NumImages = 0
	err := v.Struct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := map[string]string{}
	for _, fe := range FieldErrors(err) {
		fields[fe.Field] = fe.Rule
	}
	if fields["complexity"] != "max" {
		t.Errorf("complexity rule = %q, want max", fields["complexity"])
	}
	if fields["numImages"] != "min" {
		t.Errorf("numImages rule = %q, want min", fields["numImages"])
	}
}

func TestValidator_BlankPrompt(t *testing.T) {
	v := NewValidator()
	req := validArt2D()
	req.Prompt = "     "
	errs := FieldErrors(v.Struct(req))
	if len(errs) != 1 || errs[0].Field != "prompt" || errs[0].Rule != "notblank" {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	if errs[0].Message != "prompt must not be blank" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestValidator_Model3DRequiresFields(t *testing.T) {
	v := NewValidator()
	err := v.Struct(models.Model3DGenerationRequest{Prompt: "robot", DetailLevel: 3, TextureQuality: 3})
	if err == nil {
		t.Fatal("expected validation error")
	}
	got := map[string]bool{}
	for _, fe := range FieldErrors(err) {
		got[fe.Field] = true
	}
	if !got["modelType"] {
		t.Error("expected error for modelType")
	}
	if got["style"] || got["format"] {
		t.Error("style and format are optional")
	}
}

func TestValidator_Art2DOptionalPresentation(t *testing.T) {
	v := NewValidator()
	req := models.Art2DGenerationRequest{Prompt: "a red sunset", Style: "abstract", Complexity: 3, NumImages: 2}
	if err := v.Struct(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req.ApplyDefaults()
	if req.AspectRatio != models.DefaultAspectRatio || req.ColorScheme != models.DefaultColorScheme {
		t.Errorf("defaults not applied: %+v", req)
	}
}

func TestFieldErrors_NonValidatorError(t *testing.T) {
	errs := FieldErrors(errors.New("boom"))
	if len(errs) != 1 || errs[0].Message != "boom" || errs[0].Field != "" {
		t.Fatalf("unexpected errors: %+v", errs)
	}
}

func TestSupportedImageType(t *testing.T) {
	if !SupportedImageType("image/png") {
		t.Error("png should be supported")
	}
	if SupportedImageType("application/pdf") {
		t.Error("pdf should not be supported")
	}
	if err := NewValidator().Var("image/webp", "supported_image"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
