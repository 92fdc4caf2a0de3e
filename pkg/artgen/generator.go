// Package artgen renders placeholder "AI" artwork as SVG documents.
//
// Nothing here is real image synthesis: every image is a fixed composition of
// primitive shapes whose positions, sizes and opacities come from a random
// source. Passing a seeded source to New makes the output reproducible.
package artgen

import (
	"encoding/base64"
	"encoding/xml"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	dataURIPrefix   = "data:image/svg+xml;base64,"
	maxPromptRunes  = 30
	minLevel        = 1
	maxLevel        = 5
	MaxImagesPerRun = 4
)

// Image is one rendered SVG document.
type Image struct {
	SVG      string
	Width    int
	Height   int
	Template string
}

// DataURI returns the document as a base64 data URI.
func (i Image) DataURI() string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString([]byte(i.SVG))
}

// Generator draws 2D art and 3D model placeholders. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator drawing from src. A nil src is seeded from the clock.
func New(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{rnd: rand.New(src)}
}

func (g *Generator) pick(a, b string) string {
	if g.rnd.Float64() > 0.5 {
		return a
	}
	return b
}

func clampLevel(v int) int {
	if v < minLevel {
		return minLevel
	}
	if v > maxLevel {
		return maxLevel
	}
	return v
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func promptLabel(prompt string) string {
	r := []rune(prompt)
	if len(r) > maxPromptRunes {
		prompt = string(r[:maxPromptRunes]) + "..."
	}
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(prompt))
	return b.String()
}
