// Package colorful generates driver display colors using go-colorful.
package colorful

import (
	"math/rand/v2"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pacchoferes/dispatch"
)

// Pastel saturation and lightness. Only the hue varies between colors.
const (
	Saturation = 0.7
	Lightness  = 0.6
)

// Ensure Generator implements dispatch.ColorGenerator at compile time.
var _ dispatch.ColorGenerator = (*Generator)(nil)

// Generator produces pastel colors with a pseudo-random hue.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a Generator seeded from the runtime's random source.
func NewGenerator() *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator returns a Generator with a fixed seed, producing the
// same sequence of colors on every run.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed))}
}

// Color returns a CSS hex color.
func (g *Generator) Color() string {
	g.mu.Lock()
	hue := float64(g.rnd.IntN(360))
	g.mu.Unlock()
	return colorful.Hsl(hue, Saturation, Lightness).Hex()
}
