package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Weights distribute section contributions to the overall score. They are
// fixed server-side; clients can read them but never set them per request.
type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Keywords   float64 `json:"keywords"`
}

// DefaultWeights reflect what screening readers reward: demonstrated
// skills and experience dominate, credentials and phrasing round it out.
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.40,
		Experience: 0.35,
		Education:  0.10,
		Keywords:   0.15,
	}
}

// Validate rejects weight sets that don't sum to 1 (within float noise)
// or contain negative entries.
func (w Weights) Validate() error {
	for name, v := range w.Map() {
		if v < 0 {
			return fmt.Errorf("weight %q must not be negative", name)
		}
	}
	sum := w.Skills + w.Experience + w.Education + w.Keywords
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// Map returns the weights keyed by section name, as exposed on the wire.
func (w Weights) Map() map[string]float64 {
	return map[string]float64{
		"skills":     w.Skills,
		"experience": w.Experience,
		"education":  w.Education,
		"keywords":   w.Keywords,
	}
}

// Aggregate combines section scores into the overall score: the weighted
// sum rounded to the nearest integer.
func Aggregate(sections types.SectionScores, w Weights) int {
	sum := float64(sections.Skills)*w.Skills +
		float64(sections.Experience)*w.Experience +
		float64(sections.Education)*w.Education +
		float64(sections.Keywords)*w.Keywords
	return roundClamp(sum)
}
