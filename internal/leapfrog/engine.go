// Package leapfrog implements the adaptive treatment analytics engine.
// It is a pure computation layer: callers load a patient's tracked data
// and the engine derives trends, correlations, risk scores and ranked
// treatment suggestions from it. Nothing in this package performs I/O.
package leapfrog

// Config holds the tunable thresholds and weights for the engine.
type Config struct {
	// ConfidenceThreshold filters suggestions below this score.
	ConfidenceThreshold float64
	// MinimumDataPoints gates suggestion generation on tracked entries.
	MinimumDataPoints int
	// RiskThreshold marks the high-risk boundary for composite scores.
	RiskThreshold float64
	// EffectivenessThreshold marks an effective treatment composite.
	EffectivenessThreshold float64

	// EffectivenessWeights weight each effectiveness metric in the
	// treatment composite. Metrics that cannot be computed contribute
	// nothing rather than being renormalized.
	EffectivenessWeights map[string]float64
	// RiskWeights weight each risk factor in the risk composite.
	RiskWeights map[string]float64

	// MaxSuggestions caps the number of suggestions returned per run.
	MaxSuggestions int
}

// DefaultConfig returns the engine configuration used in production.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold:    0.6,
		MinimumDataPoints:      5,
		RiskThreshold:          0.7,
		EffectivenessThreshold: 0.6,
		EffectivenessWeights: map[string]float64{
			"symptom_improvement": 0.35,
			"mood_stability":      0.25,
			"activity_engagement": 0.20,
			"adherence_rate":      0.15,
			"side_effects":        0.05,
		},
		RiskWeights: map[string]float64{
			"symptom_severity":     0.30,
			"mood_decline":         0.25,
			"medication_adherence": 0.20,
			"social_isolation":     0.15,
			"sleep_quality":        0.10,
		},
		MaxSuggestions: 5,
	}
}

// Engine derives analytics from patient-tracked data. The zero value is
// not usable; construct one with New.
type Engine struct {
	cfg Config
}

// New returns an Engine with the given configuration.
func New(cfg Config) *Engine {
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = 5
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine's active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
