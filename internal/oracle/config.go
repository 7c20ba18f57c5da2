// Package oracle provides the optional external entity/section classifier
// capability. The core importer never depends on it for correctness; callers
// choose at construction time whether the capability is present.
package oracle

// MinConfidence is the score below which a classification is not confident
// enough to act on.
const MinConfidence = 0.7

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: paragraph classification
	TierLite ModelTier = "lite"
	// TierStandard is for structured entity extraction
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the oracle
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
