package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	input := "```json\n{\"name\": \"Jane\"}\n```"
	assert.Equal(t, `{"name": "Jane"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_BareFence(t *testing.T) {
	input := "```\n{\"name\": \"Jane\"}\n```"
	assert.Equal(t, `{"name": "Jane"}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	input := `{"name": "Jane"}`
	assert.Equal(t, input, CleanJSONBlock(input))
}

func TestConfig_GetModelFallback(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{TierLite: "small-model"}}

	assert.Equal(t, "small-model", cfg.GetModel(TierLite))
	// Missing tiers fall back through standard to lite
	assert.Equal(t, "small-model", cfg.GetModel(TierAdvanced))

	empty := &Config{}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestDefaultConfig_AllTiers(t *testing.T) {
	cfg := DefaultConfig()
	for _, tier := range []ModelTier{TierLite, TierStandard, TierAdvanced} {
		assert.NotEmpty(t, cfg.GetModel(tier))
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), nil, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
