package domain

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientConfig_Redaction(t *testing.T) {
	cfg := ClientConfig{CloudName: "demo", APIKey: "123456789012345", APISecret: "sk_live_abc"}

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	logger.Info("materialized", slog.Any("config", cfg))

	for _, rendered := range []string{cfg.String(), fmt.Sprintf("%v", cfg), fmt.Sprintf("%+v", cfg), logs.String()} {
		assert.Contains(t, rendered, "demo")
		assert.NotContains(t, rendered, "123456789012345")
		assert.NotContains(t, rendered, "sk_live_abc")
	}
}

func TestClientConfig_Clear(t *testing.T) {
	cfg := &ClientConfig{CloudName: "demo", APIKey: "key", APISecret: "secret"}
	assert.False(t, cfg.IsZero())

	cfg.Clear()

	assert.True(t, cfg.IsZero())
	assert.Equal(t, ClientConfig{}, *cfg)

	var nilConfig *ClientConfig
	nilConfig.Clear()
	assert.True(t, nilConfig.IsZero())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
		wantErr  bool
	}{
		{"", CategoryImage, false},
		{"image", CategoryImage, false},
		{"video", CategoryVideo, false},
		{"raw", CategoryRaw, false},
		{"auto", "", true},
		{"audio", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			category, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestDefaultCandidates(t *testing.T) {
	assert.Equal(t, []Category{CategoryImage, CategoryVideo, CategoryRaw}, DefaultCandidates)
}

func TestUpdateAssetInput_IsEmpty(t *testing.T) {
	name := "renamed"

	assert.True(t, UpdateAssetInput{}.IsEmpty())
	assert.True(t, UpdateAssetInput{Context: map[string]string{}}.IsEmpty())
	assert.False(t, UpdateAssetInput{NewPublicID: &name}.IsEmpty())
	assert.False(t, UpdateAssetInput{Tags: []string{}}.IsEmpty())
	assert.False(t, UpdateAssetInput{Context: map[string]string{"alt": "x"}}.IsEmpty())
}

func TestProbeResult_String(t *testing.T) {
	assert.Equal(t, "matched", ProbeMatched.String())
	assert.Equal(t, "not_in_category", ProbeNotInCategory.String())
	assert.Equal(t, "unknown", ProbeResult(9).String())
}
