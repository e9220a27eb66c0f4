package services

import (
	"context"
	"log"
	"strings"
	"time"

	"mycloth-atelier/internal/config"
	"mycloth-atelier/internal/core/domain"

	"github.com/guonaihong/gout"
)

// FallbackInsight is served whenever the generation API is not
// configured or fails. No retries.
const FallbackInsight = "Refined for the modern archive, ensuring pure comfort and bespoke poise."

// InsightService fetches one-sentence promotional copy for a product
// from an external text-generation API.
type InsightService struct {
	cfg *config.Config
}

// NewInsightService creates a new insight service
func NewInsightService(cfg *config.Config) *InsightService {
	return &InsightService{cfg: cfg}
}

type insightRequest struct {
	Prompt string `json:"prompt"`
}

type insightResponse struct {
	Text string `json:"text"`
}

// ProductInsight returns a single sentence of promotional copy. Any
// failure yields the fixed fallback line.
func (s *InsightService) ProductInsight(ctx context.Context, product *domain.Product) string {
	if s.cfg.Insight.APIURL == "" {
		return FallbackInsight
	}

	prompt := "Write one elegant sentence of promotional copy for a luxury garment called \"" +
		product.Name + "\": " + product.Description

	var resp insightResponse
	err := gout.POST(s.cfg.Insight.APIURL).
		WithContext(ctx).
		SetHeader(gout.H{"Authorization": "Bearer " + s.cfg.Insight.APIKey}).
		SetJSON(insightRequest{Prompt: prompt}).
		BindJSON(&resp).
		SetTimeout(8 * time.Second).
		Do()
	if err != nil {
		log.Printf("⚠️ Insight request failed for %s: %v", product.ID, err)
		return FallbackInsight
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return FallbackInsight
	}
	return text
}
