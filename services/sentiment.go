package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cooper235/Canteen-project-sub000/entity"

	"github.com/rs/zerolog"
)

// SentimentClassifier annotates review text. Best-effort by contract: any
// failure must degrade to the neutral label instead of failing the review.
type SentimentClassifier interface {
	Classify(text string) string
}

// SentimentClient talks to the external text-classification service over its
// synchronous HTTP contract. The per-call timeout is the only timeout-driven
// degradation path in the system.
type SentimentClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewSentimentClient(baseURL string, timeout time.Duration, log zerolog.Logger) *SentimentClient {
	return &SentimentClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *SentimentClient) Classify(text string) string {
	if c.baseURL == "" || text == "" {
		return entity.SentimentNeutral
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return entity.SentimentNeutral
	}

	res, err := c.http.Post(c.baseURL+"/classify", "application/json", bytes.NewReader(body))
	if err != nil {
		c.log.Warn().Err(err).Msg("sentiment call failed, using neutral")
		return entity.SentimentNeutral
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", res.StatusCode).Msg("sentiment call failed, using neutral")
		return entity.SentimentNeutral
	}

	var out struct {
		Label string `json:"label"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		c.log.Warn().Err(err).Msg("sentiment decode failed, using neutral")
		return entity.SentimentNeutral
	}

	switch out.Label {
	case entity.SentimentPositive, entity.SentimentNeutral, entity.SentimentNegative:
		return out.Label
	default:
		return entity.SentimentNeutral
	}
}
