package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/hddy2000/steam-reviews/internal/config"
	"github.com/hddy2000/steam-reviews/internal/logger"
	"github.com/hddy2000/steam-reviews/internal/types"
)

// Client calls an OpenAI-compatible chat endpoint to enrich a report. Every
// failure mode degrades to an Outcome; Augment never returns an error, so the
// deterministic report path can never be broken by this integration.
type Client struct {
	apiURL       string
	apiKey       string
	model        string
	httpClient   *http.Client
	maxRetryTime time.Duration
	log          *logger.Logger
}

func NewClient(cfg config.AIConfig, log *logger.Logger) *Client {
	return &Client{
		apiURL:       cfg.APIURL,
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		maxRetryTime: cfg.MaxRetryTime,
		log:          log.WithComponent("ai"),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Augment asks the summarizer for a structured analysis of the batch. With
// no credential configured it reports unavailable immediately.
func (c *Client) Augment(ctx context.Context, stats types.Stats, reviews []types.Review) Outcome {
	if c.apiKey == "" || c.apiURL == "" {
		c.log.Debug("no AI credential configured, skipping augmentation")
		return unavailable()
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(stats, reviews)},
		},
		Temperature: 0.0,
	})
	if err != nil {
		c.log.WithError(err).Warn("failed to encode AI request")
		return unavailable()
	}

	var text string
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.log.WithError(err).Warn("AI request failed")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			c.log.WithField("http_status", resp.StatusCode).Warn("AI server error")
			return fmt.Errorf("ai server error: status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			c.log.WithField("http_status", resp.StatusCode).Warn("AI request rejected")
			return backoff.Permanent(fmt.Errorf("ai request rejected: status %d", resp.StatusCode))
		}

		var parsed chatResponse
		if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Choices) > 0 {
			text = parsed.Choices[0].Message.Content
		} else {
			// Not a chat envelope; work with the raw body.
			text = string(body)
		}
		if text == "" {
			return fmt.Errorf("empty AI response")
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.maxRetryTime
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		c.log.WithError(err).Warn("AI augmentation unavailable")
		return unavailable()
	}

	raw := ExtractJSON(text)
	if raw == "" {
		c.log.Info("no JSON object in AI response, keeping raw text")
		return unstructured(text)
	}
	var analysis Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		c.log.WithError(err).Info("AI response JSON did not match schema, keeping raw text")
		return unstructured(text)
	}
	c.log.WithField("key_points", len(analysis.KeyPoints)).Info("AI analysis parsed")
	return structured(analysis)
}
