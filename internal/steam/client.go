package steam

import (
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

const contentLimit = 500 // runes kept per review

// Client fetches recent reviews from the Steam storefront appreviews
// endpoint.
type Client struct {
	baseURL    string
	language   string
	pageSize   int
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(cfg config.SteamConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		language:   cfg.Language,
		pageSize:   cfg.PageSize,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.WithComponent("steam"),
	}
}

type reviewsResponse struct {
	Success int           `json:"success"`
	Error   string        `json:"error"`
	Reviews []steamReview `json:"reviews"`
}

type steamReview struct {
	RecommendationID string `json:"recommendationid"`
	Author           struct {
		SteamID         string `json:"steamid"`
		PlaytimeForever int    `json:"playtime_forever"` // minutes
	} `json:"author"`
	Review           string `json:"review"`
	VotedUp          bool   `json:"voted_up"`
	VotesUp          int    `json:"votes_up"`
	VotesFunny       int    `json:"votes_funny"`
	CommentCount     int    `json:"comment_count"`
	TimestampCreated int64  `json:"timestamp_created"`
	SteamPurchase    bool   `json:"steam_purchase"`
	ReceivedForFree  bool   `json:"received_for_free"`
}

// FetchReviews pulls the most recent review page for an app and maps it to
// the internal review schema. Sentiment fields are left for the classifier.
func (c *Client) FetchReviews(ctx context.Context, appID int) ([]types.Review, error) {
	url := fmt.Sprintf("%s/appreviews/%d?json=1&language=%s&num_per_page=%d&filter=recent",
		c.baseURL, appID, c.language, c.pageSize)
	c.log.WithField("appid", appID).Info("fetching reviews")

	var resp reviewsResponse
	if err := c.doJSON(ctx, url, &resp); err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	if resp.Success != 1 {
		if resp.Error != "" {
			return nil, fmt.Errorf("steam rejected request: %s", resp.Error)
		}
		return nil, fmt.Errorf("steam rejected request")
	}

	now := time.Now()
	reviews := make([]types.Review, 0, len(resp.Reviews))
	for _, r := range resp.Reviews {
		reviews = append(reviews, types.Review{
			ReviewID:      r.RecommendationID,
			AppID:         appID,
			Author:        r.Author.SteamID,
			Content:       truncate(r.Review, contentLimit),
			Recommended:   r.VotedUp,
			Playtime:      roundMinutesToHours(r.Author.PlaytimeForever),
			Helpful:       r.VotesUp,
			Funny:         r.VotesFunny,
			CommentCount:  r.CommentCount,
			Date:          time.Unix(r.TimestampCreated, 0).UTC(),
			SteamPurchase: r.SteamPurchase,
			ReceivedFree:  r.ReceivedForFree,
			FetchedAt:     now,
		})
	}
	c.log.WithField("appid", appID).WithField("count", len(reviews)).Info("reviews fetched")
	return reviews, nil
}

func (c *Client) doJSON(ctx context.Context, url string, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 12 * time.Second
	var lastErr error
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: status %d", resp.StatusCode)
			return lastErr
		}
		if resp.StatusCode >= 400 {
			lastErr = fmt.Errorf("request rejected: status %d", resp.StatusCode)
			return backoff.Permanent(lastErr)
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode: %w", err)
			return lastErr
		}
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr != nil {
			return lastErr
		}
		return err
	}
	return nil
}

func roundMinutesToHours(minutes int) int {
	return (minutes + 30) / 60
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
