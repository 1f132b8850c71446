package types

import "time"

// Sentiment labels shared by the classifier, the rater and the AI layer.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
	SentimentCritical = "critical"
)

// Review is one user review as stored after ingestion. The sentiment fields
// are attached by the classifier before the review reaches the report core
// and are read-only from then on.
type Review struct {
	ReviewID       string    `bson:"reviewId" json:"reviewId"`
	AppID          int       `bson:"appid" json:"appid"`
	Author         string    `bson:"author" json:"author"`
	Content        string    `bson:"content" json:"content"`
	Recommended    bool      `bson:"recommended" json:"recommended"`
	Playtime       int       `bson:"playtime" json:"playtime"` // hours
	Helpful        int       `bson:"helpful" json:"helpful"`
	Funny          int       `bson:"funny" json:"funny"`
	CommentCount   int       `bson:"commentCount" json:"commentCount"`
	Date           time.Time `bson:"date" json:"date"`
	SteamPurchase  bool      `bson:"steamPurchase" json:"steamPurchase"`
	ReceivedFree   bool      `bson:"receivedFree" json:"receivedFree"`
	Sentiment      string    `bson:"sentiment" json:"sentiment"`
	SentimentScore float64   `bson:"sentimentScore" json:"sentimentScore"`
	Keywords       []string  `bson:"keywords" json:"keywords"`
	Topics         []string  `bson:"topics" json:"topics"`
	FetchedAt      time.Time `bson:"fetchedAt" json:"fetchedAt"`
}

// SentimentDist counts reviews per classifier label.
type SentimentDist struct {
	Positive int `bson:"positive" json:"positive"`
	Neutral  int `bson:"neutral" json:"neutral"`
	Negative int `bson:"negative" json:"negative"`
}

// Stats are the aggregate numbers for one review batch. They are recomputed
// on every report generation and must never be computed over an empty batch.
type Stats struct {
	Total         int           `bson:"total" json:"total"`
	Positive      int           `bson:"positive" json:"positive"`
	Negative      int           `bson:"negative" json:"negative"`
	PositiveRate  int           `bson:"positiveRate" json:"positiveRate"`
	SentimentDist SentimentDist `bson:"sentimentDist" json:"sentimentDist"`
	AvgPlaytime   int           `bson:"avgPlaytime" json:"avgPlaytime"`
}

// KeyPoint is a short excerpt from a high-engagement review.
type KeyPoint struct {
	Type     string `bson:"type" json:"type"`
	Content  string `bson:"content" json:"content"`
	Helpful  int    `bson:"helpful" json:"helpful"`
	Playtime int    `bson:"playtime" json:"playtime"`
}

// KeywordCount is one entry of the frequency ranking.
type KeywordCount struct {
	Word  string `bson:"word" json:"word"`
	Count int    `bson:"count" json:"count"`
}

// Risk types emitted by the detector.
const (
	RiskHighNegativeRate       = "high_negative_rate"
	RiskNegativeSentimentSpike = "negative_sentiment_spike"
	RiskTechnicalIssues        = "technical_issues"
)

// Risk levels.
const (
	RiskLevelHigh   = "high"
	RiskLevelMedium = "medium"
)

type Risk struct {
	Type    string `bson:"type" json:"type"`
	Level   string `bson:"level" json:"level"`
	Message string `bson:"message" json:"message"`
}

// SentimentRating is the bucketed rating derived from the positive rate.
type SentimentRating struct {
	Rating string `bson:"rating" json:"rating"`
	Score  int    `bson:"score" json:"score"`
	Label  string `bson:"label" json:"label"`
}

// Trend directions.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Overall is the headline block of a report.
type Overall struct {
	Rating string `bson:"rating" json:"rating"`
	Score  int    `bson:"score" json:"score"`
	Trend  string `bson:"trend" json:"trend"`
	Change int    `bson:"change" json:"change"`
	Heat   int    `bson:"heat" json:"heat"`
}

// AIAnalysis carries the structured parts of a successful AI response. It is
// nil on a report when the AI path was unavailable or unstructured.
type AIAnalysis struct {
	Strengths   []string `bson:"strengths" json:"strengths"`
	Weaknesses  []string `bson:"weaknesses" json:"weaknesses"`
	Risks       []string `bson:"risks" json:"risks"`
	Suggestions []string `bson:"suggestions" json:"suggestions"`
}

// Report is the generated opinion report for one app at one point in time.
type Report struct {
	AppID       int             `bson:"appid" json:"appid"`
	Summary     string          `bson:"summary" json:"summary"`
	KeyPoints   []KeyPoint      `bson:"keyPoints" json:"keyPoints"`
	Sentiment   SentimentRating `bson:"sentiment" json:"sentiment"`
	Stats       Stats           `bson:"stats" json:"stats"`
	Keywords    []KeywordCount  `bson:"keywords" json:"keywords"`
	Risks       []Risk          `bson:"risks" json:"risks"`
	Suggestions []string        `bson:"suggestions" json:"suggestions"`
	Overall     Overall         `bson:"overall" json:"overall"`
	AIGenerated bool            `bson:"aiGenerated" json:"aiGenerated"`
	AIAnalysis  *AIAnalysis     `bson:"aiAnalysis,omitempty" json:"aiAnalysis,omitempty"`
	ReviewCount int             `bson:"reviewCount" json:"reviewCount"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// Game is one registered app whose reviews are tracked.
type Game struct {
	AppID     int       `bson:"appid" json:"appid"`
	Name      string    `bson:"name" json:"name"`
	Enabled   bool      `bson:"enabled" json:"enabled"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// StatsSnapshot is one daily_stats document, used for trend comparison.
type StatsSnapshot struct {
	AppID int       `bson:"appid" json:"appid"`
	Date  time.Time `bson:"date" json:"date"`
	Stats Stats     `bson:"stats" json:"stats"`
}
