// webhook_service.go forwards enriched assessment records to the configured
// sales webhook (n8n, Make.com, Zapier or similar).
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/brixon-tools/maltacheck_backend/internal/catalog"
	"github.com/brixon-tools/maltacheck_backend/internal/config"
	"github.com/brixon-tools/maltacheck_backend/internal/models"
)

// categoryLabelsEN translates band categories for the sales team, which works
// in English regardless of the submission language.
var categoryLabelsEN = map[string]string{
	"explore":   "Further Review Required",
	"fair":      "Malta Could Be Suitable",
	"moderate":  "Malta Conditionally Suitable",
	"good":      "Malta Well Suited",
	"excellent": "Malta Very Well Suited",
}

// WebhookResult is the assessment outcome block, placed first in the payload
// so the sales team sees the verdict before scrolling.
type WebhookResult struct {
	Score              int    `json:"score"`
	Category           string `json:"category"`
	CategoryLabel      string `json:"categoryLabel"`
	Recommendation     string `json:"recommendation"`
	SubmissionLanguage string `json:"submissionLanguage"`
}

// WebhookContact is the contact block of the payload
type WebhookContact struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// QuestionAnswerPair is one structured question/answer tuple in the
// submission's original language.
type QuestionAnswerPair struct {
	QuestionID string                `json:"questionId"`
	Question   string                `json:"question"`
	Answer     string                `json:"answer"`
	Score      int                   `json:"score"`
	Weight     float64               `json:"weight"`
	Category   models.AnswerCategory `json:"category"`
}

// WebhookMetadata carries the technical details of the submission
type WebhookMetadata struct {
	Timestamp          string `json:"timestamp"`
	SubmissionLanguage string `json:"submissionLanguage"`
	IP                 string `json:"ip"`
	UserAgent          string `json:"userAgent"`
	Referrer           string `json:"referrer"`
	Source             string `json:"source"`
}

// WebhookPayload is the full outbound document
// #INTEGRATION_POINT: Field layout is consumed by the CRM import flow;
// coordinate changes with the sales automation
type WebhookPayload struct {
	Result              WebhookResult        `json:"result"`
	Contact             WebhookContact       `json:"contact"`
	QuestionsAndAnswers []QuestionAnswerPair `json:"questionsAndAnswers"`
	Metadata            WebhookMetadata      `json:"metadata"`
}

// WebhookService sends a submission record to the configured webhook.
// Send is best-effort: a failed delivery is logged and swallowed, it never
// alters the caller-visible outcome.
type WebhookService interface {
	Send(ctx context.Context, contact models.Contact, answers models.AnswerSet,
		result *models.ScoreResult, interp *models.Interpretation,
		language string, meta models.SubmissionMeta) bool
}

// httpWebhookService implements WebhookService over plain HTTP POST
type httpWebhookService struct {
	cfg    *config.Config
	client *http.Client
}

// NewWebhookService creates a webhook service with the configured bounded timeout.
func NewWebhookService(cfg *config.Config) WebhookService {
	return &httpWebhookService{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Send builds the payload and POSTs it once. No retries; the webhook send is
// attempted exactly once per submission. Returns true only for a 2xx response.
func (s *httpWebhookService) Send(ctx context.Context, contact models.Contact,
	answers models.AnswerSet, result *models.ScoreResult,
	interp *models.Interpretation, language string, meta models.SubmissionMeta) bool {

	if !s.cfg.WebhookEnabled || s.cfg.WebhookURL == "" {
		return false
	}

	categoryEN, ok := categoryLabelsEN[interp.Category]
	if !ok {
		categoryEN = interp.CategoryLabel
	}

	payload := WebhookPayload{
		Result: WebhookResult{
			Score:              result.Percentage,
			Category:           interp.Category,
			CategoryLabel:      categoryEN,
			Recommendation:     interp.Interpretation,
			SubmissionLanguage: strings.ToUpper(language),
		},
		Contact: WebhookContact{
			Email:     contact.Email,
			FirstName: contact.FirstName,
			LastName:  contact.LastName,
			FullName:  strings.TrimSpace(contact.FirstName + " " + contact.LastName),
			Phone:     contact.Phone,
			Company:   contact.Company,
		},
		QuestionsAndAnswers: buildQuestionAnswerPairs(answers),
		Metadata: WebhookMetadata{
			Timestamp:          time.Now().UTC().Format("2006-01-02 15:04:05"),
			SubmissionLanguage: strings.ToUpper(language),
			IP:                 meta.IP,
			UserAgent:          meta.UserAgent,
			Referrer:           meta.Referrer,
			Source:             s.cfg.SourceTag,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logf("failed to marshal payload: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		s.logf("failed to create request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logf("delivery failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logf("delivery failed: HTTP %d", resp.StatusCode)
		return false
	}

	if s.cfg.DebugMode {
		log.Printf("[WEBHOOK] Sent successfully (score %d%%)", result.Percentage)
	}
	return true
}

// logf logs delivery failures. Failure is the only condition logged
// unconditionally; success logging is debug-gated.
func (s *httpWebhookService) logf(format string, args ...interface{}) {
	log.Printf("[WEBHOOK] "+format, args...)
}

// buildQuestionAnswerPairs maps answered catalog questions to structured
// tuples in the submission's original language. Unanswered questions and
// unknown value tokens are skipped, mirroring the scoring policy.
func buildQuestionAnswerPairs(answers models.AnswerSet) []QuestionAnswerPair {
	pairs := []QuestionAnswerPair{}
	for _, question := range catalog.All() {
		value, answered := answers[question.ID]
		if !answered {
			continue
		}
		option, found := question.OptionByValue(value)
		if !found {
			continue
		}
		pairs = append(pairs, QuestionAnswerPair{
			QuestionID: question.ID,
			Question:   question.Text,
			Answer:     option.Label,
			Score:      option.Score,
			Weight:     question.Weight,
			Category:   models.CategoryForScore(option.Score),
		})
	}
	return pairs
}
