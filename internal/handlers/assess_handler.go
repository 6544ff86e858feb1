// Package handlers provides HTTP handlers for API endpoints.
// #IMPLEMENTATION_DECISION: Handlers are thin - delegate business logic to services
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brixon-tools/maltacheck_backend/internal/auth"
	"github.com/brixon-tools/maltacheck_backend/internal/config"
	"github.com/brixon-tools/maltacheck_backend/internal/language"
	"github.com/brixon-tools/maltacheck_backend/internal/models"
	"github.com/brixon-tools/maltacheck_backend/internal/ratelimit"
	"github.com/brixon-tools/maltacheck_backend/internal/services"
)

// AssessHandler handles assessment endpoints
// #INTEGRATION_POINT: The embedded questionnaire form on the marketing site
// talks to these endpoints
type AssessHandler struct {
	cfg        *config.Config
	assessment services.AssessmentService
	nonces     auth.NonceService
}

// NewAssessHandler creates a new assessment handler
func NewAssessHandler(cfg *config.Config, assessment services.AssessmentService, nonces auth.NonceService) *AssessHandler {
	return &AssessHandler{
		cfg:        cfg,
		assessment: assessment,
		nonces:     nonces,
	}
}

// MessageResponse is the uniform failure body
type MessageResponse struct {
	Message string `json:"message"`
}

// SubmitResponse is the scored assessment returned to the form
type SubmitResponse struct {
	Percentage                 int                     `json:"percentage"`
	WeightedScore              float64                 `json:"weightedScore"`
	TotalPossibleWeightedScore float64                 `json:"totalPossibleWeightedScore"`
	Category                   string                  `json:"category"`
	CategoryLabel              string                  `json:"categoryLabel"`
	Interpretation             string                  `json:"interpretation"`
	DetailedResults            []models.DetailedResult `json:"detailedResults"`
}

// BootstrapResponse carries everything the form needs before first submit
type BootstrapResponse struct {
	Nonce        string `json:"nonce"`
	ExpiresAt    int64  `json:"expiresAt"`
	Language     string `json:"language"`
	Translations string `json:"translations,omitempty"`
}

// Submit handles POST /api/v1/assess/submit
// @Summary Submit a completed assessment
// @Description Verifies the anti-forgery nonce, rate-limits by client IP, scores the answers and returns the interpretation
// @Tags Assess
// @Accept x-www-form-urlencoded
// @Produce json
// @Param nonce formData string true "Anti-forgery token from the bootstrap endpoint"
// @Param data formData string true "JSON document with answers, contact fields and language"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} MessageResponse
// @Failure 403 {object} MessageResponse
// @Failure 429 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /assess/submit [post]
func (h *AssessHandler) Submit(c *gin.Context) {
	input := services.SubmissionInput{
		Nonce:   c.PostForm("nonce"),
		RawData: c.PostForm("data"),
		Meta: models.SubmissionMeta{
			IP:        ratelimit.ClientIP(c.Request),
			UserAgent: c.GetHeader("User-Agent"),
			Referrer:  c.GetHeader("Referer"),
		},
	}

	outcome, err := h.assessment.Submit(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitResponse{
		Percentage:                 outcome.Score.Percentage,
		WeightedScore:              outcome.Score.WeightedScore,
		TotalPossibleWeightedScore: outcome.Score.TotalPossibleWeightedScore,
		Category:                   outcome.Interpretation.Category,
		CategoryLabel:              outcome.Interpretation.CategoryLabel,
		Interpretation:             outcome.Interpretation.Interpretation,
		DetailedResults:            outcome.Score.DetailedResults,
	})
}

// Bootstrap handles GET /api/v1/assess/bootstrap
// @Summary Bootstrap the assessment form
// @Description Issues a fresh anti-forgery nonce and the language detected from the referring page
// @Tags Assess
// @Produce json
// @Success 200 {object} BootstrapResponse
// @Failure 500 {object} MessageResponse
// @Router /assess/bootstrap [get]
func (h *AssessHandler) Bootstrap(c *gin.Context) {
	nonce, expiresAt, err := h.nonces.Issue()
	if err != nil {
		h.writeError(c, err)
		return
	}

	lang := language.DetectFromPath(c.GetHeader("Referer"), h.cfg.SupportedLanguages, h.cfg.DefaultLanguage)

	resp := BootstrapResponse{
		Nonce:     nonce,
		ExpiresAt: expiresAt.Unix(),
		Language:  lang,
	}
	if h.cfg.TranslationsBaseURL != "" {
		resp.Translations = fmt.Sprintf("%s/%s.json", h.cfg.TranslationsBaseURL, lang)
	}

	c.JSON(http.StatusOK, resp)
}

// writeError maps the service error taxonomy onto HTTP statuses.
// #BUSINESS_RULE: Authorization failures are 403, throttling is 429,
// malformed input is 400, everything else is 500
func (h *AssessHandler) writeError(c *gin.Context, err error) {
	switch {
	case models.IsAuthorizationError(err):
		c.JSON(http.StatusForbidden, MessageResponse{
			Message: "Security check failed. Please reload the page and try again.",
		})
	case models.IsThrottlingError(err):
		c.JSON(http.StatusTooManyRequests, MessageResponse{
			Message: "Too many submissions. Please try again later.",
		})
	case models.IsMalformedRequestError(err):
		c.JSON(http.StatusBadRequest, MessageResponse{
			Message: malformedMessage(err),
		})
	default:
		message := "Error occurred"
		if h.cfg.DebugMode {
			message = err.Error()
		}
		c.JSON(http.StatusInternalServerError, MessageResponse{
			Message: message,
		})
	}
}

// malformedMessage returns a caller-facing hint for 400 responses
func malformedMessage(err error) string {
	switch err {
	case models.ErrNoData:
		return "No data received."
	case models.ErrInvalidJSON:
		return "Invalid submission format."
	case models.ErrMissingAnswers:
		return "No answers provided."
	}
	return "Invalid request."
}

// RegisterRoutes registers assessment handler routes
func (h *AssessHandler) RegisterRoutes(api *gin.RouterGroup) {
	assess := api.Group("/assess")
	{
		assess.GET("/bootstrap", h.Bootstrap)
		assess.POST("/submit", h.Submit)
	}
}
