package web

import (
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/healthassistant/internal/apperr"
	"github.com/Skufu/healthassistant/internal/diagnosis"
	"github.com/Skufu/healthassistant/internal/distribution"
	"github.com/Skufu/healthassistant/internal/history"
)

type predictResponse struct {
	Disease string   `json:"disease"`
	Label   int      `json:"label"`
	Message string   `json:"message"`
	Tips    []string `json:"tips"`
}

type binResponse struct {
	Rule  string  `json:"rule"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

func (s *Server) handlePredict(c *gin.Context) {
	d, err := diagnosis.ParseDisease(c.Param("disease"))
	if err != nil {
		writeError(c, err)
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	result, err := s.assessor.AssessValues(d, payloadValues(payload))
	if err != nil {
		writeError(c, err)
		return
	}

	s.record(c.Request.Context(), result)
	c.JSON(http.StatusOK, predictResponse{
		Disease: d.Slug(),
		Label:   int(result.Label),
		Message: result.Message,
		Tips:    result.Tips,
	})
}

// payloadValues renders JSON numbers back to text and passes strings through,
// so the API shares the form collectors. Other JSON types read as empty.
func payloadValues(payload map[string]interface{}) diagnosis.ValueFunc {
	return func(key string) string {
		switch v := payload[key].(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			return v
		case json.Number:
			return v.String()
		default:
			return ""
		}
	}
}

func (s *Server) handleSchema(c *gin.Context) {
	d, err := diagnosis.ParseDisease(c.Param("disease"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, diagnosis.SchemaFor(d))
}

func (s *Server) handleDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"records": s.dataset.Len(),
		"charts":  s.dataset.Charts(),
	})
}

func (s *Server) handleBin(c *gin.Context) {
	rule, err := distribution.RuleByKey(c.Param("rule"))
	if err != nil {
		writeError(c, err)
		return
	}

	value, err := strconv.ParseFloat(c.Query("value"), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be a number"})
		return
	}

	c.JSON(http.StatusOK, binResponse{Rule: rule.Key, Value: value, Label: rule.Bin(value)})
}

func (s *Server) handleAssessments(c *gin.Context) {
	limit := history.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	entries, err := s.recorder.Recent(c.Request.Context(), history.NormalizeLimit(limit))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": entries})
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	appErr, ok := apperr.As(err)
	if !ok || status == http.StatusInternalServerError {
		log.Printf("[web] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "internal error", "code": apperr.GetCode(err)})
		return
	}

	body := gin.H{"error": appErr.Message, "code": appErr.Code}
	if len(appErr.Fields) > 0 {
		body["fields"] = appErr.Fields
	}
	c.JSON(status, body)
}
