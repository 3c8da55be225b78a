package kuiperhttp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shershaah24/kuiper-v2/internal/indicator"
	"github.com/Shershaah24/kuiper-v2/internal/market"
	"github.com/Shershaah24/kuiper-v2/internal/visual"
	"github.com/Shershaah24/kuiper-v2/internal/wisdom"
)

// ScanBackend is implemented by the app-level scan service.
type ScanBackend interface {
	ScanAll(ctx context.Context) ([]*wisdom.TradeDecision, error)
	AnalyzeSymbol(ctx context.Context, symbol string) (*wisdom.TradeDecision, []market.Candle, float64, error)
	AnalyzeSnapshot(snap *indicator.Snapshot, price, equity float64) (*wisdom.TradeDecision, error)
}

type Router struct {
	scan ScanBackend
}

func NewRouter(scan ScanBackend) *Router {
	return &Router{scan: scan}
}

func (r *Router) Register(group *gin.RouterGroup) {
	if group == nil {
		return
	}
	group.POST("/analyze", r.handleAnalyze)
	group.GET("/scan", r.handleScan)
	group.GET("/report/:symbol", r.handleReport)
}

// AnalyzeRequest carries a recorded snapshot for replay analysis.
type AnalyzeRequest struct {
	Snapshot      json.RawMessage `json:"snapshot" binding:"required"`
	CurrentPrice  float64         `json:"current_price" binding:"required"`
	AccountEquity float64         `json:"account_equity"`
}

func (r *Router) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AccountEquity <= 0 {
		req.AccountEquity = 10000
	}
	snap, err := indicator.ParseSnapshot(req.Snapshot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	decision, err := r.scan.AnalyzeSnapshot(snap, req.CurrentPrice, req.AccountEquity)
	if err != nil {
		c.JSON(analysisErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, decision)
}

func (r *Router) handleScan(c *gin.Context) {
	decisions, err := r.scan.ScanAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"decisions": decisions})
}

func (r *Router) handleReport(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol required"})
		return
	}
	decision, candles, price, err := r.scan.AnalyzeSymbol(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(analysisErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	err = visual.RenderReport(c.Writer, visual.ReportInput{
		Symbol:       symbol,
		Interval:     decision.Interval,
		Candles:      candles,
		Decision:     decision,
		CurrentPrice: price,
	})
	if err != nil {
		_ = c.Error(err)
	}
}

// analysisErrorStatus maps the decision-core error taxonomy to HTTP codes:
// malformed or incomplete input is a client error, anything else is not.
func analysisErrorStatus(err error) int {
	var missing *wisdom.MissingIndicatorError
	var unknown *indicator.UnknownIndicatorError
	if errors.As(err, &missing) || errors.As(err, &unknown) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
