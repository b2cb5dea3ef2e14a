package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	maxDiagnosticCollections = 10
	maxDiagnosticErrorLen    = 80
)

// StoreInspector exposes what /test reports about the document store.
type StoreInspector interface {
	Available() bool
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}

type DiagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthHandler struct {
	store          StoreInspector
	databaseURLSet bool
	log            logrus.FieldLogger
}

func NewHealthHandler(store StoreInspector, databaseURLSet bool, log logrus.FieldLogger) *HealthHandler {
	return &HealthHandler{
		store:          store,
		databaseURLSet: databaseURLSet,
		log:            log.WithField("component", "health_handler"),
	}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Swolez backend running"})
}

// TestDatabase handles GET /test. It always answers 200; store problems
// end up in the database status string.
func (h *HealthHandler) TestDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnose(c.Request.Context()))
}

func (h *HealthHandler) diagnose(ctx context.Context) (resp DiagnosticsResponse) {
	resp = DiagnosticsResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			h.log.WithField("panic", r).Error("database diagnostics panicked")
			resp.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxDiagnosticErrorLen)
		}
	}()

	if h.store == nil || !h.store.Available() {
		resp.Database = "⚠️  Available but not initialized"
		return resp
	}

	resp.Database = "✅ Available"
	urlStatus := "❌ Not Set"
	if h.databaseURLSet {
		urlStatus = "✅ Set"
	}
	resp.DatabaseURL = &urlStatus
	name := h.store.Name()
	resp.DatabaseName = &name
	resp.ConnectionStatus = "Connected"

	names, err := h.store.ListCollectionNames(ctx)
	if err != nil {
		h.log.WithError(err).Warn("listing collections failed")
		resp.Database = "⚠️  Connected but Error: " + truncate(err.Error(), maxDiagnosticErrorLen)
		return resp
	}

	if len(names) > maxDiagnosticCollections {
		names = names[:maxDiagnosticCollections]
	}
	if names != nil {
		resp.Collections = names
	}
	resp.Database = "✅ Connected & Working"
	return resp
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
