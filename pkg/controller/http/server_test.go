package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/chent01/riskreg/pkg/controller/http"
	"github.com/chent01/riskreg/pkg/domain/model"
	"github.com/chent01/riskreg/pkg/domain/types"
	"github.com/chent01/riskreg/pkg/repository/memory"
)

func seedRegister(t *testing.T, repo *memory.Memory) *model.Register {
	t.Helper()

	reg := &model.Register{
		RunID:       "run-http-001",
		ProjectName: "HTTP Test",
		Items: []*model.RiskItem{
			{
				ID:          "RISK_0001",
				Hazard:      "Stale display",
				Cause:       "Refresh loop stalls",
				Effect:      "Operator sees outdated values",
				Severity:    types.SeveritySerious,
				Probability: types.ProbabilityMedium,
				RiskLevel:   types.RiskLevelUndesirable,
				Mitigation:  "Add watchdog refresh; alert on stall",
			},
		},
		IdentificationMethod: model.IdentificationLLM,
		GeneratedAt:          time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	}
	gt.NoError(t, repo.Register().Put(context.Background(), reg)).Required()
	return reg
}

func TestHealthEndpoint(t *testing.T) {
	srv := httpctrl.New(memory.New())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.String(t, rec.Body.String()).Contains(`"status":"ok"`)
}

func TestListRegisters(t *testing.T) {
	repo := memory.New()
	seedRegister(t, repo)
	srv := httpctrl.New(repo)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/registers", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var summaries []map[string]any
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries)).Required()
	gt.Array(t, summaries).Length(1)
	gt.Value(t, summaries[0]["runId"]).Equal("run-http-001")
	gt.Value(t, summaries[0]["projectName"]).Equal("HTTP Test")
}

func TestGetRegister(t *testing.T) {
	repo := memory.New()
	seedRegister(t, repo)
	srv := httpctrl.New(repo)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/registers/run-http-001", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var summary map[string]any
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary)).Required()
	gt.Value(t, summary["identificationMethod"]).Equal("llm")

	stats := summary["stats"].(map[string]any)
	gt.Value(t, stats["total"]).Equal(float64(1))
}

func TestGetRegisterNotFound(t *testing.T) {
	srv := httpctrl.New(memory.New())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/registers/missing", nil))

	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}

func TestGetRegisterCSV(t *testing.T) {
	repo := memory.New()
	seedRegister(t, repo)
	srv := httpctrl.New(repo)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/registers/run-http-001/csv", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Header().Get("Content-Type")).Equal("text/csv")
	gt.String(t, rec.Body.String()).Contains("Risk_ID")
	gt.String(t, rec.Body.String()).Contains("RISK_0001")
}

func TestGetRegisterReport(t *testing.T) {
	repo := memory.New()
	seedRegister(t, repo)
	srv := httpctrl.New(repo)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/registers/run-http-001/report", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.String(t, rec.Body.String()).Contains("# Risk Management Report: HTTP Test")
	gt.String(t, rec.Body.String()).Contains("RISK_0001")
}
