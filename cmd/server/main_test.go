package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Skufu/healthassistant/internal/config"
	"github.com/Skufu/healthassistant/internal/history"
)

type fakeDB struct {
	err error
}

func (f fakeDB) Ping(ctx context.Context) error {
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.ServerConfig{Port: "8080", GinMode: gin.TestMode, CORSOrigins: []string{"*"}},
		History: config.HistoryConfig{Capacity: 10},
	}
}

func serve(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRouterHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := setupRouter(testConfig(), history.NewMemoryRecorder(10), fakeDB{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := serve(t, router, "GET", "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestReadyzReportsDBFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := setupRouter(testConfig(), history.NewMemoryRecorder(10), fakeDB{err: errors.New("connection refused")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := serve(t, router, "GET", "/readyz", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "connection refused") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestBundledModelsPredictDiabetes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := setupRouter(testConfig(), history.NewMemoryRecorder(10), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := serve(t, router, "POST", "/api/predict/diabetes", `{
		"pregnancies": 6, "glucose": 148, "blood_pressure": 72, "skin_thickness": 35,
		"insulin": 0, "bmi": 33.6, "diabetes_pedigree_function": 0.627, "age": 50
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "The Person is Diabetic") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = serve(t, router, "GET", "/api/assessments", "")
	if !strings.Contains(w.Body.String(), `"disease":"diabetes"`) {
		t.Fatalf("expected recorded assessment, got %s", w.Body.String())
	}
}

func TestSetupRouterRejectsMissingModelsDir(t *testing.T) {
	cfg := testConfig()
	cfg.Models.Dir = filepath.Join(t.TempDir(), "missing")
	if _, err := setupRouter(cfg, history.NewMemoryRecorder(10), nil); err == nil {
		t.Fatal("expected error for missing models directory")
	}
}

func TestLoadDatasetFromCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diabetes.csv")
	body := "Pregnancies,Glucose,BloodPressure,SkinThickness,Insulin,BMI,DiabetesPedigreeFunction,Age,Outcome\n" +
		"1,85,66,29,0,26.6,0.351,31,0\n" +
		"8,183,64,0,0,23.3,0.672,32,1\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	ds, err := loadDataset(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", ds.Len())
	}
}

func TestLoadDatasetDefaultsToSample(t *testing.T) {
	ds, err := loadDataset("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 24 {
		t.Fatalf("expected 24 sample records, got %d", ds.Len())
	}
}
