package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/EngineerKamesh/crisprview/common"
	"github.com/EngineerKamesh/crisprview/common/datastore"
	"github.com/EngineerKamesh/crisprview/shared/models"
)

func newTestEnv(t *testing.T, names ...string) (*common.Env, string) {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	db, err := datastore.NewDatastore(datastore.FILESYSTEM, dir)
	if err != nil {
		t.Fatalf("NewDatastore() error = %v", err)
	}
	return &common.Env{DB: db}, dir
}

func TestSamplesEndpoint(t *testing.T) {
	env, _ := newTestEnv(t, "S2.crA.ins.png", "S1.crA.ins.png", "S1.crB.snp.tif")

	rec := httptest.NewRecorder()
	SamplesEndpoint(env).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/samples", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	var got models.SampleIndex
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	want := models.SampleIndex{Samples: []string{"S1", "S2"}, CrisprNames: []string{"crA", "crB"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("body = %+v, want %+v", got, want)
	}
}

func TestSamplesEndpointFiltersByCrisprName(t *testing.T) {
	env, _ := newTestEnv(t, "S3.crA.ins.png", "S1.crA.snp.tif", "S2.crB.del.png", "S1.crB.ins.png")

	tests := []struct {
		crisprName string
		want       []string
	}{
		{"crA", []string{"S1", "S3"}},
		{"crB", []string{"S1", "S2"}},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		SamplesEndpoint(env).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, models.SamplesPath(tt.crisprName), nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status for %s = %d, want %d", tt.crisprName, rec.Code, http.StatusOK)
		}
		var got models.SampleIndex
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if !reflect.DeepEqual(got.Samples, tt.want) {
			t.Errorf("samples for %s = %v, want %v", tt.crisprName, got.Samples, tt.want)
		}
	}

	rec := httptest.NewRecorder()
	SamplesEndpoint(env).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, models.SamplesPath("crZ"), nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status for unknown target = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestChartsEndpoint(t *testing.T) {
	env, _ := newTestEnv(t, "S1.crA.ins.png")

	tests := []struct {
		name     string
		query    string
		status   int
		contains string
		empty    bool
	}{
		{"low resolution", "?sample=S1&crispr=crA", http.StatusOK, `src="assets/S1.crA.snp.png"`, false},
		{"high resolution", "?sample=S1&crispr=crA&high_res=1", http.StatusOK, `src="assets/S1.crA.len2.tif"`, false},
		{"no sample", "?crispr=crA&high_res=1", http.StatusOK, "", true},
		{"unknown target", "?sample=S1&crispr=crZ", http.StatusNotFound, "", false},
		{"sample without target", "?sample=S1", http.StatusBadRequest, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ChartsEndpoint(env).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/charts"+tt.query, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			body := rec.Body.String()
			if tt.empty && body != "" {
				t.Fatalf("body = %q, want empty", body)
			}
			if !strings.Contains(body, tt.contains) {
				t.Fatalf("body %q does not contain %q", body, tt.contains)
			}
		})
	}
}

func TestRefreshEndpoint(t *testing.T) {
	env, dir := newTestEnv(t)
	if err := os.WriteFile(filepath.Join(dir, "S7.crA.del.png"), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	rec := httptest.NewRecorder()
	RefreshEndpoint(env).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/refresh", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := env.DB.Samples(); !reflect.DeepEqual(got, []string{"S7"}) {
		t.Fatalf("Samples() after refresh = %v", got)
	}

	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("remove: %v", err)
	}
	rec = httptest.NewRecorder()
	RefreshEndpoint(env).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/refresh", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status after removing assets = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}
