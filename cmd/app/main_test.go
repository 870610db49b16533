package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wichananm65/sports-store/internal/config"
	"github.com/wichananm65/sports-store/internal/logger"
	"github.com/xuri/excelize/v2"
)

func testConfig() config.Config {
	return config.Config{Addr: ":0", PageSize: 4, CatalogSource: config.SourceMemory}
}

func TestNewApp_ServesSampleCatalog(t *testing.T) {
	var logs bytes.Buffer
	repo, reloader, closeCatalog, err := openCatalog(testConfig())
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer closeCatalog()
	if reloader != nil {
		t.Fatalf("memory catalog must not expose a reloader")
	}
	app := newApp(testConfig(), logger.NewWithWriter(&logs, logger.Options{}), repo, reloader)

	res, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil || res.StatusCode != 200 {
		t.Fatalf("health check failed: %v (%v)", err, res)
	}

	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/products?category=Chess&page=1", nil))
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a request id header")
	}
	var listing struct {
		Products []struct {
			ID int `json:"productId"`
		} `json:"products"`
		PagingInfo struct {
			TotalItems int `json:"totalItems"`
			TotalPages int `json:"totalPages"`
		} `json:"pagingInfo"`
	}
	if err := json.NewDecoder(res.Body).Decode(&listing); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if listing.PagingInfo.TotalItems != 4 || listing.PagingInfo.TotalPages != 1 || len(listing.Products) != 4 {
		t.Fatalf("unexpected chess listing %+v", listing)
	}

	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/nav/menu", nil))
	if err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"categories":["Chess","Soccer","Watersports"]`) {
		t.Fatalf("unexpected menu %s", string(b))
	}

	if !strings.Contains(logs.String(), `"page_size":4`) {
		t.Fatalf("expected configured page size in startup log, got %s", logs.String())
	}
	if !strings.Contains(logs.String(), `"path":"/api/v1/nav/menu"`) {
		t.Fatalf("expected request log lines, got %s", logs.String())
	}
}

func TestOpenCatalog_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{{"ID", "Name", "Category", "Price"}, {1, "Kayak", "Watersports", "275"}}
	for i, row := range rows {
		ref, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	_ = f.Close()

	cfg := testConfig()
	cfg.CatalogSource = config.SourceXLSX
	cfg.CatalogXLSX = path

	repo, reloader, closeCatalog, err := openCatalog(cfg)
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	defer closeCatalog()
	if reloader == nil {
		t.Fatalf("xlsx catalog must expose a reloader")
	}

	t.Setenv("ALLOW_RESET_PRODUCTS", "1")
	app := newApp(cfg, logger.NewWithWriter(io.Discard, logger.Options{}), repo, reloader)
	res, err := app.Test(httptest.NewRequest("POST", "/dev/reload-catalog", nil))
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	if res.StatusCode != 200 || !strings.Contains(string(b), `"loaded":1`) {
		t.Fatalf("unexpected reload response %d %s", res.StatusCode, string(b))
	}
}

func TestOpenCatalog_MissingWorkbook(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogSource = config.SourceXLSX
	cfg.CatalogXLSX = filepath.Join(os.TempDir(), "does-not-exist-catalog.xlsx")

	if _, _, _, err := openCatalog(cfg); err == nil {
		t.Fatalf("expected error for missing workbook")
	}
}
