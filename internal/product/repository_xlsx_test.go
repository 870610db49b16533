package product

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			t.Fatalf("set row %d: %v", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestParseXLSX(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Price", "Name", "ID", "Category", "Description"},
		{"19.50", "Soccer Ball", 3, "Soccer", "FIFA-approved"},
		{"1,200", "Bling-Bling King", 9, "Chess", ""},
		{"", "Gift Card", 10, "", ""},
		{"5", "no id row", "", "Soccer", ""},
	})

	products, err := ParseXLSX(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d: %+v", len(products), products)
	}

	ball := products[0]
	if ball.ID != 3 || ball.Name != "Soccer Ball" || ball.Description != "FIFA-approved" {
		t.Fatalf("unexpected product %+v", ball)
	}
	if ball.Category == nil || *ball.Category != "Soccer" {
		t.Fatalf("unexpected category %v", ball.Category)
	}
	if ball.Price.String() != "19.5" {
		t.Fatalf("unexpected price %s", ball.Price)
	}
	if products[1].Price.String() != "1200" {
		t.Fatalf("thousands separator not handled: %s", products[1].Price)
	}
	if products[2].Category != nil {
		t.Fatalf("empty category cell should map to nil")
	}
}

func TestParseXLSX_MissingIDColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]any{{"Name", "Category"}, {"Ball", "Soccer"}})
	if _, err := ParseXLSX(buf); err == nil {
		t.Fatalf("expected error for header without id column")
	}
}

func TestParseXLSX_InvalidPrice(t *testing.T) {
	buf := buildWorkbook(t, [][]any{{"ID", "Name", "Price"}, {1, "Ball", "cheap"}})
	if _, err := ParseXLSX(buf); err == nil {
		t.Fatalf("expected error for invalid price")
	}
}

func TestXLSXRepository_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	write := func(rows [][]any) {
		if err := os.WriteFile(path, buildWorkbook(t, rows).Bytes(), 0o644); err != nil {
			t.Fatalf("write workbook: %v", err)
		}
	}

	write([][]any{{"ID", "Name", "Category"}, {1, "Kayak", "Watersports"}})
	repo, err := NewXLSXRepository(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products, _ := repo.List(context.Background())
	if len(products) != 1 || products[0].Name != "Kayak" {
		t.Fatalf("unexpected products %+v", products)
	}

	write([][]any{{"ID", "Name", "Category"}, {1, "Kayak", "Watersports"}, {2, "Lifejacket", "Watersports"}})
	n, err := repo.Reload(context.Background())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 products after reload, got %d", n)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove workbook: %v", err)
	}
	if _, err := repo.Reload(context.Background()); err == nil {
		t.Fatalf("expected reload error for missing workbook")
	}
	products, _ = repo.List(context.Background())
	if len(products) != 2 {
		t.Fatalf("failed reload must keep previous catalog, got %d products", len(products))
	}
}

func TestNewXLSXRepository_MissingFile(t *testing.T) {
	if _, err := NewXLSXRepository(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Fatalf("expected error for missing workbook")
	}
}
