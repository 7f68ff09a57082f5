package ports

import "testing"

func TestNewPage(t *testing.T) {
	tests := []struct {
		name           string
		items          []string
		total          int64
		page, size     int
		wantTotalPages int
	}{
		{"exact division", []string{"a", "b"}, 20, 0, 10, 2},
		{"partial last page", []string{"a"}, 21, 2, 10, 3},
		{"empty result", nil, 0, 0, 10, 0},
		{"single item", []string{"a"}, 1, 0, 10, 1},
		{"size larger than total", []string{"a", "b", "c"}, 3, 0, 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.items, tt.total, tt.page, tt.size)
			if p.TotalItems != tt.total {
				t.Errorf("TotalItems = %d, want %d", p.TotalItems, tt.total)
			}
			if p.CurrentPage != tt.page {
				t.Errorf("CurrentPage = %d, want %d", p.CurrentPage, tt.page)
			}
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.Items == nil {
				t.Errorf("Items must never be nil")
			}
		})
	}
}

func TestNewPage_DefaultsSize(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, 30, 0, 0)
	if p.TotalPages != 3 {
		t.Fatalf("expected default size 10 to yield 3 pages, got %d", p.TotalPages)
	}
}
