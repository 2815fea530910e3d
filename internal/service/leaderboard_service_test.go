package service

import (
	"testing"

	"rudasumbwa_backend/internal/repository"
)

func board(n int) []repository.RankedEntry {
	rows := make([]repository.RankedEntry, n)
	for i := range rows {
		rows[i] = repository.RankedEntry{Rank: i + 1, StudentID: uint(i + 1)}
	}
	return rows
}

func TestClampBoard(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		limit    int
		wantLen  int
		wantLast int
	}{
		{"shorter than limit", 5, 10, 5, 5},
		{"trimmed to limit", 50, 10, 10, 10},
		{"zero limit defaults to 20", 50, 0, 20, 20},
		{"oversized limit defaults to 20", 50, 1000, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampBoard(board(tt.size), tt.limit)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if got[len(got)-1].Rank != tt.wantLast {
				t.Fatalf("last rank = %d, want %d", got[len(got)-1].Rank, tt.wantLast)
			}
			if got[0].Rank != 1 {
				t.Fatalf("ranks must be preserved from the full board")
			}
		})
	}
}
