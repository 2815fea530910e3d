package repository

import "testing"

func TestAssignRanks(t *testing.T) {
	rows := []RankedEntry{
		{StudentID: 7, Score: 30},
		{StudentID: 2, Score: 25},
		{StudentID: 9, Score: 25},
		{StudentID: 1, Score: 10},
	}

	assignRanks(rows)

	for i, row := range rows {
		if row.Rank != i+1 {
			t.Fatalf("row %d: Rank = %d, want %d", i, row.Rank, i+1)
		}
	}
	// Equal scores keep query order, ranks stay distinct.
	if rows[1].StudentID != 2 || rows[2].StudentID != 9 {
		t.Fatalf("tied rows reordered: %d, %d", rows[1].StudentID, rows[2].StudentID)
	}
}

func TestAssignRanksEmpty(t *testing.T) {
	assignRanks(nil)
	assignRanks([]RankedEntry{})
}
