package tiler

import "testing"

func TestTilesRectangleNegativeTwoByTwo(t *testing.T) {
	faces := []Rect{
		{Long: 1, Short: 1, Value: 1},
		{Long: 2, Short: 1, Value: 2},
		{Long: 2, Short: 1, Value: 3},
	}
	if TilesRectangle(2, 2, faces) {
		t.Error("TilesRectangle(2, 2, ...) = true, want false")
	}
}

func TestTilesRectanglePositiveFourByThree(t *testing.T) {
	faces := []Rect{
		{Long: 4, Short: 1, Value: 1},
		{Long: 2, Short: 1, Value: 2},
		{Long: 3, Short: 2, Value: 3},
	}
	if !TilesRectangle(4, 3, faces) {
		t.Error("TilesRectangle(4, 3, ...) = false, want true")
	}
}

func TestTilesRectangleRejectsWrongTotalArea(t *testing.T) {
	faces := []Rect{{Long: 2, Short: 2, Value: 1}}
	if TilesRectangle(4, 3, faces) {
		t.Error("TilesRectangle(4, 3, ...) with insufficient area = true, want false")
	}
}
