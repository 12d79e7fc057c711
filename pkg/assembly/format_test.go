package assembly_test

import (
	"testing"

	"github.com/gnames/gnkore/pkg/assembly"
	"github.com/stretchr/testify/assert"
)

func TestMegabases(t *testing.T) {
	tests := []struct {
		bp  int64
		res string
	}{
		{0, "0.00"},
		{987_654, "0.99"},
		{1_000_000, "1.00"},
		{1_004_999, "1.00"},
		{1_005_000, "1.01"},
		{12_345_678, "12.35"},
		{1_234_567_890, "1234.57"},
		{-1_005_000, "-1.01"},
		{-4_000, "0.00"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, assembly.Megabases(v.bp), v.bp)
	}
}

func TestGigabases(t *testing.T) {
	tests := []struct {
		bp  int64
		res string
	}{
		{0, "0.00"},
		{1_234_567_890, "1.23"},
		{1_235_000_000, "1.24"},
		{1_234_999_999, "1.23"},
		{999_999_999, "1.00"},
		{12_345_000_000, "12.35"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, assembly.Gigabases(v.bp), v.bp)
	}
}

func TestFormatSexChromosomes(t *testing.T) {
	tests := []struct {
		chrs []string
		res  string
	}{
		{nil, "none"},
		{[]string{"X"}, "X"},
		{[]string{"X", "Y"}, "X and Y"},
		{[]string{"X", "Y", "W"}, "X, Y, and W"},
		{[]string{"X1", "X2", "Y", "B"}, "X1, X2, Y, and B"},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, assembly.FormatSexChromosomes(v.chrs))
	}
}
