package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Akshar-App/internal/domain/model"
)

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters int
		want   string
	}{
		{0, "0 m"},
		{450, "450 m"},
		{999, "999 m"},
		{1000, "1.0 km"},
		{1500, "1.5 km"},
		{12345, "12.3 km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDistance(tt.meters))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"秒のみ", 59, "59 seconds"},
		{"1秒は単数形", 1, "1 second"},
		{"分と秒", 90, "1 minute 30 seconds"},
		{"1時間ちょうど", 3600, "1 hour"},
		{"1時間以上は秒を省略", 3725, "1 hour 2 minutes"},
		{"複数時間", 7320, "2 hours 2 minutes"},
		{"ゼロ", 0, "0 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(time.Duration(tt.seconds)*time.Second))
		})
	}
}

func TestFormatDirections(t *testing.T) {
	t.Run("ステップ付きの整形", func(t *testing.T) {
		route := &model.RouteInfo{
			Origin:         "pune",
			Destination:    "mumbai",
			Mode:           model.ModeDrive,
			DistanceMeters: 148000,
			Duration:       2*time.Hour + 30*time.Minute,
			Steps: []model.RouteStep{
				{Instruction: "Head north on MG Road", DistanceMeters: 450},
				{Instruction: "Merge onto Mumbai-Pune Expressway", DistanceMeters: 94000},
			},
		}

		want := "Route from pune to mumbai:\n" +
			"Total Distance: 148.0 km\n" +
			"Estimated Time: 2 hours 30 minutes\n" +
			"\nDirections:\n" +
			"1. Head north on MG Road (450 m)\n" +
			"2. Merge onto Mumbai-Pune Expressway (94.0 km)"

		assert.Equal(t, want, FormatDirections(route))
	})

	t.Run("ステップなしの場合", func(t *testing.T) {
		route := &model.RouteInfo{
			Origin:         "a",
			Destination:    "b",
			DistanceMeters: 500,
			Duration:       45 * time.Second,
		}

		want := "Route from a to b:\n" +
			"Total Distance: 500 m\n" +
			"Estimated Time: 45 seconds\n" +
			"\nDirections:\n" +
			"Detailed directions not available."

		assert.Equal(t, want, FormatDirections(route))
	})
}
