package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTransportMode(t *testing.T) {
	tests := []struct {
		text string
		mode TransportMode
		ok   bool
	}{
		{"car", ModeDrive, true},
		{"by TRAIN", ModeTransit, true},
		{"public transportation", ModeTransit, true},
		{"i will go on foot", ModeWalk, true},
		{"cycling along the river", ModeBicycle, true},
		{"teleport", "", false},
	}

	for _, tt := range tests {
		mode, ok := LookupTransportMode(tt.text)
		assert.Equal(t, tt.ok, ok, "text: %q", tt.text)
		assert.Equal(t, tt.mode, mode, "text: %q", tt.text)
	}
}

func TestTransportModeKeywords(t *testing.T) {
	table := TransportModeKeywords()
	assert.Len(t, table, 20)

	// 同義語テーブルの全エントリが4つの既知モードのいずれかに解決し、
	// キーワード単体の検索でも同じモードに落ちること
	for keyword, mode := range table {
		assert.True(t, mode.IsValid(), "keyword: %q", keyword)

		resolved, ok := LookupTransportMode(keyword)
		assert.True(t, ok, "keyword: %q", keyword)
		assert.Equal(t, mode, resolved, "keyword: %q", keyword)
	}
}

func TestTransportMode_IsValid(t *testing.T) {
	assert.True(t, ModeDrive.IsValid())
	assert.False(t, TransportMode("HELICOPTER").IsValid())
	assert.False(t, TransportMode("").IsValid())
}
