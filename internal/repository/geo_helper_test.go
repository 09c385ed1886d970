package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Akshar-App/internal/domain/model"
)

func TestGeoPointToLatLng(t *testing.T) {
	t.Run("GeoJSONの経度緯度順を正しく変換する", func(t *testing.T) {
		latLng, ok := GeoPointToLatLng(&GeoPoint{
			Type:        "Point",
			Coordinates: []float64{135.768799, 35.004573},
		})
		assert.True(t, ok)
		assert.InDelta(t, 35.004573, latLng.Lat, 1e-9)
		assert.InDelta(t, 135.768799, latLng.Lng, 1e-9)
	})

	t.Run("不正な入力はfalse", func(t *testing.T) {
		_, ok := GeoPointToLatLng(nil)
		assert.False(t, ok)

		_, ok = GeoPointToLatLng(&GeoPoint{Type: "Point", Coordinates: []float64{135.0}})
		assert.False(t, ok)
	})
}

func TestWithinRadiusAndSearchBound(t *testing.T) {
	kawaramachi := model.LatLng{Lat: 35.004573, Lng: 135.768799}
	kyotoStation := model.LatLng{Lat: 34.985849, Lng: 135.758766}  // 約2.3km
	osakaStation := model.LatLng{Lat: 34.702485, Lng: 135.495951}  // 約40km

	t.Run("半径内外の判定", func(t *testing.T) {
		assert.True(t, WithinRadius(kawaramachi, kyotoStation, 5000))
		assert.False(t, WithinRadius(kawaramachi, osakaStation, 5000))
	})

	t.Run("境界ボックスは半径内の点を必ず含む", func(t *testing.T) {
		bound := SearchBound(kawaramachi, 5000)
		assert.True(t, bound.Contains(kawaramachi.ToPoint()))
		assert.True(t, bound.Contains(kyotoStation.ToPoint()))
		assert.False(t, bound.Contains(osakaStation.ToPoint()))
	})
}
