package helper

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDecodePolyline(t *testing.T) {
	t.Run("Google公式ドキュメントの例", func(t *testing.T) {
		line := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")

		assert.Len(t, line, 3)
		assert.InDelta(t, 38.5, line[0].Lat(), 1e-9)
		assert.InDelta(t, -120.2, line[0].Lon(), 1e-9)
		assert.InDelta(t, 40.7, line[1].Lat(), 1e-9)
		assert.InDelta(t, -120.95, line[1].Lon(), 1e-9)
		assert.InDelta(t, 43.252, line[2].Lat(), 1e-9)
		assert.InDelta(t, -126.453, line[2].Lon(), 1e-9)
	})

	t.Run("空文字列は空のライン", func(t *testing.T) {
		assert.Empty(t, DecodePolyline(""))
	})

	t.Run("途中で切れた入力は読めた分だけ返す", func(t *testing.T) {
		full := DecodePolyline("_p~iF~ps|U_ulLnnqC")
		assert.Len(t, full, 2)

		truncated := DecodePolyline("_p~iF~ps|U_ul")
		assert.Len(t, truncated, 1)
	})
}

func TestEncodePolyline(t *testing.T) {
	t.Run("エンコードとデコードの往復", func(t *testing.T) {
		original := orb.LineString{
			{-120.2, 38.5},
			{-120.95, 40.7},
			{-126.453, 43.252},
		}

		encoded := EncodePolyline(original)
		assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", encoded)

		decoded := DecodePolyline(encoded)
		assert.Len(t, decoded, len(original))
		for i := range original {
			assert.InDelta(t, original[i].Lat(), decoded[i].Lat(), 1e-5)
			assert.InDelta(t, original[i].Lon(), decoded[i].Lon(), 1e-5)
		}
	})
}
