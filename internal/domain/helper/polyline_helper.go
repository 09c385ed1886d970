package helper

import "github.com/paulmach/orb"

// polylinePrecision Google標準のエンコード精度（1e5）
const polylinePrecision = 1e5

// DecodePolyline エンコード済みポリラインをorb.LineStringにデコードする。
// Google Encoded Polyline Algorithm Format（符号付き差分エンコーディング）準拠
func DecodePolyline(encoded string) orb.LineString {
	var line orb.LineString
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		latDelta, next, ok := decodeValue(encoded, index)
		if !ok {
			return line
		}
		index = next
		lat += latDelta

		lngDelta, next, ok := decodeValue(encoded, index)
		if !ok {
			return line
		}
		index = next
		lng += lngDelta

		// orb.Pointは経度・緯度の順
		line = append(line, orb.Point{float64(lng) / polylinePrecision, float64(lat) / polylinePrecision})
	}

	return line
}

// decodeValue 1座標ぶんの可変長チャンクを読み取り、符号を復元した差分値を返す
func decodeValue(encoded string, index int) (value, nextIndex int, ok bool) {
	shift, result := 0, 0
	for {
		if index >= len(encoded) {
			return 0, index, false
		}
		b := int(encoded[index]) - 63
		index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), index, true
	}
	return result >> 1, index, true
}

// EncodePolyline orb.LineStringをエンコード済みポリライン文字列に変換する（テスト・デバッグ用）
func EncodePolyline(line orb.LineString) string {
	var encoded []byte
	prevLat, prevLng := 0, 0

	for _, p := range line {
		lat := int(round(p.Lat() * polylinePrecision))
		lng := int(round(p.Lon() * polylinePrecision))
		encoded = appendValue(encoded, lat-prevLat)
		encoded = appendValue(encoded, lng-prevLng)
		prevLat, prevLng = lat, lng
	}

	return string(encoded)
}

func appendValue(dst []byte, value int) []byte {
	v := value << 1
	if value < 0 {
		v = ^v
	}
	for v >= 0x20 {
		dst = append(dst, byte((0x20|(v&0x1f))+63))
		v >>= 5
	}
	return append(dst, byte(v+63))
}

func round(f float64) float64 {
	if f < 0 {
		return f - 0.5
	}
	return f + 0.5
}
