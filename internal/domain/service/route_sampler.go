package service

import "github.com/paulmach/orb"

// maxSampledPoints 経路から抽出するサンプル地点数の上限。
// 全頂点で周辺検索すると外部呼び出しが10〜100倍に膨らむため、5点で打ち止めにする
const maxSampledPoints = 5

// SampleRoutePoints 経路ジオメトリから代表点を決定的に抽出する純粋関数。
// 5点以下ならそのまま（順序保持）、それ以外は先頭・1/4・1/2・3/4・末尾のちょうど5点を返す。
// 先頭が出発地点、末尾が到着地点になることを保証する
func SampleRoutePoints(line orb.LineString) []orb.Point {
	n := len(line)
	if n == 0 {
		return nil
	}

	if n <= maxSampledPoints {
		points := make([]orb.Point, n)
		copy(points, line)
		return points
	}

	indices := []int{0, n / 4, n / 2, (3 * n) / 4, n - 1}
	points := make([]orb.Point, 0, len(indices))
	for _, i := range indices {
		points = append(points, line[i])
	}
	return points
}
