package service

import (
	"errors"
	"regexp"
	"strings"

	"Akshar-App/internal/domain/model"
)

// ErrUnparsableInput 入力テキストから出発地・目的地を一切復元できなかったことを表す。
// 呼び出し側はこのエラーを「理解できないリクエスト」としてユーザーに再入力を促す
var ErrUnparsableInput = errors.New("経路リクエストを解析できませんでした")

// RouteParseService 自由テキストの経路リクエストを構造化された(出発地, 目的地, 移動手段)に変換するサービス
type RouteParseService interface {
	Parse(input string) (*model.RouteRequest, error)
}

// routePattern 順序付きパターンの1エントリ。先にマッチしたものが勝つ
type routePattern struct {
	re *regexp.Regexp
}

// 位置表現として許容する文字クラス（英数字・空白・カンマ・ピリオド・ハイフン）
const locationClass = `[a-z0-9\s,.\-]`

// routeParseServiceImpl RouteParseServiceの実装。パターンはコンパイル済みで不変
type routeParseServiceImpl struct {
	patterns []routePattern
}

// NewRouteParseService 新しいRouteParseServiceインスタンスを作成
func NewRouteParseService() RouteParseService {
	// パターンは曖昧さの少ない順に並べる:
	//   1. "from X to Y [by Z]"
	//   2. "X to Y [by Z]"（文頭アンカー）
	//   3. "directions [from] X to Y"
	//   4. "how to get [from] X to Y"
	//   5. "X to Y"（文全体の完全一致のみ）
	raws := []string{
		`from\s+(` + locationClass + `+)\s+to\s+(` + locationClass + `+)(?:\s+by\s+([a-z\s]+))?`,
		`^(` + locationClass + `+)\s+to\s+(` + locationClass + `+)(?:\s+by\s+([a-z\s]+))?`,
		`directions\s+(?:from\s+)?(` + locationClass + `+)\s+to\s+(` + locationClass + `+)`,
		`how\s+to\s+get\s+(?:from\s+)?(` + locationClass + `+)\s+to\s+(` + locationClass + `+)`,
		`^(` + locationClass + `+)\s+to\s+(` + locationClass + `+)$`,
	}

	patterns := make([]routePattern, 0, len(raws))
	for _, raw := range raws {
		patterns = append(patterns, routePattern{re: regexp.MustCompile(raw)})
	}

	return &routeParseServiceImpl{patterns: patterns}
}

// Parse 自由テキストを解析して経路リクエストを返す。
// どのパターンにも一致せず、フォールバックでも位置が2つ見つからない場合はErrUnparsableInputを返す
func (s *routeParseServiceImpl) Parse(input string) (*model.RouteRequest, error) {
	// 正規化: 小文字化と連続空白の除去
	normalized := strings.Join(strings.Fields(strings.ToLower(input)), " ")
	if normalized == "" {
		return nil, ErrUnparsableInput
	}

	for _, p := range s.patterns {
		m := p.re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}

		origin := strings.TrimSpace(m[1])
		destination := strings.TrimSpace(m[2])
		if origin == "" || destination == "" {
			continue
		}

		mode := s.resolveMode(m, &destination, normalized)
		return &model.RouteRequest{Origin: origin, Destination: destination, Mode: mode}, nil
	}

	return s.parseWithLocationIndicators(normalized)
}

// resolveMode マッチ結果から移動手段を決定する。
// (a) 捕捉された "by <手段>" 句、(b) 入力全体のキーワード検索、(c) デフォルトDRIVE の順で解決する。
// 位置文字クラスは "by car" のような末尾句も飲み込むため、目的地末尾のby句はここで切り離す
func (s *routeParseServiceImpl) resolveMode(m []string, destination *string, normalized string) model.TransportMode {
	if idx := strings.LastIndex(*destination, " by "); idx >= 0 {
		if mode, ok := model.LookupTransportMode((*destination)[idx+len(" by "):]); ok {
			*destination = strings.TrimSpace((*destination)[:idx])
			return mode
		}
	}

	if len(m) > 3 && m[3] != "" {
		if mode, ok := model.LookupTransportMode(m[3]); ok {
			return mode
		}
	}

	if mode, ok := model.LookupTransportMode(normalized); ok {
		return mode
	}

	return model.DefaultTransportMode
}

// locationIndicators 位置を示唆する前置詞・指示語
var locationIndicators = map[string]struct{}{
	"from":        {},
	"to":          {},
	"at":          {},
	"in":          {},
	"near":        {},
	"starting":    {},
	"ending":      {},
	"origin":      {},
	"destination": {},
}

// parseWithLocationIndicators パターン不一致時のフォールバック。
// 指示語に続くトークン列（次の指示語まで）を位置候補として収集し、最初の2つを出発地・目的地とする。
// 3つ以上見つかった場合も最初の2つのみを使い、残りは黙って捨てる。
// 候補が2つ未満の場合は完全な失敗であり、移動手段もデフォルトに倒さない
func (s *routeParseServiceImpl) parseWithLocationIndicators(normalized string) (*model.RouteRequest, error) {
	mode := model.DefaultTransportMode

	// 移動手段キーワードを先に特定し、位置語と混同しないよう入力から取り除く
	working := normalized
	if keyword, found, ok := model.FindTransportModeKeyword(normalized); ok {
		mode = found
		working = strings.ReplaceAll(working, keyword, "")
	}

	words := strings.Fields(working)
	var candidates []string

	for i := 0; i < len(words); i++ {
		if _, ok := locationIndicators[words[i]]; !ok || i+1 >= len(words) {
			continue
		}
		var phrase []string
		for j := i + 1; j < len(words); j++ {
			if _, stop := locationIndicators[words[j]]; stop {
				break
			}
			phrase = append(phrase, words[j])
		}
		if len(phrase) > 0 {
			candidates = append(candidates, strings.Join(phrase, " "))
		}
	}

	if len(candidates) >= 2 {
		return &model.RouteRequest{Origin: candidates[0], Destination: candidates[1], Mode: mode}, nil
	}

	return nil, ErrUnparsableInput
}
