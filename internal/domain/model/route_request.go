package model

import "strings"

// TransportMode 移動手段を表す列挙型（Google Routes APIのtravelModeに対応）
type TransportMode string

const (
	ModeDrive   TransportMode = "DRIVE"
	ModeWalk    TransportMode = "WALK"
	ModeBicycle TransportMode = "BICYCLE"
	ModeTransit TransportMode = "TRANSIT"
)

// DefaultTransportMode 移動手段が特定できない場合のデフォルト値
const DefaultTransportMode = ModeDrive

// IsValid 既知の移動手段かどうかを判定する
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeDrive, ModeWalk, ModeBicycle, ModeTransit:
		return true
	}
	return false
}

// RouteRequest 解析済みの経路リクエスト（出発地・目的地は未ジオコーディングの自由テキスト）
type RouteRequest struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Mode        TransportMode `json:"mode"`
}

// modeKeyword 移動手段の同義語とTransportModeの対応
type modeKeyword struct {
	Keyword string
	Mode    TransportMode
}

// transportModeKeywords 同義語テーブル。部分一致検索で先頭から順に評価されるため順序に意味がある
var transportModeKeywords = []modeKeyword{
	{"car", ModeDrive},
	{"driving", ModeDrive},
	{"drive", ModeDrive},
	{"walk", ModeWalk},
	{"walking", ModeWalk},
	{"foot", ModeWalk},
	{"on foot", ModeWalk},
	{"bicycle", ModeBicycle},
	{"bike", ModeBicycle},
	{"cycling", ModeBicycle},
	{"bicycling", ModeBicycle},
	{"cycle", ModeBicycle},
	{"transit", ModeTransit},
	{"bus", ModeTransit},
	{"train", ModeTransit},
	{"public transport", ModeTransit},
	{"public transportation", ModeTransit},
	{"metro", ModeTransit},
	{"subway", ModeTransit},
	{"rail", ModeTransit},
}

// LookupTransportMode テキスト中に含まれる移動手段キーワードを探す（大文字小文字を区別しない部分一致）
func LookupTransportMode(text string) (TransportMode, bool) {
	lowered := strings.ToLower(text)
	for _, mk := range transportModeKeywords {
		if strings.Contains(lowered, mk.Keyword) {
			return mk.Mode, true
		}
	}
	return "", false
}

// TransportModeKeywords 同義語テーブルのコピーを返す（テスト・検証用）
func TransportModeKeywords() map[string]TransportMode {
	table := make(map[string]TransportMode, len(transportModeKeywords))
	for _, mk := range transportModeKeywords {
		table[mk.Keyword] = mk.Mode
	}
	return table
}

// FindTransportModeKeyword テキストに最初に一致したキーワード自体を返す（取り除き処理用）
func FindTransportModeKeyword(text string) (string, TransportMode, bool) {
	lowered := strings.ToLower(text)
	for _, mk := range transportModeKeywords {
		if strings.Contains(lowered, mk.Keyword) {
			return mk.Keyword, mk.Mode, true
		}
	}
	return "", "", false
}
