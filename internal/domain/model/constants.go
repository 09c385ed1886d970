package model

// POICategory 経路沿い検索のカテゴリ定義。Typesの先頭が検索に使うプライマリタイプ
type POICategory struct {
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// PrimaryType 周辺検索に使用するプライマリのプレイスタイプを返す
func (c POICategory) PrimaryType() string {
	return c.Types[0]
}

// DefaultPOICategoryKey 未知のカテゴリキーが指定された場合のフォールバック先
const DefaultPOICategoryKey = "restaurants"

// poiCategories プロセス全体で共有する静的カタログ（起動時に一度だけ定義、以後不変）
var poiCategories = []POICategory{
	{Key: "restaurants", Name: "Restaurants", Types: []string{"restaurant", "food", "cafe", "bakery", "meal_takeaway"}},
	{Key: "hotels", Name: "Hotels", Types: []string{"lodging", "hotel", "motel", "guest_house"}},
	{Key: "fuel", Name: "Petrol Stations", Types: []string{"gas_station", "petrol_station", "fuel"}},
	{Key: "hospitals", Name: "Hospitals & Clinics", Types: []string{"hospital", "doctor", "health", "clinic", "pharmacy"}},
	{Key: "attractions", Name: "Attractions", Types: []string{"tourist_attraction", "museum", "park", "amusement_park", "zoo"}},
	{Key: "shopping", Name: "Shopping", Types: []string{"shopping_mall", "store", "supermarket", "department_store"}},
}

// GetPOICategory カテゴリキーからカタログエントリを取得する。
// 未知のキーはエラーではなくrestaurantsにフォールバックする
func GetPOICategory(key string) POICategory {
	for _, c := range poiCategories {
		if c.Key == key {
			return c
		}
	}
	return GetPOICategory(DefaultPOICategoryKey)
}

// GetAllPOICategories カタログ全体を定義順で返す
func GetAllPOICategories() []POICategory {
	categories := make([]POICategory, len(poiCategories))
	copy(categories, poiCategories)
	return categories
}

// LanguageEnglish 翻訳不要の恒等ケース
const LanguageEnglish = "English"

// supportedLanguages 経路案内の翻訳に対応している言語（英語＋インド10言語）
var supportedLanguages = []string{
	LanguageEnglish,
	"Hindi",
	"Bengali",
	"Telugu",
	"Marathi",
	"Tamil",
	"Urdu",
	"Gujarati",
	"Kannada",
	"Malayalam",
	"Punjabi",
}

// GetSupportedLanguages 対応言語の一覧を定義順で返す
func GetSupportedLanguages() []string {
	languages := make([]string, len(supportedLanguages))
	copy(languages, supportedLanguages)
	return languages
}

// IsSupportedLanguage 対応言語かどうかを判定する
func IsSupportedLanguage(language string) bool {
	for _, l := range supportedLanguages {
		if l == language {
			return true
		}
	}
	return false
}
