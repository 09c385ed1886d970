package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"Akshar-App/internal/domain/model"
	"Akshar-App/internal/domain/repository"
)

// 画像から経路情報を抽出するためのプロンプト
const routeExtractionPrompt = `Look at this image and extract travel route information.
Identify the origin (starting point), destination (ending point), and mode of transport (default to 'car' if not specified).
Return the information in a clear, structured format with only ASCII characters.
Format your response as:
Origin: [origin location]
Destination: [destination location]
Mode: [mode of transport]`

// GeminiRouteExtractor はGemini Visionを使った画像からの経路抽出の実装
type GeminiRouteExtractor struct {
	client *GeminiClient
}

// NewGeminiRouteExtractor は新しいGeminiRouteExtractorインスタンスを作成
func NewGeminiRouteExtractor(client *GeminiClient) repository.RouteExtractionRepository {
	return &GeminiRouteExtractor{client: client}
}

// ExtractRouteFromImage は画像をGeminiに渡して出発地・目的地・移動手段を抽出する
func (e *GeminiRouteExtractor) ExtractRouteFromImage(ctx context.Context, image []byte, mimeType string) (*model.RouteRequest, error) {
	log.Printf("🤖 Gemini Visionで画像から経路情報を抽出中... (%dバイト)", len(image))

	response, err := e.client.GenerateContentWithImage(ctx, routeExtractionPrompt, image, mimeType)
	if err != nil {
		return nil, fmt.Errorf("Gemini Visionの呼び出しに失敗: %w", err)
	}

	request, err := ParseExtractionResponse(response)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ 経路情報を抽出: %s → %s (%s)", request.Origin, request.Destination, request.Mode)
	return request, nil
}

var (
	nonASCIIPattern = regexp.MustCompile(`[^\x00-\x7F]+`)
	controlPattern  = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
)

// cleanExtractionText は非ASCII文字を空白に置換し、改行・タブ以外の制御文字を除去する
func cleanExtractionText(text string) string {
	text = nonASCIIPattern.ReplaceAllString(text, " ")
	return controlPattern.ReplaceAllString(text, "")
}

var (
	originIndicators = []string{"origin:", "from:", "starting point:", "start:"}
	destIndicators   = []string{"destination:", "to:", "ending point:", "end:"}
	modeIndicators   = []string{"mode:", "transport:", "transportation:", "by:", "using:"}
)

// ParseExtractionResponse はGeminiのレスポンステキストから経路リクエストを組み立てる。
// ラベル付きの行（Origin:/Destination:/Mode:）を優先し、見つからない場合は
// "X to Y [by M]" 形式のスキャンにフォールバックする
func ParseExtractionResponse(response string) (*model.RouteRequest, error) {
	cleaned := cleanExtractionText(response)

	request := &model.RouteRequest{Mode: model.DefaultTransportMode}

	request.Origin = extractAfterIndicator(cleaned, originIndicators)
	request.Destination = extractAfterIndicator(cleaned, destIndicators)
	if modeText := extractAfterIndicator(cleaned, modeIndicators); modeText != "" {
		if mode, ok := model.LookupTransportMode(modeText); ok {
			request.Mode = mode
		}
	}

	// ラベルが揃わなかった場合は "X to Y" 形式を探す
	if request.Origin == "" || request.Destination == "" {
		fallbackFromToScan(cleaned, request)
	}

	if request.Origin == "" || request.Destination == "" {
		return nil, errors.New("画像から出発地・目的地を特定できませんでした")
	}
	return request, nil
}

// extractAfterIndicator は最初に見つかったインジケータの直後から、
// 改行・ピリオド・カンマのいずれか（最も手前のもの）までを取り出す
func extractAfterIndicator(text string, indicators []string) string {
	lowered := strings.ToLower(text)
	for _, indicator := range indicators {
		idx := strings.Index(lowered, indicator)
		if idx < 0 {
			continue
		}
		start := idx + len(indicator)
		end := len(text)
		for _, sep := range []string{"\n", ".", ","} {
			if sepIdx := strings.Index(lowered[start:], sep); sepIdx > 0 && start+sepIdx < end {
				end = start + sepIdx
			}
		}
		if value := strings.TrimSpace(text[start:end]); value != "" {
			return value
		}
	}
	return ""
}

// fallbackFromToScan は "from X to Y by M" / "X to Y" 形式のテキストから抽出する
func fallbackFromToScan(text string, request *model.RouteRequest) {
	lowered := strings.ToLower(text)
	toIdx := strings.Index(lowered, " to ")
	if toIdx < 0 {
		return
	}

	before := lowered[:toIdx]
	after := lowered[toIdx+len(" to "):]

	if fromIdx := strings.Index(before, "from "); fromIdx >= 0 {
		before = before[fromIdx+len("from "):]
	}
	request.Origin = strings.TrimSpace(before)

	if byIdx := strings.Index(after, " by "); byIdx >= 0 {
		if mode, ok := model.LookupTransportMode(after[byIdx+len(" by "):]); ok {
			request.Mode = mode
		}
		after = after[:byIdx]
	}
	request.Destination = strings.TrimSpace(after)
}
