package service

import (
	"fmt"
	"strings"
	"time"

	"Akshar-App/internal/domain/model"
)

// HelpText 入力を解析できなかった場合に返す案内文
const HelpText = `I couldn't understand your request. Please try again with a clearer description of your journey.

Examples of requests I can understand:
- "Pune to Mumbai by car"
- "I want to go from New York to Boston by train"
- "How to get from London to Paris"
- "Directions from Seattle to Portland by bicycle"
- "San Francisco to Los Angeles"
`

// FormatDistance メートル単位の距離を表示用文字列に変換する。
// 1000m未満はメートル表記、それ以上は小数1桁のキロメートル表記
func FormatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000.0)
}

// FormatDuration 所要時間を表示用文字列に変換する。
// 時・分・秒に分解し、秒は合計が1時間未満の場合のみ表示する
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}
	if seconds > 0 && hours == 0 {
		parts = append(parts, pluralize(seconds, "second"))
	}
	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

func pluralize(value int, unit string) string {
	if value == 1 {
		return fmt.Sprintf("%d %s", value, unit)
	}
	return fmt.Sprintf("%d %ss", value, unit)
}

// FormatDirections 経路情報を番号付きの案内テキストに整形する
func FormatDirections(route *model.RouteInfo) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Route from %s to %s:\n", route.Origin, route.Destination))
	b.WriteString(fmt.Sprintf("Total Distance: %s\n", FormatDistance(route.DistanceMeters)))
	b.WriteString(fmt.Sprintf("Estimated Time: %s\n", FormatDuration(route.Duration)))
	b.WriteString("\nDirections:\n")

	if len(route.Steps) == 0 {
		b.WriteString("Detailed directions not available.")
		return b.String()
	}

	for i, step := range route.Steps {
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, step.Instruction, FormatDistance(step.DistanceMeters)))
	}
	return strings.TrimRight(b.String(), "\n")
}
