package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"Akshar-App/internal/domain/model"
	"Akshar-App/internal/domain/repository"
)

// GeminiTranslator はGeminiを使った案内文翻訳の実装
type GeminiTranslator struct {
	client *GeminiClient
}

// NewGeminiTranslator は新しいGeminiTranslatorインスタンスを作成
func NewGeminiTranslator(client *GeminiClient) repository.TranslationRepository {
	return &GeminiTranslator{client: client}
}

// Translate はテキストを対象言語に翻訳する。英語指定または空テキストはそのまま返す
func (t *GeminiTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if targetLanguage == model.LanguageEnglish || text == "" {
		return text, nil
	}
	if !model.IsSupportedLanguage(targetLanguage) {
		return "", fmt.Errorf("サポートされていない言語です: %s", targetLanguage)
	}

	log.Printf("🤖 %sへの翻訳を実行中...", targetLanguage)

	prompt := fmt.Sprintf(`Translate the following text from English to %s.
Maintain the formatting and structure of the original text.
Keep any numbers, place names, and special terms intact.

Text to translate:
%s`, targetLanguage, text)

	translated, err := t.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("翻訳の生成に失敗: %w", err)
	}
	return strings.TrimSpace(translated), nil
}
