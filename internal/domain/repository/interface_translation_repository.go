package repository

import "context"

// TranslationRepository テキストを対象言語に翻訳するコラボレータ。
// Englishまたは空テキストの場合は恒等変換になる
type TranslationRepository interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}
