package usecase

import (
	"strings"
	"unicode"

	"image-insights-srv/internal/model"
)

// extractKeywords tokenizes name, description, category and tags into a
// deduplicated, order-preserving lowercase keyword list capped at
// Config.MaxKeywords.
func (uc *implUseCase) extractKeywords(product model.ProductContext) []string {
	sources := []string{product.ProductName, product.Description, product.Category}
	sources = append(sources, product.Tags...)

	seen := make(map[string]bool)
	keywords := make([]string, 0, uc.cfg.MaxKeywords)

	for _, source := range sources {
		for _, token := range tokenize(source) {
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			keywords = append(keywords, token)
			if len(keywords) >= uc.cfg.MaxKeywords {
				return keywords
			}
		}
	}

	return keywords
}

// tokenize lowercases and splits on any non-alphanumeric rune.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// slugify builds a URL-safe hyphenated slug from free text.
func slugify(s string) string {
	return strings.Join(tokenize(s), "-")
}
