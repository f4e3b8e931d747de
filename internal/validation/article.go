package validation

import (
	"fmt"
	"strings"
)

// MaxTitleLen максимальная длина заголовка статьи
const MaxTitleLen = 200

// ValidateTitle проверяет заголовок статьи перед отправкой.
// Пустой заголовок отсекается до какого-либо сетевого запроса.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("please enter a title for your article")
	}
	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}
	return nil
}

// ValidateContent проверяет содержимое статьи перед отправкой
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("please enter a content for your article")
	}
	return nil
}
