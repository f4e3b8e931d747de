package api

import "time"

// Revision представляет неизменяемый снимок содержимого статьи.
// Порядок ревизий в статье задаёт сервер, клиент его не пересортировывает.
type Revision struct {
	UpdatedAt time.Time `json:"updatedAt"` // время создания снимка
	ID        string    `json:"_id"`       // идентификатор ревизии
	Content   string    `json:"content"`   // содержимое на момент снимка
	IsCurrent bool      `json:"isCurrent"` // не более одной текущей на статью
}

// Article представляет статью с историей ревизий
type Article struct {
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Description string     `json:"description"`
	Author      string     `json:"author"` // имя автора для списков
	CreatedBy   User       `json:"createdBy"`
	Revisions   []Revision `json:"revisions,omitempty"`
	Views       int        `json:"views"`
}

// ArticleRequest представляет тело запросов create/update статьи
type ArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DeleteResponse представляет подтверждение удаления статьи
type DeleteResponse struct {
	Message string  `json:"message"` // текст для пользователя
	Article Article `json:"article"` // удалённая статья, как минимум с id
}

// GeneratedContent представляет сгенерированный текст для заданного заголовка
type GeneratedContent struct {
	Content string `json:"content"`
}
