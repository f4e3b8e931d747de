package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// SignupRequest представляет запрос на регистрацию нового пользователя
type SignupRequest struct {
	Name     string `json:"name"`     // отображаемое имя
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// User представляет пользователя в ответах сервера
type User struct {
	ID    string `json:"_id"`   // идентификатор пользователя
	Name  string `json:"name"`  // отображаемое имя
	Email string `json:"email"` // email
}

// AuthResponse представляет ответ login/validateUser с вложенным пользователем.
// Ответ signup отдаёт пользователя на верхнем уровне, см. actions.decodeUser.
type AuthResponse struct {
	User *User `json:"user"`
}

// MessageResponse представляет ответ с текстовым сообщением (logout и т.п.)
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Message string `json:"message"` // описание ошибки
}
