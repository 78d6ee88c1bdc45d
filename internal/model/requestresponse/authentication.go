package requestresponse

// SignupRequest : тело запроса на регистрацию
type SignupRequest struct {
	Email     string `json:"email" example:"user@example.com"`
	Password  string `json:"password" example:"P@ssw0rd123"`
	FirstName string `json:"firstName" example:"Ivan"`
	LastName  string `json:"lastName" example:"Petrov"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// UserData : публичные поля профиля
type UserData struct {
	UUID     string `json:"uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Email    string `json:"email" example:"user@example.com"`
	FullName string `json:"fullName" example:"Ivan Petrov"`
}

// AuthResponse : ответ на успешные signup/login/refresh.
// Refresh токен в тело не попадает, он уходит в Set-Cookie
type AuthResponse struct {
	Response struct {
		AccessToken string    `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
		User        *UserData `json:"user,omitempty"`
	} `json:"response"`
}

// SessionResponse : ответ на запрос текущей сессии
type SessionResponse struct {
	Response struct {
		User UserData `json:"user"`
	} `json:"response"`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	Response struct {
		Message string `json:"message" example:"выполнен выход из аккаунта"`
	} `json:"response"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"Unauthorized"`
	Message string `json:"message" example:"неверный email или пароль"`
	Code    int    `json:"code" example:"401"`
}
