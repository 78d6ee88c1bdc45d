package model

import "time"

// RefreshToken : запись об одном выданном refresh-токене.
// Источник истины на стороне сервера: сам токен хранится только у клиента,
// в хранилище лежит запись с его jti
type RefreshToken struct {
	JTI       string    `json:"jti"`
	UserUUID  string    `json:"user_uuid"`
	CreatedAt time.Time `json:"created_at"`
	ExpireAt  time.Time `json:"expire_at"`
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"accessToken"`

	// Refresh токен (уходит клиенту только в httpOnly куке)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"-"`
}
