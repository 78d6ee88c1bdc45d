package model

import (
	"strings"
	"time"
)

type User struct {
	UUID         string    `db:"uuid" json:"uuid"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"-"`
	LastName     string    `db:"last_name" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// FullName собирает отображаемое имя из first_name и last_name.
// Нигде не хранится, всегда вычисляется из полей записи
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
