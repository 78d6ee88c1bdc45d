package security

// PasswordHasher : реализация хэширования паролей поверх argon2id
type PasswordHasher struct{}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	return HashPassword(password)
}

func (h *PasswordHasher) Check(password string, encodedHash string) (bool, error) {
	return CheckPassword(password, encodedHash)
}

func (h *PasswordHasher) DummyCheck(password string) {
	DummyCheckPassword(password)
}
