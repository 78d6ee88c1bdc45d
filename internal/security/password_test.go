package security_test

import (
	"strings"
	"testing"

	"campground-server/internal/security"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_ProducesDifferentHashes(t *testing.T) {
	first, err := security.HashPassword("P@ssw0rd123")
	assert.NoError(t, err)

	second, err := security.HashPassword("P@ssw0rd123")
	assert.NoError(t, err)

	// соль случайная, одинаковый пароль не должен давать одинаковый хэш
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "$argon2id$"))
}

func TestCheckPassword_Match(t *testing.T) {
	hash, err := security.HashPassword("P@ssw0rd123")
	assert.NoError(t, err)

	ok, err := security.CheckPassword("P@ssw0rd123", hash)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := security.HashPassword("P@ssw0rd123")
	assert.NoError(t, err)

	// неверный пароль не ошибка, просто false
	ok, err := security.CheckPassword("wrong-password", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"пустая строка", ""},
		{"не argon2id", "$bcrypt$v=19$m=65536,t=3,p=1$AAAA$BBBB"},
		{"битые параметры", "$argon2id$v=19$m=oops$AAAA$BBBB"},
		{"битая соль", "$argon2id$v=19$m=65536,t=3,p=1$не-base64$QUJD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := security.CheckPassword("password", tt.hash)
			assert.Error(t, err)
		})
	}
}

func TestDummyCheckPassword_DoesNotPanic(t *testing.T) {
	// путь для несуществующего пользователя: результат отбрасывается,
	// важно лишь что проверка реально выполняется
	assert.NotPanics(t, func() {
		security.DummyCheckPassword("any-password")
	})
}
