package ports

type PasswordHasherInterface interface {
	Hash(password string) (string, error)
	Check(password string, encodedHash string) (bool, error)
	DummyCheck(password string)
}
