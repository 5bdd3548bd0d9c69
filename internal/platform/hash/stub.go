package hash

import "errors"

type StubHasher struct {
	HashFunc   func(plain string) (string, error)
	VerifyFunc func(plain, hashed string) (bool, error)
}

var _ Hasher = (*StubHasher)(nil)

func (s *StubHasher) Hash(plain string) (string, error) {
	if s.HashFunc == nil {
		return "", errors.New("Hash() not implemented by stub")
	}
	return s.HashFunc(plain)
}

func (s *StubHasher) Verify(plain, hashed string) (bool, error) {
	if s.VerifyFunc == nil {
		return false, errors.New("Verify() not implemented by stub")
	}
	return s.VerifyFunc(plain, hashed)
}
