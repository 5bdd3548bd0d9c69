package hash

// Hasher hashes and verifies secrets, such as room passcodes.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
