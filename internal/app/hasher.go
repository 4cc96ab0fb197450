package app

import "golang.org/x/crypto/bcrypt"

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a CredentialHasher backed by bcrypt with the
// given cost factor.
func NewBcryptHasher(cost int) CredentialHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return bcryptHasher{cost: cost}
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
