package entities

// ValidatedUser is a User that passed validation and may be persisted.
type ValidatedUser struct {
	*User
}

func NewValidatedUser(user *User) (*ValidatedUser, error) {
	if err := user.validate(); err != nil {
		return nil, err
	}

	return &ValidatedUser{User: user}, nil
}

func (vu *ValidatedUser) GetUser() *User {
	return vu.User
}
