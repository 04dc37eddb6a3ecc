package storage

import "agrimind/models"

// Bootstrap seeds the demo farmer account every request is attributed
// to. If a user with the username already exists it is returned as-is,
// so calling Bootstrap twice never produces a duplicate account.
func (s *MemStore) Bootstrap(username, password, location string) (*models.User, error) {
	existing, err := s.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return s.CreateUser(models.NewUser{
		Username: username,
		Password: password,
		Location: location,
	})
}
