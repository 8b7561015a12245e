package service

import (
	"context"
	"regexp"
	"strings"

	"kanban_webapp/internal/domain"
)

var usernameRE = regexp.MustCompile(`^[a-z0-9_-]+$`)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Identify resolves a username to an account, creating one on first use.
// created is false when the username already existed ("login").
//
// The lookup and the insert are not atomic; a concurrent identical insert
// loses to the unique constraint, and that conflict is resolved by looking
// the user up again.
func (s *UserService) Identify(ctx context.Context, raw string) (username string, created bool, err error) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))

	if len(cleaned) < 3 {
		return "", false, domain.Validation("Username must be at least 3 characters long")
	}
	if len(cleaned) > 20 {
		return "", false, domain.Validation("Username must be at most 20 characters long")
	}
	if !usernameRE.MatchString(cleaned) {
		return "", false, domain.Validation("Username can only contain lowercase letters, numbers, hyphens and underscores")
	}

	if _, err := s.users.GetByUsername(ctx, cleaned); err == nil {
		return cleaned, false, nil
	} else if !domain.IsNotFound(err) {
		return "", false, err
	}

	u := &domain.User{Username: cleaned}
	if err := s.users.Create(ctx, u); err != nil {
		if domain.IsConflict(err) {
			// lost a creation race: the name exists now, treat as login
			return cleaned, false, nil
		}
		return "", false, err
	}
	return cleaned, true, nil
}
