package commands

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"dealstack/internal/infra"
)

var ErrInvalidEmail = errors.New("invalid email address")

type SubscribeCommands interface {
	Subscribe(ctx context.Context, email, clientIP string) error
}

type subscribeCommandsImpl struct {
	subscribers SubscriberRepository
}

func NewSubscribeCommands(subscribers SubscriberRepository) SubscribeCommands {
	return &subscribeCommandsImpl{subscribers: subscribers}
}

// Subscribe validates and records a newsletter signup. A duplicate email
// is treated as success.
func (s *subscribeCommandsImpl) Subscribe(ctx context.Context, email, clientIP string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	if err := s.subscribers.Insert(ctx, email, clientIP); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil
		}
		return err
	}
	return nil
}
