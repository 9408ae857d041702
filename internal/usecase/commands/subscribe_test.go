//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"dealstack/internal/infra"
	"dealstack/internal/usecase/commands"
	commandsmock "dealstack/tests/mock/commands"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (*commandsmock.MockSubscriberRepository, commands.SubscribeCommands) {
		t.Helper()
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockSubscriberRepository(ctrl)
		return repo, commands.NewSubscribeCommands(repo)
	}

	t.Run("email is normalized before storage", func(t *testing.T) {
		repo, cmds := newFixture(t)

		repo.EXPECT().Insert(gomock.Any(), "user@example.com", "1.2.3.4").Return(nil)

		err := cmds.Subscribe(ctx, "  User@Example.COM ", "1.2.3.4")
		require.NoError(t, err)
	})

	t.Run("invalid addresses are rejected without touching the store", func(t *testing.T) {
		repo, cmds := newFixture(t)
		_ = repo

		for _, email := range []string{"", "not-an-email", "user@", "@example.com", "a b@example.com"} {
			err := cmds.Subscribe(ctx, email, "1.2.3.4")
			require.ErrorIs(t, err, commands.ErrInvalidEmail, "email %q", email)
		}
	})

	t.Run("duplicate email is success", func(t *testing.T) {
		repo, cmds := newFixture(t)

		repo.EXPECT().Insert(gomock.Any(), "user@example.com", "1.2.3.4").
			Return(infra.WrapRepoErr("duplicate subscriber", errors.New("duplicate key value"), infra.KindDuplicateKey))

		err := cmds.Subscribe(ctx, "user@example.com", "1.2.3.4")
		require.NoError(t, err)
	})

	t.Run("other store failures propagate", func(t *testing.T) {
		repo, cmds := newFixture(t)

		repo.EXPECT().Insert(gomock.Any(), "user@example.com", "1.2.3.4").
			Return(infra.WrapRepoErr("failed to insert subscriber", errDBConnectionLost))

		err := cmds.Subscribe(ctx, "user@example.com", "1.2.3.4")
		require.Error(t, err)
	})
}
