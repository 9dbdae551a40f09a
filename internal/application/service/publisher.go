package service

import (
	"context"

	"github.com/khoahotran/cardlink/internal/domain/account"
)

type EventPublisher interface {
	Publish(ctx context.Context, events ...account.Event) error
}
