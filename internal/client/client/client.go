package client

import (
	"context"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Redeem(ctx context.Context, q *models.QueuedRedemptionRequest) (*models.RedemptionResponse, error)
	GetEvent(ctx context.Context, slug string) (*models.Event, error)
	ListItems(ctx context.Context, event string, q models.PageQuery) (*models.Page[models.Item], error)
	ListCheckInLists(ctx context.Context, event string, q models.PageQuery) (*models.Page[models.CheckInList], error)
	ListRevokedSecrets(ctx context.Context, event string, q models.PageQuery) (*models.Page[models.RevokedSecret], error)
	ListOrderPositions(ctx context.Context, event string, q models.PageQuery) (*models.Page[models.OrderPosition], error)
}
