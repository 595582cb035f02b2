package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/common"
	pb "github.com/dmitrijs2005/gophscan/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthorityServiceClient

	mu          sync.RWMutex
	deviceToken string
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL, deviceToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, deviceToken: deviceToken}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithUnaryInterceptor(c.deviceTokenInterceptor),
	}
	conn, err := grpc.NewClient(endpointURL, append(dialOpts, opts...)...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthorityServiceClient(conn)
	return c, nil
}

// SetDeviceToken replaces the token sent with subsequent calls.
func (c *GRPCClient) SetDeviceToken(token string) {
	c.mu.Lock()
	c.deviceToken = token
	c.mu.Unlock()
}

func (c *GRPCClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceToken
}

func withDeviceToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.DeviceTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) deviceTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if t := c.token(); t != "" {
		ctx = withDeviceToken(ctx, t)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// mapError sorts failures by what the caller may do next. Anything not known
// to be final counts as unavailable so that queued work is kept.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.NotFound, codes.PermissionDenied, codes.InvalidArgument:
		return fmt.Errorf("%w: %s: %s", ErrRejected, st.Code(), st.Message())
	default:
		return fmt.Errorf("%w: %s: %s", ErrUnavailable, st.Code(), st.Message())
	}
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &pb.PingRequest{})
	return mapError(err)
}

func (c *GRPCClient) Redeem(ctx context.Context, q *models.QueuedRedemptionRequest) (*models.RedemptionResponse, error) {
	resp, err := c.client.Redeem(ctx, redeemRequest(q))
	if err != nil {
		return nil, mapError(err)
	}
	return &models.RedemptionResponse{
		Status: models.Status(resp.GetStatus()),
		Reason: models.Reason(resp.GetReason()),
	}, nil
}

func (c *GRPCClient) GetEvent(ctx context.Context, slug string) (*models.Event, error) {
	resp, err := c.client.GetEvent(ctx, &pb.GetEventRequest{Event: slug})
	if err != nil {
		return nil, mapError(err)
	}
	return eventFromProto(resp), nil
}

func listRequest(event string, q models.PageQuery) *pb.ListRequest {
	return &pb.ListRequest{Event: event, Page: int32(q.Page), ModifiedSince: q.ModifiedSince}
}

func (c *GRPCClient) ListItems(ctx context.Context, event string, q models.PageQuery) (*models.Page[models.Item], error) {
	resp, err := c.client.ListItems(ctx, listRequest(event, q))
	if err != nil {
		return nil, mapError(err)
	}
	return pageOf(resp.GetPage(), resp.GetResults(), itemFromProto), nil
}

func (c *GRPCClient) ListCheckInLists(ctx context.Context, event string, q models.PageQuery) (*models.Page[models.CheckInList], error) {
	resp, err := c.client.ListCheckInLists(ctx, listRequest(event, q))
	if err != nil {
		return nil, mapError(err)
	}
	return pageOf(resp.GetPage(), resp.GetResults(), checkInListFromProto), nil
}

func (c *GRPCClient) ListRevokedSecrets(ctx context.Context, event string, q models.PageQuery) (*models.Page[models.RevokedSecret], error) {
	resp, err := c.client.ListRevokedSecrets(ctx, listRequest(event, q))
	if err != nil {
		return nil, mapError(err)
	}
	return pageOf(resp.GetPage(), resp.GetResults(), revokedFromProto), nil
}

func (c *GRPCClient) ListOrderPositions(ctx context.Context, event string, q models.PageQuery) (*models.Page[models.OrderPosition], error) {
	resp, err := c.client.ListOrderPositions(ctx, listRequest(event, q))
	if err != nil {
		return nil, mapError(err)
	}
	return pageOf(resp.GetPage(), resp.GetResults(), positionFromProto), nil
}
