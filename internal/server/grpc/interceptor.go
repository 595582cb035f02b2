package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophscan/internal/common"
	pb "github.com/dmitrijs2005/gophscan/internal/proto"
	"github.com/dmitrijs2005/gophscan/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "device_claims"

// deviceTokenInterceptor requires a valid device token on every method but
// Ping and stores its claims in the context.
func (s *GRPCServer) deviceTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod == pb.AuthorityService_Ping_FullMethodName {
		return handler(ctx, req)
	}

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.DeviceTokenHeaderName); len(values) > 0 {
			token = values[0]
		}
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing device token")
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if errors.Is(err, common.ErrTokenExpired) {
		return nil, status.Error(codes.Unauthenticated, "device token expired")
	}
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid device token")
	}

	return handler(context.WithValue(ctx, claimsKey, claims), req)
}

func claimsFromContext(ctx context.Context) *auth.DeviceClaims {
	c, _ := ctx.Value(claimsKey).(*auth.DeviceClaims)
	return c
}

// authorizeEvent rejects devices whose token does not cover slug.
func authorizeEvent(ctx context.Context, slug string) error {
	c := claimsFromContext(ctx)
	if c == nil {
		return status.Error(codes.Unauthenticated, "no device claims")
	}
	if !c.AllowsEvent(slug) {
		return status.Errorf(codes.PermissionDenied, "device %s may not access event %s", c.DeviceID, slug)
	}
	return nil
}
