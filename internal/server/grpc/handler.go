package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	scanmodels "github.com/dmitrijs2005/gophscan/internal/client/models"
	pb "github.com/dmitrijs2005/gophscan/internal/proto"
	"github.com/dmitrijs2005/gophscan/internal/server/models"
	"github.com/dmitrijs2005/gophscan/internal/server/services"
)

// mapError turns service errors into gRPC statuses. Scanners drop uploads
// answered with NotFound or InvalidArgument and retry everything else.
func (s *GRPCServer) mapError(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, services.ErrEventNotFound), errors.Is(err, services.ErrListNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, services.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error(ctx, "request failed", "method", method, "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{ServerTime: timestamppb.New(s.clk.Now())}, nil
}

func (s *GRPCServer) Redeem(ctx context.Context, req *pb.RedeemRequest) (*pb.RedeemResponse, error) {
	if err := authorizeEvent(ctx, req.GetEvent()); err != nil {
		return nil, err
	}

	in := services.RedeemRequest{
		Event:        req.GetEvent(),
		ListID:       req.GetListId(),
		Secret:       req.GetSecret(),
		Nonce:        req.GetNonce(),
		Type:         req.GetType(),
		Force:        req.GetForce(),
		IgnoreUnpaid: req.GetIgnoreUnpaid(),
		Device:       claimsFromContext(ctx).DeviceID,
	}
	if req.GetDate() != nil {
		in.Date = req.GetDate().AsTime()
	}
	for _, a := range req.GetAnswers() {
		in.Answers = append(in.Answers, scanmodels.Answer{QuestionID: a.GetQuestionId(), Value: a.GetValue()})
	}

	res, err := s.redemptions.Redeem(ctx, in)
	if err != nil {
		return nil, s.mapError(ctx, "Redeem", err)
	}
	return &pb.RedeemResponse{Status: string(res.Status), Reason: string(res.Reason)}, nil
}

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func (s *GRPCServer) GetEvent(ctx context.Context, req *pb.GetEventRequest) (*pb.Event, error) {
	if err := authorizeEvent(ctx, req.GetEvent()); err != nil {
		return nil, err
	}
	ev, err := s.catalog.GetEvent(ctx, req.GetEvent())
	if err != nil {
		return nil, s.mapError(ctx, "GetEvent", err)
	}
	out := &pb.Event{
		Slug:          ev.Slug,
		Name:          ev.Name,
		Timezone:      ev.Timezone,
		DateTo:        optionalTimestamp(ev.DateTo),
		DateAdmission: optionalTimestamp(ev.DateAdmission),
		ValidKeys:     ev.ValidKeys,
	}
	if !ev.DateFrom.IsZero() {
		out.DateFrom = timestamppb.New(ev.DateFrom)
	}
	return out, nil
}

func query(req *pb.ListRequest) services.ListQuery {
	return services.ListQuery{Event: req.GetEvent(), Page: int(req.GetPage()), ModifiedSince: req.GetModifiedSince()}
}

func pageInfo[T any](p *services.Page[T]) *pb.PageInfo {
	return &pb.PageInfo{Count: int32(p.Count), HasNext: p.HasNext, HasPrevious: p.HasPrevious, GeneratedAt: p.GeneratedAt}
}

func convert[In, Out any](in []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

func (s *GRPCServer) ListItems(ctx context.Context, req *pb.ListRequest) (*pb.ItemPage, error) {
	if err := authorizeEvent(ctx, req.GetEvent()); err != nil {
		return nil, err
	}
	p, err := s.catalog.ListItems(ctx, query(req))
	if err != nil {
		return nil, s.mapError(ctx, "ListItems", err)
	}
	return &pb.ItemPage{Page: pageInfo(p), Results: convert(p.Results, func(it models.Item) *pb.Item {
		return &pb.Item{
			Id:        it.ID,
			Name:      it.Name,
			Active:    it.Active,
			Admission: it.Admission,
			Variations: convert(it.Variations, func(v models.Variation) *pb.Variation {
				return &pb.Variation{Id: v.ID, Value: v.Value}
			}),
		}
	})}, nil
}

func (s *GRPCServer) ListCheckInLists(ctx context.Context, req *pb.ListRequest) (*pb.CheckInListPage, error) {
	if err := authorizeEvent(ctx, req.GetEvent()); err != nil {
		return nil, err
	}
	p, err := s.catalog.ListCheckInLists(ctx, query(req))
	if err != nil {
		return nil, s.mapError(ctx, "ListCheckInLists", err)
	}
	return &pb.CheckInListPage{Page: pageInfo(p), Results: convert(p.Results, func(l models.CheckInList) *pb.CheckInList {
		return &pb.CheckInList{
			Id:                   l.ID,
			Name:                 l.Name,
			AllProducts:          l.AllProducts,
			LimitProducts:        l.LimitProducts,
			IncludePending:       l.IncludePending,
			AllowMultipleEntries: l.AllowMultipleEntries,
			AllowEntryAfterExit:  l.AllowEntryAfterExit,
			Rules:                string(l.Rules),
		}
	})}, nil
}

func (s *GRPCServer) ListRevokedSecrets(ctx context.Context, req *pb.ListRequest) (*pb.RevokedSecretPage, error) {
	if err := authorizeEvent(ctx, req.GetEvent()); err != nil {
		return nil, err
	}
	p, err := s.catalog.ListRevokedSecrets(ctx, query(req))
	if err != nil {
		return nil, s.mapError(ctx, "ListRevokedSecrets", err)
	}
	return &pb.RevokedSecretPage{Page: pageInfo(p), Results: convert(p.Results, func(r models.RevokedSecret) *pb.RevokedSecret {
		return &pb.RevokedSecret{Id: r.ID, Secret: r.Secret}
	})}, nil
}

func (s *GRPCServer) ListOrderPositions(ctx context.Context, req *pb.ListRequest) (*pb.OrderPositionPage, error) {
	if err := authorizeEvent(ctx, req.GetEvent()); err != nil {
		return nil, err
	}
	p, err := s.catalog.ListOrderPositions(ctx, query(req))
	if err != nil {
		return nil, s.mapError(ctx, "ListOrderPositions", err)
	}
	return &pb.OrderPositionPage{Page: pageInfo(p), Results: convert(p.Results, func(op models.OrderPosition) *pb.OrderPosition {
		return &pb.OrderPosition{
			Id:          op.ID,
			OrderCode:   op.OrderCode,
			Status:      op.Status,
			Secret:      op.Secret,
			ItemId:      op.ItemID,
			VariationId: op.VariationID,
			Checkins: convert(op.CheckIns, func(c models.CheckIn) *pb.CheckIn {
				return &pb.CheckIn{ListId: c.ListID, Type: c.Type, Date: timestamppb.New(c.Date)}
			}),
		}
	})}, nil
}
