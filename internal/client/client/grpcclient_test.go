package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/common"
	pb "github.com/dmitrijs2005/gophscan/internal/proto"
)

type fakeAuthority struct {
	pb.UnimplementedAuthorityServiceServer

	lastToken  string
	lastRedeem *pb.RedeemRequest
	lastList   *pb.ListRequest
	redeemErr  error
}

func (f *fakeAuthority) token(ctx context.Context) {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(common.DeviceTokenHeaderName); len(v) > 0 {
		f.lastToken = v[0]
	}
}

func (f *fakeAuthority) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	f.token(ctx)
	return &pb.PingResponse{ServerTime: timestamppb.Now()}, nil
}

func (f *fakeAuthority) Redeem(ctx context.Context, in *pb.RedeemRequest) (*pb.RedeemResponse, error) {
	f.token(ctx)
	f.lastRedeem = in
	if f.redeemErr != nil {
		return nil, f.redeemErr
	}
	return &pb.RedeemResponse{Status: "error", Reason: "already_redeemed"}, nil
}

func (f *fakeAuthority) GetEvent(_ context.Context, in *pb.GetEventRequest) (*pb.Event, error) {
	if in.Event != "demo" {
		return nil, status.Error(codes.NotFound, "no such event")
	}
	return &pb.Event{
		Slug:      "demo",
		Name:      "Demo",
		Timezone:  "UTC",
		DateFrom:  timestamppb.New(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		DateTo:    timestamppb.New(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)),
		ValidKeys: []string{"pem"},
	}, nil
}

func (f *fakeAuthority) ListOrderPositions(_ context.Context, in *pb.ListRequest) (*pb.OrderPositionPage, error) {
	f.lastList = in
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return &pb.OrderPositionPage{
		Page: &pb.PageInfo{Count: 3, HasNext: true, GeneratedAt: "2026-05-01T10:00:00Z"},
		Results: []*pb.OrderPosition{{
			Id: 4, OrderCode: "ABC12", Status: "p", Secret: "s4", ItemId: 1,
			Checkins: []*pb.CheckIn{{ListId: 1, Type: "entry", Date: timestamppb.New(at)}},
		}},
	}, nil
}

func (f *fakeAuthority) ListCheckInLists(_ context.Context, in *pb.ListRequest) (*pb.CheckInListPage, error) {
	f.lastList = in
	return &pb.CheckInListPage{
		Page: &pb.PageInfo{Count: 2},
		Results: []*pb.CheckInList{
			{Id: 1, Name: "Main", AllProducts: true},
			{Id: 2, Name: "VIP", LimitProducts: []int64{3, 4}, Rules: `{"<": [{"var": "entries_today"}, 1]}`},
		},
	}, nil
}

func startClient(t *testing.T, srv pb.AuthorityServiceServer) *GRPCClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	pb.RegisterAuthorityServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", "tok-1",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGRPCClient_PingSendsDeviceToken(t *testing.T) {
	f := &fakeAuthority{}
	c := startClient(t, f)

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "tok-1", f.lastToken)

	c.SetDeviceToken("tok-2")
	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "tok-2", f.lastToken)
}

func TestGRPCClient_Redeem(t *testing.T) {
	f := &fakeAuthority{}
	c := startClient(t, f)

	at := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	q := &models.QueuedRedemptionRequest{
		ID: 9, EventSlug: "demo", ListID: 2,
		Request: models.RedemptionRequest{
			Secret: "abc", Nonce: "n-1", Type: common.CheckInTypeEntry, Date: at,
			Answers: []models.Answer{{QuestionID: 1, Value: "yes"}},
		},
	}
	resp, err := c.Redeem(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, resp.Status)
	assert.Equal(t, models.ReasonAlreadyRedeemed, resp.Reason)

	require.NotNil(t, f.lastRedeem)
	assert.Equal(t, "demo", f.lastRedeem.GetEvent())
	assert.Equal(t, int64(2), f.lastRedeem.GetListId())
	assert.Equal(t, "n-1", f.lastRedeem.GetNonce())
	assert.True(t, at.Equal(f.lastRedeem.GetDate().AsTime()))
	require.Len(t, f.lastRedeem.GetAnswers(), 1)
	assert.Equal(t, int64(1), f.lastRedeem.GetAnswers()[0].GetQuestionId())
	assert.Equal(t, "yes", f.lastRedeem.GetAnswers()[0].GetValue())
}

func TestGRPCClient_RedeemErrorsAreClassified(t *testing.T) {
	f := &fakeAuthority{redeemErr: status.Error(codes.PermissionDenied, "wrong event")}
	c := startClient(t, f)

	_, err := c.Redeem(context.Background(), &models.QueuedRedemptionRequest{EventSlug: "demo"})
	assert.ErrorIs(t, err, ErrRejected)

	f.redeemErr = status.Error(codes.Unauthenticated, "bad token")
	_, err = c.Redeem(context.Background(), &models.QueuedRedemptionRequest{EventSlug: "demo"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGRPCClient_GetEvent(t *testing.T) {
	c := startClient(t, &fakeAuthority{})

	ev, err := c.GetEvent(context.Background(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "Demo", ev.Name)
	assert.Equal(t, 2026, ev.DateFrom.Year())
	require.NotNil(t, ev.DateTo)
	assert.Equal(t, 2, ev.DateTo.Day())
	assert.Nil(t, ev.DateAdmission, "unset timestamp stays nil")
	assert.Equal(t, []string{"pem"}, ev.ValidKeys)

	_, err = c.GetEvent(context.Background(), "other")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestGRPCClient_ListOrderPositions(t *testing.T) {
	f := &fakeAuthority{}
	c := startClient(t, f)

	page, err := c.ListOrderPositions(context.Background(), "demo", models.PageQuery{Page: 2, ModifiedSince: "x"})
	require.NoError(t, err)
	assert.Equal(t, "demo", f.lastList.GetEvent())
	assert.Equal(t, int32(2), f.lastList.GetPage())
	assert.Equal(t, "x", f.lastList.GetModifiedSince())

	assert.Equal(t, 3, page.Count)
	assert.True(t, page.HasNext)
	assert.Equal(t, "2026-05-01T10:00:00Z", page.GeneratedAt)
	require.Len(t, page.Results, 1)
	p := page.Results[0]
	assert.Equal(t, "s4", p.Secret)
	require.Len(t, p.CheckIns, 1)
	assert.Equal(t, int64(4), p.CheckIns[0].PositionID)
	assert.Equal(t, "s4", p.CheckIns[0].Secret)
	require.NotNil(t, p.CheckIns[0].Date)
	assert.Equal(t, 10, p.CheckIns[0].Date.Hour())
}

func TestGRPCClient_ListCheckInListsKeepsRules(t *testing.T) {
	c := startClient(t, &fakeAuthority{})

	page, err := c.ListCheckInLists(context.Background(), "demo", models.PageQuery{})
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.False(t, page.Results[0].HasRules())
	assert.Nil(t, page.Results[0].Rules)
	assert.True(t, page.Results[1].HasRules())
	assert.JSONEq(t, `{"<": [{"var": "entries_today"}, 1]}`, string(page.Results[1].Rules))
	assert.Equal(t, []int64{3, 4}, page.Results[1].LimitProducts)
}

func TestRedeemRequest_ZeroDateLeftUnset(t *testing.T) {
	req := redeemRequest(&models.QueuedRedemptionRequest{EventSlug: "demo", Request: models.RedemptionRequest{Secret: "s"}})
	assert.Nil(t, req.GetDate())
}

func TestGRPCClient_UnimplementedIsUnavailable(t *testing.T) {
	c := startClient(t, &fakeAuthority{})

	_, err := c.ListItems(context.Background(), "demo", models.PageQuery{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{"canceled", status.Error(codes.Canceled, "gone"), ErrUnavailable},
		{"internal", status.Error(codes.Internal, "boom"), ErrUnavailable},
		{"unauthenticated", status.Error(codes.Unauthenticated, "token"), ErrUnauthorized},
		{"not found", status.Error(codes.NotFound, "list"), ErrRejected},
		{"permission denied", status.Error(codes.PermissionDenied, "event"), ErrRejected},
		{"invalid argument", status.Error(codes.InvalidArgument, "body"), ErrRejected},
		{"context canceled", context.Canceled, ErrUnavailable},
		{"plain error", errors.New("eof"), ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(context.DeadlineExceeded), context.DeadlineExceeded)
}

func TestWithPragmas(t *testing.T) {
	assert.Equal(t, "file:scan.db?"+sqlitePragmas, withPragmas("scan.db"))
	assert.Equal(t, "file:scan.db?mode=rwc&"+sqlitePragmas, withPragmas("file:scan.db?mode=rwc"))
	assert.Equal(t, ":memory:", withPragmas(":memory:"))
}

func TestInitDatabase(t *testing.T) {
	db, err := InitDatabase(context.Background(), t.TempDir()+"/nested/scan.db")
	require.NoError(t, err)
	defer db.Close()

	repos := NewRepositories(db)
	n, err := repos.Queue.Count(context.Background(), "demo")
	require.NoError(t, err)
	assert.Zero(t, n)
}
