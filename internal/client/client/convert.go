package client

import (
	"encoding/json"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	pb "github.com/dmitrijs2005/gophscan/internal/proto"
)

func redeemRequest(q *models.QueuedRedemptionRequest) *pb.RedeemRequest {
	r := q.Request
	req := &pb.RedeemRequest{
		Event:        q.EventSlug,
		ListId:       q.ListID,
		Secret:       r.Secret,
		Nonce:        r.Nonce,
		Type:         r.Type,
		Force:        r.Force,
		IgnoreUnpaid: r.IgnoreUnpaid,
	}
	if !r.Date.IsZero() {
		req.Date = timestamppb.New(r.Date)
	}
	for _, a := range r.Answers {
		req.Answers = append(req.Answers, &pb.Answer{QuestionId: a.QuestionID, Value: a.Value})
	}
	return req
}

// optionalTime maps an unset timestamp to nil rather than the Unix epoch.
func optionalTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func eventFromProto(e *pb.Event) *models.Event {
	ev := &models.Event{
		Slug:          e.GetSlug(),
		Name:          e.GetName(),
		Timezone:      e.GetTimezone(),
		DateTo:        optionalTime(e.GetDateTo()),
		DateAdmission: optionalTime(e.GetDateAdmission()),
		ValidKeys:     e.GetValidKeys(),
	}
	if from := optionalTime(e.GetDateFrom()); from != nil {
		ev.DateFrom = *from
	}
	return ev
}

func pageOf[In, Out any](info *pb.PageInfo, in []In, conv func(In) Out) *models.Page[Out] {
	p := &models.Page[Out]{
		Results:     make([]Out, 0, len(in)),
		Count:       int(info.GetCount()),
		HasNext:     info.GetHasNext(),
		HasPrevious: info.GetHasPrevious(),
		GeneratedAt: info.GetGeneratedAt(),
	}
	for _, v := range in {
		p.Results = append(p.Results, conv(v))
	}
	return p
}

func itemFromProto(i *pb.Item) models.Item {
	it := models.Item{ID: i.GetId(), Name: i.GetName(), Active: i.GetActive(), Admission: i.GetAdmission()}
	for _, v := range i.GetVariations() {
		it.Variations = append(it.Variations, models.Variation{ID: v.GetId(), Value: v.GetValue()})
	}
	return it
}

func checkInListFromProto(l *pb.CheckInList) models.CheckInList {
	cl := models.CheckInList{
		ID:                   l.GetId(),
		Name:                 l.GetName(),
		AllProducts:          l.GetAllProducts(),
		LimitProducts:        l.GetLimitProducts(),
		IncludePending:       l.GetIncludePending(),
		AllowMultipleEntries: l.GetAllowMultipleEntries(),
		AllowEntryAfterExit:  l.GetAllowEntryAfterExit(),
	}
	if l.GetRules() != "" {
		cl.Rules = json.RawMessage(l.GetRules())
	}
	return cl
}

func revokedFromProto(r *pb.RevokedSecret) models.RevokedSecret {
	return models.RevokedSecret{ID: r.GetId(), Secret: r.GetSecret()}
}

func positionFromProto(p *pb.OrderPosition) models.OrderPosition {
	op := models.OrderPosition{
		ID:          p.GetId(),
		OrderCode:   p.GetOrderCode(),
		Status:      p.GetStatus(),
		Secret:      p.GetSecret(),
		ItemID:      p.GetItemId(),
		VariationID: p.GetVariationId(),
	}
	for _, c := range p.GetCheckins() {
		op.CheckIns = append(op.CheckIns, models.CheckIn{
			ListID:     c.GetListId(),
			PositionID: op.ID,
			Secret:     op.Secret,
			Type:       c.GetType(),
			Date:       optionalTime(c.GetDate()),
		})
	}
	return op
}
