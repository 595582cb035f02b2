package validator

import (
	"errors"

	"github.com/dmitrijs2005/gophscan/internal/client/models"
	"github.com/dmitrijs2005/gophscan/internal/client/ticket"
)

// Decision reasons as errors, so callers can use errors.Is on Decision.Err.
var (
	ErrRevoked           = errors.New("ticket has been revoked")
	ErrProductRestricted = errors.New("product not admitted on this check-in list")
	ErrInvalidTime       = errors.New("ticket not valid at this time")
	ErrUnpaid            = errors.New("order is not paid")
	ErrCanceled          = errors.New("order has been canceled")
	ErrRuleDenied        = errors.New("admission rules deny entry")
	ErrAlreadyRedeemed   = errors.New("ticket already redeemed")
)

// Cache problems that prevent any decision.
var (
	ErrEventNotSynced = errors.New("event not in local cache")
	ErrListNotSynced  = errors.New("check-in list not in local cache")
	ErrEventTimezone  = errors.New("event timezone unknown; set a location override")
)

var reasonErrors = map[models.Reason]error{
	models.ReasonRevoked:         ErrRevoked,
	models.ReasonProduct:         ErrProductRestricted,
	models.ReasonInvalidTime:     ErrInvalidTime,
	models.ReasonUnpaid:          ErrUnpaid,
	models.ReasonCanceled:        ErrCanceled,
	models.ReasonRule:            ErrRuleDenied,
	models.ReasonAlreadyRedeemed: ErrAlreadyRedeemed,
}

func reasonError(r models.Reason, cause error) error {
	if r == models.ReasonInvalid {
		if cause != nil {
			return cause
		}
		return ticket.ErrDecode
	}
	return reasonErrors[r]
}
