package queue

import (
	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
)

// FixedServiceMinutes is the flat per-customer slot used for wait
// estimates. The catalog knows each service's real duration, but the
// estimate deliberately stays a flat rate so the number a customer sees
// never shifts because of what the people ahead of them ordered.
const FixedServiceMinutes = 15

const (
	MethodWalkIn = "walk-in"
	MethodOnline = "online"
)

type Estimate struct {
	PositionInLine       int `json:"position_in_line"`
	EstimatedWaitMinutes int `json:"estimated_wait_minutes"`
	WalkInsAhead         int `json:"walk_ins_ahead"`
	OnlineAhead          int `json:"online_ahead"`
}

// EstimateWait computes queue numbers for a freshly created check-in from
// a snapshot of the Waiting entries ahead of it for the same stylist.
// It is pure: the same snapshot always yields the same numbers.
func EstimateWait(waitingAhead []*entity.CheckIn) Estimate {
	est := Estimate{
		PositionInLine:       len(waitingAhead) + 1,
		EstimatedWaitMinutes: len(waitingAhead) * FixedServiceMinutes,
	}
	for _, c := range waitingAhead {
		if c.CheckInMethod == MethodOnline {
			est.OnlineAhead++
		} else {
			est.WalkInsAhead++
		}
	}
	return est
}
