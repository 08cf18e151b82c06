package queue

import (
	"testing"

	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/entity"
)

func waiting(method string) *entity.CheckIn {
	return &entity.CheckIn{Status: StatusWaiting, CheckInMethod: method}
}

func TestEstimateWaitEmptyQueue(t *testing.T) {
	est := EstimateWait(nil)

	if est.PositionInLine != 1 {
		t.Fatalf("position=%d, want 1", est.PositionInLine)
	}
	if est.EstimatedWaitMinutes != 0 {
		t.Fatalf("wait=%d, want 0", est.EstimatedWaitMinutes)
	}
	if est.WalkInsAhead != 0 || est.OnlineAhead != 0 {
		t.Fatalf("expected no one ahead, got %+v", est)
	}
}

func TestEstimateWaitLinearRate(t *testing.T) {
	for ahead := 0; ahead < 8; ahead++ {
		snapshot := make([]*entity.CheckIn, ahead)
		for i := range snapshot {
			snapshot[i] = waiting(MethodWalkIn)
		}

		est := EstimateWait(snapshot)
		if est.PositionInLine != ahead+1 {
			t.Fatalf("ahead=%d: position=%d, want %d", ahead, est.PositionInLine, ahead+1)
		}
		if est.EstimatedWaitMinutes != ahead*FixedServiceMinutes {
			t.Fatalf("ahead=%d: wait=%d, want %d", ahead, est.EstimatedWaitMinutes, ahead*FixedServiceMinutes)
		}
	}
}

func TestEstimateWaitPartitionsByMethod(t *testing.T) {
	snapshot := []*entity.CheckIn{
		waiting(MethodWalkIn),
		waiting(MethodOnline),
		waiting(MethodWalkIn),
	}

	est := EstimateWait(snapshot)
	if est.WalkInsAhead != 2 {
		t.Fatalf("walk-ins ahead=%d, want 2", est.WalkInsAhead)
	}
	if est.OnlineAhead != 1 {
		t.Fatalf("online ahead=%d, want 1", est.OnlineAhead)
	}
	if est.WalkInsAhead+est.OnlineAhead != est.PositionInLine-1 {
		t.Fatalf("partition does not sum to ahead count: %+v", est)
	}
}

func TestEstimateWaitIsDeterministic(t *testing.T) {
	snapshot := []*entity.CheckIn{waiting(MethodWalkIn), waiting(MethodOnline)}

	first := EstimateWait(snapshot)
	second := EstimateWait(snapshot)
	if first != second {
		t.Fatalf("same snapshot produced different estimates: %+v vs %+v", first, second)
	}
}
