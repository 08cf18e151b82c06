package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/thandap/great-looks-checkin-self/cmd/internal/domain/queue"
)

func newTestCheckInService() (*DefaultCheckInService, *memCheckInRepo, *recordingNotifier) {
	repo := newMemCheckInRepo()
	notifier := &recordingNotifier{}
	svc := NewCheckInService(repo, newTestValidator(), notifier, staticAuthorizer{token: "hunter2"})
	return svc, repo, notifier
}

func checkInReq(name, stylist string) *CheckInRequest {
	return &CheckInRequest{
		Name:     name,
		Phone:    "555-0100",
		Services: []string{"Haircut"},
		Stylist:  stylist,
	}
}

func TestCreateCheckInRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		req  *CheckInRequest
	}{
		{"missing name", &CheckInRequest{Phone: "555", Services: []string{"Haircut"}, Stylist: "Mike"}},
		{"blank name", &CheckInRequest{Name: "   ", Phone: "555", Services: []string{"Haircut"}, Stylist: "Mike"}},
		{"missing phone", &CheckInRequest{Name: "Pat", Services: []string{"Haircut"}, Stylist: "Mike"}},
		{"no services", &CheckInRequest{Name: "Pat", Phone: "555", Services: []string{}, Stylist: "Mike"}},
		{"duplicate services", &CheckInRequest{Name: "Pat", Phone: "555", Services: []string{"Haircut", "Haircut"}, Stylist: "Mike"}},
		{"missing stylist", &CheckInRequest{Name: "Pat", Phone: "555", Services: []string{"Haircut"}}},
		{"bad email", &CheckInRequest{Name: "Pat", Phone: "555", Services: []string{"Haircut"}, Stylist: "Mike", Email: ptr("not-an-email")}},
		{"bad method", &CheckInRequest{Name: "Pat", Phone: "555", Services: []string{"Haircut"}, Stylist: "Mike", CheckInMethod: "carrier-pigeon"}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestCheckInService()
			_, apierr := svc.CreateCheckIn(tt.req)
			if apierr == nil {
				t.Fatal("expected validation error")
			}
			if apierr.Code() != http.StatusBadRequest {
				t.Fatalf("code=%d, want 400", apierr.Code())
			}
			if len(repo.checkins) != 0 {
				t.Fatal("nothing should be persisted on validation failure")
			}
		})
	}
}

func TestCreateCheckInFirstInLine(t *testing.T) {
	svc, _, _ := newTestCheckInService()

	resp, apierr := svc.CreateCheckIn(checkInReq("Ann", "Mike"))
	if apierr != nil {
		t.Fatalf("CreateCheckIn: %v", apierr)
	}

	if resp.CheckIn.Status != queue.StatusWaiting {
		t.Fatalf("status=%q, want Waiting", resp.CheckIn.Status)
	}
	if resp.CheckIn.CheckInMethod != queue.MethodWalkIn {
		t.Fatalf("method=%q, want walk-in default", resp.CheckIn.CheckInMethod)
	}
	if resp.Estimate.PositionInLine != 1 || resp.Estimate.EstimatedWaitMinutes != 0 {
		t.Fatalf("estimate=%+v, want first in line with no wait", resp.Estimate)
	}
}

func TestCreateCheckInCountsOnlySameStylist(t *testing.T) {
	svc, _, _ := newTestCheckInService()

	if _, apierr := svc.CreateCheckIn(checkInReq("Ann", "Mike")); apierr != nil {
		t.Fatalf("seed: %v", apierr)
	}
	if _, apierr := svc.CreateCheckIn(checkInReq("Bob", "Sara")); apierr != nil {
		t.Fatalf("seed: %v", apierr)
	}

	resp, apierr := svc.CreateCheckIn(checkInReq("Cal", "Mike"))
	if apierr != nil {
		t.Fatalf("CreateCheckIn: %v", apierr)
	}
	if resp.Estimate.PositionInLine != 2 {
		t.Fatalf("position=%d, want 2 (Sara's queue should not count)", resp.Estimate.PositionInLine)
	}
	if resp.Estimate.EstimatedWaitMinutes != queue.FixedServiceMinutes {
		t.Fatalf("wait=%d, want %d", resp.Estimate.EstimatedWaitMinutes, queue.FixedServiceMinutes)
	}
}

func TestQueueScenarioServedFreesSlot(t *testing.T) {
	svc, _, _ := newTestCheckInService()

	respA, _ := svc.CreateCheckIn(checkInReq("Ann", "Mike"))
	if respA.Estimate.PositionInLine != 1 || respA.Estimate.EstimatedWaitMinutes != 0 {
		t.Fatalf("A estimate=%+v", respA.Estimate)
	}

	respB, _ := svc.CreateCheckIn(checkInReq("Bob", "Mike"))
	if respB.Estimate.PositionInLine != 2 || respB.Estimate.EstimatedWaitMinutes != 15 {
		t.Fatalf("B estimate=%+v", respB.Estimate)
	}

	if _, apierr := svc.MarkNowServing(respA.CheckIn.ID); apierr != nil {
		t.Fatalf("MarkNowServing(A): %v", apierr)
	}
	if _, apierr := svc.MarkServed(respA.CheckIn.ID); apierr != nil {
		t.Fatalf("MarkServed(A): %v", apierr)
	}

	respC, _ := svc.CreateCheckIn(checkInReq("Cal", "Mike"))
	if respC.Estimate.PositionInLine != 2 || respC.Estimate.EstimatedWaitMinutes != 15 {
		t.Fatalf("C estimate=%+v, want position 2 behind Bob only", respC.Estimate)
	}
}

func TestGetQueueOrderedAndFiltered(t *testing.T) {
	svc, _, _ := newTestCheckInService()

	respA, _ := svc.CreateCheckIn(checkInReq("Ann", "Mike"))
	respB, _ := svc.CreateCheckIn(checkInReq("Bob", "Sara"))
	respC, _ := svc.CreateCheckIn(checkInReq("Cal", "Mike"))

	if _, apierr := svc.MarkNowServing(respA.CheckIn.ID); apierr != nil {
		t.Fatalf("MarkNowServing: %v", apierr)
	}
	if _, apierr := svc.MarkServed(respB.CheckIn.ID); apierr != nil {
		t.Fatalf("MarkServed: %v", apierr)
	}

	board, apierr := svc.GetQueue()
	if apierr != nil {
		t.Fatalf("GetQueue: %v", apierr)
	}

	if len(board) != 2 {
		t.Fatalf("board size=%d, want 2 (served entries drop off)", len(board))
	}
	if board[0].ID != respA.CheckIn.ID || board[1].ID != respC.CheckIn.ID {
		t.Fatalf("board order=[%d %d], want [%d %d]", board[0].ID, board[1].ID, respA.CheckIn.ID, respC.CheckIn.ID)
	}
	if board[0].Status != queue.StatusNowServing {
		t.Fatalf("board[0].Status=%q", board[0].Status)
	}
}

func TestMarkNowServingGuards(t *testing.T) {
	svc, repo, _ := newTestCheckInService()

	if _, apierr := svc.MarkNowServing(99); apierr == nil || apierr.Code() != http.StatusNotFound {
		t.Fatalf("unknown id: got %v, want 404", apierr)
	}

	resp, _ := svc.CreateCheckIn(checkInReq("Ann", "Mike"))
	if _, apierr := svc.MarkServed(resp.CheckIn.ID); apierr != nil {
		t.Fatalf("MarkServed: %v", apierr)
	}

	_, apierr := svc.MarkNowServing(resp.CheckIn.ID)
	if apierr == nil || apierr.Code() != http.StatusConflict {
		t.Fatalf("served entry: got %v, want 409", apierr)
	}

	stored, _ := repo.FindByID(resp.CheckIn.ID)
	if stored.Status != queue.StatusServed {
		t.Fatalf("status=%q, rejected transition must not change it", stored.Status)
	}
}

func TestMarkServedIsNotIdempotent(t *testing.T) {
	svc, repo, _ := newTestCheckInService()

	resp, _ := svc.CreateCheckIn(checkInReq("Ann", "Mike"))
	if _, apierr := svc.MarkServed(resp.CheckIn.ID); apierr != nil {
		t.Fatalf("first MarkServed: %v", apierr)
	}

	_, apierr := svc.MarkServed(resp.CheckIn.ID)
	if apierr == nil || apierr.Code() != http.StatusConflict {
		t.Fatalf("second MarkServed: got %v, want 409", apierr)
	}

	stored, _ := repo.FindByID(resp.CheckIn.ID)
	if stored.Status != queue.StatusServed {
		t.Fatalf("status=%q, want Served", stored.Status)
	}
}

func TestCancelRequiresCredential(t *testing.T) {
	svc, repo, _ := newTestCheckInService()
	resp, _ := svc.CreateCheckIn(checkInReq("Ann", "Mike"))

	_, apierr := svc.Cancel(resp.CheckIn.ID, "wrong")
	if apierr == nil || apierr.Code() != http.StatusForbidden {
		t.Fatalf("got %v, want 403", apierr)
	}

	stored, _ := repo.FindByID(resp.CheckIn.ID)
	if stored.Status != queue.StatusWaiting {
		t.Fatalf("status=%q, forbidden cancel must not change it", stored.Status)
	}

	canceled, apierr := svc.Cancel(resp.CheckIn.ID, "hunter2")
	if apierr != nil {
		t.Fatalf("authorized cancel: %v", apierr)
	}
	if canceled.Status != queue.StatusCanceled {
		t.Fatalf("status=%q, want Canceled", canceled.Status)
	}
}

func TestCancelOnlyFromWaiting(t *testing.T) {
	svc, _, _ := newTestCheckInService()
	resp, _ := svc.CreateCheckIn(checkInReq("Ann", "Mike"))

	if _, apierr := svc.MarkNowServing(resp.CheckIn.ID); apierr != nil {
		t.Fatalf("MarkNowServing: %v", apierr)
	}

	_, apierr := svc.Cancel(resp.CheckIn.ID, "hunter2")
	if apierr == nil || apierr.Code() != http.StatusConflict {
		t.Fatalf("got %v, want 409 for Now Serving entry", apierr)
	}
}

func TestCreateCheckInConfirmationSideEffect(t *testing.T) {
	svc, _, notifier := newTestCheckInService()

	req := checkInReq("Ann", "Mike")
	req.Email = ptr("ann@example.com")
	resp, apierr := svc.CreateCheckIn(req)
	if apierr != nil {
		t.Fatalf("CreateCheckIn: %v", apierr)
	}

	if len(notifier.payloads) != 1 {
		t.Fatalf("enqueued=%d, want 1", len(notifier.payloads))
	}
	payload := notifier.payloads[0]
	if payload.Email != "ann@example.com" || payload.CheckinID != resp.CheckIn.ID {
		t.Fatalf("payload=%+v", payload)
	}

	// No email, no notification.
	if _, apierr := svc.CreateCheckIn(checkInReq("Bob", "Mike")); apierr != nil {
		t.Fatalf("CreateCheckIn: %v", apierr)
	}
	if len(notifier.payloads) != 1 {
		t.Fatalf("enqueued=%d, want still 1", len(notifier.payloads))
	}
}

func TestCreateCheckInBlankEmailSendsNothing(t *testing.T) {
	svc, repo, notifier := newTestCheckInService()

	req := checkInReq("Ann", "Mike")
	req.Email = ptr("   ")
	resp, apierr := svc.CreateCheckIn(req)
	if apierr != nil {
		t.Fatalf("CreateCheckIn: %v", apierr)
	}

	if len(notifier.payloads) != 0 {
		t.Fatalf("enqueued=%d, want 0 for a whitespace email", len(notifier.payloads))
	}
	stored, _ := repo.FindByID(resp.CheckIn.ID)
	if stored.Email != nil {
		t.Fatalf("stored email=%q, want nil", *stored.Email)
	}
}

func TestCreateCheckInSurvivesNotifierFailure(t *testing.T) {
	svc, repo, notifier := newTestCheckInService()
	notifier.err = errors.New("redis down")

	req := checkInReq("Ann", "Mike")
	req.Email = ptr("ann@example.com")
	resp, apierr := svc.CreateCheckIn(req)
	if apierr != nil {
		t.Fatalf("notifier failure must not fail the check-in: %v", apierr)
	}

	stored, _ := repo.FindByID(resp.CheckIn.ID)
	if stored == nil || stored.Status != queue.StatusWaiting {
		t.Fatal("check-in should be persisted despite notifier failure")
	}
}

func TestGetStats(t *testing.T) {
	svc, _, _ := newTestCheckInService()

	ann := checkInReq("Ann", "Mike")
	ann.Services = []string{"Haircut", "Massage Therapy"}
	ann.CheckInMethod = queue.MethodOnline
	if _, apierr := svc.CreateCheckIn(ann); apierr != nil {
		t.Fatalf("seed: %v", apierr)
	}

	bob := checkInReq("Bob", "Mike")
	bob.Services = []string{"Haircut"}
	if _, apierr := svc.CreateCheckIn(bob); apierr != nil {
		t.Fatalf("seed: %v", apierr)
	}

	cal := checkInReq("Cal", "Sara")
	cal.Services = []string{"Eyebrow Threading"}
	if _, apierr := svc.CreateCheckIn(cal); apierr != nil {
		t.Fatalf("seed: %v", apierr)
	}

	stats, apierr := svc.GetStats()
	if apierr != nil {
		t.Fatalf("GetStats: %v", apierr)
	}

	if stats.TotalCheckins != 3 || stats.OnlineCheckins != 1 || stats.WalkinCheckins != 2 {
		t.Fatalf("counts=%+v", stats)
	}
	if len(stats.TopServices) == 0 || stats.TopServices[0].Name != "Haircut" || stats.TopServices[0].Count != 2 {
		t.Fatalf("top services=%+v", stats.TopServices)
	}
	if len(stats.TopStylists) == 0 || stats.TopStylists[0].Name != "Mike" || stats.TopStylists[0].Count != 2 {
		t.Fatalf("top stylists=%+v", stats.TopStylists)
	}
}

func ptr(s string) *string {
	return &s
}
