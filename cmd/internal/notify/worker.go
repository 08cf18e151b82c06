package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/labstack/gommon/log"
)

// Worker consumes notification tasks and hands them to the mail
// transport. It runs inside the same binary as the HTTP server.
type Worker struct {
	Mailer    Mailer
	SalonName string
}

func NewWorker(mailer Mailer, salonName string) *Worker {
	return &Worker{Mailer: mailer, SalonName: salonName}
}

func (w *Worker) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCheckinConfirmation, w.HandleCheckinConfirmation)
	return mux
}

func (w *Worker) HandleCheckinConfirmation(ctx context.Context, t *asynq.Task) error {
	var payload ConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return err
	}

	subject := fmt.Sprintf("Your %s Check-In Confirmation", w.SalonName)
	body := w.confirmationBody(payload)

	if err := w.Mailer.Send(ctx, payload.Email, subject, body); err != nil {
		log.Errorf("failed to send confirmation for check-in %d: %v", payload.CheckinID, err)
		return err
	}
	return nil
}

func (w *Worker) confirmationBody(payload ConfirmationPayload) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYou've successfully checked in at %s.\n\nStylist: %s\nServices: %s\n\nWe'll notify you when you're next.\n\nThanks for choosing us!",
		payload.Name,
		w.SalonName,
		payload.Stylist,
		strings.Join(payload.Services, ", "),
	)
}
