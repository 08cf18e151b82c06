package notify

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeCheckinConfirmation = "notify:checkin_confirmation"

// ConfirmationPayload carries everything the mail body needs, so the
// worker never has to read the check-in back from the store.
type ConfirmationPayload struct {
	CheckinID int      `json:"checkin_id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Stylist   string   `json:"stylist"`
	Services  []string `json:"services"`
}

func NewConfirmationTask(payload ConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCheckinConfirmation, body), nil
}
