package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypePurgeResponses = "form:purge-responses"

type PurgeResponsesPayload struct {
	FormID string `json:"form_id"`
}

func NewPurgeResponsesTask(formID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PurgeResponsesPayload{FormID: formID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePurgeResponses, payload), nil
}
