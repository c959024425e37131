package feedbackapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type Feedback struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type SubmitRequest struct {
	// EmployeeID - кому оставлен отзыв, по умолчанию самому себе
	EmployeeID string `json:"employee_id" form:"employee_id"`
	Text       string `json:"text" form:"text"`
	Polish     string `json:"polish" form:"polish"`
}

func (r SubmitRequest) Validate() error {
	if r.Text == "" {
		return errors.New("не указан текст отзыва")
	}
	return nil
}

func (r SubmitRequest) WantPolish() bool {
	return r.Polish == "on" || r.Polish == "true"
}
