package dbmodels

import (
	feedbackapimodels "hr-profile-backend/models/api/feedback"
)

type Feedback struct {
	BaseModel
	AuthorID     string    `gorm:"index"`
	Author       *Employee `gorm:"foreignKey:AuthorID"`
	EmployeeID   string    `gorm:"index"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID"`
	Text         string    `gorm:"type:text"`
	PolishedText *string   `gorm:"type:text"`
}

// DisplayText - улучшенный текст, если он есть, иначе исходный
func (r Feedback) DisplayText() string {
	if r.PolishedText != nil && *r.PolishedText != "" {
		return *r.PolishedText
	}
	return r.Text
}

func (r Feedback) ToModel() feedbackapimodels.Feedback {
	rec := feedbackapimodels.Feedback{
		ID:         r.ID,
		AuthorID:   r.AuthorID,
		EmployeeID: r.EmployeeID,
		Text:       r.DisplayText(),
		CreatedAt:  r.CreatedAt,
	}
	if r.Author != nil {
		rec.AuthorName = r.Author.Name
	}
	return rec
}
