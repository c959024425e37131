package models

type AbsenceStatus string

const (
	AbsencePendingStatus  AbsenceStatus = "PENDING"
	AbsenceApprovedStatus AbsenceStatus = "APPROVED"
	AbsenceRejectedStatus AbsenceStatus = "REJECTED"
)

var absenceStatusHumanName = map[AbsenceStatus]string{
	AbsencePendingStatus:  "На рассмотрении",
	AbsenceApprovedStatus: "Согласован",
	AbsenceRejectedStatus: "Отклонен",
}

func (s AbsenceStatus) ToHuman() string {
	if human, exist := absenceStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s AbsenceStatus) Valid() bool {
	_, exist := absenceStatusHumanName[s]
	return exist
}

// IsDecision - статус, который может выставить руководитель при рассмотрении
func (s AbsenceStatus) IsDecision() bool {
	return s == AbsenceApprovedStatus || s == AbsenceRejectedStatus
}
