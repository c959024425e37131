package authz

import (
	"hr-profile-backend/models"
)

// Action - операции, доступ к которым проверяется политикой
type Action string

const (
	ActionViewProfile    Action = "VIEW_PROFILE"
	ActionUpdateProfile  Action = "UPDATE_PROFILE"
	ActionChangeRole     Action = "CHANGE_ROLE"
	ActionCreateAbsence  Action = "CREATE_ABSENCE"
	ActionDecideAbsence  Action = "DECIDE_ABSENCE"
	ActionSubmitFeedback Action = "SUBMIT_FEEDBACK"
	ActionExportReports  Action = "EXPORT_REPORTS"
)

// Subject - аутентифицированный пользователь, для которого принимается решение
type Subject struct {
	ID   string
	Role models.Role
}

// Decision - результат проверки, при отказе действие не выполняется,
// а пользователь перенаправляется на нейтральную страницу
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Decide - единая точка проверки прав.
// ownerID - владелец ресурса (профиля или заявки), для операций без владельца пустая строка
func Decide(actor Subject, ownerID string, action Action) Decision {
	if actor.ID == "" || !actor.Role.Valid() {
		return deny("пользователь не аутентифицирован")
	}
	switch action {
	case ActionViewProfile, ActionUpdateProfile:
		if actor.ID == ownerID {
			return allow()
		}
		if actor.Role.IsManager() {
			return allow()
		}
		return deny("доступ к чужому профилю только у руководителя")
	case ActionChangeRole:
		if actor.Role.IsManager() {
			return allow()
		}
		return deny("смена роли доступна только руководителю")
	case ActionDecideAbsence:
		// владелец заявки не учитывается, решение принимает любой руководитель
		if actor.Role.IsManager() {
			return allow()
		}
		return deny("рассмотрение заявок доступно только руководителю")
	case ActionExportReports:
		if actor.Role.IsManager() {
			return allow()
		}
		return deny("выгрузка отчетов доступна только руководителю")
	case ActionCreateAbsence, ActionSubmitFeedback:
		return allow()
	}
	return deny("неизвестная операция")
}
