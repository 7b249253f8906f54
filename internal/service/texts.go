package service

import (
	"github.com/maxviazov/jobbot-gateway/internal/model"
	"github.com/maxviazov/jobbot-gateway/internal/pagination"
)

// Action prefixes namespace navigation tokens per list.
const (
	PrefixVacancySearch = "vacancy_search"
	PrefixApplications  = "applications"
	PrefixAdminUsers    = "admin_users"
	PrefixActiveUsers   = "active_users"
)

// texts is the per-locale wording of listing screens.
type texts struct {
	vacancyTitle      string // takes the query
	applicationsTitle string
	usersTitle        string
	activeUsersTitle  string

	vacanciesEntity    string
	applicationsEntity string
	usersEntity        string

	statuses map[string]string
}

var englishTexts = texts{
	vacancyTitle:       "🔎 Vacancies for “%s”",
	applicationsTitle:  "📨 My applications",
	usersTitle:         "👥 Users",
	activeUsersTitle:   "🟢 Active users",
	vacanciesEntity:    "vacancies",
	applicationsEntity: "applications",
	usersEntity:        "users",
	statuses: map[string]string{
		model.ApplicationApplied:  "applied",
		model.ApplicationInReview: "in review",
		model.ApplicationInvited:  "invited",
		model.ApplicationRejected: "rejected",
		model.ApplicationAccepted: "accepted",
	},
}

var russianTexts = texts{
	vacancyTitle:       "🔎 Вакансии по запросу «%s»",
	applicationsTitle:  "📨 Мои отклики",
	usersTitle:         "👥 Пользователи",
	activeUsersTitle:   "🟢 Активные пользователи",
	vacanciesEntity:    "вакансий",
	applicationsEntity: "откликов",
	usersEntity:        "пользователей",
	statuses: map[string]string{
		model.ApplicationApplied:  "отправлен",
		model.ApplicationInReview: "на рассмотрении",
		model.ApplicationInvited:  "приглашение",
		model.ApplicationRejected: "отказ",
		model.ApplicationAccepted: "принят",
	},
}

func textsFor(locale string) texts {
	if pagination.NormalizeLocale(locale) == pagination.LocaleRussian {
		return russianTexts
	}
	return englishTexts
}

func (t texts) status(s string) string {
	if v, ok := t.statuses[s]; ok {
		return v
	}
	return s
}
