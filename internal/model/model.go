// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import (
	"time"

	"github.com/maxviazov/jobbot-gateway/internal/pagination"
)

// User is a Telegram user known to the bot.
type User struct {
	ID           int64     `json:"id"`
	TgID         int64     `json:"tg_id"`
	Username     string    `json:"username,omitempty"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name,omitempty"`
	LanguageCode string    `json:"language_code,omitempty"`
	IsBanned     bool      `json:"is_banned"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Vacancy is a job posting imported by the vacancy service.
type Vacancy struct {
	ID          int64     `json:"id"`
	ExternalID  string    `json:"external_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	URL         string    `json:"url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Application statuses, in the order an application usually moves through them.
const (
	ApplicationApplied  = "applied"
	ApplicationInReview = "in_review"
	ApplicationInvited  = "invited"
	ApplicationRejected = "rejected"
	ApplicationAccepted = "accepted"
)

// Application links a user to a vacancy they applied to.
// VacancyTitle and Company are denormalized on read for listing screens.
type Application struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	VacancyID    int64     `json:"vacancy_id"`
	VacancyTitle string    `json:"vacancy_title,omitempty"`
	Company      string    `json:"company,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SearchSnapshot is the frozen result of one vacancy search. Page navigation
// reads it back so every page is cut from the same collection.
type SearchSnapshot struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	Items     []Vacancy `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// Screen is a ready-to-send bot message: body text plus inline keyboard rows.
type Screen struct {
	Text     string                          `json:"text"`
	Keyboard [][]pagination.NavigationButton `json:"inline_keyboard,omitempty"`
	Page     pagination.PageDescriptor       `json:"page"`
}
