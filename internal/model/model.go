package model

import "catedra-calendar/internal/roster"

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  roster.User `json:"user"`
}

// CreateEntriesRequest creates one entry per day of the inclusive range.
type CreateEntriesRequest struct {
	StartDate    string   `json:"start_date" binding:"required"`
	EndDate      string   `json:"end_date" binding:"required"`
	Text         string   `json:"text" binding:"required"`
	Type         string   `json:"type"`
	Participants []string `json:"participants"`
}

// UpdateEntryRequest carries the only fields editable after creation.
type UpdateEntryRequest struct {
	Text         string   `json:"text" binding:"required"`
	Type         string   `json:"type"`
	Participants []string `json:"participants"`
}

type AnnouncementRequest struct {
	Text string `json:"text"`
}

type ProfileRequest struct {
	EndDate string `json:"end_date" binding:"required"`
}

// ProfileView is a profile enriched with the countdown. DaysLeft is null when
// no end date is configured.
type ProfileView struct {
	UserName string `json:"user_name"`
	EndDate  string `json:"end_date"`
	DaysLeft *int   `json:"days_left"`
}

type TaskRequest struct {
	Text string `json:"text" binding:"required"`
}

type VoiceRequest struct {
	Text  string `json:"text" binding:"required"`
	Today string `json:"today"`
}

// VoiceResult is the best-effort interpretation of an utterance. On any
// assistant failure it degrades to the literal text and today's date.
type VoiceResult struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

type Tip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
