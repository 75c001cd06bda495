package dto

// OptionResponse is one selectable answer for a choice part.
type OptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// PartResponse describes one robot part as the UI should render it for the
// active lesson: generic identity, lesson-specific label, the offered
// options, and whether it is installed.
// Hints are deliberately absent; they only travel on a rejected submission.
type PartResponse struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Name        string           `json:"name"`
	Label       string           `json:"label"`
	AITerm      string           `json:"ai_term"`
	Description string           `json:"description"`
	ColorTheme  string           `json:"color_theme"`
	IconName    string           `json:"icon_name"`
	InputMode   string           `json:"input_mode"` // "choice" or "text"
	Installed   bool             `json:"installed"`
	Options     []OptionResponse `json:"options,omitempty"`
}

// LessonResponse is the active lesson's narrative data.
type LessonResponse struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	MissionBrief string `json:"mission_brief"`
	MissionGoal  string `json:"mission_goal"`
	IsLast       bool   `json:"is_last"`
}

// SessionResponse is the full read-only snapshot handed to the rendering
// collaborator after every intent.
type SessionResponse struct {
	SessionID  string         `json:"session_id"`
	Lesson     LessonResponse `json:"lesson"`
	Parts      []PartResponse `json:"parts"`
	ActivePart string         `json:"active_part,omitempty"`
	PowerLevel int            `json:"power_level"`
	Complete   bool           `json:"complete"`
}

// SubmitAnswerRequest carries the user's submission for the part currently
// being configured: an option id for choice parts, free text otherwise.
type SubmitAnswerRequest struct {
	Submission string `json:"submission"`
}

// SubmitAnswerResponse reports the validation outcome. InstalledPart is set
// exactly once per newly installed part so the UI can play its install cue.
type SubmitAnswerResponse struct {
	Accepted      bool             `json:"accepted"`
	Hint          string           `json:"hint,omitempty"`
	InstalledPart string           `json:"installed_part,omitempty"`
	Session       *SessionResponse `json:"session"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
