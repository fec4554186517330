package entities

// ResolutionPlaceholder is shown in place of an objection's missing resolution.
const ResolutionPlaceholder = "N/A"

// Objection is a client-raised concern paired with an optional resolution
type Objection struct {
	Point      string  `json:"point"`
	Resolution *string `json:"resolution"`
}

// ResolutionOrPlaceholder returns the resolution text, or "N/A" when the
// model left it null or empty.
func (o Objection) ResolutionOrPlaceholder() string {
	if o.Resolution == nil || *o.Resolution == "" {
		return ResolutionPlaceholder
	}
	return *o.Resolution
}

// MeetingAnalysis is the structured extraction produced for one transcript.
// Objections and ActionItems are always serialised as arrays, never null.
// Only the presence of the two lists is validated; empty strings are valid.
type MeetingAnalysis struct {
	Summary     string      `json:"summary"`
	Objections  []Objection `json:"objections" validate:"required,dive"`
	ActionItems []string    `json:"action_items" validate:"required"`
}

// Normalize replaces nil lists with empty ones
func (a *MeetingAnalysis) Normalize() {
	if a.Objections == nil {
		a.Objections = make([]Objection, 0)
	}
	if a.ActionItems == nil {
		a.ActionItems = make([]string, 0)
	}
}

// NewResolution is a helper for building an Objection with a resolution.
func NewResolution(s string) *string {
	return &s
}
