package cv

import "time"

// Document is the structured résumé produced from a transcript.
type Document struct {
	Contact        Contact      `json:"contact"`
	Summary        string       `json:"summary"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Skills         Skills       `json:"skills"`
	Certifications []string     `json:"certifications"`
	Metadata       Metadata     `json:"metadata"`
}

type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type Experience struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Location    string  `json:"location"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa"`
}

type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Languages []string `json:"languages"`
}

// Extraction methods recorded in Metadata.Method.
const (
	MethodAI     = "ai"
	MethodLocal  = "ner"
	MethodEdited = "edited"
)

type Metadata struct {
	Confidence  float64   `json:"confidence"`
	Language    string    `json:"language"`
	Timestamp   time.Time `json:"timestamp"`
	NeedsReview bool      `json:"needsReview"`

	// Filled in by the orchestrator, not the mapper.
	Method           string `json:"extractionMethod,omitempty"`
	ProcessingTimeMS int64  `json:"processingTimeMs,omitempty"`
	EntityCount      int    `json:"entityCount"`
}

// Empty returns a document whose slices are non-nil, so it serialises as
// arrays rather than nulls.
func Empty(lang string, now time.Time) *Document {
	return &Document{
		Experience:     []Experience{},
		Education:      []Education{},
		Skills:         Skills{Technical: []string{}, Soft: []string{}, Languages: []string{}},
		Certifications: []string{},
		Metadata:       Metadata{Language: lang, Timestamp: now},
	}
}

// Normalize replaces nil slices with empty ones. Documents decoded from an
// external source go through it before they are stored or returned.
func (d *Document) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills.Technical == nil {
		d.Skills.Technical = []string{}
	}
	if d.Skills.Soft == nil {
		d.Skills.Soft = []string{}
	}
	if d.Skills.Languages == nil {
		d.Skills.Languages = []string{}
	}
	if d.Certifications == nil {
		d.Certifications = []string{}
	}
}
