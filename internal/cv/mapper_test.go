package cv

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-cv/internal/gazetteer"
	"voice-cv/internal/ner"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestMapper() *Mapper {
	return NewMapper(gazetteer.Builtin(), WithClock(func() time.Time { return fixedNow }))
}

func entityAt(t *testing.T, text, sub string, typ ner.EntityType, st ner.Subtype, conf float64) ner.Entity {
	t.Helper()
	i := strings.Index(text, sub)
	require.GreaterOrEqual(t, i, 0, "%q not in text", sub)
	return ner.Entity{Text: sub, Type: typ, Subtype: st, Start: i, End: i + len(sub), Confidence: conf, Language: "en"}
}

const transcript = "My name is Priya Sharma. " +
	"I completed my B.Tech in computer science from Delhi University in 2016 with CGPA 8.5. " +
	"I know Python, Docker, SQL and machine learning. " +
	"I have good communication and leadership skills. " +
	"I also like travelling and reading books on history. " +
	"I speak English and Hindi. " +
	"I worked at Infosys as a Senior Software Engineer in Pune from 2018 to 2022. " +
	"I am an experienced software engineer with 5 years of experience. " +
	"I am an AWS Certified Developer. " +
	"Email priya@example.com, phone 9876543210."

func TestCreateCVStructure_FromPipeline(t *testing.T) {
	logger, _ := test.NewNullLogger()
	entities, err := ner.NewPipeline(gazetteer.Builtin(), ner.WithLogger(logger)).Extract(transcript, "en")
	require.NoError(t, err)

	doc, err := newTestMapper().CreateCVStructure(entities, transcript, "en")
	require.NoError(t, err)

	assert.Equal(t, Contact{
		Name:     "Priya Sharma",
		Email:    "priya@example.com",
		Phone:    "9876543210",
		Location: "Pune",
	}, doc.Contact)

	assert.Equal(t, "I have good communication and leadership skills. "+
		"I am an experienced software engineer with 5 years of experience.", doc.Summary)

	require.Len(t, doc.Experience, 1)
	exp := doc.Experience[0]
	assert.Equal(t, "Infosys", exp.Company)
	assert.Equal(t, "Senior Software Engineer", exp.Position)
	assert.Equal(t, "Pune", exp.Location)
	assert.Equal(t, "2018", exp.StartDate)
	assert.Equal(t, "2022", exp.EndDate)
	assert.InDelta(t, 0.95, exp.Confidence, 1e-9)
	assert.Contains(t, exp.Description, "worked at Infosys")

	require.Len(t, doc.Education, 1)
	assert.Equal(t, Education{
		Degree:      "B.Tech",
		Institution: "Delhi University",
		Field:       "computer science",
		EndDate:     "2016",
		GPA:         "8.5",
	}, doc.Education[0])

	assert.Equal(t, []string{"Python", "Docker", "SQL", "AWS", "Machine Learning"}, doc.Skills.Technical)
	assert.Equal(t, []string{"Communication", "Leadership"}, doc.Skills.Soft)
	assert.Equal(t, []string{"English", "Hindi"}, doc.Skills.Languages)
	assert.Equal(t, []string{"AWS Certified Developer"}, doc.Certifications)

	assert.Equal(t, "en", doc.Metadata.Language)
	assert.Equal(t, fixedNow, doc.Metadata.Timestamp)
	assert.False(t, doc.Metadata.NeedsReview)
	assert.Greater(t, doc.Metadata.Confidence, 0.7)
	assert.Equal(t, len(entities), doc.Metadata.EntityCount)
}

func TestCreateCVStructure_Pure(t *testing.T) {
	logger, _ := test.NewNullLogger()
	entities, err := ner.NewPipeline(nil, ner.WithLogger(logger)).Extract(transcript, "en")
	require.NoError(t, err)

	m := newTestMapper()
	first, err := m.CreateCVStructure(entities, transcript, "en")
	require.NoError(t, err)
	second, err := m.CreateCVStructure(entities, transcript, "en")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCreateCVStructure_ContactRecovery(t *testing.T) {
	text := "Reach me at test@example.com or 9876543210, linkedin.com/in/test-user and github.com/testuser"
	doc, err := newTestMapper().CreateCVStructure(nil, text, "en")
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", doc.Contact.Email)
	assert.Equal(t, "9876543210", doc.Contact.Phone)
	assert.Equal(t, "linkedin.com/in/test-user", doc.Contact.LinkedIn)
	assert.Equal(t, "github.com/testuser", doc.Contact.GitHub)
	assert.True(t, doc.Metadata.NeedsReview)
	assert.Zero(t, doc.Metadata.Confidence)
}

func TestCreateCVStructure_InternationalPhoneRecovery(t *testing.T) {
	doc, err := newTestMapper().CreateCVStructure(nil, "call me on +44 20 7946 0958", "en")
	require.NoError(t, err)
	assert.Equal(t, "+44 20 7946 0958", doc.Contact.Phone)
}

func TestCreateCVStructure_NameRecovery(t *testing.T) {
	tests := []struct {
		name string
		text string
		lang string
		want string
	}{
		{"english cue", "I am Python developer. My name is Arjun Mehta.", "en", "Arjun Mehta"},
		{"hindi cue", "मेरा नाम राजेश कुमार है", "hi", "राजेश कुमार"},
		{"no cue", "hello there", "en", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := newTestMapper().CreateCVStructure(nil, tt.text, tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc.Contact.Name)
		})
	}
}

func TestCreateCVStructure_SummaryFallback(t *testing.T) {
	text := "Hello there. This is a short note about me. Ok. Another line with words here."
	doc, err := newTestMapper().CreateCVStructure(nil, text, "en")
	require.NoError(t, err)
	assert.Equal(t, "This is a short note about me. Another line with words here.", doc.Summary)
}

func TestCreateCVStructure_InstitutionOnlyEducation(t *testing.T) {
	text := "I studied at St. Xavier's College in Mumbai."
	doc, err := newTestMapper().CreateCVStructure(nil, text, "en")
	require.NoError(t, err)
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "St. Xavier's College", doc.Education[0].Institution)
	assert.Empty(t, doc.Education[0].Degree)
	assert.Empty(t, doc.Experience)
}

func TestCreateCVStructure_OrganizationsNearEducationAreNotJobs(t *testing.T) {
	text := "I did an MBA at Globex Academy and then an internship program at Acme Labs."
	entities := []ner.Entity{
		entityAt(t, text, "MBA", ner.Education, ner.SubtypeDegree, 0.75),
		entityAt(t, text, "Globex Academy", ner.Organization, ner.SubtypeNone, 0.75),
		entityAt(t, text, "Acme Labs", ner.Organization, ner.SubtypeNone, 0.75),
	}
	doc, err := newTestMapper().CreateCVStructure(entities, text, "en")
	require.NoError(t, err)

	// Acme Labs is within 200 characters of the degree, Globex Academy is an
	// institution by name.
	assert.Empty(t, doc.Experience)
	require.Len(t, doc.Education, 1)
	assert.Equal(t, "Globex Academy", doc.Education[0].Institution)
}

func TestCreateCVStructure_CompanyRecovery(t *testing.T) {
	text := "I worked for Initech as a data analyst. Later I joined Hooli. Company: Pied Piper. " +
		"Before that I was at Vandelay Industries Pvt Ltd."
	doc, err := newTestMapper().CreateCVStructure(nil, text, "en")
	require.NoError(t, err)

	var companies []string
	for _, e := range doc.Experience {
		companies = append(companies, e.Company)
		assert.InDelta(t, defaultExperienceConfidence, e.Confidence, 1e-9)
	}
	assert.Equal(t, []string{"Initech", "Hooli", "Pied Piper", "Vandelay Industries Pvt Ltd"}, companies)
	assert.Equal(t, "data analyst", doc.Experience[0].Position)
}

func TestCreateCVStructure_ExperienceSortedByConfidence(t *testing.T) {
	text := "First Acme Corp then I moved on and a long time later went to Globex."
	entities := []ner.Entity{
		entityAt(t, text, "Acme Corp", ner.Organization, ner.SubtypeNone, 0.75),
		entityAt(t, text, "Globex", ner.Organization, ner.SubtypeNone, 0.95),
	}
	doc, err := newTestMapper().CreateCVStructure(entities, text, "en")
	require.NoError(t, err)
	require.Len(t, doc.Experience, 2)
	assert.Equal(t, "Globex", doc.Experience[0].Company)
	assert.Equal(t, "Acme Corp", doc.Experience[1].Company)
}

func TestCreateCVStructure_PlaceNamesAreNotLanguages(t *testing.T) {
	text := "I live in Tamil Nadu and speak Telugu."
	entities := []ner.Entity{
		entityAt(t, text, "Tamil Nadu", ner.Location, ner.SubtypeNone, 0.85),
	}
	doc, err := newTestMapper().CreateCVStructure(entities, text, "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"Telugu"}, doc.Skills.Languages)
}

func TestCreateCVStructure_MalformedEntities(t *testing.T) {
	text := "short text"
	tests := []struct {
		name   string
		entity ner.Entity
	}{
		{"past end", ner.Entity{Type: ner.Skill, Start: 6, End: 40, Confidence: 0.8}},
		{"negative start", ner.Entity{Type: ner.Skill, Start: -1, End: 3, Confidence: 0.8}},
		{"empty span", ner.Entity{Type: ner.Skill, Start: 3, End: 3, Confidence: 0.8}},
		{"confidence", ner.Entity{Type: ner.Skill, Start: 0, End: 5, Confidence: 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := newTestMapper().CreateCVStructure([]ner.Entity{tt.entity}, text, "en")
			assert.Nil(t, doc)
			assert.True(t, errors.Is(err, ErrMalformedEntities))
		})
	}
}

func TestReview(t *testing.T) {
	person := ner.Entity{Type: ner.Person, Confidence: 0.9}
	email := ner.Entity{Type: ner.Contact, Subtype: ner.SubtypeEmail, Confidence: 0.98}
	weak := ner.Entity{Type: ner.Location, Confidence: 0.6}
	skill := ner.Entity{Type: ner.Skill, Confidence: 0.8}

	tests := []struct {
		name       string
		entities   []ner.Entity
		wantReview bool
	}{
		{"complete", []ner.Entity{person, email, skill}, false},
		{"no person", []ner.Entity{email, skill}, true},
		{"no contact", []ner.Entity{person, skill}, true},
		{"30% low is fine", []ner.Entity{person, email, skill, skill, skill, skill, skill, weak, weak, weak}, false},
		{"over 30% low", []ner.Entity{person, email, weak, weak}, true},
		{"empty", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := review(tt.entities)
			assert.Equal(t, tt.wantReview, got)
		})
	}

	mean, _ := review([]ner.Entity{person, weak})
	assert.InDelta(t, 0.75, mean, 1e-9)
}

func TestDocument_EmptySerialisesArrays(t *testing.T) {
	doc := Empty("hi", fixedNow)
	assert.NotNil(t, doc.Experience)
	assert.NotNil(t, doc.Skills.Technical)

	var decoded Document
	decoded.Normalize()
	assert.NotNil(t, decoded.Certifications)
	assert.NotNil(t, decoded.Skills.Languages)

	mapped, err := newTestMapper().CreateCVStructure(nil, "I am a developer at Infosys", "en")
	require.NoError(t, err)
	assert.NotNil(t, mapped.Education)
	raw, err := json.Marshal(mapped)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"education":[]`)
	assert.NotContains(t, string(raw), "null")
}

func TestCreateCVStructure_DateRanges(t *testing.T) {
	text := "I completed my B.Tech from Delhi University in 2014. " +
		"I worked at Google from 2015 to 2017. " +
		"In 2021 I left my job at Infosys, which I had joined in 2018."
	logger, _ := test.NewNullLogger()
	entities, err := ner.NewPipeline(gazetteer.Builtin(), ner.WithLogger(logger)).Extract(text, "en")
	require.NoError(t, err)

	doc, err := newTestMapper().CreateCVStructure(entities, text, "en")
	require.NoError(t, err)

	jobs := map[string][2]string{}
	for _, exp := range doc.Experience {
		jobs[exp.Company] = [2]string{exp.StartDate, exp.EndDate}
	}
	assert.Equal(t, map[string][2]string{
		"Google":  {"2015", "2017"},
		"Infosys": {"2018", "2021"},
	}, jobs)

	require.Len(t, doc.Education, 1)
	assert.Equal(t, "B.Tech", doc.Education[0].Degree)
	assert.Empty(t, doc.Education[0].StartDate)
	assert.Equal(t, "2014", doc.Education[0].EndDate)
}

func TestChronological(t *testing.T) {
	at := func(text string, start int) ner.Entity { return ner.Entity{Text: text, Start: start} }

	assert.True(t, chronological(at("2015", 0), at("2017", 10)))
	assert.False(t, chronological(at("2021", 0), at("2018", 10)))
	assert.True(t, chronological(at("March 2020", 0), at("June 2020", 20)))
	assert.True(t, chronological(at("today", 0), at("yesterday", 10)))
}

func TestCreateCVStructure_ExperienceLocation(t *testing.T) {
	tests := []struct {
		name, text, place string
		conf              float64
		want              string
	}{
		{"lexicon city", "I worked at Google in Pune", "Pune", 0.90, "Pune"},
		{"guessed from context", "I worked at Google in Computer Science", "Computer", 0.60, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := []ner.Entity{
				entityAt(t, tt.text, "Google", ner.Organization, ner.SubtypeNone, 0.95),
				entityAt(t, tt.text, tt.place, ner.Location, ner.SubtypeNone, tt.conf),
			}
			doc, err := newTestMapper().CreateCVStructure(entities, tt.text, "en")
			require.NoError(t, err)
			require.Len(t, doc.Experience, 1)
			assert.Equal(t, tt.want, doc.Experience[0].Location)
		})
	}
}
