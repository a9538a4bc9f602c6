package ner

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Confidence holds the score assigned by every extraction pattern. The values
// are hand-tuned; recalibrate them through a TOML file rather than in code.
type Confidence struct {
	Email              float64 `toml:"email"`
	IndianMobile       float64 `toml:"indian_mobile"`
	InternationalPhone float64 `toml:"international_phone"`
	TitledPerson       float64 `toml:"titled_person"`
	NamedPerson        float64 `toml:"named_person"`
	Company            float64 `toml:"company"`
	Organization       float64 `toml:"organization"`
	OrganizationSuffix float64 `toml:"organization_suffix"`
	City               float64 `toml:"city"`
	State              float64 `toml:"state"`
	ContextLocation    float64 `toml:"context_location"`
	Skill              float64 `toml:"skill"`
	Education          float64 `toml:"education"`
	DateWord           float64 `toml:"date_word"`
	DatePattern        float64 `toml:"date_pattern"`
	Year               float64 `toml:"year"`
}

// DefaultConfidence returns the stock calibration.
func DefaultConfidence() Confidence {
	return Confidence{
		Email:              0.98,
		IndianMobile:       0.96,
		InternationalPhone: 0.95,
		TitledPerson:       0.95,
		NamedPerson:        0.85,
		Company:            0.95,
		Organization:       0.80,
		OrganizationSuffix: 0.75,
		City:               0.90,
		State:              0.85,
		ContextLocation:    0.60,
		Skill:              0.80,
		Education:          0.75,
		DateWord:           0.85,
		DatePattern:        0.90,
		Year:               0.70,
	}
}

// LoadConfidence overlays the keys present in a TOML file on base. Keys the
// file omits keep their base value. Values outside [0,1] are rejected.
func LoadConfidence(path string, base Confidence) (Confidence, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, errors.Wrap(err, "read confidence file")
	}
	out := base
	if err := toml.Unmarshal(raw, &out); err != nil {
		return base, errors.Wrap(err, "parse confidence file")
	}
	if err := out.validate(); err != nil {
		return base, err
	}
	return out, nil
}

func (c Confidence) validate() error {
	values := map[string]float64{
		"email": c.Email, "indian_mobile": c.IndianMobile,
		"international_phone": c.InternationalPhone, "titled_person": c.TitledPerson,
		"named_person": c.NamedPerson, "company": c.Company, "organization": c.Organization,
		"organization_suffix": c.OrganizationSuffix, "city": c.City, "state": c.State,
		"context_location": c.ContextLocation, "skill": c.Skill, "education": c.Education,
		"date_word": c.DateWord, "date_pattern": c.DatePattern, "year": c.Year,
	}
	for name, v := range values {
		if v < 0 || v > 1 {
			return errors.Errorf("confidence %s=%v out of range [0,1]", name, v)
		}
	}
	return nil
}
