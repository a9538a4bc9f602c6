package ner

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	// Ten digits starting 6-9, optionally split 5+5 and prefixed with +91.
	indianMobileRe = regexp.MustCompile(`(?:\+91[\s-]?|\b)[6-9]\d{4}[\s-]?\d{5}\b`)
	// Country code plus 6-12 digits, optionally grouped. Validated below.
	internationalPhoneRe = regexp.MustCompile(`\+[1-9]\d{0,2}(?:[\s-]?\d){6,12}\b`)
)

// EmailPattern and friends are shared with the CV mapper's recall pass.
func EmailPattern() *regexp.Regexp              { return emailRe }
func IndianMobilePattern() *regexp.Regexp       { return indianMobileRe }
func InternationalPhonePattern() *regexp.Regexp { return internationalPhoneRe }

// PlausiblePhone reports whether an international match has a possible
// length for its country code.
func PlausiblePhone(raw string) bool {
	digits := strings.Map(func(r rune) rune {
		if r == '+' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, raw)
	num, err := phonenumbers.Parse(digits, "")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}

// contactExtractor runs on the raw text because tokenization strips '@' and
// '+'. It runs first, so contact data is never absorbed by another category.
type contactExtractor struct{}

func (contactExtractor) name() string { return "contact" }

func (contactExtractor) extract(s *scope) ([]Entity, error) {
	var out []Entity
	for _, loc := range emailRe.FindAllStringIndex(s.text, -1) {
		if e, ok := s.claimSpan(loc[0], loc[1], Contact, SubtypeEmail, s.conf.Email); ok {
			out = append(out, e)
		}
	}
	for _, loc := range indianMobileRe.FindAllStringIndex(s.text, -1) {
		if e, ok := s.claimSpan(loc[0], loc[1], Contact, SubtypePhone, s.conf.IndianMobile); ok {
			out = append(out, e)
		}
	}
	for _, loc := range internationalPhoneRe.FindAllStringIndex(s.text, -1) {
		if !PlausiblePhone(s.text[loc[0]:loc[1]]) {
			continue
		}
		if e, ok := s.claimSpan(loc[0], loc[1], Contact, SubtypePhone, s.conf.InternationalPhone); ok {
			out = append(out, e)
		}
	}
	return out, nil
}
