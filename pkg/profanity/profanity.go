// Package profanity wraps the go-away detector behind a small interface so
// services can be tested with a fake classifier.
package profanity

import (
	goaway "github.com/TwiN/go-away"
)

// Classifier reports whether a piece of user-submitted text contains profanity.
type Classifier interface {
	IsProfane(text string) bool
}

// Detector is the production classifier backed by go-away's default dictionaries.
type Detector struct {
	inner *goaway.ProfanityDetector
}

func NewDetector() *Detector {
	return &Detector{inner: goaway.NewProfanityDetector()}
}

func (d *Detector) IsProfane(text string) bool {
	return d.inner.IsProfane(text)
}
