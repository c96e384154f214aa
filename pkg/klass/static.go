package klass

import (
	"context"
	"fmt"
	"time"
)

// Static serves classifications from memory, versions are looked up by
// their self link.
type Static struct {
	Classifications map[string]*Classification
	Versions        map[string]*Version
	Codes           map[string][]Item
}

var _ Fetcher = &Static{}

func (s *Static) GetClassification(_ context.Context, classificationID string) (*Classification, error) {
	c, ok := s.Classifications[classificationID]
	if !ok {
		return nil, &ResponseError{StatusCode: 404, Body: fmt.Sprintf("classification %s not found", classificationID)}
	}

	return c, nil
}

func (s *Static) GetVersion(_ context.Context, versionURL string) (*Version, error) {
	v, ok := s.Versions[versionURL]
	if !ok {
		return nil, &ResponseError{StatusCode: 404, Body: fmt.Sprintf("version %s not found", versionURL)}
	}

	return v, nil
}

func (s *Static) GetCodesAt(_ context.Context, classificationID string, _ time.Time) (*Codes, error) {
	items, ok := s.Codes[classificationID]
	if !ok {
		return nil, &ResponseError{StatusCode: 404, Body: fmt.Sprintf("classification %s not found", classificationID)}
	}

	return &Codes{Codes: items}, nil
}

func NewStatic() *Static {
	return &Static{
		Classifications: map[string]*Classification{},
		Versions:        map[string]*Version{},
		Codes:           map[string][]Item{},
	}
}
