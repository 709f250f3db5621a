package entity

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("generation not found")

type GenerationStatus string

const (
	GenerationQueued    GenerationStatus = "queued"
	GenerationRunning   GenerationStatus = "running"
	GenerationSucceeded GenerationStatus = "succeeded"
	GenerationFailed    GenerationStatus = "failed"
)

type Dimensions struct {
	Width  int
	Height int
}

var aspectRatios = map[string]Dimensions{
	"9:16": {Width: 1080, Height: 1920},
	"1:1":  {Width: 1024, Height: 1024},
	"2:3":  {Width: 1024, Height: 1536},
}

// AspectDimensions resolves an aspect enum to pixel dimensions. Jobs with
// an unrecognized aspect still have to finish, so unknown values fall
// back to 9:16 instead of failing the job.
func AspectDimensions(aspect string) Dimensions {
	if d, ok := aspectRatios[aspect]; ok {
		return d
	}
	return aspectRatios["9:16"]
}

type GenerationStyle struct {
	Aspect      string  `json:"aspect"`
	StylePreset string  `json:"style_preset"`
	Chromatic   float64 `json:"chromatic"`
}

type Generation struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Prompt        string           `json:"prompt"`
	Style         GenerationStyle  `json:"style"`
	Status        GenerationStatus `json:"status"`
	CreditCost    int              `json:"credit_cost"`
	OriginalPath  string           `json:"original_path,omitempty"`
	ThumbnailPath string           `json:"thumbnail_path,omitempty"`
	Error         string           `json:"error,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
}
