package entity

import "time"

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

// aspectRatios maps the supported aspect enums to target pixel dimensions.
var aspectRatios = map[string]Dimensions{
	"9:16": {Width: 1080, Height: 1920},
	"1:1":  {Width: 1024, Height: 1024},
	"2:3":  {Width: 1024, Height: 1536},
}

// ValidAspect reports whether the aspect enum is one of the supported ratios.
func ValidAspect(aspect string) bool {
	_, ok := aspectRatios[aspect]
	return ok
}

// AspectDimensions resolves an aspect enum to pixel dimensions,
// falling back to 9:16 for unknown values.
func AspectDimensions(aspect string) Dimensions {
	if d, ok := aspectRatios[aspect]; ok {
		return d
	}
	return aspectRatios["9:16"]
}

// CreditCost computes the tiered cost of a generation by pixel count:
// up to 1024x1024 costs 1, up to 1024x2048 costs 2, above that 3.
func CreditCost(aspect string) int {
	d := AspectDimensions(aspect)
	pixels := d.Width * d.Height
	switch {
	case pixels <= 1024*1024:
		return 1
	case pixels <= 1024*2048:
		return 2
	default:
		return 3
	}
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
