package entity

import "time"

type Wallpaper struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Style       string    `json:"style"`
	Price       int       `json:"price"`
	ImagePath   string    `json:"image_path"`
	PreviewPath string    `json:"preview_path"`
	Sales       int       `json:"sales"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
