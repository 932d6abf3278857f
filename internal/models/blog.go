package models

import "time"

type Blog struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	Category     string    `json:"category"`
	ExternalLink string    `json:"externalLink,omitempty"`
	Likes        int64     `json:"likes"`
	CreatedAt    time.Time `json:"createdAt"`
}
