package models

import "time"

// News is a published announcement. The feed is read most-recent-first; the
// store's insertion order is not part of the contract.
type News struct {
	NewsID   int       `json:"news_id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	PostDate time.Time `json:"post_date"`
}
