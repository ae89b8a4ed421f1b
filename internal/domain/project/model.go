package project

import "time"

// Record is a published portfolio project. ID is a stable surrogate key;
// titles are display values and may collide, so mutations are keyed by ID.
type Record struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Desc      string    `json:"desc"`
	FullDesc  string    `json:"full_desc,omitempty"`
	Image     string    `json:"img"`
	Featured  bool      `json:"featured"`
	Year      string    `json:"year,omitempty"`
	Location  string    `json:"location,omitempty"`
	Client    string    `json:"client,omitempty"`
	Area      string    `json:"area,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
