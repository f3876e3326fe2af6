package models

// Music is a single entry of the music table. Everything except ID may be NULL.
type Music struct {
	ID       int64   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title    *string `json:"title" db:"title"`
	URL      *string `json:"url" db:"url"`
	ImageURL *string `json:"imageUrl" db:"image_url"`
	VideoID  *string `json:"videoId" db:"video_id"`
}

// TableName keeps the singular table name instead of GORM's pluralized default.
func (Music) TableName() string {
	return "music"
}
