package entity

import (
	"time"
)

type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeAudio MediaType = "audio"
)

// Media describes one uploaded audio or video item. The binary itself lives in
// object storage under ObjectName; URL is the public address of that object.
type Media struct {
	ID          string    `json:"id" firestore:"id"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	URL         string    `json:"url" firestore:"url"`
	ObjectName  string    `json:"object_name" firestore:"objectName"`
	Type        MediaType `json:"type" firestore:"type"`
	UploadedBy  string    `json:"uploaded_by" firestore:"uploadedBy"`
	Likes       []string  `json:"likes" firestore:"likes"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}

func (m *Media) LikeCount() int {
	return len(m.Likes)
}

func (m *Media) IsLikedBy(userID string) bool {
	for _, uid := range m.Likes {
		if uid == userID {
			return true
		}
	}
	return false
}
