package dto

// NoteSubmitRequest carries the edit form fields. The image arrives as
// a separate multipart file part named "image".
type NoteSubmitRequest struct {
	Title string `form:"title" json:"title"`
	Text  string `form:"text" json:"text"`
}

type NoteDeleteRequest struct {
	ID      int64 `form:"id" binding:"required"`
	Confirm bool  `form:"confirm"`
}

type NoteEditRequest struct {
	ID int64 `form:"id" json:"id" binding:"required"`
}

type NoteListRequest struct {
	Filter string `form:"filter" json:"filter"`
}

type NoteResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
