package handler

import "github.com/clinicalcanvas/practice-api/internal/core/ports"

// documentRequest references an externally stored file. The service never
// touches file contents, only the pointer.
type documentRequest struct {
	Title    string `json:"title"     validate:"required"`
	Category string `json:"category"`
	FileURL  string `json:"file_url"  validate:"required,url"`
	FileType string `json:"file_type"`
}

func (r documentRequest) toInput() ports.DocumentInput {
	return ports.DocumentInput{
		Title:    r.Title,
		Category: r.Category,
		FileURL:  r.FileURL,
		FileType: r.FileType,
	}
}
