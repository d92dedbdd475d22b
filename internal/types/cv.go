package types

// CV represents an uploaded CV document.
type CV struct {
	ID         int    `json:"id"`
	FilePath   string `json:"file_path"`
	UploadedAt string `json:"uploaded_at"`
}
