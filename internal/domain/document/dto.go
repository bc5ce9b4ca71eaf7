package document

type CreateDocumentRequest struct {
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
	Tags     string `json:"tags"`
}

type UpdateDocumentRequest struct {
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
	Tags     string `json:"tags"`
}
