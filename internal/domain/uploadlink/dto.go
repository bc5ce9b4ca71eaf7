package uploadlink

import "time"

type RedeemRequest struct {
	Token    string `json:"token" binding:"required"`
	FileName string `json:"file_name" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
	Tags     string `json:"tags"`
}

type IssueResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LinkView is an UploadLink with its derived status, for operator
// listings.
type LinkView struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
