package payload

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
