package dto

// MCQRequest represents the request body for generating multiple-choice questions
// @Description Request body for MCQ generation
type MCQRequest struct {
	Topic string `json:"topic" form:"topic" example:"Linear Regression"`
	Count int    `json:"count" form:"count" example:"10"`
}

// TopicRequest represents the request body for summary and tutorial generation
// @Description Request body carrying a study topic
type TopicRequest struct {
	Topic string `json:"topic" form:"topic" example:"Operating Systems"`
}

// TopicsResponse lists suggested study topics
type TopicsResponse struct {
	Topics []string `json:"topics"`
}

// DocumentResponse is returned instead of the raw PDF when format=json is requested
// @Description Generated study document
type DocumentResponse struct {
	RequestID   string `json:"request_id"`
	Kind        string `json:"kind"`
	Topic       string `json:"topic"`
	FileName    string `json:"file_name"`
	Pages       int    `json:"pages"`
	Text        string `json:"text"`
	PreviewHTML string `json:"preview_html"`
	PDF         []byte `json:"pdf" swaggertype:"string" format:"base64"`
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string `json:"status"`
}
