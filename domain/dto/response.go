package dto

// Res is the uniform response envelope every endpoint returns. Paginated
// payloads nest a page envelope under Data.
type Res struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
}

func NewRes(statusCode int, data interface{}, message string) Res {
	return Res{StatusCode: statusCode, Data: data, Message: message}
}
