package response

import "github.com/pagetalk/comment-api/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

// Envelope is the JSON shape every endpoint returns:
// {success, data|error, message?, pagination?}.
type Envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       any                `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func OKWithMessage(message string, data any) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}

func Paginated(data any, p domain.Pagination) Envelope {
	return Envelope{Success: true, Data: data, Pagination: &p}
}

func Err(message string) Envelope {
	return Envelope{Success: false, Error: message}
}
