package models

type Response struct {
	Success         bool         `json:"success"`
	Message         string       `json:"message,omitempty"`
	Error           string       `json:"error,omitempty"`
	Errors          []FieldError `json:"errors,omitempty"`
	RequiresPayment bool         `json:"requiresPayment,omitempty"`
	Data            interface{}  `json:"data,omitempty"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

func SuccessResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}

func ValidationErrorResponse(message string, errs []FieldError) Response {
	return Response{
		Success: false,
		Error:   message,
		Errors:  errs,
	}
}

func PaymentRequiredResponse(message string) Response {
	return Response{
		Success:         false,
		Error:           message,
		RequiresPayment: true,
	}
}
