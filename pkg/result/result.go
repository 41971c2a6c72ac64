package result

// Result is the uniform outcome every service method returns. Exactly one of
// the success or failure sides is populated; handlers translate the error
// code and attach Message before rendering.
type Result struct {
	IsSuccess    bool        `json:"isSuccess"`
	IsError      bool        `json:"isError"`
	Data         interface{} `json:"data,omitempty"`
	Message      string      `json:"message,omitempty"`
	ResultInfo   interface{} `json:"resultInfo,omitempty"`
	Error        string      `json:"error,omitempty"`
	ErrorDetails interface{} `json:"errorDetails,omitempty"`
}

// OK builds a success result carrying a payload.
func OK(data interface{}) Result {
	return Result{
		IsSuccess: true,
		Data:      data,
	}
}

// OKWithMessage builds a success result with a message and optional extra info.
func OKWithMessage(data interface{}, message string, info interface{}) Result {
	return Result{
		IsSuccess:  true,
		Data:       data,
		Message:    message,
		ResultInfo: info,
	}
}

// Fail builds a failure result carrying a stable error code.
func Fail(code string) Result {
	return Result{
		IsError: true,
		Error:   code,
	}
}

// FailWithDetails builds a failure result with structured detail.
func FailWithDetails(code string, details interface{}) Result {
	return Result{
		IsError:      true,
		Error:        code,
		ErrorDetails: details,
	}
}

// WithMessage returns a copy with the display message set. Used by handlers
// after translating the error code for the request locale.
func (r Result) WithMessage(message string) Result {
	r.Message = message
	return r
}
