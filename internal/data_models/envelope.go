package dto

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

type Envelope struct {
	Status string `json:"status"`
	Msg    string `json:"msg,omitempty"`
	Data   any    `json:"data,omitempty"`
}

func Success(msg string, data any) Envelope {
	return Envelope{Status: StatusSuccess, Msg: msg, Data: data}
}

func Fail(msg string) Envelope {
	return Envelope{Status: StatusFail, Msg: msg}
}
