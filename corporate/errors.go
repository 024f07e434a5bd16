package corporate

import "errors"

// ErrInvalidArgument 参数非法：税率越界或批量输入长度无法广播
var ErrInvalidArgument = errors.New("invalid argument")

// TaxError 税额计算错误
type TaxError struct {
	Kind    error
	Message string
}

func (e *TaxError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *TaxError) Unwrap() error {
	return e.Kind
}

func invalidArgument(msg string) error {
	return &TaxError{Kind: ErrInvalidArgument, Message: msg}
}
