package restapi

import (
	"fmt"
)

// NetworkError means the request got no response at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "Erro de rede: A solicitação não obteve resposta."
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError carries a non-2xx response. Message is taken from the
// "message" field of the response body when present, otherwise a
// generic status-based text.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// UnknownError is the fallback for anything that is neither a missing
// response nor an HTTP status failure.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("Erro desconhecido: %v", e.Err)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}
