package httpcache

import "net/http"

type Wrapper interface {
	WrapHandlerFunc(http.HandlerFunc) http.HandlerFunc
}

type NopClient struct {
}

func (NopClient) WrapHandlerFunc(handlerFunc http.HandlerFunc) http.HandlerFunc {
	return handlerFunc
}

func NewNopClient() *NopClient {
	return &NopClient{}
}
