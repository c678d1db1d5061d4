package httpkit

import (
	"net/http"
)

// Get registers an input-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// GetQuery registers a GET handler whose input is bound from the query string
func GetQuery[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Get(path, Query(h))
}

// PostJSON registers a POST handler whose input is a validated JSON body
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// GetRaw registers a handler that writes its own response (file downloads)
func GetRaw(r Router, path string, h http.HandlerFunc) { r.Get(path, h) }
