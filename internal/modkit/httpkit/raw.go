package httpkit

import (
	"net/http"

	phttp "narrativedesk/internal/platform/net/http"
	"narrativedesk/internal/platform/net/http/bind"
)

// BindQuery binds and validates T from the query string, for handlers that
// write their own body
func BindQuery[T any](r *http.Request) (T, error) { return bind.ParseQuery[T](r) }

// WriteError writes err as the standard error envelope
func WriteError(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }
