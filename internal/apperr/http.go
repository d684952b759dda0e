package apperr

import "net/http"

// HTTPStatus maps an error kind to the response status handlers should emit.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindStateConflict, KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
