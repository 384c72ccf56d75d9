package azure

import (
	"errors"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return isStatusCode(err, http.StatusNotFound)
}

// IsPermissionDenied checks if an error indicates the caller lacks rights
// on the resource.
func IsPermissionDenied(err error) bool {
	return isStatusCode(err, http.StatusUnauthorized, http.StatusForbidden)
}

// isStatusCode checks if the error is an ARM response error with one of the
// given HTTP status codes.
func isStatusCode(err error, codes ...int) bool {
	if err == nil {
		return false
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		for _, code := range codes {
			if respErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}
