package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams returns the named route parameter with a trailing
// ".json" removed.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return strings.TrimSuffix(params.ByName(paramName), ".json")
}

// ExtractValidatedIDs extracts and validates each named parameter. Values are
// returned in the order of paramNames; fieldErrors is nil when all are valid.
func ExtractValidatedIDs(r *http.Request, paramNames ...string) ([]string, map[string][]string) {
	var fieldErrors map[string][]string
	ids := make([]string, len(paramNames))

	for i, name := range paramNames {
		ids[i] = ExtractIDFromParams(r, name)
		if err := ValidateID(ids[i]); err != nil {
			if fieldErrors == nil {
				fieldErrors = make(map[string][]string)
			}
			fieldErrors[name] = append(fieldErrors[name], err.Error())
		}
	}

	return ids, fieldErrors
}
