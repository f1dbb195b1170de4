package gql

import (
	"fmt"
	"strings"
)

// CheckUserErrors inspects a mutation payload and fails with a *ValidationError when
// its userErrors list is non-empty. The message joins every error message in order.
// A nil payload, or one whose userErrors is absent, null or not a list, passes.
func CheckUserErrors(payload any) error {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	userErrors := userErrorList(obj["userErrors"])
	if len(userErrors) == 0 {
		return nil
	}

	messages := make([]string, 0, len(userErrors))
	for _, ue := range userErrors {
		messages = append(messages, ue.Message)
	}
	userErrorsTotal.Inc()
	return &ValidationError{Message: strings.Join(messages, ", "), UserErrors: userErrors}
}

// userErrorList accepts the decoded JSON shape as well as lists built by Go callers.
func userErrorList(v any) []UserError {
	switch list := v.(type) {
	case []UserError:
		return list
	case []map[string]any:
		out := make([]UserError, 0, len(list))
		for _, entry := range list {
			out = append(out, userErrorFromMap(entry))
		}
		return out
	case []any:
		out := make([]UserError, 0, len(list))
		for _, item := range list {
			switch entry := item.(type) {
			case map[string]any:
				out = append(out, userErrorFromMap(entry))
			case UserError:
				out = append(out, entry)
			default:
				out = append(out, UserError{})
			}
		}
		return out
	}
	return nil
}

func userErrorFromMap(entry map[string]any) UserError {
	ue := UserError{Message: stringOf(entry["message"])}
	switch path := entry["path"].(type) {
	case []any:
		for _, p := range path {
			ue.Path = append(ue.Path, stringOf(p))
		}
	case []string:
		ue.Path = append(ue.Path, path...)
	}
	return ue
}

func stringOf(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
