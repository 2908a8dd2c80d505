package cmdtree

import (
	"fmt"
	"strconv"
	"strings"

	pkgstrings "github.com/giantswarm/cmdtree/pkg/strings"
)

// MessageFunc builds the failure message for a rejected value.
type MessageFunc func(value string) string

func invalidNumber(value string) string {
	return fmt.Sprintf("'%s' is a invalid number", value)
}

// ToInt parses source as a base 10 integer.
func ToInt(source string) (int, error) {
	return ToIntWithMessage(source, invalidNumber)
}

// ToIntWithMessage parses source as a base 10 integer, failing with an
// ExecutionError built by message.
func ToIntWithMessage(source string, message MessageFunc) (int, error) {
	n, err := strconv.Atoi(source)
	if err != nil {
		return 0, &ExecutionError{Message: message(source)}
	}
	return n, nil
}

// ToFloat parses source as a 64-bit float.
func ToFloat(source string) (float64, error) {
	return ToFloatWithMessage(source, invalidNumber)
}

// ToFloatWithMessage parses source as a 64-bit float, failing with an
// ExecutionError built by message.
func ToFloatWithMessage(source string, message MessageFunc) (float64, error) {
	f, err := strconv.ParseFloat(source, 64)
	if err != nil {
		return 0, &ExecutionError{Message: message(source)}
	}
	return f, nil
}

// ToChoice matches source case-insensitively against choices and returns
// the matching choice as declared.
func ToChoice(source string, choices []string) (string, error) {
	for _, choice := range choices {
		if strings.EqualFold(source, choice) {
			return choice, nil
		}
	}
	return "", Failf("No choice named '%s' exists", source)
}

// Require fails with message unless ok holds.
func Require(ok bool, message string) error {
	if !ok {
		return &ExecutionError{Message: message}
	}
	return nil
}

// RequireNonEmpty returns value, or an ExecutionError carrying message when
// value is empty.
func RequireNonEmpty(value, message string) (string, error) {
	if value == "" {
		return "", &ExecutionError{Message: message}
	}
	return value, nil
}

// CandidatesWithPrefix keeps the candidates starting with the value being
// completed.
func CandidatesWithPrefix(data CompletionData, candidates []string) []string {
	return pkgstrings.FilterPrefix(candidates, data.Current)
}

// CandidatesFrom maps items to strings and keeps those starting with the
// value being completed.
func CandidatesFrom[T any](data CompletionData, items []T, name func(T) string) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, name(item))
	}
	return CandidatesWithPrefix(data, names)
}
