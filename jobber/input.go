package jobber

import (
	"fmt"
	"strings"
	"time"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
)

// ISOLayout is the timestamp format sent to the API: UTC with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// Accepted input layouts, tried in order. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// FormatDateToISO normalises a time.Time, *time.Time or date string to ISOLayout.
func FormatDateToISO(value any) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC().Format(ISOLayout), nil
	case *time.Time:
		if v == nil {
			return "", gql.NewValidationError("Invalid date: <nil>")
		}
		return v.UTC().Format(ISOLayout), nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC().Format(ISOLayout), nil
			}
		}
		return "", gql.NewValidationError("Invalid date: %s", v)
	default:
		return "", gql.NewValidationError("Invalid date: %v", value)
	}
}

// optionalDate formats s when it is set and leaves it out otherwise.
func optionalDate(input map[string]any, key, s string) error {
	if s == "" {
		return nil
	}
	iso, err := FormatDateToISO(s)
	if err != nil {
		return err
	}
	input[key] = iso
	return nil
}

type Address struct {
	Street1    string `json:"street1,omitempty"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// BuildAddressInput keeps only the fields that carry a value.
func BuildAddressInput(a Address) map[string]any {
	out := map[string]any{}
	for _, f := range []struct {
		key, value string
	}{
		{"street1", a.Street1},
		{"street2", a.Street2},
		{"city", a.City},
		{"province", a.Province},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	} {
		if f.value != "" {
			out[f.key] = f.value
		}
	}
	return out
}

type Email struct {
	Primary     *bool  `json:"primary,omitempty"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
}

func BuildEmailsInput(emails []Email) []map[string]any {
	out := make([]map[string]any, 0, len(emails))
	for _, e := range emails {
		out = append(out, map[string]any{
			"address":     e.Address,
			"description": e.Description,
			"primary":     boolOr(e.Primary, false),
		})
	}
	return out
}

type Phone struct {
	Primary     *bool  `json:"primary,omitempty"`
	SMSAllowed  *bool  `json:"smsAllowed,omitempty"`
	Number      string `json:"number"`
	Description string `json:"description,omitempty"`
}

func BuildPhonesInput(phones []Phone) []map[string]any {
	out := make([]map[string]any, 0, len(phones))
	for _, p := range phones {
		out = append(out, map[string]any{
			"number":      p.Number,
			"description": p.Description,
			"primary":     boolOr(p.Primary, false),
			"smsAllowed":  boolOr(p.SMSAllowed, false),
		})
	}
	return out
}

type LineItem struct {
	Taxable     *bool   `json:"taxable,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// BuildLineItemsInput shapes line items for quotes, jobs and invoices. Taxable defaults to true.
func BuildLineItemsInput(items []LineItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, li := range items {
		out = append(out, map[string]any{
			"name":        li.Name,
			"description": li.Description,
			"quantity":    li.Quantity,
			"unitPrice":   li.UnitPrice,
			"taxable":     boolOr(li.Taxable, true),
		})
	}
	return out
}

const invalidJSONArray = "Invalid JSON array input"

// ParseJSONArray decodes text that must hold a JSON array.
func ParseJSONArray(text string) ([]any, error) {
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, gql.NewValidationError(invalidJSONArray)
	}
	out, ok := decoded.([]any)
	if !ok {
		return nil, gql.NewValidationError(invalidJSONArray)
	}
	return out, nil
}

// ParseLineItems decodes a JSON array of line items.
func ParseLineItems(text string) ([]LineItem, error) {
	if _, err := ParseJSONArray(text); err != nil {
		return nil, err
	}
	var items []LineItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, gql.NewValidationError("%s: %s", invalidJSONArray, err.Error())
	}
	return items, nil
}

// SplitList turns "a, b,,c" into ["a" "b" "c"].
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ValidateRequired fails when any of the named fields is missing, nil or an empty string.
func ValidateRequired(resource string, data map[string]any, fields ...string) error {
	var missing []string
	for _, f := range fields {
		v, ok := data[f]
		if !ok || v == nil || v == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return gql.NewValidationError("Missing required fields for %s: %s", resource, strings.Join(missing, ", "))
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func boolPtr(v bool) *bool {
	return &v
}

func describe(resource Resource, verb Verb) string {
	return fmt.Sprintf("%s.%s", resource, verb)
}
