package audit

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// skippedFields are bookkeeping keys that never produce a change entry
var skippedFields = map[string]bool{
	"id":         true,
	"intern_id":  true,
	"created_at": true,
	"updated_at": true,
}

// DetectChanges compares two field maps and returns the fields whose values
// differ. Comparison is by serialized value so numeric and slice
// representations picked up from different sources still match. Keys that
// are bookkeeping or underscore-prefixed are ignored.
func DetectChanges(oldFields, newFields map[string]any) Changes {
	changes := Changes{}

	for field, newValue := range newFields {
		if skippedFields[field] || strings.HasPrefix(field, "_") {
			continue
		}

		oldValue, existed := oldFields[field]
		if existed && jsonEqual(oldValue, newValue) {
			continue
		}
		if !existed {
			oldValue = nil
		}

		changes[field] = Change{From: oldValue, To: newValue}
	}

	return changes
}

func jsonEqual(a, b any) bool {
	aj, errA := json.Marshal(a)
	bj, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return string(aj) == string(bj)
}

// DescribeChanges renders a short human sentence for an update entry. At
// most two field changes are spelled out, the rest collapse into a count.
func DescribeChanges(changes Changes, subject string) string {
	if len(changes) == 0 {
		return fmt.Sprintf("Updated %s", subject)
	}

	phrases := make([]string, 0, 2)
	described := 0
	for _, field := range orderedFields(changes) {
		if described == 2 {
			break
		}
		phrases = append(phrases, describeField(field, changes[field]))
		described++
	}

	desc := fmt.Sprintf("Updated %s: %s", subject, strings.Join(phrases, ", "))
	if rest := len(changes) - described; rest > 0 {
		desc += fmt.Sprintf(" and %d more change(s)", rest)
	}

	return desc
}

// orderedFields returns the change keys with the status fields first so the
// most meaningful change leads the description
var describePriority = []string{
	"internship_status", "offer_status", "internship_fee_paid",
	"offer_letter_issued", "certificate_issued",
}

func orderedFields(changes Changes) []string {
	fields := make([]string, 0, len(changes))
	for _, f := range describePriority {
		if _, ok := changes[f]; ok {
			fields = append(fields, f)
		}
	}
	rest := make([]string, 0, len(changes))
	for f := range changes {
		if !contains(fields, f) {
			rest = append(rest, f)
		}
	}
	// Map iteration order is random, sort the remainder for stable output.
	sort.Strings(rest)
	return append(fields, rest...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func describeField(field string, c Change) string {
	switch field {
	case "internship_status":
		return fmt.Sprintf("changed internship status from %s to %s",
			FormatValue(c.From), FormatValue(c.To))
	case "offer_status":
		return fmt.Sprintf("changed offer status from %s to %s",
			FormatValue(c.From), FormatValue(c.To))
	case "internship_fee_paid":
		return fmt.Sprintf("marked internship fee as %s", paidWord(c.To))
	case "offer_letter_issued":
		return fmt.Sprintf("marked offer letter as %s", issuedWord(c.To))
	case "certificate_issued":
		return fmt.Sprintf("marked certificate as %s", issuedWord(c.To))
	default:
		return fmt.Sprintf("changed %s from %s to %s",
			strings.ReplaceAll(field, "_", " "),
			FormatValue(c.From), FormatValue(c.To))
	}
}

func paidWord(v any) string {
	if b, ok := v.(bool); ok && b {
		return "paid"
	}
	return "unpaid"
}

func issuedWord(v any) string {
	if b, ok := v.(bool); ok && b {
		return "issued"
	}
	return "not issued"
}

// FormatValue renders one change value for humans
func FormatValue(v any) string {
	if v == nil {
		return "empty"
	}

	switch val := v.(type) {
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case string:
		if val == "" {
			return "empty"
		}
		return val
	case time.Time:
		return val.Format("2006-01-02")
	case *time.Time:
		if val == nil {
			return "empty"
		}
		return val.Format("2006-01-02")
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return fmt.Sprintf("%d items", rv.Len())
	}

	return fmt.Sprint(v)
}
