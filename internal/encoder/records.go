package encoder

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	toon "github.com/toon-format/toon-go"

	"github.com/fyrsmithlabs/sempress/internal/config"
)

// RecordError reports a failure scoped to a single record. One bad record
// never fails the batch; callers collect these alongside the output.
type RecordError struct {
	Index int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("record %d: field %q: %v", e.Index, e.Field, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// importanceByName rates fields by conventional naming when no explicit
// override exists. Unlisted names fall back to value-based detection.
var importanceByName = map[string]float64{
	"id": 0.9, "uuid": 0.9, "key": 0.9, "sku": 0.9,
	"name": 0.9, "title": 0.85, "label": 0.8,
	"status": 0.8, "state": 0.8, "type": 0.75, "category": 0.7,
	"date": 0.7, "created_at": 0.65, "updated_at": 0.6, "timestamp": 0.65,
	"price": 0.8, "amount": 0.8, "total": 0.75, "count": 0.7, "quantity": 0.7,
	"email": 0.7, "phone": 0.65, "url": 0.5, "link": 0.5,
	"description": 0.3, "summary": 0.35, "notes": 0.25, "comment": 0.25,
	"body": 0.2, "content": 0.2, "text": 0.3, "html": 0.1,
	"metadata": 0.3, "debug": 0.1, "internal": 0.1,
}

var fieldWsRe = regexp.MustCompile(`\s+`)

// RecordsEncoder encodes uniform structured records into the compact
// header/row grammar, or TOON when configured.
type RecordsEncoder struct {
	opts config.RecordsOptions
}

// NewRecordsEncoder wires a structured-data encoder.
func NewRecordsEncoder(opts config.RecordsOptions) *RecordsEncoder {
	return &RecordsEncoder{opts: opts}
}

// Encode compresses records under the dataset name. Records failing field
// requirements are skipped and reported in errs; the remaining batch still
// encodes.
func (e *RecordsEncoder) Encode(name string, records []map[string]any) (compressed string, errs []*RecordError, err error) {
	if e.opts.Format == config.RecordsFormatToon {
		out, merr := toon.Marshal(records, toon.WithLengthMarkers(true))
		if merr != nil {
			return "", nil, fmt.Errorf("records: toon marshal: %w", merr)
		}
		return string(out), nil, nil
	}

	fields := e.selectFields(records)

	var rows []string
	for i, rec := range records {
		flat := e.flatten(rec)
		if ferr := e.checkRequired(i, flat); ferr != nil {
			errs = append(errs, ferr)
			continue
		}
		cells := make([]string, len(fields))
		for j, f := range fields {
			cells[j] = e.formatValue(flat[f])
		}
		rows = append(rows, "["+strings.Join(cells, "|")+"]")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[DATA:%s:%d]{%s}", sanitizeName(name), len(rows), strings.Join(fields, ",")))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(row)
	}
	return b.String(), errs, nil
}

// selectFields resolves the retained field set: required wins over excluded,
// excluded wins over importance, everything else needs importance at or
// above the threshold. Required fields lead in configured order; the rest
// follow alphabetically.
func (e *RecordsEncoder) selectFields(records []map[string]any) []string {
	required := make(map[string]struct{}, len(e.opts.Required))
	for _, f := range e.opts.Required {
		required[f] = struct{}{}
	}
	excluded := make(map[string]struct{}, len(e.opts.Excluded))
	for _, f := range e.opts.Excluded {
		excluded[f] = struct{}{}
	}

	// Union of flattened keys across all records, with sample values for
	// auto-detection.
	samples := make(map[string][]any)
	for _, rec := range records {
		for k, v := range e.flatten(rec) {
			if len(samples[k]) < 8 {
				samples[k] = append(samples[k], v)
			}
		}
	}

	var rest []string
	for f, vals := range samples {
		if _, ok := required[f]; ok {
			continue
		}
		if _, ok := excluded[f]; ok {
			continue
		}
		if e.importance(f, vals) >= e.opts.Threshold {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)

	fields := make([]string, 0, len(e.opts.Required)+len(rest))
	fields = append(fields, e.opts.Required...)
	return append(fields, rest...)
}

// importance resolves a field's score: explicit override, then the name
// convention table, then value-shape detection.
func (e *RecordsEncoder) importance(field string, samples []any) float64 {
	if score, ok := e.opts.Importance[field]; ok {
		return score
	}
	base := field
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[i+1:]
	}
	if score, ok := importanceByName[strings.ToLower(base)]; ok {
		return score
	}
	return detectImportance(samples)
}

// detectImportance scores unknown fields by value shape: identifiers and
// short categorical values rate high, long prose rates low.
func detectImportance(samples []any) float64 {
	if len(samples) == 0 {
		return 0.5
	}
	total := 0
	distinct := make(map[string]struct{})
	for _, v := range samples {
		s := fmt.Sprint(v)
		total += len(s)
		distinct[s] = struct{}{}
	}
	avg := float64(total) / float64(len(samples))
	switch {
	case avg <= 12:
		return 0.7
	case avg <= 40:
		return 0.5
	case avg <= 120:
		return 0.35
	default:
		return 0.2
	}
}

// checkRequired verifies every required field is present and non-empty.
func (e *RecordsEncoder) checkRequired(index int, flat map[string]any) *RecordError {
	for _, f := range e.opts.Required {
		v, ok := flat[f]
		if !ok || v == nil || fmt.Sprint(v) == "" {
			return &RecordError{Index: index, Field: f, Err: fmt.Errorf("required field missing")}
		}
	}
	return nil
}

// flatten turns nested maps into dotted keys ("address.city"), unless
// PreserveStructure keeps nested values inline.
func (e *RecordsEncoder) flatten(rec map[string]any) map[string]any {
	if e.opts.PreserveStructure {
		return rec
	}
	out := make(map[string]any, len(rec))
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for k, v := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if nested, ok := v.(map[string]any); ok {
				walk(key, nested)
				continue
			}
			out[key] = v
		}
	}
	walk("", rec)
	return out
}

// rawValue renders a value without escapes. Arrays inline as [a,b,c] and
// maps as {k:v,k:v}; only the cell delimiter gets escaped, later, in
// formatValue.
func rawValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case map[string]any:
		return inlineMap(val)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = rawValue(item)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return fmt.Sprint(val)
	}
}

// formatValue renders one cell: normalized whitespace, the cell-delimiter
// escape, and truncation.
func (e *RecordsEncoder) formatValue(v any) string {
	s := rawValue(v)
	s = strings.TrimSpace(fieldWsRe.ReplaceAllString(s, " "))
	s = strings.ReplaceAll(s, "|", "\\|")

	if e.opts.MaxFieldLength > 0 {
		if runes := []rune(s); len(runes) > e.opts.MaxFieldLength {
			s = string(runes[:e.opts.MaxFieldLength-1]) + "…"
		}
	}
	return s
}

// inlineMap renders a nested map deterministically for preserve-structure
// mode.
func inlineMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + rawValue(m[k])
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// sanitizeName keeps the dataset name grammar-safe.
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "records"
	}
	name = fieldWsRe.ReplaceAllString(name, "_")
	return strings.NewReplacer(":", "_", "[", "_", "]", "_", "{", "_", "}", "_").Replace(name)
}
