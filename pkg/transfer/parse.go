package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"orchardlog/entities"
)

type ErrKind string

const (
	ErrKindParse         ErrKind = "parse"
	ErrKindInvalidFormat ErrKind = "invalid_format"
)

// ImportError is returned for any rejected backup. No store is touched when it is.
type ImportError struct {
	Kind ErrKind
	Err  error
}

func (e *ImportError) Error() string { return fmt.Sprintf("import %s: %v", e.Kind, e.Err) }
func (e *ImportError) Unwrap() error { return e.Err }

func parseErr(err error) error { return &ImportError{Kind: ErrKindParse, Err: err} }
func formatErr(err error) error { return &ImportError{Kind: ErrKindInvalidFormat, Err: err} }

// ParsedBackup holds the collections a backup carried as arrays. A Has flag is
// false when the key was absent or held something other than an array.
type ParsedBackup struct {
	Logs         []entities.LogRecord
	ActivityDefs []entities.ActivityDefinition
	Blocks       []entities.BlockDefinition

	HasLogs         bool
	HasActivityDefs bool
	HasBlocks       bool
}

// A backup must be an object with a truthy logs or activityDefs value.
const backupSchemaURL = "https://orchardlog.local/schema/backup.json"

const backupSchema = `{
  "type": "object",
  "anyOf": [
    {"required": ["logs"], "properties": {"logs": {"not": {"enum": [null, false, 0, ""]}}}},
    {"required": ["activityDefs"], "properties": {"activityDefs": {"not": {"enum": [null, false, 0, ""]}}}}
  ]
}`

var compiledBackupSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(backupSchema))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(backupSchemaURL, doc); err != nil {
		panic(err)
	}
	sch, err := c.Compile(backupSchemaURL)
	if err != nil {
		panic(err)
	}
	return sch
}

var errMissingCollections = errors.New("backup has neither logs nor activityDefs")

// ParseBackup validates untrusted input before anything is decoded into entities.
func ParseBackup(r io.Reader) (ParsedBackup, error) {
	var out ParsedBackup
	data, err := io.ReadAll(r)
	if err != nil {
		return out, parseErr(fmt.Errorf("read backup: %w", err))
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return out, parseErr(err)
	}
	if err := compiledBackupSchema.Validate(inst); err != nil {
		return out, formatErr(errors.Join(errMissingCollections, err))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return out, parseErr(err)
	}
	if out.HasLogs, err = decodeArray(raw, "logs", &out.Logs); err != nil {
		return ParsedBackup{}, err
	}
	if out.HasActivityDefs, err = decodeArray(raw, "activityDefs", &out.ActivityDefs); err != nil {
		return ParsedBackup{}, err
	}
	if out.HasBlocks, err = decodeArray(raw, "blocks", &out.Blocks); err != nil {
		return ParsedBackup{}, err
	}
	return out, nil
}

// decodeArray fills dst when raw[key] is a JSON array; other values are skipped.
func decodeArray[T any](raw map[string]json.RawMessage, key string, dst *[]T) (bool, error) {
	v, ok := raw[key]
	if !ok {
		return false, nil
	}
	v = bytes.TrimSpace(v)
	if len(v) == 0 || v[0] != '[' {
		return false, nil
	}
	items := []T{}
	err := json.Unmarshal(v, &items)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		fixed, cerr := coerceScalars(v)
		if cerr == nil {
			items = []T{}
			err = json.Unmarshal(fixed, &items)
		}
	}
	if err != nil {
		return false, formatErr(fmt.Errorf("%s: %w", key, err))
	}
	*dst = items
	return true, nil
}

// Hand-edited backups often carry numbers as strings and ids as numbers.
var (
	numericFields = map[string]bool{"createdAt": true, "quantity": true, "cost": true, "size": true}
	textFields    = map[string]bool{
		"id": true, "date": true, "type": true, "blockId": true, "name": true, "section": true,
		"details": true, "unit": true, "notes": true, "color": true, "icon": true,
	}
)

// coerceScalars rewrites numeric strings in numeric fields as numbers and
// numbers in text fields as strings. A blank numeric string becomes absent.
// Anything else is left for the typed decode to reject.
func coerceScalars(v json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(v))
	dec.UseNumber()
	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, err
	}
	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		for k, val := range obj {
			switch x := val.(type) {
			case string:
				if !numericFields[k] {
					continue
				}
				n := strings.TrimSpace(x)
				if n == "" {
					delete(obj, k)
				} else if _, err := strconv.ParseFloat(n, 64); err == nil && json.Valid([]byte(n)) {
					obj[k] = json.Number(n)
				}
			case json.Number:
				if textFields[k] {
					obj[k] = x.String()
				}
			}
		}
	}
	return json.Marshal(items)
}
