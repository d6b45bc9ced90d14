package embed

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var payloadSchema string

var schemaLoader = gojsonschema.NewStringLoader(payloadSchema)

// ErrInvalidPayload reports a payload Discord would refuse.
var ErrInvalidPayload = errors.New("invalid webhook payload")

// Validate checks the encoded form of p against the webhook payload schema.
// Violations are joined into a single error wrapping ErrInvalidPayload.
func Validate(p Payload) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate payload: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(problems, "; "))
}
