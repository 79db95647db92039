package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gopak/contactbook/internal/assets"
	"github.com/xeipuuv/gojsonschema"
)

var schemaJSON = assets.ConfigSchema()

func ValidateAgainstSchema(cfg Config) error {
	if len(schemaJSON) == 0 {
		return errors.New("contactbook config schema not embedded")
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(b)
	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return fmt.Errorf("contactbook config is invalid: %s", strings.Join(msgs, "; "))
}
