package setting

import (
	"errors"
	"strings"
)

var ErrKeyRequired = errors.New("setting key is required")

var ErrValueRequired = errors.New("setting value is required")

// Setting is one platform-wide key/value pair. Value keeps whatever JSON type the backend stores.
type Setting struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	Description string `json:"description"`
	Category    string `json:"category"`
	UpdatedAt   string `json:"updatedAt"`
}

type UpdateInput struct {
	Key         string  `json:"key"`
	Value       any     `json:"value"`
	Description *string `json:"description,omitempty"`
}

func (in UpdateInput) Validate() error {
	if strings.TrimSpace(in.Key) == "" {
		return ErrKeyRequired
	}
	if in.Value == nil {
		return ErrValueRequired
	}
	if s, ok := in.Value.(string); ok && strings.TrimSpace(s) == "" {
		return ErrValueRequired
	}
	return nil
}
