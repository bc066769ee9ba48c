package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// PowerDescriptionMinLength is the shortest description a power may be given
const PowerDescriptionMinLength = 20

// Power is a row of the powers table
type Power struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// PowerView is the public projection of a power
type PowerView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// View projects the power for responses
func (p *Power) View() PowerView {
	return PowerView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

// PowerPatch carries the mutable fields of a power. A nil field is left unchanged.
type PowerPatch struct {
	Name        *string `json:"name,omitempty" validate:"omitnil,notblank"`
	Description *string `json:"description,omitempty" validate:"omitnil,notblank,min=20"`
}

// IsEmpty reports whether the patch changes nothing
func (p PowerPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

// Apply writes the set fields onto the power
func (p PowerPatch) Apply(power *Power) {
	if p.Name != nil {
		power.Name = *p.Name
	}
	if p.Description != nil {
		power.Description = *p.Description
	}
}

// Errors returned while reading a patch body
var (
	ErrUnknownPatchField = errors.New("unknown field")
	ErrNullPatchField    = errors.New("field must not be null")
	ErrInvalidPatchField = errors.New("field has the wrong type")
)

// ParsePowerPatch reads a decoded JSON object into a PowerPatch.
// Only name and description are accepted; any other key, a null value or a
// non-string value is an error.
func ParsePowerPatch(fields map[string]json.RawMessage) (PowerPatch, error) {
	var patch PowerPatch

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var target **string
		switch key {
		case "name":
			target = &patch.Name
		case "description":
			target = &patch.Description
		default:
			return PowerPatch{}, fmt.Errorf("%w: %q", ErrUnknownPatchField, key)
		}

		raw := bytes.TrimSpace(fields[key])
		if bytes.Equal(raw, []byte("null")) {
			return PowerPatch{}, fmt.Errorf("%w: %q", ErrNullPatchField, key)
		}

		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return PowerPatch{}, fmt.Errorf("%w: %q", ErrInvalidPatchField, key)
		}
		*target = &value
	}

	return patch, nil
}
