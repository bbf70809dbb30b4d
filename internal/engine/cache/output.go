package cache

import (
	"encoding/json"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/zerr"
)

// Output receives the persisted payload of a reverted entry.
type Output struct {
	Info    json.RawMessage
	Content []byte
}

// DecodeInfo unmarshals the info payload into v. An empty payload leaves v unchanged.
func (o *Output) DecodeInfo(v any) error {
	if len(o.Info) == 0 {
		return nil
	}
	if err := json.Unmarshal(o.Info, v); err != nil {
		return zerr.Wrap(err, domain.ErrInvalidInfo.Error())
	}
	return nil
}
