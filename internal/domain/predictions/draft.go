package predictions

import "errors"

var ErrMissingField = errors.New("match and tip are required")

// Draft is an incoming create/update payload. Pointer fields distinguish
// "not supplied" from "supplied empty": updates only write supplied fields.
type Draft struct {
	Match      *string `json:"match"`
	Tip        *string `json:"tip"`
	Confidence *string `json:"confidence"`
}

// ValidateNew rejects a draft that cannot become a prediction. Confidence
// stays optional.
func (d Draft) ValidateNew() error {
	if d.Match == nil || *d.Match == "" || d.Tip == nil || *d.Tip == "" {
		return ErrMissingField
	}
	return nil
}

// ValidateUpdate allows omitted fields but refuses to blank out match or tip.
func (d Draft) ValidateUpdate() error {
	if d.Match != nil && *d.Match == "" {
		return ErrMissingField
	}
	if d.Tip != nil && *d.Tip == "" {
		return ErrMissingField
	}
	return nil
}

// Changes returns the column updates a draft carries. Empty map means the
// update would be a no-op.
func (d Draft) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if d.Match != nil {
		changes["match_title"] = *d.Match
	}
	if d.Tip != nil {
		changes["tip"] = *d.Tip
	}
	if d.Confidence != nil {
		changes["confidence"] = *d.Confidence
	}
	return changes
}
