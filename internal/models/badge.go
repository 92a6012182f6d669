package models

// BadgeCriteria is the stored rule for a badge. Value is an int for counting
// criteria (points, streak, ...) and a string for category/topic criteria.
type BadgeCriteria struct {
	Type  string      `bson:"type" json:"type"`
	Value interface{} `bson:"value" json:"value"`
}

// IntValue returns the numeric criteria value, tolerating the types the
// mongo driver may decode numbers into.
func (c BadgeCriteria) IntValue() int {
	switch v := c.Value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// StringValue returns the string criteria value, or "" for numeric criteria.
func (c BadgeCriteria) StringValue() string {
	if s, ok := c.Value.(string); ok {
		return s
	}
	return ""
}

type Badge struct {
	ID          string        `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Icon        string        `bson:"icon" json:"icon"`
	Description string        `bson:"description" json:"description"`
	Phrase      string        `bson:"phrase" json:"phrase"`
	Criteria    BadgeCriteria `bson:"criteria" json:"criteria"`
}
