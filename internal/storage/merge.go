package storage

import "go.mongodb.org/mongo-driver/bson"

// immutableFields are server-managed and never taken from an update payload.
var immutableFields = []string{"_id", "id", "createdAt", "updatedAt"}

// MergeDocument overlays partial fields onto doc through bson, so partial
// updates go through the same tag mapping as a stored document. Unknown keys
// fall away on the unmarshal back into the schema struct, and immutable keys
// are stripped regardless of what the payload carried. Callers restore the
// identity and timestamp fields from the stored document afterwards.
func MergeDocument(doc any, fields map[string]any, merged any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}

	var asMap bson.M
	if err = bson.Unmarshal(raw, &asMap); err != nil {
		return err
	}

	for key, value := range fields {
		asMap[key] = value
	}

	for _, key := range immutableFields {
		delete(asMap, key)
	}

	raw, err = bson.Marshal(asMap)
	if err != nil {
		return err
	}

	return bson.Unmarshal(raw, merged)
}
