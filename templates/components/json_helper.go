package components

import (
	"encoding/json"
	"log"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ERROR] Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}
