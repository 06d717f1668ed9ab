// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
	"fmt"
)

// PrintJSON pretty-prints any Go value as indented JSON to stdout.
// Debug aid; values json.MarshalIndent cannot handle print an error
// message instead.
func PrintJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		fmt.Println("Error marshalling the JSON:", err)
		return
	}

	fmt.Println(string(out))
}
