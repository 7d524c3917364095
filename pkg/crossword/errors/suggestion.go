package errors

import (
	"fmt"
	"strings"
)

// SuggestFieldName suggests possible field names when an unknown field is used.
// It uses Levenshtein distance to find similar field names.
func SuggestFieldName(unknown string, validFields []string) string {
	if len(validFields) == 0 {
		return ""
	}

	// Find the closest match
	minDistance := 1000
	var bestMatch string

	for _, field := range validFields {
		dist := levenshteinDistance(strings.ToLower(unknown), strings.ToLower(field))
		if dist < minDistance {
			minDistance = dist
			bestMatch = field
		}
	}

	// Only suggest if the distance is reasonable
	if minDistance < 3 {
		return fmt.Sprintf("Did you mean '%s'?", bestMatch)
	}

	return fmt.Sprintf("Valid fields: %s", strings.Join(validFields, ", "))
}

// SuggestMissingField suggests adding a required field.
func SuggestMissingField(fieldName string, exampleValue string) string {
	if exampleValue != "" {
		return fmt.Sprintf("Add '%s: %s' to the definition", fieldName, exampleValue)
	}
	return fmt.Sprintf("Add '%s' field to the definition", fieldName)
}

// SuggestClueShape describes the expected shape of a clue string.
func SuggestClueShape() string {
	return `Write clues as "LabelText.ClueText(LengthText)", e.g. "3. Red or green fruit (5)"`
}

// SuggestSolutionLength explains how a solution's length is measured.
func SuggestSolutionLength(expected int) string {
	return fmt.Sprintf("Provide exactly %d letters; spaces and punctuation are ignored", expected)
}

// levenshteinDistance computes the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // Deletion
				matrix[i][j-1]+1,      // Insertion
				matrix[i-1][j-1]+cost, // Substitution
			)
		}
	}

	return matrix[len1][len2]
}
