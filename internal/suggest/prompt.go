package suggest

import "fmt"

// canonicalCategories are offered to the model as guidance. The model is
// not constrained to them; a returned label may match none of the user's
// categories.
var canonicalCategories = []string{
	"Groceries",
	"Dining",
	"Transportation",
	"Entertainment",
	"Utilities",
	"Rent",
	"Shopping",
	"Travel",
	"Healthcare",
	"Education",
	"Personal Care",
	"Miscellaneous",
}

const systemPrompt = "You are an expert financial advisor specializing in expense categorization. " +
	"You MUST respond with ONLY a valid JSON object. Do not include any explanatory text, " +
	"markdown formatting, or commentary before or after the JSON. " +
	"Start your response directly with { and end with }."

// buildPrompt creates the fixed instructional template for a transaction
// description.
func buildPrompt(description string) string {
	categoryList := ""
	for _, cat := range canonicalCategories {
		categoryList += fmt.Sprintf("- %s\n", cat)
	}

	return fmt.Sprintf(`Given the following transaction description, suggest the most appropriate expense category.

Transaction Description: %s

Consider common expense categories such as:
%s
Provide a confidence score between 0 and 1 for your suggestion.

Respond with this exact JSON shape:
{"suggestedCategory": "<category name>", "confidenceScore": <0.0-1.0>}`,
		description,
		categoryList)
}
