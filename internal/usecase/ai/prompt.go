package ai

import (
	"fmt"
	"strings"
)

// Top-level keys the model must return
const (
	KeySummary     = "summary"
	KeyObjections  = "objections"
	KeyActionItems = "action_items"
)

// BuildPrompt embeds the verbatim transcript into the analysis instructions.
func BuildPrompt(transcript string) string {
	return strings.Join([]string{
		"You are an expert assistant. Your task is to analyze the following meeting transcript and provide a response ONLY in a valid JSON format.",
		"",
		fmt.Sprintf("The JSON object MUST have these exact top-level keys: %q, %q, %q.", KeySummary, KeyObjections, KeyActionItems),
		outputContract(),
		"",
		"It is critical that the final output is ONLY the JSON object and that all keys are present.",
		"",
		"Here is the transcript:",
		"---",
		transcript,
		"---",
	}, "\n")
}

func outputContract() string {
	return strings.Join([]string{
		fmt.Sprintf("- %q: A concise summary of the meeting.", KeySummary),
		fmt.Sprintf("- %q: A list of objects, where each object has a \"point\" and a \"resolution\". If no objections are found, this MUST be an empty list: [].", KeyObjections),
		fmt.Sprintf("- %q: A list of strings. If no action items are found, this MUST be an empty list: [].", KeyActionItems),
	}, "\n")
}
