package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/networkbook/networkbook/internal/model"
)

// Global JSON output flag
var jsonOutput bool

// Response is the standard JSON envelope for all CLI output.
type Response struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

// ErrorInfo contains structured error information.
type ErrorInfo struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Warning represents a non-fatal warning.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta contains metadata about the response.
type Meta struct {
	Count int    `json:"count,omitempty"`
	Book  string `json:"book,omitempty"`
}

// PersonJSON is a displayed person in JSON output.
type PersonJSON struct {
	Num             int      `json:"num"`
	Name            string   `json:"name"`
	Phones          []string `json:"phones"`
	Emails          []string `json:"emails"`
	Links           []string `json:"links"`
	Graduation      string   `json:"graduation,omitempty"`
	Courses         []string `json:"courses"`
	Specialisations []string `json:"specialisations"`
	Tags            []string `json:"tags"`
	Priority        string   `json:"priority,omitempty"`
}

func personsJSON(persons []model.Person) []PersonJSON {
	out := make([]PersonJSON, 0, len(persons))
	for _, n := range model.Number(persons) {
		p := n.Person
		pj := PersonJSON{
			Num:             n.Num,
			Name:            p.Name.String(),
			Phones:          p.Phones.Strings(),
			Emails:          p.Emails.Strings(),
			Links:           p.Links.Strings(),
			Courses:         p.Courses.Strings(),
			Specialisations: p.Specialisations.Strings(),
			Tags:            p.Tags.Strings(),
		}
		if p.Graduation != nil {
			pj.Graduation = p.Graduation.String()
		}
		if p.Priority != nil {
			pj.Priority = p.Priority.String()
		}
		out = append(out, pj)
	}
	return out
}

// outputJSON writes the response as indented JSON.
func outputJSON(w io.Writer, resp Response) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

// outputSuccess outputs a successful JSON response.
func outputSuccess(cmd *cobra.Command, data interface{}, meta *Meta) {
	outputJSON(cmd.OutOrStdout(), Response{
		OK:   true,
		Data: data,
		Meta: meta,
	})
}

// outputSuccessWithWarnings outputs a successful JSON response with warnings.
func outputSuccessWithWarnings(cmd *cobra.Command, data interface{}, warnings []Warning, meta *Meta) {
	outputJSON(cmd.OutOrStdout(), Response{
		OK:       true,
		Data:     data,
		Warnings: warnings,
		Meta:     meta,
	})
}

// outputError outputs an error JSON response.
func outputError(cmd *cobra.Command, info ErrorInfo) {
	outputJSON(cmd.OutOrStdout(), Response{OK: false, Error: &info})
}

// isJSONOutput returns true if JSON output is enabled.
func isJSONOutput() bool {
	return jsonOutput
}

// handleError handles an error appropriately based on output mode.
// In JSON mode, outputs a JSON error. In text mode, returns the error for Cobra.
func handleError(cmd *cobra.Command, code string, err error, suggestion string) error {
	if jsonOutput {
		outputError(cmd, ErrorInfo{Code: code, Message: err.Error(), Field: fieldOf(err), Suggestion: suggestion})
		return errSilent
	}
	return err
}

// handleErrorMsg handles an error message appropriately based on output mode.
func handleErrorMsg(cmd *cobra.Command, code, message, suggestion string) error {
	if jsonOutput {
		outputError(cmd, ErrorInfo{Code: code, Message: message, Suggestion: suggestion})
		return errSilent
	}
	if suggestion != "" {
		return fmt.Errorf("%s\n\n%s", message, suggestion)
	}
	return fmt.Errorf("%s", message)
}
