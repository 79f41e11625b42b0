package run

import (
	"encoding/json"
	"fmt"

	"github.com/nestlint/nestlint/pkg/analyze"
	"github.com/nestlint/nestlint/pkg/sarif"
)

const ruleNestedComponent = "nested-component"

// outputSARIF writes findings to stdout in SARIF format.
func (c *Controller) outputSARIF(findings []*analyze.Finding) error {
	log := sarif.Log{
		Schema:  sarif.SchemaURI,
		Version: sarif.Version,
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "nestlint",
						InformationURI: "https://github.com/nestlint/nestlint",
						Rules: []sarif.Rule{
							{
								ID: ruleNestedComponent,
								ShortDescription: sarif.Message{
									Text: "Component is defined inside another function",
								},
								FullDescription: &sarif.Message{
									Text: "A component defined inside another function is recreated on every render, so its state is reset and its DOM is remounted.",
								},
							},
						},
					},
				},
				Results: buildSARIFResults(findings),
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func buildSARIFResults(findings []*analyze.Finding) []sarif.Result {
	results := make([]sarif.Result, 0, len(findings))
	for _, f := range findings {
		results = append(results, sarif.Result{
			RuleID:  ruleNestedComponent,
			Level:   "warning",
			Message: sarif.Message{Text: fmt.Sprintf("Component is defined inside %s", f.ParentName)},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: f.FilePath,
						},
						Region: sarif.Region{
							StartLine: f.Line,
							Snippet:   &sarif.Snippet{Text: f.Code},
						},
					},
				},
			},
		})
	}
	return results
}
