package report

import (
	"fmt"
	"strings"

	"github.com/sebsgrace/AI-Government-Bid-Evaluator/internal/types"
)

// promptPreamble frames the analyst role for the generative service.
const promptPreamble = `You are a procurement-integrity analyst reviewing a Philippine government infrastructure contract award. Using live web search, investigate the award described below and produce a narrative risk report.`

// promptMandate is the fixed four-part investigative mandate appended to
// every analysis prompt. The numbering is part of the contract with the
// report formatter: the service is asked to answer each part in order.
const promptMandate = `## Investigative Mandate

Investigate and report on all four of the following, in order:

1. Conflict of Interest: Search for familial, business, or political ties between the BAC members listed above and the owners, officers, or incorporators of the winning bidder.
2. Collusion Detection: Assess the bid amounts and inclusions for signs of bid rigging, such as complementary bidding, unusually close amounts, or rotation patterns among the listed bidders.
3. Bidder Performance History: Search for the winning bidder's track record on past government contracts, including delays, suspensions, blacklisting, or Commission on Audit findings.
4. Financial and Asset Red Flags: Search for disproportionate asset growth, shell-company indicators, or adverse financial disclosures connected to the winning bidder and its principals.

## Report Format

Write the report as plain text. Wrap each section heading in ** markers (for example **Conflict of Interest**). Use "- " for findings presented as bullet points. Use numbered lines (1., 2., ...) for sub-findings under a heading. Do not use any other markup.`

// BuildPrompt composes the single instruction document sent to the
// generative service. Everything the user entered is embedded verbatim.
func BuildPrompt(req Request) string {
	var sb strings.Builder

	sb.WriteString(promptPreamble)
	sb.WriteString("\n\n## Project\n\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", req.Project.Name))
	sb.WriteString(fmt.Sprintf("- Description: %s\n", req.Project.Description))
	sb.WriteString(fmt.Sprintf("- Approved Budget: %s\n", req.Project.BudgetDisplay()))
	sb.WriteString(fmt.Sprintf("- Location: %s\n", req.Project.Location))

	sb.WriteString("\n## Bidders (in submission order)\n\n")
	for i, b := range req.Bidders {
		sb.WriteString(fmt.Sprintf("%d. %s - Bid: %s", i+1, b.Name, types.FormatBidAmount(b.Amount)))
		if b.Inclusions != "" {
			sb.WriteString(fmt.Sprintf(" - Inclusions: %s", b.Inclusions))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n## Declared Winning Bidder\n\n%s\n", req.WinnerName))
	sb.WriteString(fmt.Sprintf("\n## Stated Reasoning for the Award\n\n%s\n", req.Reasoning))

	sb.WriteString("\n## Bids and Awards Committee\n\n")
	for _, m := range req.Members {
		sb.WriteString(fmt.Sprintf("- %s (%s)\n", m.Name, m.Designation))
	}

	sb.WriteString("\n")
	sb.WriteString(promptMandate)

	return sb.String()
}
