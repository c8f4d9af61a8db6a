// SPDX-License-Identifier: MIT

// Package report renders an analysis.Report for people and programs.
//
// Formats:
//
//   - text      plain text for terminals.
//   - markdown  the same content with Markdown markup.
//   - html      the markdown rendered as a complete HTML page (gomarkdown).
//   - json      the Report's JSON encoding, indented.
//
// Text, markdown and html share one layout: the mode title, the labeled
// parameter sets (P1..Pn, F1..Fm, ∅ for empty), the bordered matrix block,
// the notices, then for a completed run the maximum deficit, at most
// SubsetLimit maximal subsets followed by "… and N more subset(s)", χ(J),
// the status and the verdict message.
package report
