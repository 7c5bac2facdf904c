// Package schemas embeds the JSON Schemas for the matcher's output documents.
package schemas

import "embed"

// Schema file names.
const (
	MatchResult      = "match_result.schema.json"
	ContactInfo      = "contact_info.schema.json"
	RankedCandidates = "ranked_candidates.schema.json"
	JobSpec          = "job_spec.schema.json"
)

// FS holds every *.schema.json in this directory.
//
//go:embed *.schema.json
var FS embed.FS
