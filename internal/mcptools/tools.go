// Package mcptools exposes resume scoring as Model Context Protocol tools.
package mcptools

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/jonathan/candidate-matcher/internal/ranking"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// ServerName identifies the matcher to MCP clients.
const ServerName = "candidate-matcher"

// ScoreMatchInput is the input for the score_match tool.
type ScoreMatchInput struct {
	Resume         string   `json:"resume" jsonschema:"Plain text of the resume to score"`
	JobDescription string   `json:"job_description,omitempty" jsonschema:"Free-text job description used for text similarity"`
	Skills         []string `json:"skills,omitempty" jsonschema:"Required skills of the job, e.g. Go, PostgreSQL"`
}

// ExtractContactInput is the input for the extract_contact tool.
type ExtractContactInput struct {
	Resume string `json:"resume" jsonschema:"Plain text of the resume"`
	Name   string `json:"name,omitempty" jsonschema:"Known candidate name; overrides the heuristic"`
	Email  string `json:"email,omitempty" jsonschema:"Known candidate email; overrides the heuristic"`
}

var errResumeRequired = errors.New("resume is required")

// NewServer returns an MCP server with every matcher tool registered.
func NewServer(version string, n *parsing.Normalizer) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)
	Register(server, n)
	return server
}

// Register adds score_match and extract_contact to server. A nil normalizer
// uses the default English one.
func Register(server *mcp.Server, n *parsing.Normalizer) {
	if n == nil {
		n = parsing.DefaultNormalizer()
	}
	registerScoreMatch(server, n)
	registerExtractContact(server)
}

func registerScoreMatch(server *mcp.Server, n *parsing.Normalizer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_match",
		Description: "Score a resume against a job. Returns TF-IDF text similarity, skill match and experience sub-scores (0-100), the matched skills and a weighted composite score (0-100).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input ScoreMatchInput) (*mcp.CallToolResult, types.MatchResult, error) {
		if strings.TrimSpace(input.Resume) == "" {
			return nil, types.MatchResult{}, errResumeRequired
		}
		skills := make([]string, 0, len(input.Skills))
		for _, s := range input.Skills {
			if s = strings.TrimSpace(s); s != "" {
				skills = append(skills, s)
			}
		}
		return nil, ranking.Score(n, input.Resume, input.JobDescription, skills), nil
	})
}

func registerExtractContact(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_contact",
		Description: "Extract the candidate name (first non-empty line) and email (first email address) from resume text. Supplied name or email take precedence.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input ExtractContactInput) (*mcp.CallToolResult, types.ContactInfo, error) {
		if strings.TrimSpace(input.Resume) == "" && (input.Name == "" || input.Email == "") {
			return nil, types.ContactInfo{}, errResumeRequired
		}
		return nil, parsing.ResolveContact(input.Resume, input.Name, input.Email), nil
	})
}
