//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateJobRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request CreateJobRequest
		wantErr string
	}{
		{
			name:    "valid request",
			request: CreateJobRequest{Title: "Backend Engineer", Description: "Build APIs", Skills: []string{"Go"}},
		},
		{
			name:    "missing title",
			request: CreateJobRequest{Description: "Build APIs", Skills: []string{"Go"}},
			wantErr: "Title",
		},
		{
			name:    "blank title",
			request: CreateJobRequest{Title: "   ", Description: "Build APIs", Skills: []string{"Go"}},
			wantErr: "notblank",
		},
		{
			name:    "title too long",
			request: CreateJobRequest{Title: strings.Repeat("a", 101), Description: "Build APIs", Skills: []string{"Go"}},
			wantErr: "max",
		},
		{
			name:    "description too long",
			request: CreateJobRequest{Title: "Engineer", Description: strings.Repeat("a", 1001), Skills: []string{"Go"}},
			wantErr: "max",
		},
		{
			name:    "no skills",
			request: CreateJobRequest{Title: "Engineer", Description: "Build APIs", Skills: []string{}},
			wantErr: "min",
		},
		{
			name:    "blank skill",
			request: CreateJobRequest{Title: "Engineer", Description: "Build APIs", Skills: []string{"Go", " "}},
			wantErr: "notblank",
		},
		{
			name:    "unknown status",
			request: CreateJobRequest{Title: "Engineer", Description: "Build APIs", Skills: []string{"Go"}, Status: "archived"},
			wantErr: "oneof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCreateJobRequest_ValidateDefaults(t *testing.T) {
	req := CreateJobRequest{Title: "Engineer", Description: "Build APIs", Skills: []string{" Go ", "SQL"}}
	require.NoError(t, req.Validate())

	assert.Equal(t, JobStatusOpen, req.Status)
	assert.Equal(t, []string{"Go", "SQL"}, req.Skills)
	assert.Equal(t, JobSpec{Title: "Engineer", Description: "Build APIs", Skills: []string{"Go", "SQL"}}, req.Spec())
}

func TestUpdateJobRequest_Validate(t *testing.T) {
	require.NoError(t, (&UpdateJobRequest{}).Validate())
	require.NoError(t, (&UpdateJobRequest{Status: ptr(JobStatusClosed)}).Validate())
	require.Error(t, (&UpdateJobRequest{Title: ptr("")}).Validate())
	require.Error(t, (&UpdateJobRequest{Status: ptr("gone")}).Validate())
}
