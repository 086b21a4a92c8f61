package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycleStage(t *testing.T) {
	tests := []struct {
		stage    string
		wantErr  bool
		inReview bool
	}{
		{stage: "workspace"},
		{stage: "workflow", inReview: true},
		{stage: "archived"},
		{stage: "withdrawn"},
		{stage: "Workflow", wantErr: true},
		{stage: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			s, err := NewLifecycleStage(tt.stage)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.stage, s.String())
			assert.Equal(t, tt.inReview, s.InReview())
		})
	}
}
