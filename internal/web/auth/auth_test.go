package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	tests := []struct {
		name           string
		currentUserID  int64
		resourceUserID int64
		want           bool
	}{
		{
			name:           "owner",
			currentUserID:  7,
			resourceUserID: 7,
			want:           true,
		},
		{
			name:           "different user",
			currentUserID:  7,
			resourceUserID: 8,
			want:           false,
		},
		{
			name:           "anonymous user",
			currentUserID:  0,
			resourceUserID: 7,
			want:           false,
		},
		{
			name:           "anonymous user and unowned resource",
			currentUserID:  0,
			resourceUserID: 0,
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOwner(tt.currentUserID, tt.resourceUserID))
		})
	}
}
