package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileCategory(t *testing.T) {
	tests := []struct {
		name     string
		fileType string
		want     FileCategory
	}{
		{"png image", "image/png", FileCategoryImage},
		{"jpeg image", "image/jpeg", FileCategoryImage},
		{"mp4 video", "video/mp4", FileCategoryVideo},
		{"mp3 audio", "audio/mpeg", FileCategoryAudio},
		{"pdf", "application/pdf", FileCategoryDocument},
		{"word", "application/msword", FileCategoryDocument},
		{"plain text", "text/plain", FileCategoryDocument},
		{"excel", "application/vnd.ms-excel", FileCategoryDocument},
		{"powerpoint", "application/vnd.ms-powerpoint", FileCategoryDocument},
		{"zip", "application/zip", FileCategoryOther},
		{"empty", "", FileCategoryOther},
		{"unknown", "application/x-custom", FileCategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileCategory(tt.fileType))
		})
	}
}
