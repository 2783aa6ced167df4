package utils

import (
	"fmt"
	"medisense-service/internal/pkg/constvars"
	"path/filepath"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateReplyAudioFileName() string {
	return fmt.Sprintf("%s%s%s", constvars.ReplyAudioFilePrefix, uuid.New().String(), constvars.ReplyAudioFileExtension)
}

func GenerateUploadFileName(extension string) string {
	return uuid.New().String() + extension
}

// IsReplyAudioFileName accepts only names produced by GenerateReplyAudioFileName.
func IsReplyAudioFileName(fileName string) bool {
	if fileName != filepath.Base(fileName) {
		return false
	}
	ext := filepath.Ext(fileName)
	if ext != constvars.ReplyAudioFileExtension {
		return false
	}
	prefixLen := len(constvars.ReplyAudioFilePrefix)
	if len(fileName) <= prefixLen+len(ext) || fileName[:prefixLen] != constvars.ReplyAudioFilePrefix {
		return false
	}
	_, err := uuid.Parse(fileName[prefixLen : len(fileName)-len(ext)])
	return err == nil
}
