package models

import "time"

type ConsultationEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id"`
	Username      string    `json:"username,omitempty"`
	HasAudio      bool      `json:"has_audio"`
	HasImage      bool      `json:"has_image"`
	HasReplyAudio bool      `json:"has_reply_audio"`
	ReplyAudioKey string    `json:"reply_audio_key,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
