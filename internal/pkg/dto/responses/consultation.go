package responses

type Consultation struct {
	Transcript     string  `json:"transcript"`
	DoctorReply    string  `json:"doctor_reply"`
	ReplyAudioPath *string `json:"-"`
	ReplyAudioURL  *string `json:"reply_audio_url"`
}
