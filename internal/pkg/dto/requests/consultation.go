package requests

type Consultation struct {
	AudioPath string
	ImagePath string
	Username  string
	SessionID string
}

type Transcription struct {
	AudioPath string
	Model     string
	Language  string
}

type ImageAnalysis struct {
	Prompt       string
	Model        string
	EncodedImage string
	MIMEType     string
}

type ArchiveAudio struct {
	FilePath   string
	ObjectName string
}
