package constvars

// Fixed doctor prompt; the patient's transcript is appended to it verbatim.
const DoctorSystemPrompt = `You have to act as a professional doctor, I know you are not but this is for learning purpose. 
What's in this image? Do you find anything wrong with it medically? 
If you make a differential, suggest some remedies for them. Do not add any numbers or special characters in 
your response. Your response should be in one long paragraph. Also always answer as if you are answering to a real person.
Do not say 'In the image I see' but say 'With what I see, I think you have ....'
Don't respond as an AI model in markdown, your answer should mimic that of an actual doctor not an AI bot, 
Keep your answer concise (max 2 sentences). No preamble, start your answer right away please.`

// User-visible fallbacks. The consultation never fails, it degrades to these.
const (
	FallbackCouldNotCaptureVoice = "Sorry, I could not capture your voice. Please try again."
	FallbackCouldNotTranscribe   = "Sorry, I could not transcribe the audio."
	FallbackNoImageProvided      = "No image provided for me to analyze."
	FallbackCouldNotEncodeImage  = "Sorry, I could not encode the image."
	FallbackCouldNotAnalyzeImage = "Sorry, I could not analyze the image."
)

const (
	ProviderGroq   = "groq"
	ProviderGoogle = "google"
	ProviderGemini = "gemini"
)

const (
	DefaultGroqBaseURL         = "https://api.groq.com/openai/v1"
	DefaultTranscriptionModel  = "whisper-large-v3"
	DefaultVisionModel         = "meta-llama/llama-4-scout-17b-16e-instruct"
	DefaultGeminiVisionModel   = "gemini-1.5-flash"
	DefaultSpeechLanguageCode  = "en-US"
	DefaultImageMIMEType       = "image/jpeg"
	DefaultTranscriptionLang   = "en"
	DefaultTTSBaseURL          = "https://translate.google.com"
	DefaultTTSLanguage         = "en"
	TTSMaxChunkLength          = 100
	ReplyAudioFilePrefix       = "reply-"
	ReplyAudioFileExtension    = ".mp3"
	UploadsDirName             = "uploads"
	MultipartFieldAudio        = "audio"
	MultipartFieldImage        = "image"
	URLParamFileName           = "fileName"
	ConsultationEventCompleted = "consultation.completed"
)
