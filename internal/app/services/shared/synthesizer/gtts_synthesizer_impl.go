package synthesizer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"medisense-service/internal/app/contracts"
	"medisense-service/internal/pkg/constvars"
	"medisense-service/internal/pkg/exceptions"
	"medisense-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const ttsUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

type gttsSynthesizer struct {
	HTTPClient *http.Client
	BaseURL    string
	Language   string
	Log        *zap.Logger
}

// NewGTTSSynthesizer speaks through the public Google Translate TTS endpoint, normal speed.
func NewGTTSSynthesizer(baseURL, language string, logger *zap.Logger) contracts.SpeechSynthesizer {
	return &gttsSynthesizer{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Language:   language,
		Log:        logger,
	}
}

func (s *gttsSynthesizer) Synthesize(ctx context.Context, text, outputPath string) error {
	requestID := utils.GetRequestID(ctx)
	chunks := splitText(text, constvars.TTSMaxChunkLength)
	s.Log.Info("gttsSynthesizer.Synthesize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilePathKey, outputPath),
		zap.Int(constvars.LoggingTextLengthKey, len(text)),
		zap.Int(constvars.LoggingChunkCountKey, len(chunks)),
	)

	if len(chunks) == 0 {
		return exceptions.ErrSynthesisEmptyText(nil)
	}

	var audio bytes.Buffer
	for idx, chunk := range chunks {
		segment, err := s.fetchSegment(ctx, chunk, idx, len(chunks))
		if err != nil {
			s.Log.Error("gttsSynthesizer.Synthesize error fetching audio segment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int("chunk_index", idx),
				zap.Error(err),
			)
			return exceptions.ErrSynthesizeSpeech(err)
		}
		audio.Write(segment)
	}

	err := os.MkdirAll(filepath.Dir(outputPath), 0o755)
	if err != nil {
		return exceptions.ErrSynthesizeSpeech(err)
	}

	// Write to a sibling temp file first so readers never see a partial MP3.
	tempPath := outputPath + ".part"
	err = os.WriteFile(tempPath, audio.Bytes(), 0o644)
	if err != nil {
		return exceptions.ErrSynthesizeSpeech(err)
	}
	err = os.Rename(tempPath, outputPath)
	if err != nil {
		os.Remove(tempPath)
		return exceptions.ErrSynthesizeSpeech(err)
	}

	s.Log.Info("gttsSynthesizer.Synthesize succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFilePathKey, outputPath),
	)
	return nil
}

func (s *gttsSynthesizer) fetchSegment(ctx context.Context, chunk string, idx, total int) ([]byte, error) {
	query := url.Values{}
	query.Set("ie", "UTF-8")
	query.Set("q", chunk)
	query.Set("tl", s.Language)
	query.Set("client", "tw-ob")
	query.Set("ttsspeed", "1")
	query.Set("total", strconv.Itoa(total))
	query.Set("idx", strconv.Itoa(idx))
	query.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, s.BaseURL+"/translate_tts?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderUserAgent, ttsUserAgent)
	req.Header.Set(constvars.HeaderReferer, s.BaseURL+"/")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tts endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	segment, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(segment) == 0 {
		return nil, fmt.Errorf("tts endpoint returned an empty segment")
	}
	return segment, nil
}
