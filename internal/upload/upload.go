package upload

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// minAudioBytes rejects near-silent or empty recordings before spending a
// transcription call. The 2500-byte threshold is inclusive: exactly 2500
// proceeds.
const minAudioBytes = 2500

var (
	// ErrMissingFile is returned when the request carried no audio file.
	ErrMissingFile = errors.New("no audio file uploaded")

	// ErrTooSmall is returned when the uploaded file is below minAudioBytes.
	ErrTooSmall = errors.New("audio file too small, no speech expected")
)

// TranscriptionError wraps a failure from the transcription service so the
// boundary can surface the upstream status and message.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return "transcription failed: " + e.Err.Error()
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// Transcriber is the external speech-to-text capability.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, language string) (string, error)
}

// Manager owns the lifecycle of one uploaded audio blob per request: write it
// under a unique temporary name, rename it to carry an inferred extension,
// size-check it, transcribe it, and delete it on every exit path.
type Manager struct {
	dir string
	stt Transcriber
}

func NewManager(dir string, stt Transcriber) *Manager {
	return &Manager{dir: dir, stt: stt}
}

// ReceiveAndTranscribe runs the full upload lifecycle and returns the
// transcript text. Failures are ErrMissingFile, ErrTooSmall, or a
// *TranscriptionError; whatever temporary file exists is removed before
// returning, regardless of path taken.
func (m *Manager) ReceiveAndTranscribe(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrMissingFile
	}

	if err := os.MkdirAll(m.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Unique per request, so concurrent uploads never share a path.
	path := filepath.Join(m.dir, "upload_"+uuid.NewString())

	// Best-effort cleanup of whichever path the file currently lives at,
	// registered before the write so a partial write is removed too.
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("[Upload] Failed to remove temp file %s: %v", path, err)
		}
	}()

	if err := saveMultipartFile(file, path); err != nil {
		return "", fmt.Errorf("failed to save audio file: %w", err)
	}

	ext := InferExtension(file.Filename, file.Header.Get("Content-Type"))
	renamed := path + ext
	if err := os.Rename(path, renamed); err != nil {
		return "", fmt.Errorf("failed to rename audio file: %w", err)
	}
	path = renamed

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat audio file: %w", err)
	}
	if info.Size() < minAudioBytes {
		log.Printf("[Upload] Rejecting audio file: %d bytes (minimum %d)", info.Size(), minAudioBytes)
		return "", ErrTooSmall
	}

	log.Printf("[Upload] Transcribing %s (%d bytes)", path, info.Size())
	text, err := m.stt.Transcribe(ctx, path, "en")
	if err != nil {
		return "", &TranscriptionError{Err: err}
	}
	return text, nil
}

// InferExtension picks a file extension for the uploaded blob. The extension
// in the declared filename wins; otherwise the declared media type is matched
// by substring in a fixed priority order, defaulting to .wav. The order is a
// best-effort hint for the transcription service, not a content-type parser,
// and must stay stable.
func InferExtension(declaredName, mediaType string) string {
	if ext := strings.ToLower(filepath.Ext(declaredName)); ext != "" {
		return ext
	}

	mt := strings.ToLower(mediaType)
	switch {
	case strings.Contains(mt, "wav"):
		return ".wav"
	case strings.Contains(mt, "mp3"), strings.Contains(mt, "mpeg"):
		return ".mp3"
	case strings.Contains(mt, "mp4"), strings.Contains(mt, "m4a"):
		return ".m4a"
	case strings.Contains(mt, "ogg"):
		return ".ogg"
	case strings.Contains(mt, "webm"):
		return ".webm"
	default:
		return ".wav"
	}
}

/* helper */
func saveMultipartFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = out.ReadFrom(src)
	return err
}
