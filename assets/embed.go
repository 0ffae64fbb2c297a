package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/platformer/obj"
)

const SampleRate = 44100

// Dir is checked for loose override files before the embedded copies.
var Dir = "assets"

//go:embed sounds/*.wav
var assetsFS embed.FS

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on first
// use.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadFile loads an asset by assets-relative path, preferring a file on disk.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return assetsFS.ReadFile(clean)
}

// LoadSound decodes the effect for s into 16-bit stereo PCM at SampleRate.
func LoadSound(s obj.Sound) ([]byte, error) {
	path := "sounds/" + string(s) + ".wav"
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	return pcm, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
