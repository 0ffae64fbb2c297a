package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/levels"
)

const promptHint = "Enter confirm  Esc cancel  .json saves text, any other extension msgpack"

// Prompt is a modal one-line path input with a caret. A rejected path keeps
// the prompt open and shows why.
type Prompt struct {
	open     bool
	label    string
	buf      []rune
	caret    int
	err      string
	validate func(string) error
	onEnter  func(string)
	typed    []rune
}

func NewPrompt() *Prompt { return &Prompt{} }

func (p *Prompt) IsOpen() bool { return p.open }

// Open shows the prompt. validate may be nil.
func (p *Prompt) Open(label, initial string, validate func(string) error, onEnter func(string)) {
	p.open = true
	p.label = label
	p.buf = []rune(initial)
	p.caret = len(p.buf)
	p.err = ""
	p.validate = validate
	p.onEnter = onEnter
}

func (p *Prompt) Close() {
	*p = Prompt{typed: p.typed[:0]}
}

func (p *Prompt) Value() string { return strings.TrimSpace(string(p.buf)) }

func (p *Prompt) insert(rs ...rune) {
	for _, r := range rs {
		if r < ' ' {
			continue
		}
		p.buf = append(p.buf[:p.caret], append([]rune{r}, p.buf[p.caret:]...)...)
		p.caret++
		p.err = ""
	}
}

func (p *Prompt) backspace() {
	if p.caret == 0 {
		return
	}
	p.buf = append(p.buf[:p.caret-1], p.buf[p.caret:]...)
	p.caret--
	p.err = ""
}

func (p *Prompt) moveCaret(d int) {
	p.caret = max(0, min(len(p.buf), p.caret+d))
}

// submit validates the value and hands it to the callback. It reports
// whether the prompt closed.
func (p *Prompt) submit() bool {
	v := p.Value()
	if p.validate != nil {
		if err := p.validate(v); err != nil {
			p.err = err.Error()
			return false
		}
	}
	fn := p.onEnter
	p.Close()
	if fn != nil {
		fn(v)
	}
	return true
}

// Update consumes typing while open and reports whether it did, so the
// editor skips its own shortcuts.
func (p *Prompt) Update() bool {
	if !p.open {
		return false
	}
	p.typed = ebiten.AppendInputChars(p.typed[:0])
	p.insert(p.typed...)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.Close()
		return false
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return !p.submit()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		p.backspace()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		p.moveCaret(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		p.moveCaret(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		p.moveCaret(-len(p.buf))
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		p.moveCaret(len(p.buf))
	}
	return true
}

func (p *Prompt) Draw(screen *ebiten.Image) {
	if !p.open {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	top := float32(sh/2 - 32)
	vector.DrawFilledRect(screen, 0, top, float32(sw), 64, color.RGBA{A: 0xd0}, false)

	line := p.label + " " + string(p.buf[:p.caret]) + "|" + string(p.buf[p.caret:])
	ebitenutil.DebugPrintAt(screen, line, 16, sh/2-24)
	if p.err != "" {
		vector.DrawFilledRect(screen, 12, float32(sh/2-4), 4, 12, color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}, false)
		ebitenutil.DebugPrintAt(screen, p.err, 24, sh/2-6)
	} else {
		ebitenutil.DebugPrintAt(screen, promptHint, 16, sh/2+12)
	}
}

var errEmptyPath = errors.New("enter a file name")

// validateSavePath accepts any file path that is not a directory.
func validateSavePath(path string) error {
	if path == "" {
		return errEmptyPath
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return fmt.Errorf("%s is a directory", path)
	}
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

// validateOpenPath requires an existing file that decodes as a level.
func validateOpenPath(path string) error {
	if err := validateSavePath(path); err != nil {
		return err
	}
	if _, err := levels.ReadFile(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", filepath.Base(path), err)
	}
	return nil
}
