package gamearena

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"github.com/gamearena/gamearena/internal/config"
	"github.com/gamearena/gamearena/internal/display"
	"github.com/gamearena/gamearena/internal/input"
)

// maxDrawables is the most drawables one arena will hold. Adding past
// the cap logs a capacity message and exits the arena.
const maxDrawables = 100000

// Arena lifecycle states. Exit, or the capacity cap, moves a running
// arena to exiting; the loop observes that at the top of its next tick
// and stops. The progression is one way.
const (
	stateRunning int32 = iota
	stateExiting
	stateStopped
)

// Arena is a window that shows drawables and reports keyboard and
// mouse state. Create one with New, start your game logic on its own
// goroutine, then call Run from main.
//
// Adding, removing and clearing drawables is safe from any goroutine
// while the arena runs. Mutating an already-added drawable's fields is
// not synchronized against painting: a frame may show a half-updated
// position. For a teaching game loop that is harmless.
type Arena struct {
	// mu guards the draw-list and the frame buffer. A paint pass holds
	// it for the whole composition step, so Add and Remove may block
	// briefly behind an in-progress frame.
	mu   sync.Mutex
	list drawList

	width  int
	height int

	pix             *gg.Pixmap
	dc              *gg.Context
	background      gg.RGBA
	backgroundImage *gg.ImageBuf

	state atomic.Int32

	// in is overwritten by the loop each tick and read by the input
	// methods without locking. Readers may see values one tick old.
	in input.State

	driver    display.Driver
	title     string
	tps       int
	vsync     bool
	ownWindow bool

	done     chan struct{}
	stopOnce sync.Once
}

type options struct {
	configFile string
	title      *string
	background *string
	tps        *int
	vsync      *bool
	ownWindow  bool
}

// Option configures an arena at construction time. Options always win
// over values read from the config file.
type Option func(*options)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = &title }
}

// WithBackgroundColour sets the colour the frame is cleared to before
// anything is drawn.
func WithBackgroundColour(colour string) Option {
	return func(o *options) { o.background = &colour }
}

// WithTicksPerSecond sets the render loop rate. The default is 100.
func WithTicksPerSecond(tps int) Option {
	return func(o *options) { o.tps = &tps }
}

// WithVsync controls whether frame presentation waits for the display.
func WithVsync(enabled bool) Option {
	return func(o *options) { o.vsync = &enabled }
}

// WithConfigFile reads settings from path instead of the usual
// locations. A file that cannot be read leaves the defaults in place.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithOwnWindow(false) stops the arena from opening its own window, for
// embedding into a host application. See Arena.Game.
func WithOwnWindow(own bool) Option {
	return func(o *options) { o.ownWindow = own }
}

// New creates an arena width by height pixels in size. Settings come
// from gamearena.toml, or the file named by the GAMEARENA_CONFIG
// environment variable, overridden by any options given here. The
// window does not appear until Run is called.
func New(width, height int, opts ...Option) *Arena {
	o := options{ownWindow: true}
	for _, opt := range opts {
		opt(&o)
	}

	var cfg config.Config
	var err error
	if o.configFile != "" {
		cfg, err = config.LoadFile(o.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		Logger().Warn("config not loaded, using defaults", "error", err)
	}
	if o.title != nil {
		cfg.Title = *o.title
	}
	if o.background != nil {
		cfg.BackgroundColour = *o.background
	}
	if o.tps != nil {
		cfg.TicksPerSecond = *o.tps
	}
	if o.vsync != nil {
		cfg.Vsync = *o.vsync
	}

	a := &Arena{
		width:      width,
		height:     height,
		background: parseColour(cfg.BackgroundColour),
		title:      cfg.Title,
		tps:        cfg.TicksPerSecond,
		vsync:      cfg.Vsync,
		ownWindow:  o.ownWindow,
		driver:     newDriver(),
		done:       make(chan struct{}),
	}
	if cfg.BackgroundImage != "" {
		a.SetBackgroundImage(cfg.BackgroundImage)
	}
	return a
}

// Run opens the window and drives the arena until Exit is called, the
// drawable cap is hit, or the window is closed. It must be called from
// the main goroutine. Run returns once the arena has stopped.
func (a *Arena) Run() error {
	if !a.ownWindow {
		return errors.New("arena does not own a window: embed it with Game instead of calling Run")
	}
	a.driver.SetWindowTitle(a.title)
	a.driver.SetWindowSize(a.width, a.height)
	a.driver.SetTicksPerSecond(a.tps)
	a.driver.SetVsync(a.vsync)

	err := a.driver.Run(arenaLoop{a})
	a.markStopped()
	return err
}

// Exit asks the arena to close. The render loop notices at the top of
// its next tick, stops painting, and lets Run return. Exit is safe to
// call from any goroutine and any number of times; it cannot be
// undone.
func (a *Arena) Exit() {
	a.state.CompareAndSwap(stateRunning, stateExiting)
}

// Done returns a channel that is closed once the arena has fully
// stopped, for goroutines that outlive the game loop.
func (a *Arena) Done() <-chan struct{} {
	return a.done
}

// Pause sleeps for 20 milliseconds. Game loops call it once per
// iteration for simple pacing.
func (a *Arena) Pause() {
	time.Sleep(20 * time.Millisecond)
}

func (a *Arena) markStopped() {
	a.state.Store(stateStopped)
	a.stopOnce.Do(func() { close(a.done) })
}

// Add puts d on the draw-list. Lower layers paint first; drawables on
// the same layer paint in the order they arrived. Once the arena holds
// maxDrawables items, adding another logs a capacity message, begins
// exiting, and every later mutation is dropped.
func (a *Arena) Add(d Drawable) {
	if a.state.Load() != stateRunning {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.list.len() >= maxDrawables {
		Logger().Error("only 100000 objects supported per game arena")
		a.Exit()
		return
	}
	a.list.insert(d)
}

// Remove takes d off the draw-list. Removing a drawable that was never
// added is a no-op.
func (a *Arena) Remove(d Drawable) {
	if a.state.Load() != stateRunning {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.list.remove(d)
}

// ClearGameArena removes every drawable at once.
func (a *Arena) ClearGameArena() {
	if a.state.Load() != stateRunning {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.list.clear()
}

// AddBall adds b to the arena. It appears from the next frame.
func (a *Arena) AddBall(b *Ball) { a.Add(b) }

// AddRectangle adds r to the arena. It appears from the next frame.
func (a *Arena) AddRectangle(r *Rectangle) { a.Add(r) }

// AddLine adds l to the arena. It appears from the next frame.
func (a *Arena) AddLine(l *Line) { a.Add(l) }

// AddText adds t to the arena. It appears from the next frame.
func (a *Arena) AddText(t *Text) { a.Add(t) }

// RemoveBall removes b from the arena.
func (a *Arena) RemoveBall(b *Ball) { a.Remove(b) }

// RemoveRectangle removes r from the arena.
func (a *Arena) RemoveRectangle(r *Rectangle) { a.Remove(r) }

// RemoveLine removes l from the arena.
func (a *Arena) RemoveLine(l *Line) { a.Remove(l) }

// RemoveText removes t from the arena.
func (a *Arena) RemoveText(t *Text) { a.Remove(t) }

// GetArenaWidth returns the width of the arena in pixels.
func (a *Arena) GetArenaWidth() int {
	w, _ := a.Size()
	return w
}

// GetArenaHeight returns the height of the arena in pixels.
func (a *Arena) GetArenaHeight() int {
	_, h := a.Size()
	return h
}

// Size returns the arena dimensions in pixels.
func (a *Arena) Size() (width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
}

// SetSize resizes the arena. The frame buffer is rebuilt on the next
// paint, and a window the arena owns resizes with it.
func (a *Arena) SetSize(width, height int) {
	a.mu.Lock()
	a.width = width
	a.height = height
	a.mu.Unlock()
	a.driver.SetWindowSize(width, height)
}

// SetBackgroundColour changes the colour behind every drawable from
// the next frame.
func (a *Arena) SetBackgroundColour(colour string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.background = parseColour(colour)
}

// SetBackgroundImage loads an image file and shows it scaled to the
// arena bounds behind every drawable. A file that cannot be read or
// decoded logs a warning and leaves the background as it was.
func (a *Arena) SetBackgroundImage(path string) {
	img, err := loadImage(path)
	if err != nil {
		Logger().Warn("background image not loaded", "path", path, "error", err)
		return
	}
	buf := gg.ImageBufFromImage(img)
	a.mu.Lock()
	a.backgroundImage = buf
	a.mu.Unlock()
}

// tick runs once per loop iteration: it observes a pending exit and
// otherwise refreshes the input snapshot.
func (a *Arena) tick() error {
	if a.state.Load() != stateRunning {
		a.markStopped()
		return display.ErrTerminated
	}
	input.Poll(&a.in)
	return nil
}

// paint composes the current frame under the lock, then blits it
// outside the lock. Composing off-screen makes each frame appear
// atomic to the viewer; the blit only touches the already-composited
// buffer, so it does not need the lock.
func (a *Arena) paint(screen display.Screen) {
	a.mu.Lock()
	if a.pix == nil || a.pix.Width() != a.width || a.pix.Height() != a.height {
		a.pix = gg.NewPixmap(a.width, a.height)
		a.dc = gg.NewContext(a.width, a.height, gg.WithPixmap(a.pix))
	}
	if a.state.Load() == stateRunning {
		a.dc.ClearWithColor(a.background)
		if a.backgroundImage != nil {
			a.dc.DrawImageEx(a.backgroundImage, gg.DrawImageOptions{
				DstWidth:  float64(a.width),
				DstHeight: float64(a.height),
			})
		}
		for _, d := range a.list.items {
			d.Draw(a.dc)
		}
	}
	pix := a.pix
	a.mu.Unlock()

	screen.Blit(pix.Data(), pix.Width(), pix.Height())
}

// arenaLoop adapts an Arena to display.Loop so the loop methods stay
// off the public API.
type arenaLoop struct {
	arena *Arena
}

var _ display.Loop = arenaLoop{}

func (l arenaLoop) Tick() error {
	return l.arena.tick()
}

func (l arenaLoop) Paint(screen display.Screen) {
	l.arena.paint(screen)
}

func (l arenaLoop) Size() (int, int) {
	return l.arena.Size()
}
