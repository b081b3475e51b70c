package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync/atomic"

	"github.com/automoto/strider/assets/animations"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
)

var (
	//go:embed all:data
	dataFS embed.FS

	// Data is the embedded asset tree rooted at data/.
	Data fs.FS = mustSub(dataFS, "data")
)

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to open embedded %s: %v", dir, err))
	}
	return sub
}

// ErrLoaderClosed is reported for loads issued after Close.
var ErrLoaderClosed = errors.New("assets: loader closed")

// Kind identifies what a load request produces.
type Kind int

const (
	KindModel Kind = iota
	KindClip
)

func (k Kind) String() string {
	if k == KindModel {
		return "model"
	}
	return "clip"
}

// Result is the completion of one load request. Exactly one of Model, Clip
// or Err is set.
type Result struct {
	Ticket uuid.UUID
	Kind   Kind
	Name   string // binding name for clips, model name otherwise
	Path   string
	Model  *animations.Model
	Clip   *animations.Clip
	Err    error
}

// Loader resolves model and clip descriptors on a background worker pool.
// Completions are collected with Poll, which never blocks.
type Loader struct {
	fsys    fs.FS
	pool    *ants.Pool
	results chan Result
	pending atomic.Int64
	closed  atomic.Bool
	done    chan struct{}
}

// NewLoader creates a loader reading from fsys with the given worker count.
func NewLoader(fsys fs.FS, workers int) (*Loader, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create load pool: %w", err)
	}
	return &Loader{
		fsys:    fsys,
		pool:    pool,
		results: make(chan Result, 64),
		done:    make(chan struct{}),
	}, nil
}

// LoadModel issues an asynchronous model load.
func (l *Loader) LoadModel(path string) uuid.UUID {
	return l.submit(KindModel, "", path)
}

// LoadClip issues an asynchronous clip load that will be bound under name.
func (l *Loader) LoadClip(name, path string) uuid.UUID {
	return l.submit(KindClip, name, path)
}

func (l *Loader) submit(kind Kind, name, path string) uuid.UUID {
	r := Result{Ticket: uuid.New(), Kind: kind, Name: name, Path: path}
	l.pending.Add(1)

	if l.closed.Load() {
		r.Err = ErrLoaderClosed
		l.deliver(r)
		return r.Ticket
	}

	// Submit blocks while every worker is busy; keep that off the caller.
	go func() {
		err := l.pool.Submit(func() {
			l.deliver(l.resolve(r))
		})
		if err != nil {
			r.Err = fmt.Errorf("submit %s %s: %w", kind, path, err)
			l.deliver(r)
		}
	}()
	return r.Ticket
}

// deliver hands r to Poll. A full buffer only delays delivery while the loader
// is open; after Close undeliverable results are dropped.
func (l *Loader) deliver(r Result) {
	select {
	case l.results <- r:
		return
	default:
	}
	go func() {
		select {
		case l.results <- r:
		case <-l.done:
			l.pending.Add(-1)
		}
	}()
}

func (l *Loader) resolve(r Result) (out Result) {
	out = r
	defer func() {
		if p := recover(); p != nil {
			out.Err = fmt.Errorf("load %s %s: panic: %v", r.Kind, r.Path, p)
		}
	}()

	data, err := fs.ReadFile(l.fsys, r.Path)
	if err != nil {
		out.Err = fmt.Errorf("load %s %s: %w", r.Kind, r.Path, err)
		return out
	}

	switch r.Kind {
	case KindModel:
		out.Model, err = animations.ParseModel(data)
		if err == nil {
			out.Name = out.Model.Name
		}
	case KindClip:
		out.Clip, err = animations.ParseClip(data)
	}
	if err != nil {
		out.Err = fmt.Errorf("load %s %s: %w", r.Kind, r.Path, err)
	}
	return out
}

// Poll returns every load that has completed since the last call. It returns
// nil when nothing is ready and never waits.
func (l *Loader) Poll() []Result {
	var done []Result
	for {
		select {
		case r := <-l.results:
			l.pending.Add(-1)
			if r.Err != nil {
				log.Printf("[assets] %s load failed (ticket=%s): %v", r.Kind, r.Ticket, r.Err)
			}
			done = append(done, r)
		default:
			return done
		}
	}
}

// Pending returns the number of issued loads not yet returned by Poll.
func (l *Loader) Pending() int {
	return int(l.pending.Load())
}

// Close stops accepting work. Loads already running still complete, but
// results that no longer fit the buffer are dropped.
func (l *Loader) Close() {
	if l.closed.Swap(true) {
		return
	}
	close(l.done)
	l.pool.Release()
}
