package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/prodify/internal/catalog"
	"github.com/llehouerou/prodify/internal/keymap"
	"github.com/llehouerou/prodify/internal/playback"
	"github.com/llehouerou/prodify/internal/state"
	"github.com/llehouerou/prodify/internal/ui/tracklist"
)

const (
	// DefaultSearchDebounce is the idle time before the search input is sent to the catalog.
	DefaultSearchDebounce = 500 * time.Millisecond

	// volumeStep is the change applied by the +/- keys.
	volumeStep = 0.05
)

// PreviewNotifier announces a newly bound track on the desktop.
type PreviewNotifier interface {
	Show(t catalog.Track) error
}

// Options holds the collaborators of the storefront model.
type Options struct {
	Catalog        catalog.Source
	Playback       playback.Service
	State          state.Interface
	Notifier       PreviewNotifier // optional
	Logger         *zap.Logger     // optional
	SearchDebounce time.Duration   // 0 uses DefaultSearchDebounce
	Now            func() time.Time
}

// Model is the root application model.
type Model struct {
	catalog  catalog.Source
	playback playback.Service
	stateMgr state.Interface
	notifier PreviewNotifier
	logger   *zap.Logger
	sub      *playback.Subscription
	now      func() time.Time

	keys       *keymap.Resolver
	searchKeys *keymap.Resolver

	Tracks     tracklist.Model
	Search     textinput.Model
	SearchMode bool

	// searchVersion increments on every keystroke; loadedVersion is the
	// version whose results are listed.
	searchVersion  int
	loadedVersion  int
	searchDebounce time.Duration
	Loading        bool

	Snapshot playback.Snapshot
	ErrorMsg string
	Width    int
	Height   int
}

// New creates the model and subscribes to the playback controller.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := opts.SearchDebounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "title, genre:trap, mood:dark, bpm:90-120, price:-30"
	search.CharLimit = 120

	tracks := tracklist.New()
	tracks.SetFocused(true)

	return Model{
		catalog:        opts.Catalog,
		playback:       opts.Playback,
		stateMgr:       opts.State,
		notifier:       opts.Notifier,
		logger:         logger,
		sub:            opts.Playback.Subscribe(),
		now:            now,
		keys:           keymap.NewResolver(keymap.Bindings, keymap.ContextGlobal, keymap.ContextPlayback),
		searchKeys:     keymap.NewResolver(keymap.Bindings, keymap.ContextSearch),
		Tracks:         tracks,
		Search:         search,
		searchDebounce: debounce,
		Loading:        true,
		Snapshot:       opts.Playback.Snapshot(),
	}
}

// Init loads the full catalog and starts listening to the controller.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		SearchCmd(m.catalog, m.searchVersion, ""),
		WatchServiceEvents(m.sub),
	)
}
