package properties

import (
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/props/pkg/errors"
	"github.com/arthur-debert/props/pkg/logging"
	"github.com/rs/zerolog"
)

// Service holds the complete property lifecycle state: the registered
// identity set, the instantiated and loaded property maps, and the
// overridden defaults. All public operations are mutually exclusive; the
// multi-step sequences (Parse, PreEvaluate) hold the lock for their whole
// duration to keep the single-writer discipline.
type Service struct {
	mu sync.Mutex

	name               string
	registered         map[Identity]struct{}
	initialized        map[Identity]Property
	loaded             map[Identity]Property
	overriddenDefaults map[Identity]interface{}
	loading            map[Identity]struct{}
	argumentsAnalyzed  bool

	testMode bool
	exit     func(code int)
	out      io.Writer
	logger   zerolog.Logger
}

// New creates a Service with the built-in properties (help, verbose,
// log-level) pre-registered.
func New(name string) *Service {
	s := &Service{
		name:   name,
		exit:   os.Exit,
		out:    os.Stdout,
		logger: logging.GetLogger("properties"),
	}
	s.resetLocked()
	return s
}

var (
	defaultService *Service
	defaultOnce    sync.Once
)

// Default returns the process-wide Service instance. It is a thin
// convenience wrapper; tests should construct isolated instances with New.
func Default() *Service {
	defaultOnce.Do(func() {
		defaultService = New("props")
	})
	return defaultService
}

// SetName sets the application name shown in the help usage line. Like the
// rest of the service it assumes single-writer discipline; property
// factories may read the name while they are being constructed.
func (s *Service) SetName(name string) {
	s.name = name
}

// Name returns the application name
func (s *Service) Name() string {
	return s.name
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// KebabCase derives a command-line friendly application name from a
// CamelCase type or binary name, e.g. "MyAwesomeApp" -> "my-awesome-app".
func KebabCase(name string) string {
	return strings.ToLower(camelBoundary.ReplaceAllString(name, "$1-$2"))
}

// Register declares interest in a property identity. Registration is
// idempotent. Registering after Parse has run is allowed but logged, because
// values already computed will not retroactively change.
func (s *Service) Register(id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnIfAnalyzedLocked()
	s.registered[id] = struct{}{}
}

// RegisterWithDefault registers a property and overrides its default value
func (s *Service) RegisterWithDefault(id Identity, defaultValue interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnIfAnalyzedLocked()
	s.registered[id] = struct{}{}
	s.overriddenDefaults[id] = defaultValue
}

// OverrideDefault overrides a property's default value without listing the
// property on the help overview page.
func (s *Service) OverrideDefault(id Identity, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnIfAnalyzedLocked()
	s.overriddenDefaults[id] = value
}

func (s *Service) warnIfAnalyzedLocked() {
	if s.argumentsAnalyzed {
		s.logger.Warn().Msg("Property modification after argument analysis detected! Already computed values will not reflect the change.")
	}
}

// Reset discards all state and re-registers the built-in properties. It is
// not safe to call concurrently with an in-flight Parse.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Service) resetLocked() {
	s.registered = make(map[Identity]struct{})
	s.initialized = make(map[Identity]Property)
	s.loaded = make(map[Identity]Property)
	s.overriddenDefaults = make(map[Identity]interface{})
	s.loading = make(map[Identity]struct{})
	s.argumentsAnalyzed = false
	for _, id := range builtinIdentities {
		s.registered[id] = struct{}{}
	}
}

// EnableTestMode switches the Service into test mode: faults surface to the
// caller instead of terminating the process. Safe to call from a property's
// load action.
func (s *Service) EnableTestMode() { s.testMode = true }

// TestMode reports whether test mode is active
func (s *Service) TestMode() bool { return s.testMode }

// SetupUnitTestMode enables test mode and verbose output and loads every
// registered property without command-line parsing. Recommended over Parse
// in unit tests.
func (s *Service) SetupUnitTestMode() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.testMode = true
	s.overriddenDefaults[VerboseID] = true
	if err := s.initRegisteredLocked(nil, false); err != nil {
		return errors.Wrap(err, errors.ErrService, "could not set up unit test mode")
	}
	return nil
}

// Parse analyzes the given argument tokens and loads all registered
// properties. A matched help flag prints the help page and exits cleanly
// (no exit in test mode).
func (s *Service) Parse(tokens []string) error {
	s.mu.Lock()
	s.argumentsAnalyzed = true
	s.logValueModificationLocked(tokens)
	err := s.initRegisteredLocked(tokens, false)
	s.mu.Unlock()
	if err != nil {
		return errors.Wrapf(err, errors.ErrService, "could not analyze arguments")
	}
	return s.handleHelp()
}

// ParseOrExit analyzes the tokens and, on any fault, prints a best-effort
// help page plus the nested error report and terminates the process with
// status 255. In test mode the fault is returned instead.
func (s *Service) ParseOrExit(tokens []string) error {
	err := s.Parse(tokens)
	if err == nil {
		return nil
	}
	if printErr := s.PrintHelp(); printErr != nil {
		s.logger.Error().Msg("Could not print help text!")
		s.PrintError(printErr)
	}
	s.PrintError(err)
	s.logger.Info().Msgf("Exit %s", s.Name())
	if s.TestMode() {
		return err
	}
	s.exit(255)
	return err
}

// initRegisteredLocked resolves all registered properties, optionally parses
// tokens against them, and loads everything. Passing nil tokens skips the
// argument walk (used by SetupUnitTestMode).
func (s *Service) initRegisteredLocked(tokens []string, skipUnknown bool) error {
	s.loaded = make(map[Identity]Property)

	if err := s.resolveLocked(); err != nil {
		return errors.Wrap(err, errors.ErrService, "could not init registered properties")
	}

	if tokens != nil {
		if err := s.parseTokensLocked(tokens, skipUnknown); err != nil {
			return err
		}
		// Drop memoized results so recursive property usage sees the new
		// argument buffers.
		s.loaded = make(map[Identity]Property)
	}

	return s.loadAllLocked(!skipUnknown)
}

func (s *Service) handleHelp() error {
	p, err := s.Property(HelpID)
	if err != nil {
		return errors.Wrap(err, errors.ErrService, "could not generate help page")
	}
	if !p.Identified() {
		return nil
	}
	if err := s.PrintHelp(); err != nil {
		s.logger.Error().Err(err).Msg("Could not fully generate help page!")
	}
	if !s.TestMode() {
		s.exit(0)
	}
	return nil
}

// Property returns the loaded instance for the given identity, running the
// load pipeline if needed. Failures surface as NOT_AVAILABLE faults.
func (s *Service) Property(id Identity) (Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.propertyLocked(id)
}

// Value returns the typed effective value of the given property
func Value[T any](s *Service, id Identity) (T, error) {
	var zero T
	p, err := s.Property(id)
	if err != nil {
		return zero, err
	}
	value, ok := p.Value().(T)
	if !ok {
		return zero, errors.Newf(errors.ErrNotAvailable,
			"property %s holds %T, not %T", id, p.Value(), zero)
	}
	return value, nil
}

// VerboseMode reports whether the verbose built-in evaluates to true
func (s *Service) VerboseMode() bool {
	value, err := Value[bool](s, VerboseID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Could not detect verbose mode!")
		return false
	}
	return value
}

// PrintError writes the nested cause chain of err, each level indented
// further. In verbose mode the full error is appended.
func (s *Service) PrintError(err error) {
	separator := strings.Repeat("=", 73)
	s.logger.Error().Msg(separator)
	prefix := "="
	for _, message := range errors.Causes(err) {
		s.logger.Error().Msg(prefix + " " + message)
		prefix += "=="
	}
	if s.VerboseMode() {
		s.logger.Error().Msgf("%+v", err)
	}
	s.logger.Error().Msg(separator)
}

// logValueModificationLocked echoes the raw token stream so log files record
// which command-line value modifications were in effect.
func (s *Service) logValueModificationLocked(tokens []string) {
	if len(tokens) == 0 {
		return
	}
	var b strings.Builder
	for _, token := range tokens {
		switch {
		case strings.HasPrefix(token, "--"):
			b.WriteString("\n\t")
		case strings.HasPrefix(token, "-"):
			b.WriteString("\n\t ")
		default:
			b.WriteString(" ")
		}
		b.WriteString(token)
	}
	s.logger.Info().Msgf("[command line value modification]%s", b.String())
}

// loadAllLocked loads every registered property. In strict mode
// (errorReport true) the first failure is returned; in best-effort mode
// failures are logged at debug level and skipped, which is what help
// generation uses. Side-effect failures escalate in either mode.
func (s *Service) loadAllLocked(errorReport bool) error {
	for _, id := range s.registeredSnapshotLocked() {
		if _, err := s.propertyLocked(id); err != nil {
			if errorReport || errors.IsErrorCode(err, errors.ErrService) {
				return errors.Wrapf(err, errors.ErrService, "could not load property %s", id)
			}
			s.logger.Debug().Err(err).Str("property", string(id)).Msg("Could not load property")
		}
	}
	return nil
}

// registeredSnapshotLocked returns the registered identities in sorted order
func (s *Service) registeredSnapshotLocked() []Identity {
	snapshot := make([]Identity, 0, len(s.registered))
	for id := range s.registered {
		snapshot = append(snapshot, id)
	}
	sort.Slice(snapshot, func(i, j int) bool { return snapshot[i] < snapshot[j] })
	return snapshot
}
