package deviceinfo

import (
	"math"
	"sync/atomic"

	"github.com/tracksuite/tracks/internal/orientation"
)

// Info is the device information record attached to every telemetry event.
//
// Identity attributes are immutable after construction. Language, network
// operator, radio type and orientation delegate to the sampler on every
// read. The four owner-mutable attributes are written by the coordinator
// that observes reachability, accessory, accessibility and layout changes;
// they are atomic so event assembly may read them concurrently.
type Info struct {
	snapshot Snapshot
	sampler  Sampler

	wifiConnected    atomic.Bool
	watchConnected   atomic.Bool
	voiceOverEnabled atomic.Bool
	statusBarHeight  atomic.Uint64
}

// New constructs a fully populated record over the given sampler.
// Construction never fails: attributes the sampler could not read are
// already the documented placeholders in its snapshot.
func New(sampler Sampler) *Info {
	return &Info{
		snapshot: sampler.Snapshot(),
		sampler:  sampler,
	}
}

func (i *Info) OS() string           { return i.snapshot.OS }
func (i *Info) Version() string      { return i.snapshot.Version }
func (i *Info) Manufacturer() string { return i.snapshot.Manufacturer }
func (i *Info) Brand() string        { return i.snapshot.Brand }
func (i *Info) Model() string        { return i.snapshot.Model }

func (i *Info) AppName() string    { return i.snapshot.AppName }
func (i *Info) AppVersion() string { return i.snapshot.AppVersion }
func (i *Info) AppBuild() string   { return i.snapshot.AppBuild }

// DeviceLanguage returns the current IETF language tag of the user's locale.
func (i *Info) DeviceLanguage() string {
	language, err := i.sampler.Language()
	if err != nil {
		return ""
	}
	return language
}

// CurrentNetworkOperator returns the mobile carrier name, empty when no
// cellular service is available.
func (i *Info) CurrentNetworkOperator() string {
	operator, err := i.sampler.NetworkOperator()
	if err != nil {
		return ""
	}
	return operator
}

// CurrentNetworkRadioType returns the cellular radio technology identifier,
// empty when no cellular service is available.
func (i *Info) CurrentNetworkRadioType() string {
	radioType, err := i.sampler.NetworkRadioType()
	if err != nil {
		return ""
	}
	return radioType
}

// Orientation returns the current physical device orientation. Values
// outside the orientation vocabulary and sampler failures both read as
// unknown.
func (i *Info) Orientation() orientation.Orientation {
	o, err := i.sampler.Orientation()
	if err != nil {
		return orientation.Unknown
	}
	return orientation.Normalize(o)
}

func (i *Info) WiFiConnected() bool {
	return i.wifiConnected.Load()
}

func (i *Info) SetWiFiConnected(connected bool) {
	i.wifiConnected.Store(connected)
}

func (i *Info) WatchConnected() bool {
	return i.watchConnected.Load()
}

func (i *Info) SetWatchConnected(connected bool) {
	i.watchConnected.Store(connected)
}

func (i *Info) VoiceOverEnabled() bool {
	return i.voiceOverEnabled.Load()
}

func (i *Info) SetVoiceOverEnabled(enabled bool) {
	i.voiceOverEnabled.Store(enabled)
}

func (i *Info) StatusBarHeight() float64 {
	return math.Float64frombits(i.statusBarHeight.Load())
}

// SetStatusBarHeight records the status bar height in points. Negative and
// NaN values are clamped to 0 so the attribute stays non-negative.
func (i *Info) SetStatusBarHeight(height float64) {
	if height < 0 || math.IsNaN(height) {
		height = 0
	}
	i.statusBarHeight.Store(math.Float64bits(height))
}
