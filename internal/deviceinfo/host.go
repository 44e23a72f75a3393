package deviceinfo

import (
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/text/language"

	"github.com/tracksuite/tracks/internal/appinfo"
	"github.com/tracksuite/tracks/internal/errorutil"
	"github.com/tracksuite/tracks/internal/orientation"
)

// HostSampler reads device attributes from the host the process runs on.
// Hosts have no telephony subsystem and no orientation sensor, so carrier,
// radio type and orientation report their placeholders.
type HostSampler struct {
	app appinfo.Info
}

func NewHostSampler(app appinfo.Info) HostSampler {
	return HostSampler{app: app}
}

func (s HostSampler) Snapshot() Snapshot {
	snapshot := Snapshot{
		OS:         runtime.GOOS,
		Model:      runtime.GOARCH,
		AppName:    s.app.Name,
		AppVersion: s.app.Version,
		AppBuild:   s.app.Build,
	}
	info, err := host.Info()
	if err != nil {
		log.Debug().Err(err).Msg("host information unavailable")
		return snapshot
	}
	if info.Platform != "" {
		snapshot.OS = info.Platform
	}
	snapshot.Version = info.PlatformVersion
	if info.KernelArch != "" {
		snapshot.Model = info.KernelArch
	}
	return snapshot
}

// Language derives the user's language from the locale environment and
// normalizes it to an IETF tag ("en_US.UTF-8" reads as "en-US").
func (s HostSampler) Language() (string, error) {
	locale := localeFromEnv()
	if locale == "" {
		return "", errorutil.ErrNotAvailable
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return locale, nil
	}
	return tag.String(), nil
}

func (s HostSampler) NetworkOperator() (string, error) {
	return "", errorutil.ErrNotAvailable
}

func (s HostSampler) NetworkRadioType() (string, error) {
	return "", errorutil.ErrNotAvailable
}

func (s HostSampler) Orientation() (orientation.Orientation, error) {
	return orientation.Unknown, errorutil.ErrNotAvailable
}

func localeFromEnv() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		// strip the charset suffix, as in "en_US.UTF-8"
		if i := strings.IndexByte(value, '.'); i >= 0 {
			value = value[:i]
		}
		return value
	}
	return ""
}
