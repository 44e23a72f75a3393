package deviceinfo

import (
	"github.com/tracksuite/tracks/internal/orientation"
)

type (
	// Snapshot holds the identity attributes read once at record
	// construction: operating system, hardware and host application.
	Snapshot struct {
		OS           string `json:"os"`
		Version      string `json:"version"`
		Manufacturer string `json:"manufacturer"`
		Brand        string `json:"brand"`
		Model        string `json:"model"`

		AppName    string `json:"app_name"`
		AppVersion string `json:"app_version"`
		AppBuild   string `json:"app_build"`
	}

	// Sampler is the seam between the record and the platform accessors.
	// Snapshot is read once at construction; the remaining accessors are
	// re-read on every access because their values have the tendency to
	// change. An accessor that has no value to report returns
	// errorutil.ErrNotAvailable and the record substitutes the placeholder.
	Sampler interface {
		Snapshot() Snapshot
		Language() (string, error)
		NetworkOperator() (string, error)
		NetworkRadioType() (string, error)
		Orientation() (orientation.Orientation, error)
	}
)
