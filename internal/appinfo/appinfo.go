package appinfo

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Info identifies the host application: display name, marketing version and
// build number. It is the Go analogue of the bundle metadata an Apple host
// exposes through its Info.plist.
type Info struct {
	Name    string `env:"TRACKS_APP_NAME" env-default:""`
	Version string `env:"TRACKS_APP_VERSION" env-default:""`
	Build   string `env:"TRACKS_APP_BUILD" env-default:""`
}

// FromEnv reads the application identity from the process environment.
// Missing variables leave the corresponding field empty; identity is
// best-effort and never an error.
func FromEnv() Info {
	var info Info
	_ = cleanenv.ReadEnv(&info)
	return info
}
