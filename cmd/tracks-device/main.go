package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tracksuite/tracks/internal/appinfo"
	"github.com/tracksuite/tracks/internal/deviceinfo"
	"github.com/tracksuite/tracks/internal/event"
	"github.com/tracksuite/tracks/internal/logutil"
)

// tracks-device prints the event payload a telemetry client on this host
// would emit, for verifying what the device information record reports.
func main() {
	logutil.ConfigureLogger()

	info := deviceinfo.New(deviceinfo.NewHostSampler(appinfo.FromEnv()))
	e := event.NewBuilder(info).Build("device_information", nil)

	b, err := e.MarshalPayload()
	if err != nil {
		log.Fatal().Err(err).Msg("error marshaling the event payload")
	}
	fmt.Fprintln(os.Stdout, string(b))
}
