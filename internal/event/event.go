package event

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tracksuite/tracks/internal/deviceinfo"
	"github.com/tracksuite/tracks/internal/timeutil"
)

type (
	// DeviceMetadata is the projection of the device information record
	// attached to every outgoing event.
	DeviceMetadata struct {
		AppBuild           string  `json:"app_build"`
		AppName            string  `json:"app_name"`
		AppVersion         string  `json:"app_version"`
		DeviceBrand        string  `json:"device_brand"`
		DeviceLanguage     string  `json:"device_language"`
		DeviceManufacturer string  `json:"device_manufacturer"`
		DeviceModel        string  `json:"device_model"`
		DeviceOrientation  string  `json:"device_orientation"`
		DeviceOsName       string  `json:"device_os_name"`
		DeviceOsVersion    string  `json:"device_os_version"`
		NetworkOperator    string  `json:"network_operator"`
		NetworkRadioType   string  `json:"network_radio_type"`
		StatusBarHeight    float64 `json:"status_bar_height"`
		VoiceOverEnabled   bool    `json:"voiceover_enabled"`
		WatchConnected     bool    `json:"watch_connected"`
		WiFiConnected      bool    `json:"wifi_connected"`
	}

	Event struct {
		ID         string                 `json:"event_id"`
		Name       string                 `json:"name"`
		Timestamp  timeutil.Time          `json:"_ts"`
		Properties map[string]interface{} `json:"properties,omitempty"`
		Device     DeviceMetadata         `json:"device"`
	}
)

func (e Event) MarshalPayload() ([]byte, error) {
	return json.Marshal(e)
}

// Builder assembles events against a device information record. The record
// is sampled at build time so each event carries the environmental truth at
// the moment it was emitted.
type Builder struct {
	info *deviceinfo.Info
}

func NewBuilder(info *deviceinfo.Info) Builder {
	return Builder{info: info}
}

func (b Builder) Build(name string, properties map[string]interface{}) Event {
	return Event{
		ID:         uuid.New().String(),
		Name:       name,
		Timestamp:  timeutil.Now(),
		Properties: properties,
		Device:     b.deviceMetadata(),
	}
}

func (b Builder) deviceMetadata() DeviceMetadata {
	return DeviceMetadata{
		AppBuild:           b.info.AppBuild(),
		AppName:            b.info.AppName(),
		AppVersion:         b.info.AppVersion(),
		DeviceBrand:        b.info.Brand(),
		DeviceLanguage:     b.info.DeviceLanguage(),
		DeviceManufacturer: b.info.Manufacturer(),
		DeviceModel:        b.info.Model(),
		DeviceOrientation:  string(b.info.Orientation()),
		DeviceOsName:       b.info.OS(),
		DeviceOsVersion:    b.info.Version(),
		NetworkOperator:    b.info.CurrentNetworkOperator(),
		NetworkRadioType:   b.info.CurrentNetworkRadioType(),
		StatusBarHeight:    b.info.StatusBarHeight(),
		VoiceOverEnabled:   b.info.VoiceOverEnabled(),
		WatchConnected:     b.info.WatchConnected(),
		WiFiConnected:      b.info.WiFiConnected(),
	}
}
