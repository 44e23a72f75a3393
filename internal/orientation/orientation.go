package orientation

type Orientation string

const (
	Portrait           Orientation = "portrait"
	PortraitUpsideDown Orientation = "portrait-upside-down"
	LandscapeLeft      Orientation = "landscape-left"
	LandscapeRight     Orientation = "landscape-right"
	FaceUp             Orientation = "face-up"
	FaceDown           Orientation = "face-down"
	Unknown            Orientation = "unknown"
)

func (o Orientation) Valid() bool {
	switch o {
	case Portrait, PortraitUpsideDown, LandscapeLeft, LandscapeRight, FaceUp, FaceDown, Unknown:
		return true
	}
	return false
}

// Normalize maps anything outside the orientation vocabulary to Unknown.
func Normalize(o Orientation) Orientation {
	if o.Valid() {
		return o
	}
	return Unknown
}
