package system

// Effect plays a short sound. *assets.SoundEffect satisfies it.
type Effect interface {
	Play()
}

type silentEffect struct{}

func (silentEffect) Play() {}

func effectOrSilent(e Effect) Effect {
	if e == nil {
		return silentEffect{}
	}
	return e
}
