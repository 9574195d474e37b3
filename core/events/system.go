package events

const (
	// KindJdocsChanged identifies robot-side settings documents changing.
	KindJdocsChanged Kind = "system.jdocs_changed"
	// KindAlexaAuth identifies Alexa authorization state changes.
	KindAlexaAuth Kind = "system.alexa_auth"
	// KindCheckUpdateStatus identifies firmware update progress reports.
	KindCheckUpdateStatus Kind = "system.check_update_status"
	// KindAudioSendModeChanged identifies the audio feed mode changing.
	KindAudioSendModeChanged Kind = "system.audio_send_mode_changed"
)

// JdocsChangedEvent reports robot-side settings documents changing.
type JdocsChangedEvent struct {
	Base
	Documents []string
}

// NewJdocsChangedEvent creates a jdocs changed event.
func NewJdocsChangedEvent(documents []string) JdocsChangedEvent {
	return JdocsChangedEvent{Base: NewBase(KindJdocsChanged), Documents: documents}
}

// AlexaAuthEvent reports Alexa authorization state changes.
type AlexaAuthEvent struct {
	Base
	AuthState int32
	Extra     string
}

// NewAlexaAuthEvent creates an Alexa auth event.
func NewAlexaAuthEvent(authState int32, extra string) AlexaAuthEvent {
	return AlexaAuthEvent{Base: NewBase(KindAlexaAuth), AuthState: authState, Extra: extra}
}

// CheckUpdateStatusEvent reports firmware update progress.
type CheckUpdateStatusEvent struct {
	Base
	UpdateStatus  int32
	UpdateVersion string
	Progress      int64
	Expected      int64
}

// NewCheckUpdateStatusEvent creates a check update status event.
func NewCheckUpdateStatusEvent(payload CheckUpdateStatusPayload) CheckUpdateStatusEvent {
	return CheckUpdateStatusEvent{
		Base:          NewBase(KindCheckUpdateStatus),
		UpdateStatus:  payload.UpdateStatus,
		UpdateVersion: payload.UpdateVersion,
		Progress:      payload.Progress,
		Expected:      payload.Expected,
	}
}

// AudioSendModeChangedEvent reports the robot's audio feed mode changing.
type AudioSendModeChangedEvent struct {
	Base
	Mode int32
}

// NewAudioSendModeChangedEvent creates an audio send mode changed event.
func NewAudioSendModeChangedEvent(mode int32) AudioSendModeChangedEvent {
	return AudioSendModeChangedEvent{Base: NewBase(KindAudioSendModeChanged), Mode: mode}
}
