package events

const (
	// KindRobotState identifies the continuously streamed state snapshot.
	KindRobotState Kind = "robot.state"
	// KindStimulationInfo identifies internal stimulation level updates.
	KindStimulationInfo Kind = "robot.stimulation_info"
	// KindUnexpectedMovement identifies the robot being moved off its path.
	KindUnexpectedMovement Kind = "robot.unexpected_movement"
	// KindMirrorModeDisabled identifies mirror mode switching off robot-side.
	KindMirrorModeDisabled Kind = "robot.mirror_mode_disabled"
	// KindVisionModesAutoDisabled identifies vision modes being shed robot-side.
	KindVisionModesAutoDisabled Kind = "robot.vision_modes_auto_disabled"
	// KindCameraSettingsUpdate identifies applied auto-exposure settings.
	KindCameraSettingsUpdate Kind = "robot.camera_settings_update"
	// KindPhotoTaken identifies a photo stored on the robot.
	KindPhotoTaken Kind = "robot.photo_taken"
	// KindUserIntent identifies a voice intent surfaced to the stream owner.
	KindUserIntent Kind = "robot.user_intent"
	// KindAttentionTransfer identifies the robot redirecting the user.
	KindAttentionTransfer Kind = "robot.attention_transfer"
	// KindOnboarding identifies onboarding flow state changes.
	KindOnboarding Kind = "robot.onboarding"
)

// RobotStateEvent is the continuously streamed robot state snapshot. It
// arrives several times per second for as long as the connection lives.
type RobotStateEvent struct {
	Base
	Pose               Pose
	PoseAngle          float32
	PosePitch          float32
	HeadAngle          float32
	LiftHeight         float32
	LeftWheelSpeed     float32
	RightWheelSpeed    float32
	BatteryVoltage     float32
	Status             RobotStatus
	CarryingObjectID   int32
	HeadTrackingID     int32
	LocalizedToObject  int32
	LastImageTimestamp uint32
	RobotTimestamp     uint32
}

// NewRobotStateEvent creates a robot state event from a state payload.
func NewRobotStateEvent(state RobotStatePayload) RobotStateEvent {
	return RobotStateEvent{
		Base:               NewBase(KindRobotState),
		Pose:               state.Pose,
		PoseAngle:          state.PoseAngle,
		PosePitch:          state.PosePitch,
		HeadAngle:          state.HeadAngle,
		LiftHeight:         state.LiftHeight,
		LeftWheelSpeed:     state.LeftWheelSpeed,
		RightWheelSpeed:    state.RightWheelSpeed,
		BatteryVoltage:     state.BatteryVoltage,
		Status:             state.Status,
		CarryingObjectID:   state.CarryingObjectID,
		HeadTrackingID:     state.HeadTrackingID,
		LocalizedToObject:  state.LocalizedToObject,
		LastImageTimestamp: state.LastImageTimestamp,
		RobotTimestamp:     state.RobotTimestamp,
	}
}

// StimulationInfoEvent reports the robot's internal stimulation levels.
type StimulationInfoEvent struct {
	Base
	Value            float32
	VelocityPerSec   float32
	Accel            float32
	ValueBeforeEvent float32
	MinValue         float32
	MaxValue         float32
	EmotionEvents    []string
	RobotTimestamp   uint32
}

// NewStimulationInfoEvent creates a stimulation info event.
func NewStimulationInfoEvent(info StimulationInfoPayload) StimulationInfoEvent {
	return StimulationInfoEvent{
		Base:             NewBase(KindStimulationInfo),
		Value:            info.Value,
		VelocityPerSec:   info.VelocityPerSec,
		Accel:            info.Accel,
		ValueBeforeEvent: info.ValueBeforeEvent,
		MinValue:         info.MinValue,
		MaxValue:         info.MaxValue,
		EmotionEvents:    info.EmotionEvents,
		RobotTimestamp:   info.RobotTimestamp,
	}
}

// UnexpectedMovementEvent reports the robot being moved off its planned path.
type UnexpectedMovementEvent struct {
	Base
	MovementType   int32
	MovementSide   int32
	RobotTimestamp uint32
}

// NewUnexpectedMovementEvent creates an unexpected movement event.
func NewUnexpectedMovementEvent(movementType, movementSide int32, robotTimestamp uint32) UnexpectedMovementEvent {
	return UnexpectedMovementEvent{
		Base:           NewBase(KindUnexpectedMovement),
		MovementType:   movementType,
		MovementSide:   movementSide,
		RobotTimestamp: robotTimestamp,
	}
}

// MirrorModeDisabledEvent marks mirror mode being switched off robot-side.
type MirrorModeDisabledEvent struct{ Base }

// NewMirrorModeDisabledEvent creates a mirror mode disabled event.
func NewMirrorModeDisabledEvent() MirrorModeDisabledEvent {
	return MirrorModeDisabledEvent{Base: NewBase(KindMirrorModeDisabled)}
}

// VisionModesAutoDisabledEvent marks vision modes being shed robot-side.
type VisionModesAutoDisabledEvent struct{ Base }

// NewVisionModesAutoDisabledEvent creates a vision modes auto disabled event.
func NewVisionModesAutoDisabledEvent() VisionModesAutoDisabledEvent {
	return VisionModesAutoDisabledEvent{Base: NewBase(KindVisionModesAutoDisabled)}
}

// CameraSettingsUpdateEvent reports auto-exposure settings applied.
type CameraSettingsUpdateEvent struct {
	Base
	GainValue      float32
	ExposureMS     uint32
	AutoExposureOn bool
}

// NewCameraSettingsUpdateEvent creates a camera settings update event.
func NewCameraSettingsUpdateEvent(gain float32, exposureMS uint32, autoExposureOn bool) CameraSettingsUpdateEvent {
	return CameraSettingsUpdateEvent{
		Base:           NewBase(KindCameraSettingsUpdate),
		GainValue:      gain,
		ExposureMS:     exposureMS,
		AutoExposureOn: autoExposureOn,
	}
}

// PhotoTakenEvent reports a photo stored on the robot.
type PhotoTakenEvent struct {
	Base
	PhotoID uint32
}

// NewPhotoTakenEvent creates a photo taken event.
func NewPhotoTakenEvent(photoID uint32) PhotoTakenEvent {
	return PhotoTakenEvent{Base: NewBase(KindPhotoTaken), PhotoID: photoID}
}

// UserIntentEvent reports a voice intent the robot surfaced to the stream
// owner instead of handling itself.
type UserIntentEvent struct {
	Base
	Intent   int32
	JSONData string
}

// NewUserIntentEvent creates a user intent event.
func NewUserIntentEvent(intent int32, jsonData string) UserIntentEvent {
	return UserIntentEvent{Base: NewBase(KindUserIntent), Intent: intent, JSONData: jsonData}
}

// AttentionTransferEvent reports the robot redirecting the user elsewhere,
// for example to the companion app after repeated connectivity failures.
type AttentionTransferEvent struct {
	Base
	Reason     string
	SecondsAgo float32
}

// NewAttentionTransferEvent creates an attention transfer event.
func NewAttentionTransferEvent(reason string, secondsAgo float32) AttentionTransferEvent {
	return AttentionTransferEvent{Base: NewBase(KindAttentionTransfer), Reason: reason, SecondsAgo: secondsAgo}
}

// OnboardingEvent reports onboarding flow state changes.
type OnboardingEvent struct {
	Base
	Stage string
}

// NewOnboardingEvent creates an onboarding event.
func NewOnboardingEvent(stage string) OnboardingEvent {
	return OnboardingEvent{Base: NewBase(KindOnboarding), Stage: stage}
}
