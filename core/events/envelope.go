package events

// EnvelopeKind is the primary discriminant of a wire event.
type EnvelopeKind string

const (
	EnvelopeStatus                  EnvelopeKind = "time_stamped_status"
	EnvelopeWakeWord                EnvelopeKind = "wake_word"
	EnvelopeObjectEvent             EnvelopeKind = "object_event"
	EnvelopeRobotObservedFace       EnvelopeKind = "robot_observed_face"
	EnvelopeRobotChangedFaceID      EnvelopeKind = "robot_changed_observed_face_id"
	EnvelopeRobotState              EnvelopeKind = "robot_state"
	EnvelopeStimulationInfo         EnvelopeKind = "stimulation_info"
	EnvelopePhotoTaken              EnvelopeKind = "photo_taken"
	EnvelopeCubeBattery             EnvelopeKind = "cube_battery"
	EnvelopeKeepAlive               EnvelopeKind = "keep_alive"
	EnvelopeConnectionResponse      EnvelopeKind = "connection_response"
	EnvelopeMirrorModeDisabled      EnvelopeKind = "mirror_mode_disabled"
	EnvelopeVisionModesAutoDisabled EnvelopeKind = "vision_modes_auto_disabled"
	EnvelopeUserIntent              EnvelopeKind = "user_intent"
	EnvelopeAttentionTransfer       EnvelopeKind = "attention_transfer"
	EnvelopeOnboarding              EnvelopeKind = "onboarding"
	EnvelopeJdocsChanged            EnvelopeKind = "jdocs_changed"
	EnvelopeAlexaAuth               EnvelopeKind = "alexa_auth_event"
	EnvelopeCheckUpdateStatus       EnvelopeKind = "check_update_status_response"
	EnvelopeAudioSendModeChanged    EnvelopeKind = "audio_send_mode_changed"
	EnvelopeCameraSettingsUpdate    EnvelopeKind = "camera_settings_update"
	EnvelopeUnexpectedMovement      EnvelopeKind = "unexpected_movement"
)

// Envelope is one tagged wire event from the robot, already parsed out of
// its transport framing. Payload holds the kind-specific payload struct;
// [FromEnvelope] turns the pair into a typed event.
type Envelope struct {
	Kind    EnvelopeKind
	Payload any
}

// ObjectEventType is the secondary discriminant of an object event envelope.
type ObjectEventType string

const (
	ObjectEventAvailable          ObjectEventType = "object_available"
	ObjectEventConnectionState    ObjectEventType = "object_connection_state"
	ObjectEventMoved              ObjectEventType = "object_moved"
	ObjectEventStoppedMoving      ObjectEventType = "object_stopped_moving"
	ObjectEventUpAxisChanged      ObjectEventType = "object_up_axis_changed"
	ObjectEventTapped             ObjectEventType = "object_tapped"
	ObjectEventObserved           ObjectEventType = "robot_observed_object"
	ObjectEventCubeConnectionLost ObjectEventType = "cube_connection_lost"
)

// ObjectEventPayload is the nested tagged union carried by an object event
// envelope. Exactly the member named by Type must be set; a nil member for
// the named type is a decode failure, not a null event.
type ObjectEventPayload struct {
	Type               ObjectEventType          `json:"type"`
	Available          *ObjectAvailable         `json:"object_available,omitempty"`
	ConnectionState    *ObjectConnectionState   `json:"object_connection_state,omitempty"`
	Moved              *ObjectMotion            `json:"object_moved,omitempty"`
	StoppedMoving      *ObjectMotion            `json:"object_stopped_moving,omitempty"`
	UpAxisChanged      *ObjectUpAxisChange      `json:"object_up_axis_changed,omitempty"`
	Tapped             *ObjectTap               `json:"object_tapped,omitempty"`
	Observed           *ObjectObservation       `json:"robot_observed_object,omitempty"`
	CubeConnectionLost *CubeConnectionLossNotes `json:"cube_connection_lost,omitempty"`
}

// ObjectAvailable announces a connectable cube discovered by its factory id.
type ObjectAvailable struct {
	FactoryID string `json:"factory_id"`
}

// ObjectConnectionState reports a cube connecting or disconnecting.
type ObjectConnectionState struct {
	ObjectID  uint32     `json:"object_id"`
	FactoryID string     `json:"factory_id"`
	Type      ObjectType `json:"object_type"`
	Connected bool       `json:"connected"`
}

// ObjectMotion reports a cube starting or stopping movement. The timestamp
// is the robot clock, in milliseconds.
type ObjectMotion struct {
	ObjectID       uint32 `json:"object_id"`
	RobotTimestamp uint32 `json:"timestamp"`
}

// ObjectUpAxisChange reports which cube face is now pointing up.
type ObjectUpAxisChange struct {
	ObjectID       uint32 `json:"object_id"`
	UpAxis         UpAxis `json:"up_axis"`
	RobotTimestamp uint32 `json:"timestamp"`
}

// ObjectTap reports a physical tap on a cube.
type ObjectTap struct {
	ObjectID       uint32 `json:"object_id"`
	RobotTimestamp uint32 `json:"timestamp"`
}

// ObjectObservation reports the robot seeing an object in its camera frame.
type ObjectObservation struct {
	ObjectID            uint32     `json:"object_id"`
	Type                ObjectType `json:"object_type"`
	Pose                Pose       `json:"pose"`
	ImageRect           ImageRect  `json:"img_rect"`
	TopFaceOrientation  float32    `json:"top_face_orientation_rad"`
	IsActive            bool       `json:"is_active"`
	RobotTimestamp      uint32     `json:"timestamp"`
	CustomObjectTypeTag uint32     `json:"custom_object_type,omitempty"`
}

// CubeConnectionLossNotes is the (empty) payload of a cube connection loss.
type CubeConnectionLossNotes struct{}

// StatusType is the secondary discriminant of a time-stamped status envelope.
type StatusType string

const (
	StatusFeature                 StatusType = "feature_status"
	StatusFaceScanStarted         StatusType = "meet_victor_face_scan_started"
	StatusFaceScanComplete        StatusType = "meet_victor_face_scan_complete"
	StatusFaceEnrollmentCompleted StatusType = "face_enrollment_completed"
)

// StatusPayload is the nested union of a time-stamped status envelope. The
// face-scan variants are markers and carry no nested member; Feature must be
// set when Type names it.
type StatusPayload struct {
	Type           StatusType     `json:"type"`
	RobotTimestamp uint32         `json:"frame_timestamp"`
	Feature        *FeatureStatus `json:"feature_status,omitempty"`
}

// FeatureStatus reports the behavior feature the robot switched to.
type FeatureStatus struct {
	Name   string `json:"feature_name"`
	Source string `json:"source"`
}

// WakeWordType is the secondary discriminant of a wake word envelope.
type WakeWordType string

const (
	WakeWordBegin WakeWordType = "wake_word_begin"
	WakeWordEnd   WakeWordType = "wake_word_end"
)

// WakeWordPayload is the nested union of a wake word envelope. Begin is a
// marker; End must be set when Type names it.
type WakeWordPayload struct {
	Type WakeWordType    `json:"type"`
	End  *WakeWordResult `json:"wake_word_end,omitempty"`
}

// WakeWordResult reports how a wake word exchange concluded.
type WakeWordResult struct {
	IntentHeard bool   `json:"intent_heard"`
	IntentJSON  string `json:"intent_json"`
}

// FaceObservation reports the robot seeing a face, with whatever identity
// and expression data vision produced for it.
type FaceObservation struct {
	FaceID           int32          `json:"face_id"`
	Name             string         `json:"name"`
	Pose             Pose           `json:"pose"`
	ImageRect        ImageRect      `json:"img_rect"`
	Expression       FaceExpression `json:"expression"`
	ExpressionValues []uint32       `json:"expression_values,omitempty"`
	LeftEye          []CladPoint    `json:"left_eye,omitempty"`
	RightEye         []CladPoint    `json:"right_eye,omitempty"`
	Nose             []CladPoint    `json:"nose,omitempty"`
	Mouth            []CladPoint    `json:"mouth,omitempty"`
	RobotTimestamp   uint32         `json:"timestamp"`
}

// FaceIDChange reports vision re-identifying a tracked face under a new id.
type FaceIDChange struct {
	OldID          int32  `json:"old_id"`
	NewID          int32  `json:"new_id"`
	RobotTimestamp uint32 `json:"timestamp"`
}

// RobotStatePayload is the continuously streamed robot state snapshot.
type RobotStatePayload struct {
	Pose               Pose        `json:"pose"`
	PoseAngle          float32     `json:"pose_angle_rad"`
	PosePitch          float32     `json:"pose_pitch_rad"`
	HeadAngle          float32     `json:"head_angle_rad"`
	LiftHeight         float32     `json:"lift_height_mm"`
	LeftWheelSpeed     float32     `json:"left_wheel_speed_mmps"`
	RightWheelSpeed    float32     `json:"right_wheel_speed_mmps"`
	BatteryVoltage     float32     `json:"battery_voltage"`
	Status             RobotStatus `json:"status"`
	CarryingObjectID   int32       `json:"carrying_object_id"`
	HeadTrackingID     int32       `json:"head_tracking_object_id"`
	LocalizedToObject  int32       `json:"localized_to_object_id"`
	LastImageTimestamp uint32      `json:"last_image_time_stamp"`
	RobotTimestamp     uint32      `json:"timestamp"`
}

// StimulationInfoPayload reports the robot's internal stimulation levels.
type StimulationInfoPayload struct {
	Value            float32  `json:"value"`
	VelocityPerSec   float32  `json:"velocity"`
	Accel            float32  `json:"accel"`
	ValueBeforeEvent float32  `json:"value_before_event"`
	MinValue         float32  `json:"min_value"`
	MaxValue         float32  `json:"max_value"`
	EmotionEvents    []string `json:"emotion_events,omitempty"`
	RobotTimestamp   uint32   `json:"timestamp"`
}

// PhotoTakenPayload reports a photo stored on the robot.
type PhotoTakenPayload struct {
	PhotoID uint32 `json:"photo_id"`
}

// CubeBatteryPayload reports a connected cube's battery level.
type CubeBatteryPayload struct {
	FactoryID            string           `json:"factory_id"`
	Level                CubeBatteryLevel `json:"level"`
	BatteryVolts         float32          `json:"battery_volts"`
	TimeSinceLastReading float32          `json:"time_since_last_reading_sec"`
}

// CubeBatteryLevel classifies a cube battery reading.
type CubeBatteryLevel int32

const (
	CubeBatteryLevelLow    CubeBatteryLevel = 0
	CubeBatteryLevelNormal CubeBatteryLevel = 1
)

// KeepAlivePayload is the liveness ping payload; it carries nothing.
type KeepAlivePayload struct{}

// ConnectionResponsePayload acknowledges the event stream subscription.
type ConnectionResponsePayload struct {
	IsPrimary bool `json:"is_primary"`
}

// MirrorModeDisabledPayload marks mirror mode being switched off robot-side.
type MirrorModeDisabledPayload struct{}

// VisionModesAutoDisabledPayload marks vision modes being shed robot-side.
type VisionModesAutoDisabledPayload struct{}

// UserIntentPayload reports a voice intent the robot chose to surface.
type UserIntentPayload struct {
	Intent   int32  `json:"intent_id"`
	JSONData string `json:"json_data"`
}

// AttentionTransferPayload reports the robot redirecting the user elsewhere.
type AttentionTransferPayload struct {
	Reason     string  `json:"reason"`
	SecondsAgo float32 `json:"seconds_ago"`
}

// OnboardingPayload wraps onboarding flow state changes.
type OnboardingPayload struct {
	Stage string `json:"onboarding_state"`
}

// JdocsChangedPayload reports robot-side settings documents changing.
type JdocsChangedPayload struct {
	Documents []string `json:"jdoc_types,omitempty"`
}

// AlexaAuthPayload reports Alexa authorization state changes.
type AlexaAuthPayload struct {
	AuthState int32  `json:"auth_state"`
	Extra     string `json:"extra"`
}

// CheckUpdateStatusPayload reports firmware update progress.
type CheckUpdateStatusPayload struct {
	UpdateStatus  int32  `json:"update_status"`
	UpdateVersion string `json:"update_version"`
	Progress      int64  `json:"progress"`
	Expected      int64  `json:"expected"`
}

// AudioSendModeChangedPayload reports the robot's audio feed mode changing.
type AudioSendModeChangedPayload struct {
	Mode int32 `json:"mode"`
}

// CameraSettingsUpdatePayload reports auto-exposure settings applied.
type CameraSettingsUpdatePayload struct {
	GainValue      float32 `json:"gain"`
	ExposureMS     uint32  `json:"exposure_ms"`
	AutoExposureOn bool    `json:"auto_exposure_enabled"`
}

// UnexpectedMovementPayload reports the robot being moved off its path.
type UnexpectedMovementPayload struct {
	MovementType   int32  `json:"movement_type"`
	MovementSide   int32  `json:"movement_side"`
	RobotTimestamp uint32 `json:"timestamp"`
}
