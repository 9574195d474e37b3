package events

const (
	// KindFeatureStatus identifies the robot switching behavior features.
	KindFeatureStatus Kind = "status.feature"
	// KindFaceScanStarted identifies a meet-victor face scan starting.
	KindFaceScanStarted Kind = "status.face_scan_started"
	// KindFaceScanComplete identifies a meet-victor face scan completing.
	KindFaceScanComplete Kind = "status.face_scan_complete"
	// KindFaceEnrollmentCompleted identifies a face enrollment finishing.
	KindFaceEnrollmentCompleted Kind = "status.face_enrollment_completed"
)

// FeatureStatusEvent reports the behavior feature the robot switched to.
type FeatureStatusEvent struct {
	Base
	FeatureName    string
	Source         string
	RobotTimestamp uint32
}

// NewFeatureStatusEvent creates a feature status event.
func NewFeatureStatusEvent(featureName, source string, robotTimestamp uint32) FeatureStatusEvent {
	return FeatureStatusEvent{
		Base:           NewBase(KindFeatureStatus),
		FeatureName:    featureName,
		Source:         source,
		RobotTimestamp: robotTimestamp,
	}
}

// FaceScanStartedEvent marks a meet-victor face scan starting.
type FaceScanStartedEvent struct {
	Base
	RobotTimestamp uint32
}

// NewFaceScanStartedEvent creates a face scan started event.
func NewFaceScanStartedEvent(robotTimestamp uint32) FaceScanStartedEvent {
	return FaceScanStartedEvent{Base: NewBase(KindFaceScanStarted), RobotTimestamp: robotTimestamp}
}

// FaceScanCompleteEvent marks a meet-victor face scan completing.
type FaceScanCompleteEvent struct {
	Base
	RobotTimestamp uint32
}

// NewFaceScanCompleteEvent creates a face scan complete event.
func NewFaceScanCompleteEvent(robotTimestamp uint32) FaceScanCompleteEvent {
	return FaceScanCompleteEvent{Base: NewBase(KindFaceScanComplete), RobotTimestamp: robotTimestamp}
}

// FaceEnrollmentCompletedEvent marks a face enrollment finishing.
type FaceEnrollmentCompletedEvent struct {
	Base
	RobotTimestamp uint32
}

// NewFaceEnrollmentCompletedEvent creates a face enrollment completed event.
func NewFaceEnrollmentCompletedEvent(robotTimestamp uint32) FaceEnrollmentCompletedEvent {
	return FaceEnrollmentCompletedEvent{Base: NewBase(KindFaceEnrollmentCompleted), RobotTimestamp: robotTimestamp}
}
