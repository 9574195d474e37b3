package events

import "fmt"

// DecodeError reports an envelope that could not be turned into a typed
// event: an unrecognized primary or secondary discriminant, or a compound
// envelope whose nested payload is missing or of the wrong type. Decode
// errors are diagnostics for the error channel, never fatal; unknown
// discriminants are expected across protocol versions.
type DecodeError struct {
	Kind   EnvelopeKind
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q envelope: %s", e.Kind, e.Detail)
}

func decodeErrorf(kind EnvelopeKind, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func payloadAs[T any](envelope Envelope) (*T, bool) {
	switch payload := envelope.Payload.(type) {
	case *T:
		return payload, payload != nil
	case T:
		return &payload, true
	}
	return nil, false
}

// FromEnvelope turns a tagged wire envelope into exactly one typed event.
// Decoding is pure: it reads the envelope and nothing else. An envelope whose
// discriminants or payload do not line up yields a [*DecodeError]; callers
// drop the envelope and report the error rather than aborting the stream.
func FromEnvelope(envelope Envelope) (Event, error) {
	switch envelope.Kind {
	case EnvelopeStatus:
		payload, ok := payloadAs[StatusPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing status payload")
		}
		return statusEventFromPayload(*payload)

	case EnvelopeWakeWord:
		payload, ok := payloadAs[WakeWordPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing wake word payload")
		}
		return wakeWordEventFromPayload(*payload)

	case EnvelopeObjectEvent:
		payload, ok := payloadAs[ObjectEventPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing object event payload")
		}
		return objectEventFromPayload(*payload)

	case EnvelopeRobotObservedFace:
		payload, ok := payloadAs[FaceObservation](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing face observation payload")
		}
		return NewFaceObservedEvent(*payload), nil

	case EnvelopeRobotChangedFaceID:
		payload, ok := payloadAs[FaceIDChange](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing face id change payload")
		}
		return NewFaceIDChangedEvent(payload.OldID, payload.NewID, payload.RobotTimestamp), nil

	case EnvelopeRobotState:
		payload, ok := payloadAs[RobotStatePayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing robot state payload")
		}
		return NewRobotStateEvent(*payload), nil

	case EnvelopeStimulationInfo:
		payload, ok := payloadAs[StimulationInfoPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing stimulation info payload")
		}
		return NewStimulationInfoEvent(*payload), nil

	case EnvelopePhotoTaken:
		payload, ok := payloadAs[PhotoTakenPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing photo taken payload")
		}
		return NewPhotoTakenEvent(payload.PhotoID), nil

	case EnvelopeCubeBattery:
		payload, ok := payloadAs[CubeBatteryPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing cube battery payload")
		}
		return NewCubeBatteryEvent(*payload), nil

	case EnvelopeKeepAlive:
		return NewKeepAliveEvent(), nil

	case EnvelopeConnectionResponse:
		payload, ok := payloadAs[ConnectionResponsePayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing connection response payload")
		}
		return NewConnectionResponseEvent(payload.IsPrimary), nil

	case EnvelopeMirrorModeDisabled:
		return NewMirrorModeDisabledEvent(), nil

	case EnvelopeVisionModesAutoDisabled:
		return NewVisionModesAutoDisabledEvent(), nil

	case EnvelopeUserIntent:
		payload, ok := payloadAs[UserIntentPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing user intent payload")
		}
		return NewUserIntentEvent(payload.Intent, payload.JSONData), nil

	case EnvelopeAttentionTransfer:
		payload, ok := payloadAs[AttentionTransferPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing attention transfer payload")
		}
		return NewAttentionTransferEvent(payload.Reason, payload.SecondsAgo), nil

	case EnvelopeOnboarding:
		payload, ok := payloadAs[OnboardingPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing onboarding payload")
		}
		return NewOnboardingEvent(payload.Stage), nil

	case EnvelopeJdocsChanged:
		payload, ok := payloadAs[JdocsChangedPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing jdocs changed payload")
		}
		return NewJdocsChangedEvent(payload.Documents), nil

	case EnvelopeAlexaAuth:
		payload, ok := payloadAs[AlexaAuthPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing alexa auth payload")
		}
		return NewAlexaAuthEvent(payload.AuthState, payload.Extra), nil

	case EnvelopeCheckUpdateStatus:
		payload, ok := payloadAs[CheckUpdateStatusPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing check update status payload")
		}
		return NewCheckUpdateStatusEvent(*payload), nil

	case EnvelopeAudioSendModeChanged:
		payload, ok := payloadAs[AudioSendModeChangedPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing audio send mode payload")
		}
		return NewAudioSendModeChangedEvent(payload.Mode), nil

	case EnvelopeCameraSettingsUpdate:
		payload, ok := payloadAs[CameraSettingsUpdatePayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing camera settings payload")
		}
		return NewCameraSettingsUpdateEvent(payload.GainValue, payload.ExposureMS, payload.AutoExposureOn), nil

	case EnvelopeUnexpectedMovement:
		payload, ok := payloadAs[UnexpectedMovementPayload](envelope)
		if !ok {
			return nil, decodeErrorf(envelope.Kind, "missing unexpected movement payload")
		}
		return NewUnexpectedMovementEvent(payload.MovementType, payload.MovementSide, payload.RobotTimestamp), nil
	}

	return nil, decodeErrorf(envelope.Kind, "unrecognized envelope kind")
}

func statusEventFromPayload(payload StatusPayload) (Event, error) {
	switch payload.Type {
	case StatusFeature:
		if payload.Feature == nil {
			return nil, decodeErrorf(EnvelopeStatus, "feature status named but not present")
		}
		return NewFeatureStatusEvent(payload.Feature.Name, payload.Feature.Source, payload.RobotTimestamp), nil
	case StatusFaceScanStarted:
		return NewFaceScanStartedEvent(payload.RobotTimestamp), nil
	case StatusFaceScanComplete:
		return NewFaceScanCompleteEvent(payload.RobotTimestamp), nil
	case StatusFaceEnrollmentCompleted:
		return NewFaceEnrollmentCompletedEvent(payload.RobotTimestamp), nil
	}
	return nil, decodeErrorf(EnvelopeStatus, "unrecognized status type %q", payload.Type)
}

func wakeWordEventFromPayload(payload WakeWordPayload) (Event, error) {
	switch payload.Type {
	case WakeWordBegin:
		return NewWakeWordBeginEvent(), nil
	case WakeWordEnd:
		if payload.End == nil {
			return nil, decodeErrorf(EnvelopeWakeWord, "wake word end named but not present")
		}
		return NewWakeWordEndEvent(payload.End.IntentHeard, payload.End.IntentJSON), nil
	}
	return nil, decodeErrorf(EnvelopeWakeWord, "unrecognized wake word type %q", payload.Type)
}

func objectEventFromPayload(payload ObjectEventPayload) (Event, error) {
	switch payload.Type {
	case ObjectEventAvailable:
		if payload.Available == nil {
			return nil, decodeErrorf(EnvelopeObjectEvent, "object available named but not present")
		}
		return NewObjectAvailableEvent(payload.Available.FactoryID), nil
	case ObjectEventConnectionState:
		if payload.ConnectionState == nil {
			return nil, decodeErrorf(EnvelopeObjectEvent, "connection state named but not present")
		}
		state := payload.ConnectionState
		return NewObjectConnectionStateEvent(state.ObjectID, state.FactoryID, state.Type, state.Connected), nil
	case ObjectEventMoved:
		if payload.Moved == nil {
			return nil, decodeErrorf(EnvelopeObjectEvent, "object moved named but not present")
		}
		return NewObjectMovedEvent(payload.Moved.ObjectID, payload.Moved.RobotTimestamp), nil
	case ObjectEventStoppedMoving:
		if payload.StoppedMoving == nil {
			return nil, decodeErrorf(EnvelopeObjectEvent, "object stopped moving named but not present")
		}
		return NewObjectStoppedMovingEvent(payload.StoppedMoving.ObjectID, payload.StoppedMoving.RobotTimestamp), nil
	case ObjectEventUpAxisChanged:
		if payload.UpAxisChanged == nil {
			return nil, decodeErrorf(EnvelopeObjectEvent, "up axis change named but not present")
		}
		change := payload.UpAxisChanged
		return NewObjectUpAxisChangedEvent(change.ObjectID, change.UpAxis, change.RobotTimestamp), nil
	case ObjectEventTapped:
		if payload.Tapped == nil {
			return nil, decodeErrorf(EnvelopeObjectEvent, "object tap named but not present")
		}
		return NewObjectTappedEvent(payload.Tapped.ObjectID, payload.Tapped.RobotTimestamp), nil
	case ObjectEventObserved:
		if payload.Observed == nil {
			return nil, decodeErrorf(EnvelopeObjectEvent, "object observation named but not present")
		}
		return NewObjectObservedEvent(*payload.Observed), nil
	case ObjectEventCubeConnectionLost:
		return NewCubeConnectionLostEvent(), nil
	}
	return nil, decodeErrorf(EnvelopeObjectEvent, "unrecognized object event type %q", payload.Type)
}
