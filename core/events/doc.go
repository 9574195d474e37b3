// Package events defines the typed robot event contract and the factory
// that builds typed events out of tagged wire envelopes.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - object.*
//   - face.*
//   - status.*
//   - wake_word.*
//   - robot.*
//   - connection.*
//   - system.*
//
// Semantics used across the package:
//
//   - Envelope: the pre-decoded wire-level tagged union; its primary
//     discriminant is an [EnvelopeKind], compound kinds carry a secondary
//     discriminant inside their payload.
//   - RobotTimestamp: the robot's own millisecond clock; unrelated to the
//     local wall-clock timestamp every event carries through [Base].
//   - Observed: the robot's vision system seeing something this frame;
//     presence over time is inferred downstream, not signaled here.
//
// object events
//
//   - ObjectAvailableEvent (object.available): connectable cube advertising.
//   - ObjectConnectionStateEvent (object.connection_state): cube connected
//     or disconnected.
//   - ObjectMovedEvent (object.moved): cube accelerometer movement began.
//   - ObjectStoppedMovingEvent (object.stopped_moving): cube came to rest.
//   - ObjectUpAxisChangedEvent (object.up_axis_changed): new top face.
//   - ObjectTappedEvent (object.tapped): physical tap detected.
//   - ObjectObservedEvent (object.observed): object seen in camera frame.
//   - CubeConnectionLostEvent (object.cube_connection_lost): radio link lost.
//   - CubeBatteryEvent (object.cube_battery): cube battery reading.
//
// face events
//
//   - FaceObservedEvent (face.observed): face seen in camera frame, with
//     identity, expression, and landmark data.
//   - FaceIDChangedEvent (face.id_changed): vision re-identified a tracked
//     face under a new id.
//
// status events
//
//   - FeatureStatusEvent (status.feature): behavior feature switched.
//   - FaceScanStartedEvent (status.face_scan_started): face scan began.
//   - FaceScanCompleteEvent (status.face_scan_complete): face scan done.
//   - FaceEnrollmentCompletedEvent (status.face_enrollment_completed): face
//     enrollment finished.
//
// wake_word events
//
//   - WakeWordBeginEvent (wake_word.begin): wake word heard.
//   - WakeWordEndEvent (wake_word.end): wake word exchange concluded.
//
// robot events
//
//   - RobotStateEvent (robot.state): continuously streamed state snapshot.
//   - StimulationInfoEvent (robot.stimulation_info): stimulation levels.
//   - UnexpectedMovementEvent (robot.unexpected_movement): moved off path.
//   - MirrorModeDisabledEvent (robot.mirror_mode_disabled): mirror mode off.
//   - VisionModesAutoDisabledEvent (robot.vision_modes_auto_disabled):
//     vision modes shed robot-side.
//   - CameraSettingsUpdateEvent (robot.camera_settings_update): exposure
//     settings applied.
//   - PhotoTakenEvent (robot.photo_taken): photo stored on the robot.
//   - UserIntentEvent (robot.user_intent): voice intent surfaced.
//   - AttentionTransferEvent (robot.attention_transfer): user redirected.
//   - OnboardingEvent (robot.onboarding): onboarding state change.
//
// connection events
//
//   - KeepAliveEvent (connection.keep_alive): stream liveness ping.
//   - ConnectionResponseEvent (connection.response): subscription ack.
//
// system events
//
//   - JdocsChangedEvent (system.jdocs_changed): settings documents changed.
//   - AlexaAuthEvent (system.alexa_auth): Alexa authorization change.
//   - CheckUpdateStatusEvent (system.check_update_status): update progress.
//   - AudioSendModeChangedEvent (system.audio_send_mode_changed): audio feed
//     mode change.
package events
