// Package objects tracks the robot's world: cubes, the charger, custom
// objects, and faces. Presence is inferred from intermittent observations;
// lifecycle transitions are re-published as object-bound world.* events.
package objects

import (
	"time"

	"github.com/codaris/vector-core/core/events"
)

// DefaultDisappearDelay is how long an entity stays visible after its last
// observation. Observation gaps of a few hundred milliseconds are normal
// while the object stays in frame, so the delay sits above that.
const DefaultDisappearDelay = 600 * time.Millisecond

// Registry owns the mapping from robot-assigned identifiers to local
// entities. All mutation must happen on the owner's single event loop;
// debounce timers re-enter through the run func so that invariant holds
// for timer callbacks too.
type Registry struct {
	objects        map[uint32]WorldObject
	faces          map[int32]*Face
	cubesByFactory map[string]*LightCube

	disappearDelay time.Duration

	// emit publishes derived world.* events, normally dispatcher delivery.
	emit func(events.Event)
	// run funnels timer callbacks back onto the owner's loop.
	run func(func())

	closed bool
}

// NewRegistry creates a registry. emit receives derived world.* events; run
// funnels debounce callbacks back onto the loop that owns the registry. A
// nil emit drops derived events, a nil run invokes callbacks inline (only
// safe for single-goroutine tests).
func NewRegistry(disappearDelay time.Duration, emit func(events.Event), run func(func())) *Registry {
	if disappearDelay <= 0 {
		disappearDelay = DefaultDisappearDelay
	}
	if emit == nil {
		emit = func(events.Event) {}
	}
	if run == nil {
		run = func(callback func()) { callback() }
	}

	return &Registry{
		objects:        map[uint32]WorldObject{},
		faces:          map[int32]*Face{},
		cubesByFactory: map[string]*LightCube{},
		disappearDelay: disappearDelay,
		emit:           emit,
		run:            run,
	}
}

// HandleEvent routes a typed event to the matching lifecycle operation.
// Events the registry does not track are ignored.
func (r *Registry) HandleEvent(event events.Event) {
	if r == nil || r.closed {
		return
	}

	switch typedEvent := event.(type) {
	case events.ObjectObservedEvent:
		r.OnObjectObserved(typedEvent)
	case events.ObjectAvailableEvent:
		r.OnObjectAvailable(typedEvent.FactoryID)
	case events.ObjectConnectionStateEvent:
		r.OnConnectionStateChanged(typedEvent.ObjectID, typedEvent.FactoryID, typedEvent.Connected)
	case events.ObjectMovedEvent:
		r.OnObjectMoved(typedEvent.ObjectID, typedEvent.RobotTimestamp)
	case events.ObjectStoppedMovingEvent:
		r.OnObjectStoppedMoving(typedEvent.ObjectID, typedEvent.RobotTimestamp)
	case events.ObjectUpAxisChangedEvent:
		r.OnUpAxisChanged(typedEvent.ObjectID, typedEvent.UpAxis, typedEvent.RobotTimestamp)
	case events.ObjectTappedEvent:
		r.OnObjectTapped(typedEvent.ObjectID, typedEvent.RobotTimestamp)
	case events.CubeConnectionLostEvent:
		r.OnCubeConnectionLost()
	case events.FaceObservedEvent:
		r.OnFaceObserved(typedEvent)
	case events.FaceIDChangedEvent:
		r.OnFaceIDChanged(typedEvent.OldID, typedEvent.NewID)
	}
}

// OnObjectObserved looks up or creates the entity for an observation,
// refreshes its pose and timestamps, and (re)arms the disappearance
// debounce. Duplicate observations are idempotent: the entity appears at
// most once per visibility episode.
func (r *Registry) OnObjectObserved(observation events.ObjectObservedEvent) {
	object, ok := r.objects[observation.ObjectID]
	if !ok {
		object = r.createObject(observation)
		r.objects[observation.ObjectID] = object
	}

	state := object.state()
	appeared := !state.visible
	state.visible = true
	state.recordObservation(observation.Pose, observation.RobotTimestamp)

	if appeared {
		r.emit(NewObjectAppearedEvent(object))
	}
	r.armDisappear(object)
}

// OnObjectAvailable records a connectable cube advertising itself. The cube
// is keyed by factory id until an observation or connection names its
// object id.
func (r *Registry) OnObjectAvailable(factoryID string) {
	if factoryID == "" {
		return
	}

	if _, ok := r.cubesByFactory[factoryID]; !ok {
		r.cubesByFactory[factoryID] = &LightCube{factoryID: factoryID}
	}
}

// OnConnectionStateChanged updates a cube's radio link state, creating the
// entity if this is the first event naming its id, and re-publishes the
// change bound to the resolved cube.
func (r *Registry) OnConnectionStateChanged(objectID uint32, factoryID string, connected bool) {
	cube := r.cubeForID(objectID)
	if cube == nil {
		return
	}

	if factoryID != "" {
		cube.factoryID = factoryID
		r.cubesByFactory[factoryID] = cube
	}
	if cube.connected == connected {
		return
	}

	cube.connected = connected
	r.emit(NewObjectConnectionChangedEvent(cube, connected))
}

// OnObjectMoved records a cube starting to move. Only the transition into
// movement sets the move start time; repeats while moving are no-ops.
func (r *Registry) OnObjectMoved(objectID, robotTimestamp uint32) {
	cube := r.cubeForID(objectID)
	if cube == nil {
		return
	}

	cube.startMoving(robotTimestamp)
}

// OnObjectStoppedMoving records a cube coming to rest and returns the
// robot-clock move duration. A stop without a prior move yields zero and
// emits nothing.
func (r *Registry) OnObjectStoppedMoving(objectID, robotTimestamp uint32) time.Duration {
	cube := r.cubeForID(objectID)
	if cube == nil {
		return 0
	}

	duration, stopped := cube.stopMoving(robotTimestamp)
	if !stopped {
		return 0
	}

	r.emit(NewObjectFinishedMovingEvent(cube, duration))
	return duration
}

// OnUpAxisChanged records which cube face points up and re-publishes the
// change bound to the resolved cube.
func (r *Registry) OnUpAxisChanged(objectID uint32, upAxis events.UpAxis, robotTimestamp uint32) {
	cube := r.cubeForID(objectID)
	if cube == nil {
		return
	}

	cube.upAxis = upAxis
	cube.upAxisChangedAt = time.Now()
	cube.robotTimestamp = robotTimestamp
	r.emit(NewObjectUpAxisChangedEvent(cube, upAxis))
}

// OnObjectTapped records a tap and re-publishes it bound to the cube.
func (r *Registry) OnObjectTapped(objectID, robotTimestamp uint32) {
	cube := r.cubeForID(objectID)
	if cube == nil {
		return
	}

	cube.lastTappedAt = time.Now()
	cube.lastTappedRobotTS = robotTimestamp
	r.emit(NewObjectTappedEvent(cube, robotTimestamp))
}

// OnCubeConnectionLost marks every connected cube disconnected. The radio
// loss notification does not name a cube, so all links are considered down.
func (r *Registry) OnCubeConnectionLost() {
	for _, object := range r.objects {
		cube, ok := object.(*LightCube)
		if !ok || !cube.connected {
			continue
		}
		cube.connected = false
		r.emit(NewObjectConnectionChangedEvent(cube, false))
	}
}

// OnFaceObserved looks up or creates the face, refreshes its vision data,
// and (re)arms the disappearance debounce.
func (r *Registry) OnFaceObserved(observation events.FaceObservedEvent) {
	face, ok := r.faces[observation.FaceID]
	if !ok {
		face = &Face{id: observation.FaceID}
		r.faces[observation.FaceID] = face
	}

	appeared := !face.visible
	face.visible = true
	face.recordFaceObservation(observation)

	if appeared {
		r.emit(NewObjectAppearedEvent(face))
	}
	r.armDisappear(face)
}

// OnFaceIDChanged re-keys the face entry in place: the entity previously
// addressable by oldID keeps its identity as a Go value and answers to
// newID from now on. A change naming an untracked old id creates the face
// under the new id, tolerating out-of-order delivery.
func (r *Registry) OnFaceIDChanged(oldID, newID int32) {
	face, ok := r.faces[oldID]
	if !ok {
		if _, exists := r.faces[newID]; !exists {
			r.faces[newID] = &Face{id: newID}
		}
		return
	}

	delete(r.faces, oldID)
	face.id = newID
	r.faces[newID] = face
	r.emit(NewFaceReidentifiedEvent(face, oldID, newID))
}

// Object returns the entity for a robot-assigned object id.
func (r *Registry) Object(objectID uint32) (WorldObject, bool) {
	object, ok := r.objects[objectID]
	return object, ok
}

// Face returns the face currently answering to the given id.
func (r *Registry) Face(faceID int32) (*Face, bool) {
	face, ok := r.faces[faceID]
	return face, ok
}

// CubeByFactoryID returns the cube with the given hardware identifier.
func (r *Registry) CubeByFactoryID(factoryID string) (*LightCube, bool) {
	cube, ok := r.cubesByFactory[factoryID]
	return cube, ok
}

// Objects returns all non-face entities known to the registry, visible or
// stale.
func (r *Registry) Objects() []WorldObject {
	objects := make([]WorldObject, 0, len(r.objects))
	for _, object := range r.objects {
		objects = append(objects, object)
	}
	return objects
}

// Faces returns all faces known to the registry, visible or stale.
func (r *Registry) Faces() []*Face {
	faces := make([]*Face, 0, len(r.faces))
	for _, face := range r.faces {
		faces = append(faces, face)
	}
	return faces
}

// Close stops every pending debounce timer. Entities stay readable; no
// further visibility transitions are emitted.
func (r *Registry) Close() {
	if r == nil || r.closed {
		return
	}

	r.closed = true
	for _, object := range r.objects {
		stopDisappearTimer(object.state())
	}
	for _, face := range r.faces {
		stopDisappearTimer(&face.objectState)
	}
}

func stopDisappearTimer(state *objectState) {
	state.disappearGeneration++
	if state.disappearTimer != nil {
		state.disappearTimer.Stop()
		state.disappearTimer = nil
	}
}

// armDisappear replaces the entity's debounce timer. Bumping the generation
// before stopping the old timer closes the race where an already-fired
// timer callback is waiting to run: it will see a stale generation and do
// nothing.
func (r *Registry) armDisappear(object WorldObject) {
	state := object.state()
	state.disappearGeneration++
	generation := state.disappearGeneration

	if state.disappearTimer != nil {
		state.disappearTimer.Stop()
	}
	state.disappearTimer = time.AfterFunc(r.disappearDelay, func() {
		r.run(func() { r.onDisappearTimeout(object, generation) })
	})
}

func (r *Registry) onDisappearTimeout(object WorldObject, generation uint64) {
	if r.closed {
		return
	}

	state := object.state()
	if state.disappearGeneration != generation || !state.visible {
		return
	}

	state.visible = false
	state.disappearTimer = nil
	r.emit(NewObjectDisappearedEvent(object))
}

// createObject builds the entity variant for a first observation. Movement
// and tap events about ids never observed also land here through
// cubeForID, so unknown types fall back to a cube placeholder.
func (r *Registry) createObject(observation events.ObjectObservedEvent) WorldObject {
	switch observation.ObjectType {
	case events.ObjectTypeCharger:
		return &Charger{id: observation.ObjectID}
	case events.ObjectTypeCustomObject:
		return &CustomObject{id: observation.ObjectID, typeTag: observation.CustomTypeTag}
	default:
		return r.adoptCube(observation.ObjectID)
	}
}

// cubeForID resolves an object id to its cube, creating a placeholder for
// ids never observed. Events about an id that resolved to a non-cube
// entity are dropped with a diagnostic; only cubes move, tap, and connect.
func (r *Registry) cubeForID(objectID uint32) *LightCube {
	object, ok := r.objects[objectID]
	if !ok {
		cube := r.adoptCube(objectID)
		r.objects[objectID] = cube
		return cube
	}

	cube, ok := object.(*LightCube)
	if !ok {
		logger.Warn("dropping cube event addressed to a non-cube object",
			"object_id", objectID, "object_type", object.ObjectType().String())
		return nil
	}
	return cube
}

// adoptCube reuses a cube previously announced by factory id, so that
// availability state carries over once the object id is learned.
func (r *Registry) adoptCube(objectID uint32) *LightCube {
	for _, cube := range r.cubesByFactory {
		if cube.id == 0 {
			cube.id = objectID
			return cube
		}
	}
	return &LightCube{id: objectID}
}
