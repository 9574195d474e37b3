// Package stream is the websocket transport feeding the runtime with event
// envelopes. It only moves frames: classification of unknown or malformed
// event kinds is left to the typed event factory downstream.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/codaris/vector-core/core/events"
)

// Client reads the robot's event feed over a websocket and hands each frame
// to an envelope callback. One goroutine owns the read side; writes are
// mutex guarded.
type Client struct {
	url string

	mu     sync.Mutex
	ws     *websocket.Conn
	closed bool

	closeOnce sync.Once
	readDone  chan struct{}
}

// NewClient creates a client for the given ws:// event feed URL. Nothing
// connects until Open.
func NewClient(url string) *Client {
	return &Client{
		url:      url,
		readDone: make(chan struct{}),
	}
}

// Open dials the feed and starts the read loop. Incoming frames are mapped
// to envelopes and passed to onEnvelope from the read goroutine. Keep-alive
// frames are answered on the socket and still passed through.
func (c *Client) Open(ctx context.Context, onEnvelope func(events.Envelope)) error {
	if c == nil {
		return fmt.Errorf("open called on nil client")
	}
	if onEnvelope == nil {
		return fmt.Errorf("no envelope callback provided")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("client closed")
	}
	if c.ws != nil {
		return fmt.Errorf("client already open")
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to open socket connection to event feed: %w", err)
	}
	c.ws = conn

	go c.readAndProcessMessages(conn, onEnvelope)

	return nil
}

func (c *Client) readAndProcessMessages(conn *websocket.Conn, onEnvelope func(events.Envelope)) {
	defer close(c.readDone)

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) && !c.isClosed() {
				log.Printf("Websocket read error: %v", err)
			}
			return
		}

		if msgType != websocket.TextMessage {
			continue
		}

		envelope, err := envelopeFromFrame(msg)
		if err != nil {
			log.Printf("Failed to unmarshal event frame: %v", err)
			continue
		}

		if envelope.Kind == events.EnvelopeKeepAlive {
			if err := c.sendWebsocketMessage(keepAliveMsg); err != nil {
				logger.Warn("failed to answer keep-alive", "error", err.Error())
			}
		}

		onEnvelope(envelope)
	}
}

type websocketMessage struct {
	Type string `json:"type"`
}

var keepAliveMsg = websocketMessage{Type: string(events.EnvelopeKeepAlive)}

func (c *Client) sendWebsocketMessage(msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.ws == nil {
		return fmt.Errorf("websocket connection closed")
	}

	if err := c.ws.WriteJSON(msg); err != nil {
		return fmt.Errorf("failed to write to websocket: %w", err)
	}
	return nil
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close shuts the connection down and waits for the read loop to exit.
// Idempotent.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	var closeErr error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		conn := c.ws
		c.mu.Unlock()

		if conn == nil {
			close(c.readDone)
			return
		}

		if err := conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		); err != nil {
			logger.Warn("failed to send close message", "error", err.Error())
		}
		if err := conn.Close(); err != nil {
			closeErr = fmt.Errorf("failed to close websocket: %w", err)
		}

		<-c.readDone
	})

	return closeErr
}

// envelopeFromFrame maps one JSON frame to an envelope. Unknown frame types
// pass through with a nil payload; the typed event factory is the party
// that classifies them as decode failures.
func envelopeFromFrame(frame []byte) (events.Envelope, error) {
	var header struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(frame, &header); err != nil {
		return events.Envelope{}, fmt.Errorf("failed to parse frame header: %w", err)
	}

	kind := events.EnvelopeKind(header.Type)
	payload, err := payloadForKind(kind, header.Data)
	if err != nil {
		return events.Envelope{}, fmt.Errorf("failed to parse %s payload: %w", header.Type, err)
	}

	return events.Envelope{Kind: kind, Payload: payload}, nil
}

func payloadForKind(kind events.EnvelopeKind, data json.RawMessage) (any, error) {
	switch kind {
	case events.EnvelopeStatus:
		return unmarshalPayload[events.StatusPayload](data)
	case events.EnvelopeWakeWord:
		return unmarshalPayload[events.WakeWordPayload](data)
	case events.EnvelopeObjectEvent:
		return unmarshalPayload[events.ObjectEventPayload](data)
	case events.EnvelopeRobotObservedFace:
		return unmarshalPayload[events.FaceObservation](data)
	case events.EnvelopeRobotChangedFaceID:
		return unmarshalPayload[events.FaceIDChange](data)
	case events.EnvelopeRobotState:
		return unmarshalPayload[events.RobotStatePayload](data)
	case events.EnvelopeStimulationInfo:
		return unmarshalPayload[events.StimulationInfoPayload](data)
	case events.EnvelopePhotoTaken:
		return unmarshalPayload[events.PhotoTakenPayload](data)
	case events.EnvelopeCubeBattery:
		return unmarshalPayload[events.CubeBatteryPayload](data)
	case events.EnvelopeKeepAlive:
		return events.KeepAlivePayload{}, nil
	case events.EnvelopeConnectionResponse:
		return unmarshalPayload[events.ConnectionResponsePayload](data)
	case events.EnvelopeMirrorModeDisabled:
		return events.MirrorModeDisabledPayload{}, nil
	case events.EnvelopeVisionModesAutoDisabled:
		return events.VisionModesAutoDisabledPayload{}, nil
	case events.EnvelopeUserIntent:
		return unmarshalPayload[events.UserIntentPayload](data)
	case events.EnvelopeAttentionTransfer:
		return unmarshalPayload[events.AttentionTransferPayload](data)
	case events.EnvelopeOnboarding:
		return unmarshalPayload[events.OnboardingPayload](data)
	case events.EnvelopeJdocsChanged:
		return unmarshalPayload[events.JdocsChangedPayload](data)
	case events.EnvelopeAlexaAuth:
		return unmarshalPayload[events.AlexaAuthPayload](data)
	case events.EnvelopeCheckUpdateStatus:
		return unmarshalPayload[events.CheckUpdateStatusPayload](data)
	case events.EnvelopeAudioSendModeChanged:
		return unmarshalPayload[events.AudioSendModeChangedPayload](data)
	case events.EnvelopeCameraSettingsUpdate:
		return unmarshalPayload[events.CameraSettingsUpdatePayload](data)
	case events.EnvelopeUnexpectedMovement:
		return unmarshalPayload[events.UnexpectedMovementPayload](data)
	default:
		return nil, nil
	}
}

func unmarshalPayload[T any](data json.RawMessage) (T, error) {
	var payload T
	if len(data) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
