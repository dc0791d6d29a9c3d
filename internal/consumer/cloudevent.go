package consumer

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"github.com/shenikar/mission_location_service/internal/models"
)

const structuredContentType = "application/cloudevents+json"

// structuredEvent is a CloudEvent in structured content mode.
type structuredEvent struct {
	SpecVersion     string          `json:"specversion"`
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Type            string          `json:"type"`
	Time            string          `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            json.RawMessage `json:"data"`
	DataBase64      string          `json:"data_base64"`
}

// ToMessage converts a Kafka record into a pipeline message. Both CloudEvents
// content modes are recognized; any other record gets nil metadata.
func ToMessage(msg *sarama.ConsumerMessage, ack func()) models.Message {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		if h == nil {
			continue
		}
		headers[strings.ToLower(string(h.Key))] = string(h.Value)
	}
	lookup := func(key string) (string, bool) {
		v, ok := headers[key]
		return v, ok
	}

	contentType := headers["content-type"]
	if IsStructured(contentType) {
		metadata, payload := DecodeStructured(msg.Value)
		return models.NewMessage(metadata, payload, ack)
	}
	return models.NewMessage(MetadataFromHeaders(lookup, "ce_", contentType), msg.Value, ack)
}

// IsStructured reports whether contentType announces a structured mode event.
func IsStructured(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), structuredContentType)
}

// MetadataFromHeaders reads the attributes of a binary mode event. Kafka
// uses the "ce_" prefix and HTTP the "ce-" prefix. It returns nil when the
// mandatory specversion or type attribute is missing.
func MetadataFromHeaders(lookup func(key string) (string, bool), prefix, contentType string) *models.EventMetadata {
	specVersion, hasSpec := lookup(prefix + "specversion")
	eventType, hasType := lookup(prefix + "type")
	if !hasSpec || !hasType {
		return nil
	}

	get := func(name string) string {
		v, _ := lookup(prefix + name)
		return v
	}
	return &models.EventMetadata{
		ID:              get("id"),
		Source:          get("source"),
		Type:            eventType,
		SpecVersion:     specVersion,
		DataContentType: contentType,
		Time:            parseTime(get("time")),
	}
}

// DecodeStructured splits a structured mode event into its attributes and
// data. Undecodable documents yield nil metadata and the raw value.
func DecodeStructured(value []byte) (*models.EventMetadata, []byte) {
	var event structuredEvent
	if err := json.Unmarshal(value, &event); err != nil || event.SpecVersion == "" || event.Type == "" {
		return nil, value
	}

	metadata := &models.EventMetadata{
		ID:              event.ID,
		Source:          event.Source,
		Type:            event.Type,
		SpecVersion:     event.SpecVersion,
		DataContentType: event.DataContentType,
		Time:            parseTime(event.Time),
	}

	if event.DataBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(event.DataBase64)
		if err != nil {
			return metadata, nil
		}
		return metadata, data
	}

	data := bytes.TrimSpace(event.Data)
	if len(data) > 0 && data[0] == '"' {
		// data carried as a JSON string holding the document
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return metadata, []byte(s)
		}
	}
	return metadata, data
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
