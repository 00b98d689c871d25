package adapter

import "encoding/json"

// JSON encodes the messages put on the wire
//
//go:generate mockgen -source=json.go -destination=../mocks/json.go -package=mocks -mock_names=JSON=MockJSON
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
}

// RealJSON encodes with encoding/json
type RealJSON struct{}

// NewJSON returns the encoding/json encoder
func NewJSON() JSON {
	return &RealJSON{}
}

func (j *RealJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
